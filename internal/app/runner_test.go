package app

import (
	"context"
	"testing"
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/system"
)

func startRunner(t *testing.T, opts config.Options) (*Runner, Subscription) {
	t.Helper()
	r := NewRunner(opts)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go r.Run(ctx)

	sub, ok := r.Subscribe()
	if !ok {
		t.Fatal("subscribe failed")
	}
	return r, sub
}

// waitFor reads snapshots until cond holds.
func waitFor(t *testing.T, sub Subscription, cond func(component.Snapshot) bool) component.Snapshot {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case s, ok := <-sub.C:
			if !ok {
				t.Fatal("subscription closed")
			}
			if cond(s) {
				return s
			}
		case <-timeout:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}

func slowOptions() config.Options {
	opts := quietOptions()
	opts.StartingSpeed = 60000
	opts.RestartDelay = 20
	return opts
}

func TestRunnerPublishesStart(t *testing.T) {
	r, sub := startRunner(t, slowOptions())
	defer r.Stop()

	s := waitFor(t, sub, func(s component.Snapshot) bool { return s.Phase == component.Playing })
	if len(s.Aliens) != 15 || s.Lives != 3 {
		t.Fatalf("snapshot: %d aliens, %d lives", len(s.Aliens), s.Lives)
	}
}

func TestRunnerFireAndReport(t *testing.T) {
	opts := slowOptions()
	r, sub := startRunner(t, opts)
	defer r.Stop()

	s := waitFor(t, sub, func(s component.Snapshot) bool { return s.Phase == component.Playing })
	target := s.Aliens[0]

	fired := make(chan FireResult, 1)
	r.Inbox <- Fire{Origin: component.Position{X: target.X - 2.5, Y: opts.CannonSize}, Reply: fired}
	res := <-fired
	if !res.OK {
		t.Fatal("fire rejected")
	}

	outcome := make(chan system.Outcome, 1)
	r.Inbox <- ReportPosition{ID: res.ID, Y: target.Y + opts.AlienSize/2, Reply: outcome}
	if out := <-outcome; out != system.Hit {
		t.Fatalf("outcome: %v", out)
	}

	s = waitFor(t, sub, func(s component.Snapshot) bool { return s.Score == 1 })
	if len(s.Aliens) != 14 || len(s.Projectiles) != 0 || s.Explosion == nil {
		t.Fatalf("snapshot after hit: %+v", s)
	}
}

func TestRunnerRestartsAfterVictory(t *testing.T) {
	opts := slowOptions()
	opts.Rows = []int{1}
	r, sub := startRunner(t, opts)
	defer r.Stop()

	s := waitFor(t, sub, func(s component.Snapshot) bool { return s.Phase == component.Playing })
	target := s.Aliens[0]

	fired := make(chan FireResult, 1)
	r.Inbox <- Fire{Origin: component.Position{X: target.X - 2.5, Y: opts.CannonSize}, Reply: fired}
	res := <-fired
	r.ReportPosition(res.ID, target.Y+opts.AlienSize/2)

	s = waitFor(t, sub, func(s component.Snapshot) bool {
		return s.Phase == component.Playing && s.Highest == 1
	})
	if len(s.Aliens) != 1 || s.Score != 0 || s.Winner != component.WinnerNone {
		t.Fatalf("restarted snapshot: %+v", s)
	}
}

func TestRunnerExitClosesSubscriptions(t *testing.T) {
	r, sub := startRunner(t, slowOptions())
	r.Exit()

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}

	var last component.Snapshot
	for s := range sub.C {
		last = s
	}
	if last.Phase != component.Closed {
		t.Fatalf("last phase: %v", last.Phase)
	}

	// Команды после остановки не блокируют
	r.Fire(component.Position{})
	if _, ok := r.Subscribe(); ok {
		t.Fatal("subscribed to a stopped runner")
	}
}

func TestRunnerUnsubscribe(t *testing.T) {
	r, sub := startRunner(t, slowOptions())
	defer r.Stop()

	r.Unsubscribe(sub.ID)
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-sub.C:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("subscription not closed")
		}
	}
}

func TestClockResetStopsOldTicker(t *testing.T) {
	c := &clock{}
	c.ResetTicker(time.Hour)
	old := c.tickC

	c.ResetTicker(5 * time.Millisecond)
	t.Cleanup(c.StopTicker)
	if c.tickC == old {
		t.Fatal("ticker channel not replaced")
	}

	select {
	case <-c.tickC:
	case <-time.After(time.Second):
		t.Fatal("new ticker silent")
	}
	select {
	case <-old:
		t.Fatal("old ticker still running")
	default:
	}
}

func TestSpeedUpLeavesOneLiveTicker(t *testing.T) {
	opts := quietOptions()
	opts.StartingSpeed = 20
	c := &clock{}
	t.Cleanup(c.StopTicker)
	g := NewGame(opts, c, &fakePublisher{})
	g.Start()
	first := c.tickC

	if out := shoot(t, g, g.ECS.Aliens[0]); out != system.Hit {
		t.Fatalf("shot: %v", out)
	}
	if g.ECS.Match.Speed != 18 {
		t.Fatalf("speed: %d", g.ECS.Match.Speed)
	}
	if c.tickC == first {
		t.Fatal("speed-up kept the old ticker")
	}

	time.Sleep(60 * time.Millisecond)
	select {
	case <-first:
		t.Fatal("old ticker still delivers ticks")
	default:
	}
	select {
	case <-c.tickC:
	case <-time.After(time.Second):
		t.Fatal("new ticker silent")
	}
}
