package system

import (
	"testing"
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
)

func TestFlightPlayerRocket(t *testing.T) {
	opts := config.DefaultOptions()
	fs := NewFlightSystem(opts)
	fs.Sync(component.Snapshot{Projectiles: []component.Projectile{
		{ID: 1, Owner: component.OwnerPlayer, X: 100, Y: 50, Armed: true},
	}})

	reports, finished := fs.Update(800 * time.Millisecond)
	if len(finished) != 0 {
		t.Fatalf("finished too early: %v", finished)
	}
	// Половина пути: 50 + 15 + 400
	if len(reports) != 1 || reports[0].ID != 1 || reports[0].Y != 465 {
		t.Fatalf("reports: %+v", reports)
	}

	_, finished = fs.Update(800 * time.Millisecond)
	if len(finished) != 1 || finished[0] != 1 {
		t.Fatalf("finished: %v", finished)
	}
	if fs.Len() != 0 {
		t.Fatalf("flights left: %d", fs.Len())
	}
}

func TestFlightEnemyRocketIsShorter(t *testing.T) {
	opts := config.DefaultOptions()
	fs := NewFlightSystem(opts)
	// Четверть высоты экрана: полёт вдвое короче полного.
	fs.Sync(component.Snapshot{Projectiles: []component.Projectile{
		{ID: 7, Owner: component.OwnerEnemy, X: 0, Y: 200, Armed: true},
	}})

	var got *Flight
	fs.Each(func(f *Flight) { got = f })
	if got == nil || got.Duration != 800*time.Millisecond {
		t.Fatalf("flight: %+v", got)
	}
	if got.X != 17.5 {
		t.Fatalf("lane: got %v, want 17.5", got.X)
	}

	reports, _ := fs.Update(400 * time.Millisecond)
	if len(reports) != 1 || reports[0].Y != 100 {
		t.Fatalf("reports: %+v", reports)
	}
}

func TestFlightSyncDropsGoneAndDisarmed(t *testing.T) {
	opts := config.DefaultOptions()
	fs := NewFlightSystem(opts)
	fs.Sync(component.Snapshot{Projectiles: []component.Projectile{
		{ID: 1, Owner: component.OwnerPlayer, Armed: true},
		{ID: 2, Owner: component.OwnerPlayer, Armed: true},
	}})
	fs.Sync(component.Snapshot{Projectiles: []component.Projectile{
		{ID: 2, Owner: component.OwnerPlayer, Armed: false},
	}})

	if fs.Len() != 1 {
		t.Fatalf("flights: got %d, want 1", fs.Len())
	}
	reports, _ := fs.Update(10 * time.Millisecond)
	if len(reports) != 0 {
		t.Fatalf("disarmed flight reported: %+v", reports)
	}
}

func TestFlightFinishedIsNotRestartedByStaleSnapshot(t *testing.T) {
	fs := NewFlightSystem(config.DefaultOptions())
	snap := component.Snapshot{Projectiles: []component.Projectile{
		{ID: 1, Owner: component.OwnerEnemy, X: 100, Y: 380, Armed: true},
	}}
	fs.Sync(snap)

	_, finished := fs.Update(10 * time.Second)
	if len(finished) != 1 || finished[0] != 1 {
		t.Fatalf("finished: %v", finished)
	}

	// Удаление ещё не дошло до матча: снимок по-прежнему содержит ракету
	fs.Sync(snap)
	if fs.Len() != 0 {
		t.Fatalf("finished flight restarted: %d flights", fs.Len())
	}
	if reports, finished := fs.Update(100 * time.Millisecond); len(reports) != 0 || len(finished) != 0 {
		t.Fatalf("stale rocket still flying: %v %v", reports, finished)
	}

	// После удаления тот же id снова можно запустить
	fs.Sync(component.Snapshot{})
	fs.Sync(snap)
	if fs.Len() != 1 {
		t.Fatalf("id not released after removal: %d flights", fs.Len())
	}
}
