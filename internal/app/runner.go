// internal/app/runner.go
package app

import (
	"context"
	"sync"
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/interfaces"
	"go-invaders/internal/system"
	"go-invaders/internal/types"
)

var (
	_ interfaces.Controls  = (*Runner)(nil)
	_ interfaces.Publisher = (*Runner)(nil)
	_ interfaces.Scheduler = (*clock)(nil)
)

// Runner владеет Game и единственный трогает его. Команды приходят через
// Inbox, тики и таймер рестарта читаются в том же select, поэтому все
// изменения состояния идут по очереди.
type Runner struct {
	Inbox chan any

	game   *Game
	clock  *clock
	subs   map[int]chan component.Snapshot
	nextID int
	latest component.Snapshot

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewRunner создаёт исполнителя с новым матчем. Слушателей нужно подписать
// на Game().EventDispatcher до вызова Run.
func NewRunner(opts config.Options) *Runner {
	r := &Runner{
		Inbox:  make(chan any, config.InboxSize),
		clock:  &clock{},
		subs:   make(map[int]chan component.Snapshot),
		nextID: 1,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	r.game = NewGame(opts, r.clock, r)
	r.latest = r.game.Snapshot()
	return r
}

// Game отдаёт матч для подключения слушателей до Run.
func (r *Runner) Game() *Game {
	return r.game
}

// Run запускает матч и обслуживает команды, пока не отменён ctx, не вызван
// Stop или игрок не вышел. При возврате каналы подписчиков закрываются.
func (r *Runner) Run(ctx context.Context) {
	defer r.shutdown()

	r.game.Start()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			if !r.handleCommand(cmd) {
				return
			}
		case <-r.clock.tickC:
			r.game.Tick()
		case <-r.clock.delayC:
			r.clock.delayFired()
			r.game.Start()
		}
	}
}

// handleCommand возвращает false, когда исполнителю пора остановиться.
func (r *Runner) handleCommand(cmd any) bool {
	switch c := cmd.(type) {
	case Fire:
		id, ok := r.game.Fire(c.Origin)
		if c.Reply != nil {
			c.Reply <- FireResult{ID: id, OK: ok}
		}
	case MovePlayer:
		r.game.UpdatePlayerPosition(c.X)
	case ReportPosition:
		out := r.game.ReportPosition(c.ID, c.Y)
		if c.Reply != nil {
			c.Reply <- out
		}
	case RemoveProjectile:
		r.game.RemoveProjectile(c.ID)
	case ClearExplosion:
		r.game.ClearExplosion()
	case Retry:
		r.game.Retry()
	case Subscribe:
		id := r.nextID
		r.nextID++
		ch := make(chan component.Snapshot, config.SnapshotBuffer)
		ch <- r.latest
		r.subs[id] = ch
		c.Reply <- Subscription{ID: id, C: ch}
	case Unsubscribe:
		if ch, ok := r.subs[c.ID]; ok {
			close(ch)
			delete(r.subs, c.ID)
		}
	case Exit:
		r.game.Exit()
		return false
	}
	return true
}

// Publish реализует interfaces.Publisher. У подписчика лежит только
// последний снимок; медленный читатель пропускает промежуточные.
func (r *Runner) Publish(s component.Snapshot) {
	r.latest = s
	for _, ch := range r.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

func (r *Runner) shutdown() {
	r.clock.StopTicker()
	r.clock.CancelDelay()
	for id, ch := range r.subs {
		close(ch)
		delete(r.subs, id)
	}
	close(r.done)
}

// Stop просит исполнителя завершиться. Можно вызывать повторно.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Done закрывается после возврата из Run.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// send ставит cmd в очередь, если исполнитель ещё жив.
func (r *Runner) send(cmd any) bool {
	select {
	case r.Inbox <- cmd:
		return true
	case <-r.done:
		return false
	}
}

// Subscribe заводит ленту снимков. Канал закрывается, когда исполнитель
// остановлен или подписка отменена.
func (r *Runner) Subscribe() (Subscription, bool) {
	reply := make(chan Subscription, 1)
	if !r.send(Subscribe{Reply: reply}) {
		return Subscription{}, false
	}
	select {
	case s := <-reply:
		return s, true
	case <-r.done:
		return Subscription{}, false
	}
}

// Resolve сообщает позицию ракеты и ждёт вердикта.
func (r *Runner) Resolve(id types.EntityID, y float64) (system.Outcome, bool) {
	reply := make(chan system.Outcome, 1)
	if !r.send(ReportPosition{ID: id, Y: y, Reply: reply}) {
		return system.Passed, false
	}
	select {
	case out := <-reply:
		return out, true
	case <-r.done:
		return system.Passed, false
	}
}

func (r *Runner) Unsubscribe(id int) {
	r.send(Unsubscribe{ID: id})
}

func (r *Runner) Fire(origin component.Position) {
	r.send(Fire{Origin: origin})
}

func (r *Runner) MovePlayer(x float64) {
	r.send(MovePlayer{X: x})
}

func (r *Runner) ReportPosition(id types.EntityID, y float64) {
	r.send(ReportPosition{ID: id, Y: y})
}

func (r *Runner) RemoveProjectile(id types.EntityID) {
	r.send(RemoveProjectile{ID: id})
}

func (r *Runner) ClearExplosion() {
	r.send(ClearExplosion{})
}

func (r *Runner) Retry() {
	r.send(Retry{})
}

func (r *Runner) Exit() {
	r.send(Exit{})
}

// clock реализует interfaces.Scheduler на настоящих таймерах. У
// остановленного тикера или задержки канал nil, он навсегда блокирует select.
type clock struct {
	ticker *time.Ticker
	tickC  <-chan time.Time
	delay  *time.Timer
	delayC <-chan time.Time
}

func (c *clock) ResetTicker(d time.Duration) {
	c.StopTicker()
	c.ticker = time.NewTicker(d)
	c.tickC = c.ticker.C
}

func (c *clock) StopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.ticker = nil
	c.tickC = nil
}

func (c *clock) After(d time.Duration) {
	c.CancelDelay()
	c.delay = time.NewTimer(d)
	c.delayC = c.delay.C
}

func (c *clock) CancelDelay() {
	if c.delay != nil {
		c.delay.Stop()
	}
	c.delay = nil
	c.delayC = nil
}

func (c *clock) delayFired() {
	c.delay = nil
	c.delayC = nil
}
