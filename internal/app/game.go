// internal/app/game.go
package app

import (
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/interfaces"
	"go-invaders/internal/system"
	"go-invaders/internal/types"
	"go-invaders/internal/utils"
)

// Game хранит состояние одного матча и правила, которые его меняют.
// Не потокобезопасен: все методы вызываются из одной горутины (см. Runner).
type Game struct {
	Opts             config.Options
	ECS              *entity.ECS
	FormationSystem  *system.FormationSystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	sched interfaces.Scheduler
	pub   interfaces.Publisher
}

// NewGame создаёт матч, ожидающий Start.
func NewGame(opts config.Options, sched interfaces.Scheduler, pub interfaces.Publisher) *Game {
	ecs := entity.NewECS()
	ecs.Match.Lives = opts.Lives
	ecs.Match.Speed = opts.StartingSpeed
	ecs.Match.PlayerX = (opts.Width - opts.CannonSize) / 2

	eventDispatcher := event.NewDispatcher()
	return &Game{
		Opts:             opts,
		ECS:              ecs,
		FormationSystem:  system.NewFormationSystem(ecs, opts),
		ProjectileSystem: system.NewProjectileSystem(ecs, opts),
		StateSystem:      system.NewStateSystem(ecs, eventDispatcher),
		EventDispatcher:  eventDispatcher,
		Rng:              utils.NewPRNGService(opts.Seed),
		sched:            sched,
		pub:              pub,
	}
}

// Start начинает матч. После победы игрока жизни сохраняются, после
// поражения всё начинается заново. Идущий или закрытый матч не трогается,
// но ожидающая задержка рестарта снимается всегда.
func (g *Game) Start() {
	m := g.ECS.Match
	g.sched.CancelDelay()
	if m.Phase == component.Playing || m.Phase == component.Closed {
		return
	}

	if m.Winner == component.WinnerEnemy {
		m.Lives = g.Opts.Lives
	}
	m.Winner = component.WinnerNone
	m.Score = 0
	m.Speed = g.Opts.StartingSpeed
	m.Direction = 1
	m.Descending = false
	g.ECS.Explosion = nil

	g.FormationSystem.Generate()
	g.ProjectileSystem.Clear()
	g.sched.ResetTicker(interval(m.Speed))
	g.StateSystem.SwitchToPlaying()
	g.publish()
}

// Tick сдвигает строй на шаг и даёт случайному пришельцу выстрелить.
func (g *Game) Tick() {
	m := g.ECS.Match
	if m.Phase != component.Playing {
		return
	}
	m.Tick++

	res := g.FormationSystem.Advance(g.Opts.AlienHorStep, g.Opts.AlienVerStep, m.Descending)
	if res.Reversed {
		g.EventDispatcher.Dispatch(event.Event{Type: event.FormationReversed, Data: m.Direction})
	}
	if res.FloorBreached {
		g.lose()
		g.publish()
		return
	}

	if len(res.Aliens) > 0 && g.Rng.Chance(g.Opts.ShootingProbability) {
		shooter := res.Aliens[g.Rng.Intn(len(res.Aliens))]
		g.fire(shooter.Position(), component.OwnerEnemy)
	}
	g.publish()
}

// Fire запускает ракету игрока из origin.
func (g *Game) Fire(origin component.Position) (types.EntityID, bool) {
	if g.ECS.Match.Phase != component.Playing {
		return 0, false
	}
	id, ok := g.fire(origin, component.OwnerPlayer)
	if ok {
		g.publish()
	}
	return id, ok
}

func (g *Game) fire(origin component.Position, owner component.Owner) (types.EntityID, bool) {
	id, ok := g.ProjectileSystem.Fire(origin, owner)
	if !ok {
		return 0, false
	}
	p, _ := g.ProjectileSystem.Get(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: *p})
	return id, true
}

// UpdatePlayerPosition двигает пушку, не выпуская её за экран.
func (g *Game) UpdatePlayerPosition(x float64) {
	m := g.ECS.Match
	x = utils.Clamp(x, 0, g.Opts.Width-g.Opts.CannonSize)
	if x == m.PlayerX {
		return
	}
	m.PlayerX = x
	g.publish()
}

// ReportPosition проверяет текущую высоту ракеты на попадание и применяет
// результат. Неизвестные и разряженные ракеты, а также любые отчёты вне
// идущего матча дают Passed.
func (g *Game) ReportPosition(id types.EntityID, y float64) system.Outcome {
	m := g.ECS.Match
	p, ok := g.ProjectileSystem.Get(id)
	if !ok || !p.Armed || m.Phase != component.Playing {
		return system.Passed
	}

	if p.Owner == component.OwnerEnemy {
		if system.EnemyHitsPlayer(*p, y, m.PlayerX, g.Opts) != system.Hit {
			return system.Miss
		}
		g.removeProjectile(id)
		m.Lives--
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: max(m.Lives, 0)})
		if m.Lives <= 0 {
			g.lose()
		}
		g.publish()
		return system.Hit
	}

	out, idx := system.PlayerHitsFormation(*p, y, g.ECS.Aliens, g.Opts)
	switch out {
	case system.Passed:
		// Ракета прошла весь строй, дальше следить за ней незачем
		p.Armed = false
		g.publish()
	case system.Hit:
		alien := g.ECS.Aliens[idx]
		g.removeProjectile(id)
		g.destroyAlien(alien)
		g.publish()
	}
	return out
}

func (g *Game) destroyAlien(a component.Alien) {
	m := g.ECS.Match
	before := g.FormationSystem.Count()
	pos, removed, empty := g.FormationSystem.Remove(a.ID)
	if !removed {
		return
	}
	m.Score += defs.Points(a.Type)
	g.ECS.Explosion = &pos
	g.EventDispatcher.Dispatch(event.Event{Type: event.AlienDestroyed, Data: a})

	if empty {
		g.win()
		return
	}
	if g.shouldSpeedUp(before) {
		g.speedUp()
	}
}

// shouldSpeedUp: только пока матч идёт и никогда для последнего пришельца,
// его гибель завершает матч.
func (g *Game) shouldSpeedUp(countBefore int) bool {
	return g.ECS.Match.Phase == component.Playing && countBefore > 1
}

func (g *Game) speedUp() {
	m := g.ECS.Match
	next := utils.RoundMs(float64(m.Speed) - float64(m.Speed)*g.Opts.SpeedMultiplier)
	if next >= m.Speed {
		next = m.Speed - 1
	}
	next = max(next, 1)
	if next == m.Speed {
		return
	}
	m.Speed = next
	g.sched.ResetTicker(interval(next))
	g.EventDispatcher.Dispatch(event.Event{Type: event.SpeedChanged, Data: next})
}

func (g *Game) win() {
	if !g.StateSystem.DeclareWinner(component.WinnerPlayer) {
		return
	}
	g.sched.StopTicker()
	g.sched.After(time.Duration(g.Opts.RestartDelay) * time.Millisecond)
	g.StateSystem.SwitchToResetting()
}

func (g *Game) lose() {
	if !g.StateSystem.DeclareWinner(component.WinnerEnemy) {
		return
	}
	g.sched.StopTicker()
	g.ECS.Explosion = &component.Position{X: g.ECS.Match.PlayerX, Y: 0}
}

// RemoveProjectile убирает ракету, чей полёт закончился.
func (g *Game) RemoveProjectile(id types.EntityID) {
	if g.removeProjectile(id) {
		g.publish()
	}
}

func (g *Game) removeProjectile(id types.EntityID) bool {
	if !g.ProjectileSystem.Remove(id) {
		return false
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ProjectileRemoved, Data: id})
	return true
}

// ClearExplosion убирает метку взрыва.
func (g *Game) ClearExplosion() {
	if g.ECS.Explosion == nil {
		return
	}
	g.ECS.Explosion = nil
	g.publish()
}

// Retry начинает заново после поражения. В других фазах игнорируется.
func (g *Game) Retry() {
	if g.ECS.Match.Phase != component.EnemyWon {
		return
	}
	g.Start()
}

// Exit закрывает матч окончательно.
func (g *Game) Exit() {
	if g.ECS.Match.Phase == component.Closed {
		return
	}
	g.sched.StopTicker()
	g.sched.CancelDelay()
	g.StateSystem.Close()
	g.publish()
}

// Snapshot возвращает копию текущего состояния.
func (g *Game) Snapshot() component.Snapshot {
	return g.ECS.Snapshot()
}

func (g *Game) publish() {
	if g.pub != nil {
		g.pub.Publish(g.ECS.Snapshot())
	}
}

func interval(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
