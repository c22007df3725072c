// internal/system/presenter.go
package system

import (
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/interfaces"
	"go-invaders/internal/utils"
)

// Presenter is the frontend-side half of a match shared by every renderer:
// it keeps the last snapshot, flies the rockets, flips the alien pose,
// debounces fire and times the explosion marker. Everything it learns goes
// back to the match through controls.
type Presenter struct {
	Flights *FlightSystem
	Snap    component.Snapshot
	Pose    int

	opts     config.Options
	controls interfaces.Controls

	lastTick   uint64
	lastAliens int
	cooldown   time.Duration

	explosion       *component.Position
	explosionAge    time.Duration
	explosionCalled bool
}

func NewPresenter(opts config.Options, controls interfaces.Controls) *Presenter {
	return &Presenter{
		Flights:  NewFlightSystem(opts),
		opts:     opts,
		controls: controls,
	}
}

// Apply takes a new snapshot. The pose flips on every tick in which no
// alien was shot down.
func (p *Presenter) Apply(s component.Snapshot) {
	if s.Tick != p.lastTick {
		if len(s.Aliens) == p.lastAliens {
			p.Pose = 1 - p.Pose
		}
		p.lastTick = s.Tick
	}
	p.lastAliens = len(s.Aliens)

	switch {
	case s.Explosion == nil:
		p.explosion = nil
	case p.explosion == nil || *p.explosion != *s.Explosion:
		e := *s.Explosion
		p.explosion = &e
		p.explosionAge = 0
		p.explosionCalled = false
	}

	p.Flights.Sync(s)
	p.Snap = s
}

// Step продвигает ракеты и таймеры на dt.
func (p *Presenter) Step(dt time.Duration) {
	p.cooldown = max(p.cooldown-dt, 0)

	reports, finished := p.Flights.Update(dt)
	for _, r := range reports {
		p.controls.ReportPosition(r.ID, r.Y)
	}
	for _, id := range finished {
		p.controls.RemoveProjectile(id)
	}

	// После поражения взрыв на пушке висит до рестарта
	if p.explosion != nil && !p.explosionCalled && p.Snap.Phase != component.EnemyWon {
		p.explosionAge += dt
		if p.explosionAge >= time.Duration(p.opts.ExplosionTime)*time.Millisecond {
			p.controls.ClearExplosion()
			p.explosionCalled = true
		}
	}
}

// Fire стреляет из пушки, если перезарядка закончилась.
func (p *Presenter) Fire() bool {
	if p.cooldown > 0 || p.Snap.Phase != component.Playing {
		return false
	}
	p.controls.Fire(component.Position{X: p.Snap.PlayerX, Y: p.opts.CannonSize})
	p.cooldown = time.Duration(p.opts.RocketCoolDown) * time.Millisecond
	return true
}

// MoveTo ставит пушку в x, не выпуская за экран.
func (p *Presenter) MoveTo(x float64) {
	x = utils.Clamp(x, 0, p.opts.Width-p.opts.CannonSize)
	if x == p.Snap.PlayerX {
		return
	}
	p.Snap.PlayerX = x
	p.controls.MovePlayer(x)
}

// Explosion возвращает метку взрыва для отрисовки или nil.
func (p *Presenter) Explosion() *component.Position {
	return p.explosion
}
