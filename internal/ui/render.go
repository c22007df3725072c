// internal/ui/render.go
package ui

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/system"
	"go-invaders/internal/utils"
	"go-invaders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует игровое поле: звезды, строй, ракеты, пушку и взрыв.
// Игровые координаты растут вверх от пола, экранные вниз от верхнего края.
type RenderSystem struct {
	opts    config.Options
	palette render.Palette
	stars   []component.Position
}

func NewRenderSystem(opts config.Options, palette render.Palette, rng *utils.PRNGService) *RenderSystem {
	stars := make([]component.Position, opts.NumberOfStars)
	for i := range stars {
		stars[i] = component.Position{X: rng.Float64() * opts.Width, Y: rng.Float64() * opts.Height}
	}
	return &RenderSystem{opts: opts, palette: palette, stars: stars}
}

// screenY переводит нижнюю кромку объекта высотой h в экранную y его верха.
func (s *RenderSystem) screenY(y, h float64) float32 {
	return float32(s.opts.Height - y - h)
}

func (s *RenderSystem) Draw(screen *ebiten.Image, p *system.Presenter) {
	screen.Fill(s.palette.Background)

	for _, st := range s.stars {
		vector.DrawFilledRect(screen, float32(st.X), float32(st.Y), config.StarSize, config.StarSize, s.palette.Star, false)
	}

	snap := p.Snap
	for _, a := range snap.Aliens {
		s.drawAlien(screen, a, p.Pose)
	}

	p.Flights.Each(func(f *system.Flight) {
		c := s.palette.PlayerShot
		h := config.PlayerMissileHeight
		switch {
		case f.Owner == component.OwnerEnemy:
			c = s.palette.EnemyShot
			h = config.EnemyMissileHeight
		case !f.Armed:
			c = render.DarkenColor(c)
		}
		vector.DrawFilledRect(screen, float32(f.X), s.screenY(f.Bottom(), h), config.MissileWidth, float32(h), c, false)
	})

	size := float32(s.opts.CannonSize)
	drawCannon(screen, float32(snap.PlayerX), s.screenY(0, s.opts.CannonSize), size, s.palette.Cannon)

	if e := p.Explosion(); e != nil {
		s.drawExplosion(screen, *e)
	}
}

// drawAlien рисует маску позы, растянутую на AlienSize.
func (s *RenderSystem) drawAlien(screen *ebiten.Image, a component.Alien, pose int) {
	def := defs.Alien(a.Type)
	mask := def.Visuals.Poses[pose]
	if len(mask) == 0 {
		vector.DrawFilledRect(screen, float32(a.X), s.screenY(a.Y, s.opts.AlienSize),
			float32(s.opts.AlienSize), float32(s.opts.AlienSize), def.Visuals.Color, false)
		return
	}

	cols := 0
	for _, row := range mask {
		cols = max(cols, len(row))
	}
	cell := float32(s.opts.AlienSize) / float32(max(cols, len(mask)))
	top := s.screenY(a.Y, s.opts.AlienSize)
	// Маска центрируется в квадрате пришельца
	offX := (float32(s.opts.AlienSize) - cell*float32(cols)) / 2
	offY := (float32(s.opts.AlienSize) - cell*float32(len(mask))) / 2

	for r, row := range mask {
		for c, ch := range row {
			if ch != '#' {
				continue
			}
			x := float32(a.X) + offX + float32(c)*cell
			y := top + offY + float32(r)*cell
			vector.DrawFilledRect(screen, x, y, cell, cell, def.Visuals.Color, false)
		}
	}
}

func (s *RenderSystem) drawExplosion(screen *ebiten.Image, e component.Position) {
	half := float32(s.opts.AlienSize) / 2
	cx := float32(e.X) + half
	cy := s.screenY(e.Y, s.opts.AlienSize) + half
	vector.DrawFilledCircle(screen, cx, cy, half*0.6, s.palette.Explosion, true)
	for _, d := range [][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, {0, -1.3}, {0, 1.3}, {-1.3, 0}, {1.3, 0}} {
		vector.StrokeLine(screen, cx, cy, cx+d[0]*half, cy+d[1]*half, 3, s.palette.Explosion, true)
	}
}
