// Package tty is a terminal frontend for a match: it draws snapshots with
// tcell, flies the rockets and forwards keys as player intent.
package tty

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/interfaces"
	"go-invaders/internal/system"
	"go-invaders/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// styles are the tcell versions of a render.Palette.
type styles struct {
	hud, cannon, explosion, overlay tcell.Style
	playerShot, enemyShot, disarmed tcell.Style
}

func newStyles(p render.Palette) styles {
	fg := func(c color.Color) tcell.Style {
		return tcell.StyleDefault.Foreground(rgb(c))
	}
	return styles{
		hud:        fg(p.PlayerShot),
		cannon:     fg(p.Cannon),
		explosion:  fg(p.Explosion),
		overlay:    fg(p.Text).Bold(true),
		playerShot: fg(p.PlayerShot),
		enemyShot:  fg(p.EnemyShot),
		disarmed:   fg(render.DarkenColor(p.PlayerShot)),
	}
}

// Frontend renders one match into a tcell screen.
type Frontend struct {
	screen    tcell.Screen
	controls  interfaces.Controls
	opts      config.Options
	presenter *system.Presenter
	styles    styles
}

func New(screen tcell.Screen, controls interfaces.Controls, opts config.Options) *Frontend {
	return &Frontend{
		screen:    screen,
		controls:  controls,
		opts:      opts,
		presenter: system.NewPresenter(opts, controls),
		styles:    newStyles(config.DefaultPalette()),
	}
}

// Run draws frames and handles keys until ctx is done, the snapshot feed
// closes or the player quits.
func (f *Frontend) Run(ctx context.Context, snapshots <-chan component.Snapshot) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go f.pumpEvents(events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-snapshots:
			if !ok {
				return
			}
			f.presenter.Apply(s)
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			f.presenter.Step(now.Sub(last))
			last = now
			f.Draw()
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done
// is closed.
func (f *Frontend) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent возвращает false, когда игрок выходит.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.controls.Exit()
		return false
	case tcell.KeyLeft:
		f.move(-1)
	case tcell.KeyRight:
		f.move(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			f.controls.Exit()
			return false
		case 'a', 'h':
			f.move(-1)
		case 'd', 'l':
			f.move(1)
		case ' ':
			f.presenter.Fire()
		case 'r':
			if f.presenter.Snap.Phase == component.EnemyWon {
				f.controls.Retry()
			}
		}
	}
	return true
}

// move сдвигает пушку на одну колонку терминала.
func (f *Frontend) move(dir float64) {
	cols, _ := f.screen.Size()
	step := max(config.CannonStep, f.opts.Width/float64(max(cols, 1)))
	f.presenter.MoveTo(f.presenter.Snap.PlayerX + dir*step)
}

// Draw рисует последний снимок. Строка 0 отдана под HUD.
func (f *Frontend) Draw() {
	f.screen.Clear()
	p := f.presenter
	s := p.Snap

	for _, a := range s.Aliens {
		def := defs.Alien(a.Type)
		col, row := f.cell(a.X, a.Y+f.opts.AlienSize/2)
		f.text(col, row, def.Glyphs[p.Pose], tcell.StyleDefault.Foreground(rgb(def.Visuals.Color)))
	}

	p.Flights.Each(func(fl *system.Flight) {
		col, row := f.cell(fl.X, fl.Bottom())
		switch {
		case fl.Owner == component.OwnerEnemy:
			f.screen.SetContent(col, row, '!', nil, f.styles.enemyShot)
		case !fl.Armed:
			f.screen.SetContent(col, row, '|', nil, f.styles.disarmed)
		default:
			f.screen.SetContent(col, row, '|', nil, f.styles.playerShot)
		}
	})

	col, row := f.cell(s.PlayerX, 0)
	f.text(col, row, "/^^\\", f.styles.cannon)

	if e := p.Explosion(); e != nil {
		col, row := f.cell(e.X, e.Y+f.opts.AlienSize/2)
		f.text(col, row, "*#*", f.styles.explosion)
	}

	f.drawHUD(s)
	f.screen.Show()
}

func (f *Frontend) drawHUD(s component.Snapshot) {
	cols, rows := f.screen.Size()
	f.text(1, 0, fmt.Sprintf("SCORE %d  HI %d", s.Score, s.Highest), f.styles.hud)

	lives := ""
	for i := 0; i < s.Lives; i++ {
		lives += "^ "
	}
	f.text(cols-len(lives)-1, 0, lives, f.styles.cannon)

	if s.Phase == component.EnemyWon {
		msg := "GAME OVER  [r] retry  [q] exit"
		f.text((cols-len(msg))/2, rows/2, msg, f.styles.overlay)
	}
}

// cell maps game coordinates (origin at the bottom-left, y up) to a
// terminal cell below the HUD row.
func (f *Frontend) cell(x, y float64) (int, int) {
	cols, rows := f.screen.Size()
	field := max(rows-1, 1)
	col := int(x / f.opts.Width * float64(cols))
	row := rows - 1 - int(y/f.opts.Height*float64(field))
	return min(max(col, 0), cols-1), min(max(row, 1), rows-1)
}

func (f *Frontend) text(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(col+i, row, r, nil, style)
	}
}

func rgb(c color.Color) tcell.Color {
	r, g, b := render.RGB8(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
