// internal/state/game_state.go
package state

import (
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/interfaces"
	"go-invaders/internal/system"
	"go-invaders/internal/ui"
	"go-invaders/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState показывает идущий матч: читает снимки матча, рисует их и
// переводит клавиши в намерения игрока.
type PlayState struct {
	sm        *StateMachine
	controls  interfaces.Controls
	snapshots <-chan component.Snapshot
	opts      config.Options

	presenter *system.Presenter
	render    *ui.RenderSystem
	hud       *ui.HUD
	font      font.Face

	closed bool
}

func NewPlayState(sm *StateMachine, controls interfaces.Controls, snapshots <-chan component.Snapshot, opts config.Options) *PlayState {
	palette := config.DefaultPalette()
	face := basicfont.Face7x13
	width, _ := opts.ScreenSize()
	return &PlayState{
		sm:        sm,
		controls:  controls,
		snapshots: snapshots,
		opts:      opts,
		presenter: system.NewPresenter(opts, controls),
		render:    ui.NewRenderSystem(opts, palette, utils.NewPRNGService(opts.Seed)),
		hud:       ui.NewHUD(face, palette.PlayerShot, width),
		font:      face,
	}
}

func (g *PlayState) Enter() {}

func (g *PlayState) Update(deltaTime float64) {
	g.sync(deltaTime)
	if g.closed {
		return
	}
	if g.presenter.Snap.Phase == component.EnemyWon {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}
	g.handleInput()
}

// sync забирает свежие снимки и двигает ракеты и таймеры.
func (g *PlayState) sync(deltaTime float64) {
drain:
	for !g.closed {
		select {
		case s, ok := <-g.snapshots:
			if !ok {
				g.closed = true
				break drain
			}
			g.presenter.Apply(s)
		default:
			break drain
		}
	}
	g.presenter.Step(time.Duration(deltaTime * float64(time.Second)))
}

func (g *PlayState) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.controls.Exit()
		return
	}

	x := g.presenter.Snap.PlayerX
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.presenter.MoveTo(x - config.CannonStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.presenter.MoveTo(x + config.CannonStep)
	}
	// Перетаскивание мышью ставит пушку под курсор
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, _ := ebiten.CursorPosition()
		g.presenter.MoveTo(float64(cx) - g.opts.CannonSize/2)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.presenter.Fire()
	}
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g.presenter)
	g.hud.Draw(screen, g.presenter.Snap)
}

func (g *PlayState) Exit() {}

// Closed сообщает, что лента снимков закрыта и матч завершен.
func (g *PlayState) Closed() bool {
	return g.closed
}
