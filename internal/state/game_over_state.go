// internal/state/game_over_state.go
package state

import (
	"image"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

const (
	buttonWidth  = 160
	buttonHeight = 44
	buttonGap    = 16
)

// GameOverState показывает проигранный матч поверх поля и ждет, пока
// игрок выберет повтор или выход.
type GameOverState struct {
	stateMachine *StateMachine
	play         *PlayState
	retry        *ui.Button
	exit         *ui.Button
}

func NewGameOverState(sm *StateMachine, play *PlayState) *GameOverState {
	w, h := play.opts.ScreenSize()
	cx, cy := w/2, h/2
	retry := image.Rect(cx-buttonWidth/2, cy+buttonGap, cx+buttonWidth/2, cy+buttonGap+buttonHeight)
	exit := retry.Add(image.Pt(0, buttonHeight+buttonGap))
	return &GameOverState{
		stateMachine: sm,
		play:         play,
		retry:        ui.NewButton(retry, "RETRY", play.font),
		exit:         ui.NewButton(exit, "EXIT", play.font),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// Ракеты и снимки продолжают идти, пока открыт экран
	s.play.sync(deltaTime)
	if s.play.Closed() {
		return
	}
	if s.play.presenter.Snap.Phase == component.Playing {
		s.stateMachine.SetState(s.play)
		return
	}

	switch {
	case s.retry.IsClicked() || inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.play.controls.Retry()
	case s.exit.IsClicked() || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.play.controls.Exit()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)

	w, h := s.play.opts.ScreenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	msg := "GAME OVER"
	bounds := text.BoundString(s.play.font, msg)
	x := (w - bounds.Dx()) / 2
	y := h/2 - buttonGap
	text.Draw(screen, msg, s.play.font, x, y, config.TextLightColor)

	s.retry.Draw(screen)
	s.exit.Draw(screen)
}

func (s *GameOverState) Exit() {}
