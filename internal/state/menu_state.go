// internal/state/menu_state.go
package state

import (
	"go-invaders/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState показывает заставку перед первым матчем; start запускает матч и
// возвращает экран игры.
type MenuState struct {
	sm    *StateMachine
	start func() State
}

func NewMenuState(sm *StateMachine, start func() State) *MenuState {
	return &MenuState{sm: sm, start: start}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		m.sm.SetState(m.start())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	size := screen.Bounds().Size()
	for i, line := range []string{"INVADERS", "PRESS SPACE TO START"} {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (size.X-w)/2, size.Y/2+i*24, config.MainColor)
	}
}

func (m *MenuState) Exit() {}
