// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-invaders/internal/component"
	"go-invaders/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD рисует счет, рекорд и жизни поверх поля.
type HUD struct {
	face  font.Face
	color color.Color
	lives *LivesIndicator

	lastLives int
}

// NewHUD создаёт HUD для поля шириной width.
func NewHUD(face font.Face, c color.RGBA, width int) *HUD {
	return &HUD{
		face:      face,
		color:     c,
		lives:     NewLivesIndicator(float32(width-config.HUDMargin), config.HUDMargin, c),
		lastLives: -1,
	}
}

// Draw рисует HUD для снимка s.
func (h *HUD) Draw(screen *ebiten.Image, s component.Snapshot) {
	if h.lastLives >= 0 && s.Lives < h.lastLives {
		h.lives.HandleHit()
	}
	h.lastLives = s.Lives

	ascent := h.face.Metrics().Ascent.Ceil()
	text.Draw(screen, fmt.Sprintf("SCORE %d", s.Score), h.face, config.HUDMargin, config.HUDMargin+ascent, h.color)
	text.Draw(screen, fmt.Sprintf("HI %d", s.Highest), h.face, config.HUDMargin, config.HUDMargin+2*ascent+4, h.color)
	h.lives.Draw(screen, s.Lives)
}
