// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-invaders/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Font       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		Font:       face,
	}
}

// Contains сообщает, лежит ли точка экрана внутри кнопки.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет клик мышью или касание по кнопке в этом кадре.
func (b *Button) IsClicked() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Contains(ebiten.CursorPosition()) {
		return true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if b.Contains(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, b.TextColor, true)

	bounds := text.BoundString(b.Font, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}
