// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-invaders/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LivesIndicator рисует оставшиеся жизни иконками пушки в правом верхнем
// углу. После попадания иконки коротко вздрагивают.
type LivesIndicator struct {
	X, Y        float32 // правый верхний угол
	Color       color.RGBA
	LastHitTime time.Time
}

func NewLivesIndicator(x, y float32, c color.RGBA) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Color: c}
}

// Draw отрисовывает lives иконок; отрицательное число рисуется как ноль.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	elapsed := time.Since(i.LastHitTime).Seconds()
	scale := float32(1.0 + 0.3*math.Exp(-elapsed*8))
	size := float32(config.LivesIconSize) * scale

	x := i.X - size
	for n := 0; n < max(lives, 0); n++ {
		drawCannon(screen, x, i.Y, size, i.Color)
		x -= size + config.LivesIconSpacing
	}
}

// HandleHit запускает анимацию потери жизни.
func (i *LivesIndicator) HandleHit() {
	i.LastHitTime = time.Now()
}

// drawCannon рисует пушку size×size с левым верхним углом в (x, y).
func drawCannon(screen *ebiten.Image, x, y, size float32, c color.Color) {
	body := size * 0.55
	vector.DrawFilledRect(screen, x, y+size-body, size, body, c, false)
	vector.DrawFilledRect(screen, x+size*0.4, y+size*0.15, size*0.2, size-body, c, false)
}
