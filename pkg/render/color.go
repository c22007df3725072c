// pkg/render/color.go
package render

import "image/color"

// Palette holds the colours a frontend needs to draw a match.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Cannon     color.RGBA
	PlayerShot color.RGBA
	EnemyShot  color.RGBA
	Explosion  color.RGBA
	Star       color.RGBA
	Overlay    color.RGBA
}

// DarkenColor уменьшает яркость цвета.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// RGB8 returns the 8-bit channels of any colour, alpha dropped.
func RGB8(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}
