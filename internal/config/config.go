// internal/config/config.go
package config

import (
	"image/color"

	"go-invaders/pkg/render"
)

// Размеры экрана в пикселях (портретная ориентация, как на телефоне).
const (
	ScreenWidth  = 480
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	MissileWidth        = 5.0
	PlayerMissileHeight = 15.0
	EnemyMissileHeight  = 15.0

	CannonStep       = 6.0  // пикселей за кадр при удержании стрелки
	StarSize         = 1.0
	HUDMargin        = 12
	LivesIconSize    = 24.0
	LivesIconSpacing = 8.0

	SnapshotBuffer = 1
	InboxSize      = 256
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	MainColor         = color.RGBA{0x22, 0xcc, 0x00, 255} // тексты и ракеты игрока
	EnemyMissileColor = color.RGBA{255, 0, 0, 255}
	StarColor         = color.RGBA{200, 200, 200, 255}
	CannonColor       = color.RGBA{0x22, 0xcc, 0x00, 255}
	ExplosionColor    = color.RGBA{255, 170, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 170}
	ButtonColor       = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.RGBA{220, 60, 60, 220}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
)

// DefaultPalette собирает цвета выше для фронтендов.
func DefaultPalette() render.Palette {
	return render.Palette{
		Background: BackgroundColor,
		Text:       TextLightColor,
		Cannon:     CannonColor,
		PlayerShot: MainColor,
		EnemyShot:  EnemyMissileColor,
		Explosion:  ExplosionColor,
		Star:       StarColor,
		Overlay:    OverlayColor,
	}
}
