// internal/component/projectile.go
package component

import "go-invaders/internal/types"

// Owner говорит, кто выпустил ракету.
type Owner int

const (
	OwnerPlayer Owner = iota + 1
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	}
	return "unknown"
}

// Projectile представляет летящую ракету. X и Y это точка запуска; дальше
// ракету ведёт внешний слой отрисовки и сообщает её текущую высоту.
type Projectile struct {
	ID    types.EntityID `json:"id" msgpack:"id"`
	Owner Owner          `json:"player" msgpack:"player"`
	X     float64        `json:"x" msgpack:"x"`
	Y     float64        `json:"y" msgpack:"y"`
	// Armed становится false, когда ракета игрока пролетела весь строй:
	// дальше проверять столкновения бессмысленно.
	Armed bool `json:"armed" msgpack:"armed"`
}
