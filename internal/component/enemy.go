// internal/component/enemy.go
package component

import "fmt"

// AlienID идентифицирует пришельца в строю, например "t2n4".
type AlienID string

// NewAlienID строит id num-го (с единицы) пришельца данного типа.
func NewAlienID(alienType, num int) AlienID {
	return AlienID(fmt.Sprintf("t%dn%d", alienType, num))
}

// Alien представляет одного пришельца в строю.
type Alien struct {
	ID   AlienID `json:"id" msgpack:"id"`
	Type int     `json:"t" msgpack:"t"` // 1..N, номер ряда сверху + 1
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
}

// Position возвращает левый нижний угол пришельца.
func (a Alien) Position() Position {
	return Position{X: a.X, Y: a.Y}
}
