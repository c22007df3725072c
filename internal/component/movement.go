// internal/component/movement.go
package component

// Position хранит координаты в пикселях. Ось Y направлена вверх от пола:
// y = 0 это нижний край экрана, там стоит пушка игрока.
type Position struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}
