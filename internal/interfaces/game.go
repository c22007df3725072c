package interfaces

import (
	"go-invaders/internal/component"
	"go-invaders/internal/types"
)

// Controls is the player's side of a running match. Frontends hold it to
// forward intent; every call is queued to the match's own goroutine.
type Controls interface {
	Fire(origin component.Position)
	MovePlayer(x float64)
	ReportPosition(id types.EntityID, y float64)
	RemoveProjectile(id types.EntityID)
	ClearExplosion()
	Retry()
	Exit()
}
