package app

import (
	"go-invaders/internal/component"
	"go-invaders/internal/system"
	"go-invaders/internal/types"
)

// Fire: player shot from origin
type Fire struct {
	Origin component.Position
	Reply  chan<- FireResult // optional
}

type FireResult struct {
	ID types.EntityID
	OK bool
}

// MovePlayer: new cannon x
type MovePlayer struct {
	X float64
}

// ReportPosition: current height of a flying projectile
type ReportPosition struct {
	ID    types.EntityID
	Y     float64
	Reply chan<- system.Outcome // optional
}

// RemoveProjectile: flight finished
type RemoveProjectile struct {
	ID types.EntityID
}

type ClearExplosion struct{}

type Retry struct{}

// Exit: closes the match and stops the runner
type Exit struct{}

// Subscribe: issued once per frontend
type Subscribe struct {
	Reply chan<- Subscription
}

type Subscription struct {
	ID int
	C  <-chan component.Snapshot
}

type Unsubscribe struct {
	ID int
}
