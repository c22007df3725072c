// internal/interfaces/game_context.go
package interfaces

import (
	"time"

	"go-invaders/internal/component"
)

// Scheduler is the only way the match reaches time. Resetting the ticker
// stops the previous one; scheduling a delay cancels the pending one.
type Scheduler interface {
	ResetTicker(d time.Duration)
	StopTicker()
	After(d time.Duration)
	CancelDelay()
}

// Publisher receives a snapshot after every state change.
type Publisher interface {
	Publish(s component.Snapshot)
}
