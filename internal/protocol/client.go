package protocol

import "go-invaders/internal/types"

// payloads coming in from the client.

type Fire struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Move struct {
	X float64 `json:"x"`
}

// Position reports the current height of a flying rocket.
type Position struct {
	ID types.EntityID `json:"id"`
	Y  float64        `json:"y"`
}

type Remove struct {
	ID types.EntityID `json:"id"`
}

// Outcome answers a Position report.
type Outcome struct {
	ID     types.EntityID `json:"id"`
	Result string         `json:"result"` // miss | hit | passed
}
