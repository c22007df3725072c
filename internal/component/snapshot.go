// internal/component/snapshot.go
package component

import "go-invaders/internal/types"

// Snapshot — копия матча только для чтения, которую фронтенды получают после
// каждого изменения. С живым состоянием ничего не делит.
type Snapshot struct {
	Tick        uint64       `json:"tick" msgpack:"tick"`
	Phase       Phase        `json:"phase" msgpack:"phase"`
	Winner      Winner       `json:"winner" msgpack:"winner"`
	Speed       int          `json:"speed" msgpack:"speed"`
	Lives       int          `json:"lives" msgpack:"lives"`
	Score       int          `json:"score" msgpack:"score"`
	Highest     int          `json:"highest" msgpack:"highest"`
	PlayerX     float64      `json:"playerX" msgpack:"playerX"`
	Aliens      []Alien      `json:"aliens" msgpack:"aliens"`
	Projectiles []Projectile `json:"rockets" msgpack:"rockets"`
	Explosion   *Position    `json:"explosion,omitempty" msgpack:"explosion,omitempty"`
}

// Projectile ищет ракету по id.
func (s Snapshot) Projectile(id types.EntityID) (Projectile, bool) {
	for _, p := range s.Projectiles {
		if p.ID == id {
			return p, true
		}
	}
	return Projectile{}, false
}
