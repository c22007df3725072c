// internal/entity/ecs.go
package entity

import (
	"go-invaders/internal/component"
	"go-invaders/internal/types"

	"golang.org/x/exp/slices"
)

// ECS хранит всё изменяемое состояние матча. Им владеет ровно один
// исполнитель (app.Runner); доступ из других горутин запрещён.
type ECS struct {
	NextID types.EntityID
	// Aliens упорядочены от ближнего к полу ряда к дальнему.
	Aliens      []component.Alien
	Projectiles map[types.EntityID]*component.Projectile
	Explosion   *component.Position
	Match       *component.MatchState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Aliens:      nil,
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Match: &component.MatchState{
			Winner:    component.WinnerNone,
			Phase:     component.Resetting,
			Direction: 1,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AlienIndex возвращает индекс пришельца в строю или -1.
func (ecs *ECS) AlienIndex(id component.AlienID) int {
	return slices.IndexFunc(ecs.Aliens, func(a component.Alien) bool {
		return a.ID == id
	})
}

// Snapshot копирует живое состояние для публикации.
func (ecs *ECS) Snapshot() component.Snapshot {
	m := ecs.Match
	s := component.Snapshot{
		Tick:        m.Tick,
		Phase:       m.Phase,
		Winner:      m.Winner,
		Speed:       m.Speed,
		Lives:       max(m.Lives, 0),
		Score:       m.Score,
		Highest:     m.Highest,
		PlayerX:     m.PlayerX,
		Aliens:      slices.Clone(ecs.Aliens),
		Projectiles: make([]component.Projectile, 0, len(ecs.Projectiles)),
	}
	if s.Aliens == nil {
		s.Aliens = []component.Alien{}
	}
	for _, p := range ecs.Projectiles {
		s.Projectiles = append(s.Projectiles, *p)
	}
	slices.SortFunc(s.Projectiles, func(a, b component.Projectile) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	if ecs.Explosion != nil {
		e := *ecs.Explosion
		s.Explosion = &e
	}
	return s
}
