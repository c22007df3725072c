// internal/system/projectile.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/types"

	"golang.org/x/exp/slices"
)

// ProjectileSystem выдаёт и убирает ракеты. Движения у ракет здесь нет:
// их ведёт слой отрисовки (см. FlightSystem).
type ProjectileSystem struct {
	ecs  *entity.ECS
	opts config.Options
}

func NewProjectileSystem(ecs *entity.ECS, opts config.Options) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, opts: opts}
}

// Fire запускает ракету из origin. Отказ, если на экране уже
// opts.MaxProjectiles ракет (лимит общий для игрока и пришельцев).
func (s *ProjectileSystem) Fire(origin component.Position, owner component.Owner) (types.EntityID, bool) {
	if len(s.ecs.Projectiles) >= s.opts.MaxProjectiles {
		return 0, false
	}
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		ID:    id,
		Owner: owner,
		X:     origin.X,
		Y:     origin.Y,
		Armed: true,
	}
	return id, true
}

// Remove убирает ракету по id. Возвращает false, если такой нет.
func (s *ProjectileSystem) Remove(id types.EntityID) bool {
	if _, ok := s.ecs.Projectiles[id]; !ok {
		return false
	}
	delete(s.ecs.Projectiles, id)
	return true
}

// Get возвращает живую ракету по id.
func (s *ProjectileSystem) Get(id types.EntityID) (*component.Projectile, bool) {
	p, ok := s.ecs.Projectiles[id]
	return p, ok
}

// Count возвращает число ракет в полёте.
func (s *ProjectileSystem) Count() int {
	return len(s.ecs.Projectiles)
}

// List возвращает ракеты по возрастанию id.
func (s *ProjectileSystem) List() []*component.Projectile {
	list := make([]*component.Projectile, 0, len(s.ecs.Projectiles))
	for _, p := range s.ecs.Projectiles {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b *component.Projectile) int {
		return int(a.ID) - int(b.ID)
	})
	return list
}

// Clear убирает все ракеты; вызывается при старте нового матча.
func (s *ProjectileSystem) Clear() {
	for id := range s.ecs.Projectiles {
		delete(s.ecs.Projectiles, id)
	}
}
