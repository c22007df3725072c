package system

import (
	"testing"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
)

func TestFireRespectsCap(t *testing.T) {
	opts := config.DefaultOptions()
	ps := NewProjectileSystem(entity.NewECS(), opts)

	owners := []component.Owner{component.OwnerPlayer, component.OwnerEnemy}
	for i := 0; i < opts.MaxProjectiles; i++ {
		if _, ok := ps.Fire(component.Position{X: 1, Y: 2}, owners[i%2]); !ok {
			t.Fatalf("shot %d rejected", i)
		}
	}
	if _, ok := ps.Fire(component.Position{}, component.OwnerPlayer); ok {
		t.Fatal("shot over the cap accepted")
	}
	if ps.Count() != opts.MaxProjectiles {
		t.Fatalf("count: got %d, want %d", ps.Count(), opts.MaxProjectiles)
	}
}

func TestFireUniqueIDs(t *testing.T) {
	ps := NewProjectileSystem(entity.NewECS(), config.DefaultOptions())

	a, _ := ps.Fire(component.Position{}, component.OwnerPlayer)
	ps.Remove(a)
	b, _ := ps.Fire(component.Position{}, component.OwnerPlayer)
	if a == b {
		t.Fatalf("id %d reused", a)
	}

	p, ok := ps.Get(b)
	if !ok || !p.Armed || p.Owner != component.OwnerPlayer {
		t.Fatalf("get: %+v, %v", p, ok)
	}
}

func TestRemoveAndList(t *testing.T) {
	ps := NewProjectileSystem(entity.NewECS(), config.DefaultOptions())
	for i := 0; i < 3; i++ {
		ps.Fire(component.Position{X: float64(i)}, component.OwnerEnemy)
	}
	if ps.Remove(42) {
		t.Fatal("unknown id removed")
	}
	if !ps.Remove(2) {
		t.Fatal("remove failed")
	}

	list := ps.List()
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 3 {
		t.Fatalf("list: %+v", list)
	}

	ps.Clear()
	if ps.Count() != 0 {
		t.Fatalf("clear left %d", ps.Count())
	}
}
