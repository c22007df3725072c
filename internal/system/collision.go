// internal/system/collision.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
)

// Outcome — вердикт по одному отчёту о позиции.
type Outcome int

const (
	// Miss: пока мимо, продолжать слать позиции.
	Miss Outcome = iota
	// Hit: ракета попала в цель и исчезла.
	Hit
	// Passed: ракета уже ни во что не попадёт; позиции больше не нужны.
	Passed
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Passed:
		return "passed"
	}
	return "miss"
}

const (
	// cannonApproach: above this height over the cannon an enemy
	// projectile is not worth checking.
	cannonApproach = 20.0
	// formationSlack widens the formation's vertical extent for the
	// cheap "not there yet" and "already past" checks.
	formationSlack = 10.0
	// hitBandTop is the share of the alien sprite, from its top, that
	// counts as its body.
	hitBandTop = 0.8
)

// LaneX возвращает неизменный x полёта ракеты: середина выпустившего её
// спрайта минус половина ширины ракеты.
func LaneX(p component.Projectile, o config.Options) float64 {
	if p.Owner == component.OwnerEnemy {
		return p.X + o.AlienSize/2 - config.MissileWidth/2
	}
	return p.X + o.CannonSize/2 - config.MissileWidth/2
}

// EnemyHitsPlayer проверяет ракету пришельцев на высоте y против пушки
// игрока, стоящей в playerX. Пушка это квадрат CannonSize у пола.
func EnemyHitsPlayer(p component.Projectile, y, playerX float64, o config.Options) Outcome {
	// До пушки ещё далеко, проверять нечего
	if y > o.CannonSize+cannonApproach {
		return Miss
	}
	x := LaneX(p, o)
	if y < o.CannonSize && x > playerX && x < playerX+o.CannonSize {
		return Hit
	}
	return Miss
}

// PlayerHitsFormation проверяет ракету игрока на высоте y против строя.
// Попадание засчитывается первому по порядку пришельцу, у которого ракета
// внутри полосы тела (верхние 80% спрайта) и внутри его ширины.
func PlayerHitsFormation(p component.Projectile, y float64, aliens []component.Alien, o config.Options) (Outcome, int) {
	// Строй уже уничтожен
	if len(aliens) == 0 {
		return Passed, -1
	}

	first := aliens[0]
	last := aliens[len(aliens)-1]

	// Ракета ещё не долетела до нижнего ряда
	if y < first.Y-formationSlack {
		return Miss, -1
	}
	// Ракета пролетела верхний ряд, дальше проверять бессмысленно
	if y > last.Y+o.AlienSize-formationSlack {
		return Passed, -1
	}

	x := LaneX(p, o)
	bottomOffset := o.AlienSize - o.AlienSize*hitBandTop
	for i, a := range aliens {
		y1 := a.Y + bottomOffset
		y2 := y1 + o.AlienSize*hitBandTop
		if y > y1 && y < y2 && x > a.X && x < a.X+o.AlienSize {
			return Hit, i
		}
	}
	return Miss, -1
}
