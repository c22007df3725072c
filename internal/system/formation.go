// internal/system/formation.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"

	"golang.org/x/exp/slices"
)

// AdvanceResult описывает итог одного шага строя.
type AdvanceResult struct {
	Aliens        []component.Alien
	Reversed      bool // строй упёрся в край и развернулся
	FloorBreached bool // пришелец опустился до высоты пушки
}

// FormationSystem двигает строй пришельцев и убирает сбитых.
type FormationSystem struct {
	ecs  *entity.ECS
	opts config.Options
}

func NewFormationSystem(ecs *entity.ECS, opts config.Options) *FormationSystem {
	return &FormationSystem{ecs: ecs, opts: opts}
}

// Generate заполняет строй заново: ряды по opts.Rows, по центру экрана,
// верхний ряд на полтора шага ниже верхнего края. Первыми в списке идут
// пришельцы нижнего ряда.
func (s *FormationSystem) Generate() {
	o := s.opts
	horSpace := o.AlienSize + o.AlienHorDistance
	verSpace := o.AlienSize + o.AlienVerDistance

	widest := 0
	for _, n := range o.Rows {
		widest = max(widest, n)
	}
	xOffset := o.AlienHorDistance/2 + (o.Width-horSpace*float64(widest))/2
	yOffset := verSpace + verSpace*0.4

	aliens := make([]component.Alien, 0, o.AlienCount())
	for ind, n := range o.Rows {
		alienType := ind + 1
		for i := 0; i < n; i++ {
			aliens = append(aliens, component.Alien{
				ID:   component.NewAlienID(alienType, i+1),
				Type: alienType,
				X:    xOffset + horSpace*float64(i),
				Y:    o.Height - verSpace*float64(ind+1) - yOffset,
			})
		}
	}
	slices.Reverse(aliens)

	s.ecs.Aliens = aliens
}

// Advance сдвигает весь строй на один шаг. При descend строй только
// опускается на stepY, иначе идёт вбок на stepX в текущем направлении.
//
// Край экрана проверяется лишь до первого разворота за тик: при нескольких
// рядах иначе направление перевернулось бы несколько раз подряд.
func (s *FormationSystem) Advance(stepX, stepY float64, descend bool) AdvanceResult {
	m := s.ecs.Match
	m.Descending = false

	dx, dy := stepX*float64(m.Direction), 0.0
	if descend {
		dx, dy = 0, stepY
	}

	var res AdvanceResult
	for i := range s.ecs.Aliens {
		a := &s.ecs.Aliens[i]
		a.X += dx
		a.Y -= dy

		if !res.Reversed && s.atEdge(*a, m.Direction) {
			m.Direction *= -1
			m.Descending = true
			res.Reversed = true
		}
		if a.Y <= s.opts.CannonSize {
			res.FloorBreached = true
		}
	}
	res.Aliens = s.ecs.Aliens
	return res
}

// atEdge проверяет только край, к которому идёт строй, чтобы шаг вниз
// сразу после разворота не развернул его обратно.
func (s *FormationSystem) atEdge(a component.Alien, direction int) bool {
	margin := s.opts.EdgeMargin
	if direction == 1 {
		return a.X+s.opts.AlienSize+margin > s.opts.Width
	}
	return a.X < margin
}

// Remove убирает пришельца по id и возвращает его последние координаты
// для взрыва. Неизвестный id ничего не меняет.
func (s *FormationSystem) Remove(id component.AlienID) (explosion component.Position, removed, empty bool) {
	idx := s.ecs.AlienIndex(id)
	if idx < 0 {
		return component.Position{}, false, len(s.ecs.Aliens) == 0
	}
	explosion = s.ecs.Aliens[idx].Position()
	s.ecs.Aliens = slices.Delete(s.ecs.Aliens, idx, idx+1)
	return explosion, true, len(s.ecs.Aliens) == 0
}

// Count возвращает число живых пришельцев.
func (s *FormationSystem) Count() int {
	return len(s.ecs.Aliens)
}

// Clear очищает строй.
func (s *FormationSystem) Clear() {
	s.ecs.Aliens = nil
}
