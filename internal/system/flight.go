// internal/system/flight.go
package system

import (
	"math"
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/types"
)

// Flight is the frontend-side motion of one projectile: a straight vertical
// line at constant speed from launch to the edge of the screen.
type Flight struct {
	ID       types.EntityID
	Owner    component.Owner
	X        float64 // left edge of the missile, equals the collision lane
	StartY   float64
	Distance float64
	Duration time.Duration
	Elapsed  time.Duration
	Armed    bool
}

// Progress возвращает пройденную долю полёта, 0..1.
func (f *Flight) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return math.Min(1, float64(f.Elapsed)/float64(f.Duration))
}

// TipY is the height reported to the collision resolver: the top of a
// rising missile, the bottom of a falling one.
func (f *Flight) TipY() float64 {
	travelled := f.Distance * f.Progress()
	if f.Owner == component.OwnerEnemy {
		return f.StartY - travelled
	}
	return f.StartY + config.PlayerMissileHeight + travelled
}

// Bottom — высота нижнего края спрайта ракеты.
func (f *Flight) Bottom() float64 {
	travelled := f.Distance * f.Progress()
	if f.Owner == component.OwnerEnemy {
		return f.StartY - config.EnemyMissileHeight - travelled
	}
	return f.StartY - 10 + travelled
}

// Done сообщает, закончился ли полёт.
func (f *Flight) Done() bool {
	return f.Elapsed >= f.Duration
}

// PositionReport — один отчёт о позиции для проверки попаданий.
type PositionReport struct {
	ID types.EntityID
	Y  float64
}

// FlightSystem анимирует ракеты на стороне отрисовки: заводит полёт для
// каждой новой ракеты из снимка, двигает их по времени кадра и сообщает
// позиции и завершение полёта обратно в матч.
type FlightSystem struct {
	opts     config.Options
	flights  map[types.EntityID]*Flight
	order    []types.EntityID
	// finished хранит завершённые полёты, пока матч ещё присылает их ракеты
	finished map[types.EntityID]bool
}

func NewFlightSystem(opts config.Options) *FlightSystem {
	return &FlightSystem{
		opts:     opts,
		flights:  make(map[types.EntityID]*Flight),
		finished: make(map[types.EntityID]bool),
	}
}

// Sync заводит полёты для новых ракет из snap и бросает полёты, чьих ракет
// уже нет (попадание или рестарт). Ракета с завершённым полётом не летит
// заново, пока снимки ещё её содержат.
func (s *FlightSystem) Sync(snap component.Snapshot) {
	live := make(map[types.EntityID]bool, len(snap.Projectiles))
	for _, p := range snap.Projectiles {
		live[p.ID] = true
		if s.finished[p.ID] {
			continue
		}
		if f, ok := s.flights[p.ID]; ok {
			f.Armed = p.Armed
			continue
		}
		s.flights[p.ID] = s.newFlight(p)
		s.order = append(s.order, p.ID)
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if live[id] {
			kept = append(kept, id)
			continue
		}
		delete(s.flights, id)
	}
	s.order = kept

	for id := range s.finished {
		if !live[id] {
			delete(s.finished, id)
		}
	}
}

func (s *FlightSystem) newFlight(p component.Projectile) *Flight {
	f := &Flight{
		ID:     p.ID,
		Owner:  p.Owner,
		X:      LaneX(p, s.opts),
		StartY: p.Y,
		Armed:  p.Armed,
	}
	full := time.Duration(s.opts.RocketSpeed) * time.Millisecond
	if p.Owner == component.OwnerEnemy {
		// Пришельцы ниже: ракете лететь меньше, поэтому и быстрее
		f.Distance = p.Y
		f.Duration = time.Duration(float64(full) * math.Sqrt(math.Max(p.Y, 0)/s.opts.Height))
	} else {
		f.Distance = s.opts.Height
		f.Duration = full
	}
	return f
}

// Update продвигает полёты на dt. Возвращает отчёт о позиции для каждой
// заряженной ракеты и id только что завершённых полётов; убрать их из матча
// должен вызывающий.
func (s *FlightSystem) Update(dt time.Duration) (reports []PositionReport, finished []types.EntityID) {
	kept := s.order[:0]
	for _, id := range s.order {
		f := s.flights[id]
		f.Elapsed += dt
		if f.Armed {
			reports = append(reports, PositionReport{ID: id, Y: f.TipY()})
		}
		if f.Done() {
			finished = append(finished, id)
			delete(s.flights, id)
			s.finished[id] = true
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return reports, finished
}

// Each вызывает fn для каждого полёта в порядке запуска.
func (s *FlightSystem) Each(fn func(f *Flight)) {
	for _, id := range s.order {
		fn(s.flights[id])
	}
}

// Len возвращает число ракет в воздухе.
func (s *FlightSystem) Len() int {
	return len(s.order)
}
