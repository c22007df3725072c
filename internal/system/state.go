// internal/system/state.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
)

// StateSystem ведёт фазу матча и следит, чтобы победитель назначался
// ровно один раз за матч.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) SwitchToPlaying() {
	s.ecs.Match.Phase = component.Playing
	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchStarted})
}

// DeclareWinner завершает матч. Highest обновляется здесь же. Возвращает
// false, если матч уже не идёт или победитель уже есть.
func (s *StateSystem) DeclareWinner(w component.Winner) bool {
	m := s.ecs.Match
	if m.Phase != component.Playing || m.Winner != component.WinnerNone || w == component.WinnerNone {
		return false
	}
	m.Winner = w
	m.Highest = max(m.Score, m.Highest)

	if w == component.WinnerPlayer {
		m.Phase = component.PlayerWon
		s.eventDispatcher.Dispatch(event.Event{Type: event.MatchWon, Data: m.Score})
	} else {
		m.Phase = component.EnemyWon
		s.eventDispatcher.Dispatch(event.Event{Type: event.MatchLost, Data: m.Score})
	}
	return true
}

func (s *StateSystem) SwitchToResetting() {
	s.ecs.Match.Phase = component.Resetting
}

func (s *StateSystem) Close() {
	s.ecs.Match.Phase = component.Closed
	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchClosed})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Match.Phase
}
