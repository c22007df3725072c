package app

import (
	"log"

	"go-invaders/internal/component"
	"go-invaders/internal/event"
)

// LogListener пишет в лог ключевые события матча.
type LogListener struct{}

// Subscribe подписывает слушателя на события, которые он пишет в лог.
func (l *LogListener) Subscribe(d *event.Dispatcher) {
	d.Subscribe(l,
		event.MatchStarted,
		event.AlienDestroyed,
		event.PlayerHit,
		event.SpeedChanged,
		event.MatchWon,
		event.MatchLost,
		event.MatchClosed,
	)
}

// OnEvent реализует интерфейс event.Listener.
func (l *LogListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.MatchStarted:
		log.Println("Match started")
	case event.AlienDestroyed:
		if a, ok := e.Data.(component.Alien); ok {
			log.Printf("Alien %s destroyed", a.ID)
		}
	case event.PlayerHit:
		log.Printf("Player hit, lives left: %v", e.Data)
	case event.SpeedChanged:
		log.Printf("Formation speed: %vms", e.Data)
	case event.MatchWon:
		log.Printf("Formation destroyed, score %v", e.Data)
	case event.MatchLost:
		log.Printf("Game over, score %v", e.Data)
	case event.MatchClosed:
		log.Println("Match closed")
	}
}
