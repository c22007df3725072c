// internal/event/event.go
package event

// EventType — имя события.
type EventType string

// Event — одно уведомление; Data зависит от Type (см. types.go).
type Event struct {
	Type EventType
	Data interface{}
}

// Listener получает разосланные события.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события синхронно, в горутине вызывающего.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на все переданные типы событий.
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe отписывает listener от одного типа событий.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch отправляет событие всем подписчикам его типа в порядке подписки.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
