// internal/event/event.go
package event

import (
	"reflect"
	"slices"
)

//go:generate go tool mockgen -source=event.go -destination=mocks/listener_mock.go -package=mocks

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
// Функции несравнимы, поэтому Unsubscribe для ListenerFunc ничего не делает.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются
// в порядке подписки, внутри того же тика, что и Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на одно или несколько событий
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe — отписка от события. Несравнимые подписчики пропускаются.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	i := slices.IndexFunc(listeners, func(l Listener) bool {
		return sameListener(l, listener)
	})
	if i >= 0 {
		d.listeners[eventType] = slices.Delete(listeners, i, i+1)
	}
}

// sameListener сравнивает подписчиков, не паникуя на несравнимых типах
func sameListener(a, b Listener) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return false
	}
	return a == b
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{Type: t, Data: data})
func (d *Dispatcher) Emit(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}
