// Package eventbus provides a small in-memory fanout bus used to
// decouple writers from derived-state holders (the schedule cache).
//
// Delivery is synchronous: Publish calls every handler on the caller's
// goroutine before returning. The engine is request/response with no
// background workers, so handlers must be cheap and must not block.
package eventbus

import (
	"sync"
	"time"
)

// Event types published by the application services.
const (
	TypeScheduleUpdated = "schedule.updated"
	TypePlantDeleted    = "plant.deleted"
)

// Event is a lightweight signal about a change to a plant's schedule
// state.
type Event struct {
	Type    string
	PlantID string
	Time    time.Time
}

// Bus fans events out to subscribed handlers.
type Bus struct {
	mu   sync.RWMutex
	subs map[uint64]func(Event)
	seq  uint64
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{subs: map[uint64]func(Event){}}
}

// Publish delivers the event to all current subscribers. A zero Time is
// stamped with now.
func (b *Bus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	// Snapshot handlers so delivery happens without the lock held.
	b.mu.RLock()
	handlers := make([]func(Event), 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Subscribe registers a handler and returns an unsubscribe func.
func (b *Bus) Subscribe(handler func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	b.seq++
	id := b.seq
	b.subs[id] = handler
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}
