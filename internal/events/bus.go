package events

import (
	"sync"

	"bf-tradehook/internal/model"
)

// Bus fans relay events out to in-process subscribers (the events
// websocket). Publish never blocks: a subscriber with a full channel
// simply misses the event.
type Bus struct {
	mu   sync.RWMutex
	subs map[chan model.NotificationEvent]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[chan model.NotificationEvent]struct{})}
}

func (b *Bus) Subscribe() chan model.NotificationEvent {
	ch := make(chan model.NotificationEvent, 100)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Bus) Unsubscribe(ch chan model.NotificationEvent) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

func (b *Bus) Publish(evt model.NotificationEvent) {
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	b.mu.RUnlock()
}
