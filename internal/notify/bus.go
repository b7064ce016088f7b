// Package notify is the in-process fan-out used to tell mounted views that
// a notification collection changed. Delivery is synchronous and does not
// survive a restart; anything durable is already in the collection itself.
package notify

import "sync"

// Bus fans a collection key out to every registered listener.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(collection string)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(string))}
}

// Subscribe registers fn and returns a cancel func that removes it.
func (b *Bus) Subscribe(fn func(collection string)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish invokes every current listener with the collection key.
// Listeners run synchronously on the caller's goroutine.
func (b *Bus) Publish(collection string) {
	b.mu.Lock()
	fns := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(collection)
	}
}
