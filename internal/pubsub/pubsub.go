// Package pubsub provides a minimal in-process broadcast primitive. The
// client uses it to push auth-state changes (login, logout, token expiry) to
// whatever is listening, without the listeners polling the token store.
package pubsub

import "sync"

// Broker fans a value out to subscribers. It always retains the latest
// published value, and a new subscriber immediately receives it. Delivery is
// synchronous in the caller's goroutine.
type Broker[T any] struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(T)
	current T
	primed  bool
}

// NewBroker returns an empty broker with no current value.
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{subs: make(map[int]func(T))}
}

// Publish stores v as the current value and delivers it to every subscriber.
func (b *Broker[T]) Publish(v T) {
	b.mu.Lock()
	b.current = v
	b.primed = true
	fns := make([]func(T), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn and returns a function that removes the
// subscription. If a value has already been published, fn is called with it
// before Subscribe returns.
func (b *Broker[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	replay, primed := b.current, b.primed
	b.mu.Unlock()

	if primed {
		fn(replay)
	}
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Current returns the latest published value and whether one exists.
func (b *Broker[T]) Current() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.primed
}
