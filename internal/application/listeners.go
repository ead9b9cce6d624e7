package application

import "sync"

// listeners is an ordered set of change callbacks.
type listeners[T any] struct {
	mu      sync.Mutex
	nextID  int
	entries []listenerEntry[T]
}

type listenerEntry[T any] struct {
	id int
	fn func(T)
}

// add registers fn and returns the function that removes it. The returned
// function is safe to call more than once.
func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, listenerEntry[T]{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// notify calls every listener in registration order. Callbacks run without
// the lock held so they may read back from the service.
func (l *listeners[T]) notify(v T) {
	l.mu.Lock()
	fns := make([]func(T), len(l.entries))
	for i, e := range l.entries {
		fns[i] = e.fn
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}
