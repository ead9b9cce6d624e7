package application

import (
	"context"
	"errors"
	"sync"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

// brokenRepo fails every call, like a disabled or full storage backend.
type brokenRepo struct{}

var errStorageDown = errors.New("storage down")

func (brokenRepo) Get(context.Context, string, entities.PreferenceKey) (string, error) {
	return "", errStorageDown
}

func (brokenRepo) Set(context.Context, string, entities.PreferenceKey, string) error {
	return errStorageDown
}

func (brokenRepo) Remove(context.Context, string, entities.PreferenceKey) error {
	return errStorageDown
}

// fakeScheme is a controllable OS color scheme.
type fakeScheme struct {
	mu        sync.Mutex
	current   entities.Theme
	listeners map[int]func(entities.Theme)
	next      int
}

var _ output.ColorSchemeSource = (*fakeScheme)(nil)

func newFakeScheme(th entities.Theme) *fakeScheme {
	return &fakeScheme{current: th, listeners: map[int]func(entities.Theme){}}
}

func (f *fakeScheme) Current() entities.Theme {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeScheme) Subscribe(fn func(entities.Theme)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

// change sets the scheme and fires the listeners.
func (f *fakeScheme) change(th entities.Theme) {
	f.mu.Lock()
	f.current = th
	fns := make([]func(entities.Theme), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(th)
	}
}

// setQuietly changes the scheme without an event.
func (f *fakeScheme) setQuietly(th entities.Theme) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = th
}

func (f *fakeScheme) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

type recordingNotifier struct {
	digests []entities.AlertDigest
	err     error
}

func (n *recordingNotifier) Notify(_ context.Context, d entities.AlertDigest) error {
	if n.err != nil {
		return n.err
	}
	n.digests = append(n.digests, d)
	return nil
}

type failingStats struct{}

func (failingStats) Snapshot(context.Context, entities.Period) (entities.StatSnapshot, error) {
	return entities.StatSnapshot{}, errStorageDown
}
