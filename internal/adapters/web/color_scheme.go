package web

import (
	"strings"
	"sync"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

// HeaderPrefersColorScheme is the user-agent client hint carrying the OS
// color scheme.
const HeaderPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"

var _ output.ColorSchemeSource = (*ClientHintScheme)(nil)

// ClientHintScheme is the OS color scheme of one browser, as last reported
// by the Sec-CH-Prefers-Color-Scheme request header.
type ClientHintScheme struct {
	mu        sync.Mutex
	current   entities.Theme
	listeners map[int]func(entities.Theme)
	next      int
}

func NewClientHintScheme(initial entities.Theme) *ClientHintScheme {
	return &ClientHintScheme{current: initial, listeners: make(map[int]func(entities.Theme))}
}

func (c *ClientHintScheme) Current() entities.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *ClientHintScheme) Subscribe(fn func(entities.Theme)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.next
	c.next++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Listeners returns the number of registered listeners.
func (c *ClientHintScheme) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// Observe records a header value. Listeners run, outside the lock, only
// when the value parses and differs from the current scheme.
func (c *ClientHintScheme) Observe(headerValue string) {
	th, ok := ParseColorSchemeHint(headerValue)
	if !ok {
		return
	}
	c.mu.Lock()
	if th == c.current {
		c.mu.Unlock()
		return
	}
	c.current = th
	fns := make([]func(entities.Theme), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(th)
	}
}

// ParseColorSchemeHint reads a structured-header token such as `"dark"`.
func ParseColorSchemeHint(v string) (entities.Theme, bool) {
	v = strings.Trim(strings.TrimSpace(v), `"`)
	if v == "" {
		return "", false
	}
	th, err := entities.ParseTheme(v)
	if err != nil {
		return "", false
	}
	return th, true
}
