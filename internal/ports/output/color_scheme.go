package output

import "storedash/internal/domain/entities"

// ColorSchemeSource reports the OS-level color scheme and notifies when it
// changes. Subscribe returns the function that removes the listener.
type ColorSchemeSource interface {
	Current() entities.Theme
	Subscribe(fn func(entities.Theme)) (unsubscribe func())
}
