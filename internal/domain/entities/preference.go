package entities

// PreferenceKey names one of the persisted preferences.
type PreferenceKey string

const (
	PreferenceLocale PreferenceKey = "locale"
	PreferenceTheme  PreferenceKey = "theme"
)
