package output

// Metrics records the counters application services emit.
type Metrics interface {
	TranslationMiss(locale string)
	PreferenceFailure(op string)
	PreferenceChanged(key, value string)
	AlertsDispatched()
}
