package entities

// Source tells whether a Selection came from an explicit user choice or was
// derived from the environment.
type Source int

const (
	SourceImplicit Source = iota
	SourceExplicit
)

func (s Source) String() string {
	if s == SourceExplicit {
		return "explicit"
	}
	return "implicit"
}

// Selection is the current value of a preference together with where it came
// from: Explicit(value) when the user stored it, Implicit(value) when it was
// derived (runtime language, OS color scheme).
type Selection[T comparable] struct {
	value  T
	source Source
}

// Explicit wraps a user-chosen value.
func Explicit[T comparable](v T) Selection[T] {
	return Selection[T]{value: v, source: SourceExplicit}
}

// Implicit wraps a derived value.
func Implicit[T comparable](v T) Selection[T] {
	return Selection[T]{value: v, source: SourceImplicit}
}

func (s Selection[T]) Value() T         { return s.value }
func (s Selection[T]) Source() Source   { return s.source }
func (s Selection[T]) IsExplicit() bool { return s.source == SourceExplicit }
