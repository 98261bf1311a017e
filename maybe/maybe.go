package maybe

import "fmt"

// Maybe wraps an optional value of type T: either Just a value, or
// Nothing. Dequeueing from a queue yields a Maybe, with Nothing flagging
// the empty queue — a regular value, not an error.
//
// Discriminate with Match:
//
//	var v T
//	switch m := x.Match(); m {
//	case m.Just(&v):
//	    … v is bound to the wrapped value …
//	case m.Nothing():
//	    … x is empty …
//	}
//
// Matching requires T to be comparable at runtime; for arbitrary T use
// IsNothing and WithDefault instead.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return option[T]{value: x, present: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return option[T]{}
}

type option[T any] struct {
	value   T
	present bool
}

func (o option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

// WithDefault unwraps the value, falling back to def for Nothing.
func (o option[T]) WithDefault(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (o option[T]) Map(f func(T) T) Maybe[T] {
	if o.present {
		return Just(f(o.value))
	}
	return o
}

func (o option[T]) IsNothing() bool {
	return !o.present
}

func (o option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Just(%v)", o.value)
	}
	return "Nothing"
}

// AndThen chains a partial computation onto an optional value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if o, ok := x.(option[T]); ok && o.present {
		return f(o.value)
	}
	return Nothing[S]()
}

// Map lifts f over an optional value.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	return AndThen(func(v T) Maybe[S] { return Just(f(v)) }, x)
}

// --- Matching --------------------------------------------------------------

// Matcher supports the switch-based pattern matching shown in the package
// documentation. Each arm returns the matcher itself on a match and nil
// otherwise.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	o option[T]
}

func (m matcher[T]) Just(v *T) Matcher[T] {
	if m.o.present {
		*v = m.o.value
		return m
	}
	return nil
}

func (m matcher[T]) Nothing() Matcher[T] {
	if !m.o.present {
		return m
	}
	return nil
}
