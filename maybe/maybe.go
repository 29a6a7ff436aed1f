/*
Package maybe implements an option type for values which may or may not be set.

Style properties are partial by nature: a rule declares a handful of
properties and leaves everything else unset. Maybe[T] carries this
distinction explicitly. The zero value of Maybe[T] is Nothing, so
structs built from Maybe fields start out completely unset.

Clients may either test and unwrap

	if v, ok := m.Get(); ok { … }

or use pattern-matching style

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

import "fmt"

// Maybe is an optional value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an unset Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing is true if no value is present.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get returns the value and an indicator wether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the value, if present, or def otherwise.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the value, if present.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Or returns m if it is set, alt otherwise.
func (m Maybe[T]) Or(alt Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return alt
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail to an optional value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map2 combines two optional values. If either is Nothing, the result is Nothing.
func Map2[A, B, C any](f func(A, B) C, x Maybe[A], y Maybe[B]) Maybe[C] {
	a, ok := x.Get()
	if !ok {
		return Nothing[C]()
	}
	b, ok := y.Get()
	if !ok {
		return Nothing[C]()
	}
	return Just(f(a, b))
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switch-statements on optional values.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Match returns a matcher for m.
func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
