/*
Package option provides a container which either holds a single value or
is empty, eliminating nil checks at client code sites.

An Option is either Some(value) or None. Combinators on options are total:
they never panic and never invoke their argument function on None.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"fmt"

	"github.com/npillmayer/fp"
)

// Option is a container for at most one value of type T.
// The zero value is None.
type Option[T any] struct {
	value   T
	defined bool
}

// Some wraps a value into an option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

// None creates an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of wraps a possibly absent value: a nil pointer results in None,
// everything else in Some of the pointed-to value.
func Of[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// FromOk adapts Go's comma-ok idiom, e.g.
//
//	value, ok := cache[key]
//	opt := option.FromOk(value, ok)
//
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// --- API -------------------------------------------------------------------

// IsDefined returns true iff the option holds a value.
func (o Option[T]) IsDefined() bool {
	return o.defined
}

// IsEmpty returns true iff the option is None.
func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the contained value. Get panics with fp.EmptyCollectionError
// when called on None; prefer GetOrElse or Match for total access.
func (o Option[T]) Get() T {
	if !o.defined {
		panic(fp.EmptyCollectionError{Op: "option.Get"})
	}
	return o.value
}

// GetOrElse returns the contained value, or def for None.
func (o Option[T]) GetOrElse(def T) T {
	if o.defined {
		return o.value
	}
	return def
}

// OrElse returns o if it holds a value, other otherwise.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.defined {
		return o
	}
	return other
}

// Map applies f to the contained value, if any. f is never invoked on None.
// For mapping to a different element type, use package-level Map.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.defined {
		return Some(f(o.value))
	}
	return o
}

// Filter keeps Some(v) iff predicate(v) holds; None passes through.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.defined && !predicate(o.value) {
		return None[T]()
	}
	return o
}

// ForEach invokes action on the contained value, if any.
func (o Option[T]) ForEach(action func(T)) {
	if o.defined {
		action(o.value)
	}
}

// String renders "Some(<value>)" or "None". The exact shape is part of the
// public contract of this package.
func (o Option[T]) String() string {
	if o.defined {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// --- Type-changing combinators ---------------------------------------------

// Map applies f to the value contained in x, if any.
func Map[T, S any](x Option[T], f func(T) S) Option[S] {
	if x.defined {
		return Some(f(x.value))
	}
	return None[S]()
}

// FlatMap applies f to the value contained in x, if any, flattening the
// result (no nested option).
func FlatMap[T, S any](x Option[T], f func(T) Option[S]) Option[S] {
	if x.defined {
		return f(x.value)
	}
	return None[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports exhaustive switch-style matching on an option:
//
//	var v T
//	switch m := o.Match(); m {
//	case m.Some(&v):
//	    …
//	case m.None():
//	    …
//	}
//
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

// Match returns a Matcher for pattern-matching o.
func (o Option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

type matcher[T any] struct {
	o Option[T]
}

func (om matcher[T]) Some(v *T) Matcher[T] {
	if om.o.defined {
		*v = om.o.value
		return om
	}
	return nil
}

func (om matcher[T]) None() Matcher[T] {
	if !om.o.defined {
		return om
	}
	return nil
}
