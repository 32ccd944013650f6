/*
Package try provides a container for a computation which may either fail
or complete successfully.

A Try is either Success(value) or Failure(error). Enclosing a fallible
call in try.Of yields one of the two, with panics captured as Failure as
well; further combinators then operate on whichever variant is present,
without re-raising. A failure cause only ever escapes as a panic through
GetOrElseThrow (or Get).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package try

import (
	"fmt"

	"github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/persistent/list"
)

// Try holds the outcome of a fallible computation: exactly one of a value
// or a failure cause.
type Try[T any] struct {
	value T
	err   error
}

// Of runs computation synchronously and exactly once. A returned error or
// a panic raised by the computation is captured as Failure; a returned
// value as Success. Of never lets a panic escape.
func Of[T any](computation func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Try[T]{err: causeOf(r)}
		}
	}()
	v, err := computation()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Success wraps a value into a successful Try.
func Success[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Failure creates a failed Try from a non-nil cause.
func Failure[T any](err error) Try[T] {
	assertThat(err != nil, "failure requires a non-nil cause")
	return Try[T]{err: err}
}

// --- API -------------------------------------------------------------------

// IsSuccess returns true iff the computation succeeded.
func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

// IsFailure returns true iff the computation failed.
func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Get returns the success value. Get panics with the failure cause when
// called on a Failure; prefer GetOrElse or Match for total access.
func (t Try[T]) Get() T {
	if t.err != nil {
		panic(t.err)
	}
	return t.value
}

// Err returns the failure cause, or nil for a Success.
func (t Try[T]) Err() error {
	return t.err
}

// Map applies f to the success value. If f panics, the result is a
// Failure carrying the new cause; a Failure receiver passes through
// untouched, f is never invoked on it. For mapping to a different type,
// use package-level Map.
func (t Try[T]) Map(f func(T) T) Try[T] {
	return Map(t, f)
}

// Filter turns a Success whose value does not satisfy predicate into a
// Failure with a generated cause. Failures pass through untouched.
func (t Try[T]) Filter(predicate func(T) bool) Try[T] {
	if t.err != nil {
		return t
	}
	if !predicate(t.value) {
		return Failure[T](fmt.Errorf("predicate does not hold for %v", t.value))
	}
	return t
}

// GetOrElse returns the success value, or def for a Failure.
func (t Try[T]) GetOrElse(def T) T {
	if t.err != nil {
		return def
	}
	return t.value
}

// GetOrElseThrow returns the success value, or panics with mapper applied
// to the failure cause.
func (t Try[T]) GetOrElseThrow(mapper func(error) error) T {
	if t.err != nil {
		panic(mapper(t.err))
	}
	return t.value
}

// OnSuccess invokes action on the success value, if any, and returns the
// receiver unchanged, enabling chaining.
func (t Try[T]) OnSuccess(action func(T)) Try[T] {
	if t.err == nil {
		action(t.value)
	}
	return t
}

// OnFailure invokes action on the failure cause, if any, and returns the
// receiver unchanged, enabling chaining.
func (t Try[T]) OnFailure(action func(error)) Try[T] {
	if t.err != nil {
		action(t.err)
	}
	return t
}

// AndThen runs a side-effecting action on the success value. Unlike
// OnSuccess, a panic raised by the action converts the Try into a
// Failure.
func (t Try[T]) AndThen(action func(T)) Try[T] {
	if t.err != nil {
		return t
	}
	return Map(t, func(v T) T {
		action(v)
		return v
	})
}

// ToOption converts Success(v) to Some(v) and Failure to None, dropping
// the cause.
func (t Try[T]) ToOption() option.Option[T] {
	if t.err != nil {
		return option.None[T]()
	}
	return option.Some(t.value)
}

// ToList converts Success(v) to a one-element list and Failure to the
// empty list.
func (t Try[T]) ToList() list.List[T] {
	if t.err != nil {
		return list.Empty[T]()
	}
	return list.Of(t.value)
}

// String renders "Success(<value>)" or "Failure(<cause>)".
func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}

// --- Type-changing combinators ---------------------------------------------

// Map applies f to the success value of t. A panic raised by f becomes the
// cause of a Failure; a Failure t passes through untouched.
func Map[T, S any](t Try[T], f func(T) S) (m Try[S]) {
	if t.err != nil {
		return Failure[S](t.err)
	}
	defer func() {
		if r := recover(); r != nil {
			m = Try[S]{err: causeOf(r)}
		}
	}()
	return Success(f(t.value))
}

// FlatMap applies f to the success value of t, flattening the result (no
// nested Try). A panic raised by f becomes the cause of a Failure.
func FlatMap[T, S any](t Try[T], f func(T) Try[S]) (m Try[S]) {
	if t.err != nil {
		return Failure[S](t.err)
	}
	defer func() {
		if r := recover(); r != nil {
			m = Try[S]{err: causeOf(r)}
		}
	}()
	return f(t.value)
}

// --- Matching --------------------------------------------------------------

// Matcher supports exhaustive switch-style matching on a Try:
//
//	var v T
//	var err error
//	switch m := t.Match(); m {
//	case m.Success(&v):
//	    …
//	case m.Failure(&err):
//	    …
//	}
//
type Matcher[T any] interface {
	Success(*T) Matcher[T]
	Failure(*error) Matcher[T]
}

// Match returns a Matcher for pattern-matching t.
func (t Try[T]) Match() Matcher[T] {
	return matcher[T]{t: t}
}

type matcher[T any] struct {
	t Try[T]
}

func (tm matcher[T]) Success(v *T) Matcher[T] {
	if tm.t.err == nil {
		*v = tm.t.value
		return tm
	}
	return nil
}

func (tm matcher[T]) Failure(err *error) Matcher[T] {
	if tm.t.err != nil {
		*err = tm.t.err
		return tm
	}
	return nil
}

// --- Helpers ---------------------------------------------------------------

// causeOf converts a recovered panic value into an error.
func causeOf(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("try: "+msg, msgargs...)
		panic(msg)
	}
}
