/*
Package validation provides an error-accumulating applicative container.

A Validation is either Valid(value) or Invalid(errors), where the errors
form a non-empty ordered sequence. Combining validations accumulates every
error from every invalid participant, in argument order — the defining
contrast with Try and Option, whose combinators stop at the first failure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package validation

import (
	"fmt"

	"github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/persistent/list"
	"github.com/npillmayer/fp/try"
)

// Validation is the outcome of validating a value of type A against
// domain rules, with rule violations of type E.
type Validation[E, A any] struct {
	value A
	errs  list.List[E] // an empty error list means Valid
}

// Valid wraps a value which passed validation.
func Valid[E, A any](value A) Validation[E, A] {
	return Validation[E, A]{value: value}
}

// Invalid creates a failed validation from a single error, normalized
// internally to a one-element error sequence.
func Invalid[E, A any](err E) Validation[E, A] {
	return Validation[E, A]{errs: list.Of(err)}
}

// Invalids creates a failed validation from a non-empty error sequence.
func Invalids[E, A any](errs list.List[E]) Validation[E, A] {
	assertThat(!errs.IsEmpty(), "invalid validation requires at least one error")
	return Validation[E, A]{errs: errs}
}

// --- API -------------------------------------------------------------------

// IsValid returns true iff the validation passed.
func (v Validation[E, A]) IsValid() bool {
	return v.errs.IsEmpty()
}

// IsInvalid returns true iff the validation failed.
func (v Validation[E, A]) IsInvalid() bool {
	return !v.errs.IsEmpty()
}

// Get returns the validated value. Get panics when called on an Invalid;
// prefer GetOrElse or Fold for total access.
func (v Validation[E, A]) Get() A {
	assertThat(v.errs.IsEmpty(), "attempt to get value of invalid validation %v", v.errs)
	return v.value
}

// GetOrElse returns the validated value, or def for an Invalid.
func (v Validation[E, A]) GetOrElse(def A) A {
	if v.errs.IsEmpty() {
		return v.value
	}
	return def
}

// Errors returns the accumulated rule violations, in combination order.
// The list is empty for a Valid.
func (v Validation[E, A]) Errors() list.List[E] {
	return v.errs
}

// ToOption converts Valid(v) to Some(v) and Invalid to None, dropping the
// errors.
func (v Validation[E, A]) ToOption() option.Option[A] {
	if v.errs.IsEmpty() {
		return option.Some(v.value)
	}
	return option.None[A]()
}

// String renders "Valid(<value>)" or "Invalid(List(<e1>, <e2>))", with
// the errors joined in combination order. The exact shape is part of the
// public contract of this package.
func (v Validation[E, A]) String() string {
	if v.errs.IsEmpty() {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return fmt.Sprintf("Invalid(%v)", v.errs)
}

// --- Combinators -----------------------------------------------------------

// Map applies f to the validated value; an Invalid passes through with its
// errors untouched.
func Map[E, A, B any](v Validation[E, A], f func(A) B) Validation[E, B] {
	if v.errs.IsEmpty() {
		return Valid[E, B](f(v.value))
	}
	return Validation[E, B]{errs: v.errs}
}

// MapError applies f to every accumulated error; a Valid passes through.
func MapError[E, F, A any](v Validation[E, A], f func(E) F) Validation[F, A] {
	if v.errs.IsEmpty() {
		return Valid[F, A](v.value)
	}
	return Validation[F, A]{errs: list.Map(v.errs, f)}
}

// Fold collapses a validation into a single result by applying onValid or
// onInvalid, whichever variant is present.
func Fold[E, A, R any](v Validation[E, A], onValid func(A) R, onInvalid func(list.List[E]) R) R {
	if v.errs.IsEmpty() {
		return onValid(v.value)
	}
	return onInvalid(v.errs)
}

// --- Conversions -----------------------------------------------------------

// FromOption converts Some(v) to Valid(v) and None to Invalid(onNone).
func FromOption[E, A any](o option.Option[A], onNone E) Validation[E, A] {
	if o.IsDefined() {
		return Valid[E, A](o.Get())
	}
	return Invalid[E, A](onNone)
}

// FromTry converts Success(v) to Valid(v) and Failure(err) to
// Invalid(onErr(err)).
func FromTry[E, A any](t try.Try[A], onErr func(error) E) Validation[E, A] {
	if t.IsSuccess() {
		return Valid[E, A](t.Get())
	}
	return Invalid[E, A](onErr(t.Err()))
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("validation: "+msg, msgargs...)
		panic(msg)
	}
}
