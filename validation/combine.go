package validation

// Combining independent validations is a two-step affair, mirroring the
// applicative combine/ap pairing: Combine collects the participants,
// Ap applies a constructor to the unwrapped values — or accumulates the
// errors of ALL invalid participants, in argument order. Ap is a free
// function rather than a method because the constructor introduces the
// result type parameter, which Go methods cannot do.
//
//	person := validation.Ap(
//	    validation.Combine(validName, validAge),
//	    NewPerson,
//	)

// Combined2 holds two validations awaiting a constructor.
type Combined2[E, A, B any] struct {
	va Validation[E, A]
	vb Validation[E, B]
}

// Combine pairs two independent validations for a subsequent Ap.
func Combine[E, A, B any](va Validation[E, A], vb Validation[E, B]) Combined2[E, A, B] {
	return Combined2[E, A, B]{va: va, vb: vb}
}

// Ap applies ctor to the values of two combined validations if both are
// Valid. Otherwise the result is Invalid, holding the concatenation of
// every error sequence from every invalid participant; ctor is not
// invoked.
func Ap[E, A, B, C any](c Combined2[E, A, B], ctor func(A, B) C) Validation[E, C] {
	if c.va.errs.IsEmpty() && c.vb.errs.IsEmpty() {
		return Valid[E, C](ctor(c.va.value, c.vb.value))
	}
	return Validation[E, C]{errs: c.va.errs.Concat(c.vb.errs)}
}

// Combined3 holds three validations awaiting a constructor.
type Combined3[E, A, B, C any] struct {
	va Validation[E, A]
	vb Validation[E, B]
	vc Validation[E, C]
}

// Combine3 triples three independent validations for a subsequent Ap3.
func Combine3[E, A, B, C any](va Validation[E, A], vb Validation[E, B], vc Validation[E, C]) Combined3[E, A, B, C] {
	return Combined3[E, A, B, C]{va: va, vb: vb, vc: vc}
}

// Ap3 is Ap for three combined validations.
func Ap3[E, A, B, C, D any](c Combined3[E, A, B, C], ctor func(A, B, C) D) Validation[E, D] {
	if c.va.errs.IsEmpty() && c.vb.errs.IsEmpty() && c.vc.errs.IsEmpty() {
		return Valid[E, D](ctor(c.va.value, c.vb.value, c.vc.value))
	}
	return Validation[E, D]{errs: c.va.errs.Concat(c.vb.errs).Concat(c.vc.errs)}
}
