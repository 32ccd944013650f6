package try

import "errors"

// Recovery from a Failure is driven by an ordered list of cases, each a
// pair of a predicate over the failure cause and a handler producing a
// replacement value. This takes the place of chained catch clauses: the
// cases are evaluated in order and the first matching one wins. A Failure
// matched by no case stays a Failure, unchanged.

// Case pairs a predicate over a failure cause with a handler.
type Case[T any] struct {
	when func(error) bool
	then func(error) T
}

// CaseOf constructs a recovery case from a predicate and a handler.
func CaseOf[T any](predicate func(error) bool, handler func(error) T) Case[T] {
	return Case[T]{when: predicate, then: handler}
}

// Is matches causes for which errors.Is(cause, target) holds.
func Is(target error) func(error) bool {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// As matches causes of a concrete error type E, in the sense of errors.As.
// It is the analog of matching on an exception class:
//
//	t.Recover(try.CaseOf(try.As[*net.OpError](), handler))
//
func As[E error]() func(error) bool {
	return func(err error) bool {
		var e E
		return errors.As(err, &e)
	}
}

// Always matches any cause. Useful as a final catch-all case.
func Always() func(error) bool {
	return func(error) bool {
		return true
	}
}

// Recover turns a Failure into Success(handler(cause)) using the first
// case whose predicate matches the cause. If no case matches, or the
// receiver is a Success, the receiver is returned unchanged.
func (t Try[T]) Recover(cases ...Case[T]) Try[T] {
	if t.err == nil {
		return t
	}
	for _, c := range cases {
		if c.when(t.err) {
			return Success(c.then(t.err))
		}
	}
	return t
}

// RecoverWith is Recover for handlers which may themselves fail: the
// handler of the first matching case produces a complete Try.
func (t Try[T]) RecoverWith(cases ...WithCase[T]) Try[T] {
	if t.err == nil {
		return t
	}
	for _, c := range cases {
		if c.when(t.err) {
			return c.then(t.err)
		}
	}
	return t
}

// WithCase pairs a predicate over a failure cause with a handler producing
// a complete Try.
type WithCase[T any] struct {
	when func(error) bool
	then func(error) Try[T]
}

// WithCaseOf constructs a RecoverWith case from a predicate and a handler.
func WithCaseOf[T any](predicate func(error) bool, handler func(error) Try[T]) WithCase[T] {
	return WithCase[T]{when: predicate, then: handler}
}
