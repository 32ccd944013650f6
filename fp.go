/*
Package fp provides small building blocks for functional programming in Go:
function combinators, a generic pair type, comparator and numeric helper
types, and the error taxonomy shared by the persistent container packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Comparator is a total order over T: negative for a<b, zero for a==b,
// positive for a>b.
type Comparator[T any] func(a, b T) int

// Numeric is the constraint for summable container elements.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
