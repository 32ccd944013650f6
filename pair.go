package fp

import "fmt"

// Pair holds two values of possibly different types. Pairs are returned by
// operations which produce two results at once, e.g. zipping two streams.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P constructs a pair from two values.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose splits a pair into its two constituents.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
