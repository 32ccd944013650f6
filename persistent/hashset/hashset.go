package hashset

import (
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"github.com/npillmayer/fp/persistent/list"
)

// seed is the process-wide hash seed. A fresh seed per process keeps
// trie shapes unpredictable between runs.
var seed = maphash.MakeSeed()

func hashOf[T comparable](v T) uint64 {
	return maphash.Comparable(seed, v)
}

// Set is an immutable set with uniqueness by equality. The zero value is
// the empty set and ready to use.
type Set[T comparable] struct {
	root *hnode[T]
	size int
}

// Empty creates an empty set.
func Empty[T comparable]() Set[T] {
	return Set[T]{}
}

// Of creates a set holding the given elements, with duplicates collapsed.
func Of[T comparable](elements ...T) Set[T] {
	s := Empty[T]()
	for _, v := range elements {
		s = s.Add(v)
	}
	return s
}

// Range creates the set of integers from `from` (inclusive) up to
// `toExclusive`.
func Range(from, toExclusive int) Set[int] {
	s := Empty[int]()
	for i := from; i < toExclusive; i++ {
		s = s.Add(i)
	}
	return s
}

// RangeClosed creates the set of integers from `from` up to and
// including `to`.
func RangeClosed(from, to int) Set[int] {
	return Range(from, to+1)
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the set has no elements.
func (s Set[T]) IsEmpty() bool {
	return s.size == 0
}

// Size returns the number of elements. O(1).
func (s Set[T]) Size() int {
	return s.size
}

// Add returns a set which additionally contains v. Adding a present
// element returns the receiver unchanged. Amortized O(1).
func (s Set[T]) Add(v T) Set[T] {
	if s.root == nil {
		root := &hnode[T]{}
		root = root.withAdded(v, hashOf(v), 0)
		return Set[T]{root: root, size: 1}
	}
	if s.Contains(v) {
		return s
	}
	return Set[T]{root: s.root.withAdded(v, hashOf(v), 0), size: s.size + 1}
}

// Contains reports whether v is an element of the set. Amortized O(1).
func (s Set[T]) Contains(v T) bool {
	if s.root == nil {
		return false
	}
	return s.root.contains(v, hashOf(v), 0)
}

// Remove returns a set without v. Removing an absent element returns the
// receiver unchanged. Amortized O(1).
func (s Set[T]) Remove(v T) Set[T] {
	if !s.Contains(v) {
		return s
	}
	return Set[T]{root: s.root.withRemoved(v, hashOf(v), 0), size: s.size - 1}
}

// Union returns the set of elements contained in s or in other.
// O(n+m).
func (s Set[T]) Union(other Set[T]) Set[T] {
	r := s
	other.ForEach(func(v T) {
		r = r.Add(v)
	})
	return r
}

// Intersect returns the set of elements contained in both s and other.
// O(n+m).
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	r := Empty[T]()
	s.ForEach(func(v T) {
		if other.Contains(v) {
			r = r.Add(v)
		}
	})
	return r
}

// Diff returns the set of elements contained in s but not in other.
// O(n+m).
func (s Set[T]) Diff(other Set[T]) Set[T] {
	r := Empty[T]()
	s.ForEach(func(v T) {
		if !other.Contains(v) {
			r = r.Add(v)
		}
	})
	return r
}

// Equal reports whether both sets contain exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.size != other.size {
		return false
	}
	equal := true
	s.ForEach(func(v T) {
		if !other.Contains(v) {
			equal = false
		}
	})
	return equal
}

// ForEach invokes action on every element. The traversal order is
// unspecified.
func (s Set[T]) ForEach(action func(T)) {
	if s.root != nil {
		s.root.forEach(action)
	}
}

// All returns an iterator over all elements, in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.root != nil {
			s.root.all(yield)
		}
	}
}

// ToSlice copies the elements into a fresh slice, in unspecified order.
func (s Set[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	s.ForEach(func(v T) {
		out = append(out, v)
	})
	return out
}

// ToList converts the set into a persistent list, in unspecified order.
func (s Set[T]) ToList() list.List[T] {
	return list.FromSlice(s.ToSlice())
}

// String renders "HashSet(a, b, c)" in unspecified element order.
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("HashSet(")
	first := true
	s.ForEach(func(v T) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	})
	sb.WriteString(")")
	return sb.String()
}
