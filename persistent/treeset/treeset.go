package treeset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fp"
	"github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/persistent/btree"
	"github.com/npillmayer/fp/persistent/list"
)

// Set is an immutable set with a total order over its elements. Elements are
// unique with respect to the set's comparator. The zero value is usable as an
// empty set with natural element order; sets with a custom order have to be
// created with Immutable.
type Set[T cmp.Ordered] struct {
	tree  btree.Tree[T, struct{}]
	ready bool
}

// Immutable constructs an empty ordered set with options, if you need any.
// Use it like this:
//
//	set := treeset.Immutable(treeset.Comparator(byLength))
//	set = set.Add("Hello").Add("World")
//
func Immutable[T cmp.Ordered](opts ...Option[T]) Set[T] {
	s := Set[T]{
		tree:  btree.Immutable[T, struct{}](cmp.Compare[T]),
		ready: true,
	}
	for _, option := range opts {
		s = option(s)
	}
	return s
}

// Option is a type to help initializing ordered sets at creation time.
type Option[T cmp.Ordered] func(Set[T]) Set[T]

// Comparator is an option to replace the natural element order by a
// client-provided one. It has to be applied at creation time, before any
// element is added.
func Comparator[T cmp.Ordered](compare fp.Comparator[T]) Option[T] {
	return func(s Set[T]) Set[T] {
		assertThat(s.tree.IsEmpty(), "comparator cannot be changed for a non-empty set")
		s.tree = btree.Immutable[T, struct{}](compare)
		return s
	}
}

// Of creates an ordered set holding the given elements under natural order,
// with duplicates collapsed.
func Of[T cmp.Ordered](elements ...T) Set[T] {
	s := Immutable[T]()
	for _, v := range elements {
		s = s.Add(v)
	}
	return s
}

// ensure backs a zero value Set with a natural-order tree.
func (s Set[T]) ensure() Set[T] {
	if s.ready {
		return s
	}
	return Immutable[T]()
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the set has no elements.
func (s Set[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Size returns the number of elements. O(1).
func (s Set[T]) Size() int {
	return s.tree.Size()
}

// Add returns a set which additionally contains v. Adding a present element
// returns an unchanged incarnation of the set. O(log n).
func (s Set[T]) Add(v T) Set[T] {
	s = s.ensure()
	s.tree = s.tree.With(v, struct{}{})
	return s
}

// Contains reports whether v is an element of the set. O(log n).
func (s Set[T]) Contains(v T) bool {
	_, found := s.tree.Find(v)
	return found
}

// Remove returns a set without v. Removing an absent element returns the set
// unchanged. O(log n).
func (s Set[T]) Remove(v T) Set[T] {
	s = s.ensure()
	s.tree = s.tree.WithDeleted(v)
	return s
}

// Head returns the minimum element per the set's comparator. Head will panic
// with an EmptyCollectionError for an empty set.
func (s Set[T]) Head() T {
	if v, _, found := s.tree.Min(); found {
		return v
	}
	panic(fp.EmptyCollectionError{Op: "treeset.Head"})
}

// HeadOption returns the minimum element per the set's comparator, or None for
// an empty set.
func (s Set[T]) HeadOption() option.Option[T] {
	if v, _, found := s.tree.Min(); found {
		return option.Some(v)
	}
	return option.None[T]()
}

// Union returns the set of elements contained in s or in other, ordered by the
// comparator of s. O(m·log(n+m)).
func (s Set[T]) Union(other Set[T]) Set[T] {
	r := s.ensure()
	other.ForEach(func(v T) {
		r = r.Add(v)
	})
	return r
}

// Intersect returns the set of elements contained in both s and other, ordered
// by the comparator of s.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	r := s.ensure()
	s.ForEach(func(v T) {
		if !other.Contains(v) {
			r = r.Remove(v)
		}
	})
	return r
}

// Diff returns the set of elements contained in s but not in other, ordered by
// the comparator of s.
func (s Set[T]) Diff(other Set[T]) Set[T] {
	r := s.ensure()
	other.ForEach(func(v T) {
		r = r.Remove(v)
	})
	return r
}

// ForEach invokes action on every element, walking elements in comparator
// order.
func (s Set[T]) ForEach(action func(T)) {
	for v := range s.All() {
		action(v)
	}
}

// All returns an iterator over all elements, in comparator order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.tree.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a fresh slice, in comparator order.
func (s Set[T]) ToSlice() []T {
	out := make([]T, 0, s.Size())
	s.ForEach(func(v T) {
		out = append(out, v)
	})
	return out
}

// ToList converts the set into a persistent list, in comparator order.
func (s Set[T]) ToList() list.List[T] {
	return list.FromSlice(s.ToSlice())
}

// MkString renders the elements in comparator order, separated by sep.
func (s Set[T]) MkString(sep string) string {
	var sb strings.Builder
	first := true
	s.ForEach(func(v T) {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	})
	return sb.String()
}

// String renders "TreeSet(a, b, c)" in comparator order.
func (s Set[T]) String() string {
	return "TreeSet(" + s.MkString(", ") + ")"
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treeset: "+msg, msgargs...)
		panic(msg)
	}
}
