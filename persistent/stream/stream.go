package stream

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/fp"
	"github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/persistent/list"
)

// Stream is an immutable sequence with a strict head and a lazy, memoized
// tail. The zero value is the empty stream and ready to use.
type Stream[T any] struct {
	node *cell[T]
}

// cell is a stream node. Cells are never mutated after construction,
// except for the one-shot memo inside their tail thunk.
type cell[T any] struct {
	head T
	tail *thunk[T]
}

// thunk defers the computation of a stream tail. It transitions once from
// unevaluated to evaluated: the first successful force caches its result
// and every later force returns the identical cached stream.
type thunk[T any] struct {
	memo    atomic.Pointer[Stream[T]]
	compute func() Stream[T]
}

// force evaluates the thunk, memoizing the result. Racing forcers may
// redundantly run the computation, but the compare-and-set ensures only
// the winner's result is retained; losers adopt the cached value.
func (th *thunk[T]) force() Stream[T] {
	if cached := th.memo.Load(); cached != nil {
		return *cached
	}
	tracer().Debugf("forcing stream tail")
	s := th.compute()
	if !th.memo.CompareAndSwap(nil, &s) {
		return *th.memo.Load()
	}
	return s
}

// forced reports whether the thunk has been evaluated already.
func (th *thunk[T]) forced() bool {
	return th.memo.Load() != nil
}

// --- Construction ----------------------------------------------------------

// Empty creates an empty stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// Cons creates a stream from a head element and a deferred tail. tail is
// not invoked before the stream's tail is first demanded.
func Cons[T any](head T, tail func() Stream[T]) Stream[T] {
	return Stream[T]{node: &cell[T]{
		head: head,
		tail: &thunk[T]{compute: tail},
	}}
}

// Of creates a bounded stream holding the given elements, in order.
func Of[T any](elements ...T) Stream[T] {
	s := Empty[T]()
	for i := len(elements) - 1; i >= 0; i-- {
		tail := s
		s = Cons(elements[i], fp.Const(tail))
	}
	return s
}

// FromList creates a stream over the elements of a persistent list.
func FromList[T any](l list.List[T]) Stream[T] {
	if l.IsEmpty() {
		return Empty[T]()
	}
	return Cons(l.Head(), func() Stream[T] {
		return FromList(l.Tail())
	})
}

// Iterate produces the unbounded stream seed, next(seed), next(next(seed)), …
func Iterate[T any](seed T, next func(T) T) Stream[T] {
	return Cons(seed, func() Stream[T] {
		return Iterate(next(seed), next)
	})
}

// Tabulate produces the bounded stream f(0), f(1), …, f(n-1). Elements
// are computed on demand.
func Tabulate[T any](n int, f func(int) T) Stream[T] {
	return tabulateFrom(0, n, f)
}

func tabulateFrom[T any](i, n int, f func(int) T) Stream[T] {
	if i >= n {
		return Empty[T]()
	}
	return Cons(f(i), func() Stream[T] {
		return tabulateFrom(i+1, n, f)
	})
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the stream has no elements.
func (s Stream[T]) IsEmpty() bool {
	return s.node == nil
}

// Head returns the first element. Head panics with
// fp.EmptyCollectionError on an empty stream.
func (s Stream[T]) Head() T {
	if s.node == nil {
		panic(fp.EmptyCollectionError{Op: "stream.Head"})
	}
	return s.node.head
}

// HeadOption returns the first element, if any.
func (s Stream[T]) HeadOption() option.Option[T] {
	if s.node == nil {
		return option.None[T]()
	}
	return option.Some(s.node.head)
}

// Tail forces and returns the stream without its first element. Tail
// panics with fp.EmptyCollectionError on an empty stream.
func (s Stream[T]) Tail() Stream[T] {
	if s.node == nil {
		panic(fp.EmptyCollectionError{Op: "stream.Tail"})
	}
	return s.node.tail.force()
}

// Take keeps the first n elements. The result is again lazy, which makes
// Take safe on unbounded streams.
func (s Stream[T]) Take(n int) Stream[T] {
	if n <= 0 || s.node == nil {
		return Empty[T]()
	}
	return Cons(s.node.head, func() Stream[T] {
		return s.Tail().Take(n - 1)
	})
}

// TakeWhile keeps leading elements as long as predicate holds, lazily.
func (s Stream[T]) TakeWhile(predicate func(T) bool) Stream[T] {
	if s.node == nil || !predicate(s.node.head) {
		return Empty[T]()
	}
	return Cons(s.node.head, func() Stream[T] {
		return s.Tail().TakeWhile(predicate)
	})
}

// Drop removes the first n elements, forcing them.
func (s Stream[T]) Drop(n int) Stream[T] {
	for n > 0 && s.node != nil {
		s = s.Tail()
		n--
	}
	return s
}

// Filter keeps the elements satisfying predicate. The search for each
// surviving element is deferred until it is demanded; on an unbounded
// stream with infinitely many matches every bounded prefix terminates.
func (s Stream[T]) Filter(predicate func(T) bool) Stream[T] {
	cur := s
	for cur.node != nil && !predicate(cur.node.head) {
		cur = cur.Tail()
	}
	if cur.node == nil {
		return Empty[T]()
	}
	match := cur
	return Cons(match.node.head, func() Stream[T] {
		return match.Tail().Filter(predicate)
	})
}

// Map applies f to every element, lazily. For mapping to a different
// element type, use package-level Map.
func (s Stream[T]) Map(f func(T) T) Stream[T] {
	return Map(s, f)
}

// Get forces and returns the element at position i. Get panics with
// fp.IndexOutOfRangeError when the stream has fewer than i+1 elements.
func (s Stream[T]) Get(i int) T {
	if i < 0 {
		panic(fp.IndexOutOfRangeError{Index: i, Length: 0})
	}
	cur := s
	for n := i; n > 0; n-- {
		if cur.node == nil {
			break
		}
		cur = cur.Tail()
	}
	if cur.node == nil {
		panic(fp.IndexOutOfRangeError{Index: i, Length: s.Size()})
	}
	return cur.node.head
}

// Last forces the entire stream and returns its final element. Must only
// be called on bounded streams. Last panics with fp.EmptyCollectionError
// on an empty stream.
func (s Stream[T]) Last() T {
	if s.node == nil {
		panic(fp.EmptyCollectionError{Op: "stream.Last"})
	}
	cur := s
	for !cur.Tail().IsEmpty() {
		cur = cur.Tail()
	}
	return cur.node.head
}

// Size forces the entire stream and returns the number of elements. Must
// only be called on bounded streams; on an unbounded stream Size does not
// terminate.
func (s Stream[T]) Size() int {
	n := 0
	for cur := s; cur.node != nil; cur = cur.Tail() {
		n++
	}
	return n
}

// ForEach forces the entire stream, invoking action on every element.
func (s Stream[T]) ForEach(action func(T)) {
	for cur := s; cur.node != nil; cur = cur.Tail() {
		action(cur.node.head)
	}
}

// ToList forces the entire stream into a persistent list.
func (s Stream[T]) ToList() list.List[T] {
	return list.FromSlice(s.ToSlice())
}

// ToSlice forces the entire stream into a fresh slice.
func (s Stream[T]) ToSlice() []T {
	var out []T
	for cur := s; cur.node != nil; cur = cur.Tail() {
		out = append(out, cur.node.head)
	}
	return out
}

// String renders the evaluated prefix of the stream, with "?" standing in
// for a not-yet-forced remainder, e.g. "Stream(0, 1, ?)".
func (s Stream[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Stream(")
	cur := s
	for i := 0; cur.node != nil; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", cur.node.head)
		if !cur.node.tail.forced() {
			sb.WriteString(", ?")
			break
		}
		cur = cur.Tail()
	}
	sb.WriteString(")")
	return sb.String()
}

// --- Type-changing combinators ---------------------------------------------

// Map applies f to every element of s, lazily: f runs on an element when
// that element of the result is demanded.
func Map[T, S any](s Stream[T], f func(T) S) Stream[S] {
	if s.node == nil {
		return Empty[S]()
	}
	return Cons(f(s.node.head), func() Stream[S] {
		return Map(s.Tail(), f)
	})
}

// Zip pairs up the elements of two streams, lazily, ending with the
// shorter of the two.
func Zip[A, B any](sa Stream[A], sb Stream[B]) Stream[fp.Pair[A, B]] {
	if sa.node == nil || sb.node == nil {
		return Empty[fp.Pair[A, B]]()
	}
	return Cons(fp.P(sa.node.head, sb.node.head), func() Stream[fp.Pair[A, B]] {
		return Zip(sa.Tail(), sb.Tail())
	})
}

// Sum forces the entire stream and adds up its elements. Must only be
// called on bounded streams.
func Sum[T fp.Numeric](s Stream[T]) T {
	var sum T
	s.ForEach(func(v T) {
		sum += v
	})
	return sum
}
