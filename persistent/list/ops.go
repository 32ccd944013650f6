package list

import (
	"github.com/npillmayer/fp"
)

// Functions which change the element type cannot be methods on List (Go
// methods may not introduce type parameters) and live here instead.

// Map applies f to every element of l, producing a new list.
func Map[T, S any](l List[T], f func(T) S) List[S] {
	mapped := make([]S, 0, l.Size())
	for node := l.head; node != nil; node = node.next {
		mapped = append(mapped, f(node.value))
	}
	return FromSlice(mapped)
}

// FlatMap applies f to every element of l and concatenates the resulting
// lists, in order.
func FlatMap[T, S any](l List[T], f func(T) List[S]) List[S] {
	var flattened []S
	for node := l.head; node != nil; node = node.next {
		flattened = append(flattened, f(node.value).ToSlice()...)
	}
	return FromSlice(flattened)
}

// Filter keeps the elements satisfying predicate, preserving their order.
func Filter[T any](l List[T], predicate func(T) bool) List[T] {
	var kept []T
	for node := l.head; node != nil; node = node.next {
		if predicate(node.value) {
			kept = append(kept, node.value)
		}
	}
	return FromSlice(kept)
}

// FoldLeft folds the list front to back, starting with zero.
func FoldLeft[T, R any](l List[T], zero R, f func(R, T) R) R {
	acc := zero
	for node := l.head; node != nil; node = node.next {
		acc = f(acc, node.value)
	}
	return acc
}

// GroupBy partitions the list into sublists keyed by key(element). The
// relative element order within each sublist is the order in l.
func GroupBy[T any, K comparable](l List[T], key func(T) K) map[K]List[T] {
	buckets := make(map[K][]T)
	for node := l.head; node != nil; node = node.next {
		k := key(node.value)
		buckets[k] = append(buckets[k], node.value)
	}
	groups := make(map[K]List[T], len(buckets))
	for k, vs := range buckets {
		groups[k] = FromSlice(vs)
	}
	return groups
}

// Contains reports whether v is an element of l.
func Contains[T comparable](l List[T], v T) bool {
	for node := l.head; node != nil; node = node.next {
		if node.value == v {
			return true
		}
	}
	return false
}

// Equal reports structural equality: same length, equal elements in the
// same order. Node identity does not matter.
func Equal[T comparable](a, b List[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	na, nb := a.head, b.head
	for na != nil {
		if na.value != nb.value {
			return false
		}
		na, nb = na.next, nb.next
	}
	return true
}

// Sum adds up all elements. The sum of an empty list is zero.
func Sum[T fp.Numeric](l List[T]) T {
	var sum T
	for node := l.head; node != nil; node = node.next {
		sum += node.value
	}
	return sum
}
