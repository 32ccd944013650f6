package array

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp"
	"github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/persistent/list"
)

// Array is an immutable indexed sequence of fixed length. The zero value
// is the empty array and ready to use.
//
// The backing buffer is owned exclusively by the array and never handed
// out; all exposed access is read-only.
type Array[T any] struct {
	elements []T
}

// Empty creates an empty array.
func Empty[T any]() Array[T] {
	return Array[T]{}
}

// Of creates an array holding the given elements, in order.
func Of[T any](elements ...T) Array[T] {
	return FromSlice(elements)
}

// FromSlice creates an array holding the elements of a slice. The slice
// is copied; later changes to it do not show through.
func FromSlice[T any](elements []T) Array[T] {
	if len(elements) == 0 {
		return Array[T]{}
	}
	buf := make([]T, len(elements))
	copy(buf, elements)
	return Array[T]{elements: buf}
}

// Range creates the array of integers from `from` (inclusive) up to
// `toExclusive`.
func Range(from, toExclusive int) Array[int] {
	return RangeBy(from, toExclusive, 1)
}

// RangeBy creates the array of integers from `from` (inclusive) up to
// `toExclusive`, advancing by step. A step of zero panics; a negative
// step counts downwards.
func RangeBy(from, toExclusive, step int) Array[int] {
	assertThat(step != 0, "range step must not be zero")
	var buf []int
	if step > 0 {
		for i := from; i < toExclusive; i += step {
			buf = append(buf, i)
		}
	} else {
		for i := from; i > toExclusive; i += step {
			buf = append(buf, i)
		}
	}
	tracer().Debugf("created range array of length %d", len(buf))
	return Array[int]{elements: buf}
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the array has no elements.
func (a Array[T]) IsEmpty() bool {
	return len(a.elements) == 0
}

// Size returns the number of elements. O(1).
func (a Array[T]) Size() int {
	return len(a.elements)
}

// Get returns the element at position i. O(1). Get panics with
// fp.IndexOutOfRangeError for i outside [0, Size).
func (a Array[T]) Get(i int) T {
	if i < 0 || i >= len(a.elements) {
		panic(fp.IndexOutOfRangeError{Index: i, Length: len(a.elements)})
	}
	return a.elements[i]
}

// GetOption returns the element at position i, if the index is in range.
func (a Array[T]) GetOption(i int) option.Option[T] {
	if i < 0 || i >= len(a.elements) {
		return option.None[T]()
	}
	return option.Some(a.elements[i])
}

// Update returns a copy of the array with the element at position i
// replaced by v. O(length). Update panics with fp.IndexOutOfRangeError
// for i outside [0, Size).
func (a Array[T]) Update(i int, v T) Array[T] {
	if i < 0 || i >= len(a.elements) {
		panic(fp.IndexOutOfRangeError{Index: i, Length: len(a.elements)})
	}
	buf := make([]T, len(a.elements))
	copy(buf, a.elements)
	buf[i] = v
	return Array[T]{elements: buf}
}

// RemoveAt returns a copy of the array of length-1, without the element
// at position i. RemoveAt panics with fp.IndexOutOfRangeError for i
// outside [0, Size).
func (a Array[T]) RemoveAt(i int) Array[T] {
	if i < 0 || i >= len(a.elements) {
		panic(fp.IndexOutOfRangeError{Index: i, Length: len(a.elements)})
	}
	buf := make([]T, 0, len(a.elements)-1)
	buf = append(buf, a.elements[:i]...)
	buf = append(buf, a.elements[i+1:]...)
	return Array[T]{elements: buf}
}

// InsertAt returns a copy of the array of length+1, with v inserted at
// position i (which may equal Size to append). InsertAt panics with
// fp.IndexOutOfRangeError for i outside [0, Size].
func (a Array[T]) InsertAt(i int, v T) Array[T] {
	if i < 0 || i > len(a.elements) {
		panic(fp.IndexOutOfRangeError{Index: i, Length: len(a.elements)})
	}
	buf := make([]T, 0, len(a.elements)+1)
	buf = append(buf, a.elements[:i]...)
	buf = append(buf, v)
	buf = append(buf, a.elements[i:]...)
	return Array[T]{elements: buf}
}

// Append returns a copy of the array with v added at the end.
func (a Array[T]) Append(v T) Array[T] {
	return a.InsertAt(len(a.elements), v)
}

// ForEach invokes action on every element, in index order.
func (a Array[T]) ForEach(action func(T)) {
	for _, v := range a.elements {
		action(v)
	}
}

// ToSlice copies the elements into a fresh slice.
func (a Array[T]) ToSlice() []T {
	buf := make([]T, len(a.elements))
	copy(buf, a.elements)
	return buf
}

// ToList converts the array into a persistent list.
func (a Array[T]) ToList() list.List[T] {
	return list.FromSlice(a.elements)
}

// String renders "Array(a, b, c)".
func (a Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Array(")
	for i, v := range a.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString(")")
	return sb.String()
}

// --- Package-level operations ----------------------------------------------

// Replace returns a copy of the array with the first occurrence of old
// replaced by new. If old does not occur, the array is returned
// unchanged.
func Replace[T comparable](a Array[T], old, new T) Array[T] {
	for i, v := range a.elements {
		if v == old {
			return a.Update(i, new)
		}
	}
	return a
}

// Contains reports whether v is an element of a.
func Contains[T comparable](a Array[T], v T) bool {
	for _, e := range a.elements {
		if e == v {
			return true
		}
	}
	return false
}

// Map applies f to every element of a, producing a new array.
func Map[T, S any](a Array[T], f func(T) S) Array[S] {
	if len(a.elements) == 0 {
		return Empty[S]()
	}
	buf := make([]S, len(a.elements))
	for i, v := range a.elements {
		buf[i] = f(v)
	}
	return Array[S]{elements: buf}
}

// Filter keeps the elements satisfying predicate, preserving their order.
func Filter[T any](a Array[T], predicate func(T) bool) Array[T] {
	var buf []T
	for _, v := range a.elements {
		if predicate(v) {
			buf = append(buf, v)
		}
	}
	return Array[T]{elements: buf}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("array: "+msg, msgargs...)
		panic(msg)
	}
}
