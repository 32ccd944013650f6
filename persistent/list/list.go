package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fp"
	"github.com/npillmayer/fp/option"
)

// List is an immutable singly-linked list. The zero value is the empty
// list and ready to use.
type List[T any] struct {
	head *cons[T]
}

// cons is a list node. Nodes are never mutated after construction, which
// makes sharing a node between any number of lists legal.
type cons[T any] struct {
	value  T
	next   *cons[T]
	length int // number of elements from this node onwards
}

// Empty creates an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of creates a list holding the given elements, in order.
func Of[T any](elements ...T) List[T] {
	return FromSlice(elements)
}

// FromSlice creates a list holding the elements of a slice, in order.
// The slice is copied into list nodes; later changes to it do not show
// through.
func FromSlice[T any](elements []T) List[T] {
	var head *cons[T]
	for i := len(elements) - 1; i >= 0; i-- {
		head = &cons[T]{value: elements[i], next: head, length: length(head) + 1}
	}
	return List[T]{head: head}
}

// Range creates the list of integers from `from` (inclusive) up to
// `toExclusive`.
func Range(from, toExclusive int) List[int] {
	var head *cons[int]
	for i := toExclusive - 1; i >= from; i-- {
		head = &cons[int]{value: i, next: head, length: length(head) + 1}
	}
	return List[int]{head: head}
}

// RangeClosed creates the list of integers from `from` up to and including
// `to`.
func RangeClosed(from, to int) List[int] {
	return Range(from, to+1)
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Size returns the number of elements. O(1), the length is cached in the
// nodes.
func (l List[T]) Size() int {
	return length(l.head)
}

// Head returns the first element. Head panics with fp.EmptyCollectionError
// on an empty list.
func (l List[T]) Head() T {
	if l.head == nil {
		panic(fp.EmptyCollectionError{Op: "list.Head"})
	}
	return l.head.value
}

// HeadOption returns the first element, if any.
func (l List[T]) HeadOption() option.Option[T] {
	if l.head == nil {
		return option.None[T]()
	}
	return option.Some(l.head.value)
}

// Tail returns the list without its first element. The tail is shared with
// the receiver, not copied. Tail panics with fp.EmptyCollectionError on an
// empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		panic(fp.EmptyCollectionError{Op: "list.Tail"})
	}
	return List[T]{head: l.head.next}
}

// Push prepends an element, sharing the receiver as the new list's tail.
// O(1).
func (l List[T]) Push(v T) List[T] {
	return List[T]{head: &cons[T]{value: v, next: l.head, length: length(l.head) + 1}}
}

// PushAll pushes the elements of other one by one, in order. The last
// element of other ends up as the new head.
func (l List[T]) PushAll(other List[T]) List[T] {
	r := l
	for n := other.head; n != nil; n = n.next {
		r = r.Push(n.value)
	}
	return r
}

// Peek returns the top element under stack semantics, i.e. the head.
func (l List[T]) Peek() T {
	return l.Head()
}

// Pop removes the top element under stack semantics, i.e. returns the tail.
func (l List[T]) Pop() List[T] {
	return l.Tail()
}

// Get returns the element at position i. O(i). Get panics with
// fp.IndexOutOfRangeError for i outside [0, Size).
func (l List[T]) Get(i int) T {
	if i < 0 || i >= l.Size() {
		panic(fp.IndexOutOfRangeError{Index: i, Length: l.Size()})
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n.value
}

// Append returns a copy of the list with v added at the end. O(n).
func (l List[T]) Append(v T) List[T] {
	return l.Concat(Of(v))
}

// Concat returns the concatenation of l and other. The nodes of other are
// shared with the result; the nodes of l are copied. O(len(l)).
func (l List[T]) Concat(other List[T]) List[T] {
	if l.head == nil {
		return other
	}
	front := l.ToSlice()
	head := other.head
	for i := len(front) - 1; i >= 0; i-- {
		head = &cons[T]{value: front[i], next: head, length: length(head) + 1}
	}
	return List[T]{head: head}
}

// Reverse returns the list with its element order reversed. O(n).
func (l List[T]) Reverse() List[T] {
	var head *cons[T]
	for n := l.head; n != nil; n = n.next {
		head = &cons[T]{value: n.value, next: head, length: length(head) + 1}
	}
	return List[T]{head: head}
}

// --- Prefix and suffix operations ------------------------------------------

// Drop removes the first n elements. The result shares the remaining nodes
// with the receiver. Dropping more elements than present yields the empty
// list; n ≤ 0 is a no-op.
func (l List[T]) Drop(n int) List[T] {
	node := l.head
	for ; n > 0 && node != nil; n-- {
		node = node.next
	}
	return List[T]{head: node}
}

// Take keeps the first n elements. O(n). Taking more elements than present
// yields the receiver; n ≤ 0 yields the empty list.
func (l List[T]) Take(n int) List[T] {
	if n <= 0 {
		return Empty[T]()
	}
	if n >= l.Size() {
		return l
	}
	taken := make([]T, 0, n)
	node := l.head
	for ; n > 0; n-- {
		taken = append(taken, node.value)
		node = node.next
	}
	return FromSlice(taken)
}

// DropRight removes the last n elements. O(length): tail-sharing only
// helps from the front, so the prefix has to be rebuilt.
func (l List[T]) DropRight(n int) List[T] {
	if n <= 0 {
		return l
	}
	return l.Take(l.Size() - n)
}

// TakeRight keeps the last n elements. O(length), but the result shares
// the receiver's suffix nodes.
func (l List[T]) TakeRight(n int) List[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return l.Drop(l.Size() - n)
}

// DropWhile removes leading elements as long as predicate holds, sharing
// the remaining suffix.
func (l List[T]) DropWhile(predicate func(T) bool) List[T] {
	node := l.head
	for node != nil && predicate(node.value) {
		node = node.next
	}
	return List[T]{head: node}
}

// DropUntil removes leading elements up to (excluding) the first element
// satisfying predicate.
func (l List[T]) DropUntil(predicate func(T) bool) List[T] {
	return l.DropWhile(func(v T) bool { return !predicate(v) })
}

// TakeWhile keeps leading elements as long as predicate holds.
func (l List[T]) TakeWhile(predicate func(T) bool) List[T] {
	var taken []T
	for node := l.head; node != nil && predicate(node.value); node = node.next {
		taken = append(taken, node.value)
	}
	return FromSlice(taken)
}

// TakeUntil keeps leading elements up to (excluding) the first element
// satisfying predicate.
func (l List[T]) TakeUntil(predicate func(T) bool) List[T] {
	return l.TakeWhile(func(v T) bool { return !predicate(v) })
}

// --- Regrouping ------------------------------------------------------------

// Intersperse inserts separator between every two elements:
//
//	list.Of("Boys", "Girls").Intersperse("and")   ⇒  List(Boys, and, Girls)
//
// There is no trailing separator. O(n).
func (l List[T]) Intersperse(separator T) List[T] {
	if l.head == nil || l.head.next == nil {
		return l
	}
	interspersed := make([]T, 0, 2*l.Size()-1)
	for node := l.head; node != nil; node = node.next {
		if len(interspersed) > 0 {
			interspersed = append(interspersed, separator)
		}
		interspersed = append(interspersed, node.value)
	}
	return FromSlice(interspersed)
}

// Grouped produces a lazy sequence of sublists of length n each; the last
// group may be shorter. Groups are built on demand while the sequence is
// being consumed.
func (l List[T]) Grouped(n int) iter.Seq[List[T]] {
	assertThat(n > 0, "group size must be positive, is %d", n)
	return func(yield func(List[T]) bool) {
		rest := l
		for !rest.IsEmpty() {
			group := rest.Take(n)
			tracer().Debugf("grouped: yielding group of size %d", group.Size())
			if !yield(group) {
				return
			}
			rest = rest.Drop(n)
		}
	}
}

// --- Element access and reduction ------------------------------------------

// Last returns the final element. O(n). Last panics with
// fp.EmptyCollectionError on an empty list.
func (l List[T]) Last() T {
	if l.head == nil {
		panic(fp.EmptyCollectionError{Op: "list.Last"})
	}
	node := l.head
	for node.next != nil {
		node = node.next
	}
	return node.value
}

// LastOption returns the final element, if any.
func (l List[T]) LastOption() option.Option[T] {
	if l.head == nil {
		return option.None[T]()
	}
	return option.Some(l.Last())
}

// Single returns the sole element of a one-element list. Single panics
// with fp.EmptyCollectionError on an empty list and with
// fp.MultipleElementsError on a list with more than one element.
func (l List[T]) Single() T {
	switch {
	case l.head == nil:
		panic(fp.EmptyCollectionError{Op: "list.Single"})
	case l.head.next != nil:
		panic(fp.MultipleElementsError{Op: "list.Single", Size: l.Size()})
	}
	return l.head.value
}

// Reduce folds the list over combiner, using the head as the initial
// accumulator. Reduce panics with fp.EmptyCollectionError on an empty
// list.
func (l List[T]) Reduce(combiner func(T, T) T) T {
	if l.head == nil {
		panic(fp.EmptyCollectionError{Op: "list.Reduce"})
	}
	acc := l.head.value
	for node := l.head.next; node != nil; node = node.next {
		acc = combiner(acc, node.value)
	}
	return acc
}

// ForEach invokes action on every element, front to back.
func (l List[T]) ForEach(action func(T)) {
	for node := l.head; node != nil; node = node.next {
		action(node.value)
	}
}

// All returns an iterator over the elements, front to back.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a fresh slice.
func (l List[T]) ToSlice() []T {
	if l.head == nil {
		return []T{}
	}
	s := make([]T, 0, l.Size())
	for node := l.head; node != nil; node = node.next {
		s = append(s, node.value)
	}
	return s
}

// MkString joins the textual form of all elements with separator.
func (l List[T]) MkString(separator string) string {
	var sb strings.Builder
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			sb.WriteString(separator)
		}
		fmt.Fprintf(&sb, "%v", node.value)
	}
	return sb.String()
}

// String renders "List(a, b, c)". The exact shape is part of the public
// contract of this package: validation errors render through it.
func (l List[T]) String() string {
	return "List(" + l.MkString(", ") + ")"
}

// --- Helpers ---------------------------------------------------------------

func length[T any](node *cons[T]) int {
	if node == nil {
		return 0
	}
	return node.length
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
