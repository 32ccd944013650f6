package queue

import (
	"github.com/npillmayer/fp"
	"github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/persistent/list"
)

// Queue is an immutable FIFO queue over two lists, with logical order
// front followed by reverse(rear). The zero value is the empty queue and
// ready to use.
//
// Invariant: an empty front implies an empty rear; rebalancing restores
// this after every dequeue.
type Queue[T any] struct {
	front list.List[T]
	rear  list.List[T]
}

// Empty creates an empty queue.
func Empty[T any]() Queue[T] {
	return Queue[T]{}
}

// Of creates a queue holding the given elements, front first.
func Of[T any](elements ...T) Queue[T] {
	return Queue[T]{front: list.Of(elements...)}
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the queue has no elements.
func (q Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty() && q.rear.IsEmpty()
}

// Size returns the number of elements. O(1), both lists cache their
// length.
func (q Queue[T]) Size() int {
	return q.front.Size() + q.rear.Size()
}

// Enqueue adds an element at the back of the queue. O(1).
func (q Queue[T]) Enqueue(v T) Queue[T] {
	if q.IsEmpty() {
		return Queue[T]{front: list.Of(v)}
	}
	return Queue[T]{front: q.front, rear: q.rear.Push(v)}
}

// EnqueueAll enqueues the elements of a list one by one, in order.
func (q Queue[T]) EnqueueAll(elements list.List[T]) Queue[T] {
	r := q
	elements.ForEach(func(v T) {
		r = r.Enqueue(v)
	})
	return r
}

// Dequeue removes the head of the queue, returning the removed element
// together with the resulting queue. If the front list is exhausted, the
// rear list is reversed into a new front first. Dequeue panics with
// fp.EmptyCollectionError on an empty queue.
func (q Queue[T]) Dequeue() (T, Queue[T]) {
	if q.IsEmpty() {
		panic(fp.EmptyCollectionError{Op: "queue.Dequeue"})
	}
	if q.front.IsEmpty() {
		tracer().Debugf("dequeue: front exhausted, reversing rear of size %d", q.rear.Size())
		q = Queue[T]{front: q.rear.Reverse()}
	}
	return q.front.Head(), Queue[T]{front: q.front.Tail(), rear: q.rear}
}

// Peek returns the head of the queue without removing it. Peek panics
// with fp.EmptyCollectionError on an empty queue.
func (q Queue[T]) Peek() T {
	if q.front.IsEmpty() {
		if q.rear.IsEmpty() {
			panic(fp.EmptyCollectionError{Op: "queue.Peek"})
		}
		return q.rear.Last()
	}
	return q.front.Head()
}

// PeekOption returns the head of the queue, if any.
func (q Queue[T]) PeekOption() option.Option[T] {
	if q.IsEmpty() {
		return option.None[T]()
	}
	return option.Some(q.Peek())
}

// ToList returns the elements in dequeue order.
func (q Queue[T]) ToList() list.List[T] {
	return q.front.Concat(q.rear.Reverse())
}

// String renders "Queue(a, b, c)" in dequeue order.
func (q Queue[T]) String() string {
	return "Queue(" + q.ToList().MkString(", ") + ")"
}
