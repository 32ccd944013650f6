package queue

import (
	"testing"

	"github.com/npillmayer/fp"
	"github.com/npillmayer/fp/persistent/list"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestQueueEnqueueDequeue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	defer teardown()
	//
	queue := Of(1, 2, 3)
	secondQueue := queue.EnqueueAll(list.Of(4, 5))

	if queue.Size() != 3 {
		t.Errorf("expected original queue to keep size 3, has %d", queue.Size())
	}
	if secondQueue.Size() != 5 {
		t.Errorf("expected extended queue to have size 5, has %d", secondQueue.Size())
	}

	head, rest := secondQueue.Dequeue()
	if head != 1 {
		t.Errorf("expected first dequeue to yield 1, is %d", head)
	}
	head2, _ := rest.Dequeue()
	if head2 != 2 {
		t.Errorf("expected second dequeue to yield 2, is %d", head2)
	}
	if list.Contains(rest.ToList(), 1) {
		t.Errorf("expected dequeued queue to no longer contain 1, does: %s", rest)
	}
}

func TestQueueFIFOAcrossRebalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	defer teardown()
	//
	q := Empty[int]()
	for i := 0; i < 20; i++ {
		q = q.Enqueue(i)
		if i%3 == 0 { // interleave dequeues to force front/rear swaps
			var v int
			v, q = q.Dequeue()
			t.Logf("dequeued %d", v)
		}
	}
	var out []int
	for !q.IsEmpty() {
		var v int
		v, q = q.Dequeue()
		out = append(out, v)
	}
	for i := 1; i < len(out); i++ {
		if out[i-1] >= out[i] {
			t.Fatalf("expected FIFO order, got %v", out)
		}
	}
}

func TestQueueDequeueEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(fp.EmptyCollectionError); !ok {
			t.Errorf("expected Dequeue on empty queue to panic with EmptyCollectionError, got %v", r)
		}
	}()
	Empty[int]().Dequeue()
}

func TestQueuePeek(t *testing.T) {
	q := Of(1, 2, 3)
	if q.Peek() != 1 {
		t.Errorf("expected peek to yield 1, is %d", q.Peek())
	}
	if q.Size() != 3 {
		t.Error("expected peek to leave the queue untouched, didn't")
	}
	if !Empty[int]().PeekOption().IsEmpty() {
		t.Error("expected PeekOption on empty queue to be None, isn't")
	}
}

func TestQueueInvariantAfterRebalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.queue")
	defer teardown()
	//
	q := Of(1).Enqueue(2).Enqueue(3) // 2 and 3 live in rear
	if q.rear.IsEmpty() {
		t.Fatal("expected enqueues to land in rear list, didn't")
	}
	_, q = q.Dequeue()
	_, q = q.Dequeue() // forces swap-and-reverse
	if v := q.Peek(); v != 3 {
		t.Errorf("expected remaining head to be 3, is %d", v)
	}
	if q.front.IsEmpty() && !q.rear.IsEmpty() {
		t.Error("invariant violated: empty front with non-empty rear")
	}
}

func TestQueueString(t *testing.T) {
	q := Of(1).Enqueue(2).Enqueue(3)
	if s := q.String(); s != "Queue(1, 2, 3)" {
		t.Errorf("expected rendering Queue(1, 2, 3), got %q", s)
	}
}
