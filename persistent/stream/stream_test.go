package stream

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fp"
	"github.com/npillmayer/fp/persistent/list"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStreamIterateTake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.stream")
	defer teardown()
	//
	intStream := Iterate(0, func(i int) int { return i + 1 }).Take(10)

	if intStream.Size() != 10 {
		t.Errorf("expected taken stream to have size 10, has %d", intStream.Size())
	}
	if intStream.Last() != 9 {
		t.Errorf("expected last element to be 9, is %d", intStream.Last())
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, intStream.ToSlice()); diff != "" {
		t.Errorf("unexpected elements (-want +got):\n%s", diff)
	}

	evenSum := Sum(intStream.Filter(func(i int) bool { return i%2 == 0 }))
	if evenSum != 20 {
		t.Errorf("expected sum of even elements to be 20, is %d", evenSum)
	}
}

func TestStreamTabulate(t *testing.T) {
	s := Tabulate(10, func(i int) int { return i + 1 })
	if s.Size() != 10 {
		t.Errorf("expected tabulated stream to have size 10, has %d", s.Size())
	}
	if s.Get(2) != 3 {
		t.Errorf("expected element at 2 to be 3, is %d", s.Get(2))
	}
}

func TestStreamZip(t *testing.T) {
	s := Of(2, 1, 3, 4)
	zipped := Zip(s, FromList(list.Of(7, 8, 9)))

	first := zipped.Get(0)
	if first.Left != 2 || first.Right != 7 {
		t.Errorf("expected first pair to be (2, 7), is %s", first)
	}
	if zipped.Size() != 3 {
		t.Errorf("expected zip to end with the shorter stream, has size %d", zipped.Size())
	}
}

func TestStreamLazyMapOnUnboundedStream(t *testing.T) {
	var evaluations int32
	squares := Map(Iterate(1, func(i int) int { return i + 1 }), func(i int) int {
		atomic.AddInt32(&evaluations, 1)
		return i * i
	})
	head := squares.Take(4).ToSlice()
	if diff := cmp.Diff([]int{1, 4, 9, 16}, head); diff != "" {
		t.Errorf("unexpected squares (-want +got):\n%s", diff)
	}
	if n := atomic.LoadInt32(&evaluations); n > 5 {
		t.Errorf("expected mapping to stay bounded by the consumed prefix, ran %d times", n)
	}
}

func TestStreamFilterOnUnboundedStream(t *testing.T) {
	multiples := Iterate(1, func(i int) int { return i + 1 }).
		Filter(func(i int) bool { return i%7 == 0 })
	if diff := cmp.Diff([]int{7, 14, 21}, multiples.Take(3).ToSlice()); diff != "" {
		t.Errorf("unexpected multiples (-want +got):\n%s", diff)
	}
}

func TestStreamMemoizationRunsGeneratorOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.stream")
	defer teardown()
	//
	runs := 0
	s := Cons(1, func() Stream[int] {
		runs++
		return Of(2)
	})
	first := s.Tail()
	second := s.Tail()
	if runs != 1 {
		t.Errorf("expected the deferred tail to run exactly once, ran %d times", runs)
	}
	if first.node != second.node {
		t.Error("expected repeated forcing to return the identical cached stream, didn't")
	}
}

func TestStreamConcurrentForcingRetainsOneResult(t *testing.T) {
	var runs int32
	s := Cons(0, func() Stream[int] {
		atomic.AddInt32(&runs, 1)
		return Of(1)
	})

	const forcers = 16
	results := make([]Stream[int], forcers)
	var wg sync.WaitGroup
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < forcers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start.Wait()
			results[i] = s.Tail()
		}(i)
	}
	start.Done()
	wg.Wait()

	// the generator may have run more than once under contention, but all
	// forcers must have adopted one and the same cached cell
	for i := 1; i < forcers; i++ {
		if results[i].node != results[0].node {
			t.Fatal("expected all racing forcers to observe the same memoized tail, didn't")
		}
	}
	t.Logf("generator ran %d time(s) under contention", atomic.LoadInt32(&runs))
}

func TestStreamHeadOnEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(fp.EmptyCollectionError); !ok {
			t.Errorf("expected Head on empty stream to panic with EmptyCollectionError, got %v", r)
		}
	}()
	Empty[int]().Head()
}

func TestStreamString(t *testing.T) {
	s := Iterate(0, func(i int) int { return i + 1 })
	if str := s.String(); str != "Stream(0, ?)" {
		t.Errorf("expected unevaluated stream to render Stream(0, ?), got %q", str)
	}
	s.Tail() // force one cell
	if str := s.String(); str != "Stream(0, 1, ?)" {
		t.Errorf("expected partially evaluated stream to render Stream(0, 1, ?), got %q", str)
	}
	if str := Empty[int]().String(); str != "Stream()" {
		t.Errorf("expected empty stream to render Stream(), got %q", str)
	}
}

func TestStreamToList(t *testing.T) {
	l := Tabulate(3, func(i int) int { return i }).ToList()
	if !list.Equal(l, list.Of(0, 1, 2)) {
		t.Errorf("expected List(0, 1, 2), got %s", l)
	}
}
