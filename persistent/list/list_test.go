package list

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func words() List[string] {
	return Of("Java", "PHP", "Jquery", "JavaScript", "JShell", "JAVA")
}

func TestListEmpty(t *testing.T) {
	l := Empty[int]()
	if !l.IsEmpty() || l.Size() != 0 {
		t.Errorf("expected empty list to have size 0, has %d", l.Size())
	}
	var zero List[int]
	if !zero.IsEmpty() {
		t.Error("expected zero value to be the empty list, isn't")
	}
}

func TestListPushShares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := Of(2, 3)
	l2 := l.Push(1)
	if l2.Size() != 3 || l2.Head() != 1 {
		t.Errorf("expected pushed list to be List(1, 2, 3), is %s", l2)
	}
	if !Equal(l2.Tail(), l) {
		t.Error("expected push(x).Tail() to equal the original list, doesn't")
	}
	if l2.Tail().head != l.head {
		t.Error("expected pushed list to share the original's nodes, doesn't")
	}
}

func TestListHeadTailOnEmptyPanic(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(fp.EmptyCollectionError); !ok {
			t.Errorf("expected Head on empty list to panic with EmptyCollectionError, got %v", r)
		}
	}()
	Empty[int]().Head()
}

func TestListDropAndTake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := words()

	l1 := l.Drop(2)
	if Contains(l1, "Java") || Contains(l1, "PHP") {
		t.Errorf("expected drop(2) to remove the first two elements, is %s", l1)
	}
	l2 := l.DropRight(2)
	if Contains(l2, "JAVA") || Contains(l2, "JShell") {
		t.Errorf("expected dropRight(2) to remove the last two elements, is %s", l2)
	}
	l3 := l.DropUntil(func(s string) bool { return strings.Contains(s, "Shell") })
	if l3.Size() != 2 {
		t.Errorf("expected dropUntil(…Shell…) to have size 2, has %d", l3.Size())
	}
	l4 := l.DropWhile(func(s string) bool { return len(s) > 0 })
	if !l4.IsEmpty() {
		t.Errorf("expected dropWhile(len>0) to be empty, is %s", l4)
	}
	l5 := l.Take(1)
	if l5.Single() != "Java" {
		t.Errorf("expected take(1) to be the single element Java, is %s", l5)
	}
	l6 := l.TakeRight(1)
	if l6.Single() != "JAVA" {
		t.Errorf("expected takeRight(1) to be the single element JAVA, is %s", l6)
	}
	l7 := l.TakeUntil(func(s string) bool { return len(s) > 6 })
	if l7.Size() != 3 {
		t.Errorf("expected takeUntil(len>6) to have size 3, has %d", l7.Size())
	}
}

func TestListDropSizeProperty(t *testing.T) {
	l := Range(0, 10)
	for n := 0; n <= 12; n++ {
		expect := 10 - n
		if expect < 0 {
			expect = 0
		}
		if l.Drop(n).Size() != expect {
			t.Errorf("expected drop(%d).Size() to be %d, is %d", n, expect, l.Drop(n).Size())
		}
	}
}

func TestListTakeAppendDropReconstructs(t *testing.T) {
	l := Range(0, 10)
	for n := 0; n <= 10; n++ {
		r := l.Take(n).Concat(l.Drop(n))
		if !Equal(r, l) {
			t.Errorf("expected take(%d) ++ drop(%d) to reconstruct the list, is %s", n, n, r)
		}
	}
}

func TestListIntersperseReduce(t *testing.T) {
	sentence := Of("Boys", "Girls").
		Intersperse("and").
		Reduce(func(s1, s2 string) string { return s1 + " " + s2 })
	if sentence != "Boys and Girls" {
		t.Errorf("expected 'Boys and Girls', got %q", sentence)
	}
}

func TestListGrouped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	var sizes []int
	for group := range words().Grouped(2) {
		sizes = append(sizes, group.Size())
	}
	if diff := cmp.Diff([]int{2, 2, 2}, sizes); diff != "" {
		t.Errorf("unexpected group sizes (-want +got):\n%s", diff)
	}
	// last group may be shorter
	sizes = sizes[:0]
	for group := range Range(0, 5).Grouped(2) {
		sizes = append(sizes, group.Size())
	}
	if diff := cmp.Diff([]int{2, 2, 1}, sizes); diff != "" {
		t.Errorf("unexpected group sizes (-want +got):\n%s", diff)
	}
}

func TestListGroupBy(t *testing.T) {
	groups := GroupBy(words(), func(s string) bool { return strings.HasPrefix(s, "J") })
	if len(groups) != 2 {
		t.Fatalf("expected two groups, have %d", len(groups))
	}
	if groups[false].Size() != 1 {
		t.Errorf("expected one non-J word, have %s", groups[false])
	}
	if groups[true].Size() != 5 {
		t.Errorf("expected five J words, have %s", groups[true])
	}
}

func TestListStackSemantics(t *testing.T) {
	intList := Empty[int]()
	intList1 := intList.PushAll(RangeClosed(5, 10))

	if !intList.IsEmpty() {
		t.Error("expected original list to stay empty, doesn't")
	}
	if intList1.Peek() != 10 {
		t.Errorf("expected peek after pushAll(5…10) to be 10, is %d", intList1.Peek())
	}
	intList2 := intList1.Pop()
	if intList2.Size() != intList1.Size()-1 {
		t.Errorf("expected pop to shrink size by one, is %d", intList2.Size())
	}
}

func TestListAppendLast(t *testing.T) {
	intList := RangeClosed(1, 5)
	if intList.Last() != 5 {
		t.Errorf("expected last of 1…5 to be 5, is %d", intList.Last())
	}
	updated := intList.Append(10)
	if updated.Size() != 6 || updated.Get(5) != 10 {
		t.Errorf("expected append(10) at position 5, is %s", updated)
	}
}

func TestListSumReduce(t *testing.T) {
	if sum := Sum(Of(1, 2, 3)); sum != 6 {
		t.Errorf("expected sum of List(1, 2, 3) to be 6, is %d", sum)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Reduce on empty list to panic, didn't")
		}
	}()
	Empty[int]().Reduce(func(a, b int) int { return a + b })
}

func TestListSingle(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(fp.MultipleElementsError); !ok {
			t.Errorf("expected Single on two-element list to panic with MultipleElementsError, got %v", r)
		}
	}()
	Of(1, 2).Single()
}

func TestListMapFilter(t *testing.T) {
	lengths := Map(words(), func(s string) int { return len(s) })
	if diff := cmp.Diff([]int{4, 3, 6, 10, 6, 4}, lengths.ToSlice()); diff != "" {
		t.Errorf("unexpected lengths (-want +got):\n%s", diff)
	}
	short := Filter(words(), func(s string) bool { return len(s) <= 4 })
	if diff := cmp.Diff([]string{"Java", "PHP", "JAVA"}, short.ToSlice()); diff != "" {
		t.Errorf("unexpected filter result (-want +got):\n%s", diff)
	}
}

func TestListString(t *testing.T) {
	if s := Of(1, 2, 3).String(); s != "List(1, 2, 3)" {
		t.Errorf("expected rendering List(1, 2, 3), got %q", s)
	}
	if s := Empty[int]().String(); s != "List()" {
		t.Errorf("expected rendering List(), got %q", s)
	}
}

func TestListHeadOption(t *testing.T) {
	if o := Of(1).HeadOption(); o.String() != "Some(1)" {
		t.Errorf("expected Some(1), got %s", o)
	}
	if o := Empty[int]().HeadOption(); !o.IsEmpty() {
		t.Errorf("expected None, got %s", o)
	}
}
