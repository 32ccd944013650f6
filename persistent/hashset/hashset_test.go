package hashset

import (
	"fmt"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestHashSetAddUnique(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.hashset")
	defer teardown()
	//
	set := Of("Red", "Green", "Blue")
	newSet := set.Add("Yellow")
	newestSet := newSet.Add("Yellow")

	if set.Size() != 3 {
		t.Errorf("expected original set to keep size 3, has %d", set.Size())
	}
	if newSet.Size() != 4 {
		t.Errorf("expected extended set to have size 4, has %d", newSet.Size())
	}
	if newestSet.Size() != 4 {
		t.Errorf("expected re-adding to be a no-op, size is %d", newestSet.Size())
	}
	if !newestSet.Contains("Yellow") {
		t.Error("expected set to contain Yellow, doesn't")
	}
}

func TestHashSetAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.hashset")
	defer teardown()
	//
	set0 := RangeClosed(1, 5)
	set1 := RangeClosed(3, 6)

	if union := set0.Union(set1); !union.Equal(RangeClosed(1, 6)) {
		t.Errorf("expected union to be {1…6}, is %s", union)
	}
	if diff := set0.Diff(set1); !diff.Equal(RangeClosed(1, 2)) {
		t.Errorf("expected diff to be {1, 2}, is %s", diff)
	}
	if isect := set0.Intersect(set1); !isect.Equal(RangeClosed(3, 5)) {
		t.Errorf("expected intersection to be {3…5}, is %s", isect)
	}
}

func TestHashSetRemove(t *testing.T) {
	set := Range(0, 100)
	for i := 0; i < 100; i += 2 {
		set = set.Remove(i)
	}
	if set.Size() != 50 {
		t.Errorf("expected 50 elements after removal, have %d", set.Size())
	}
	for i := 0; i < 100; i++ {
		if set.Contains(i) != (i%2 == 1) {
			t.Fatalf("unexpected membership of %d", i)
		}
	}
	if !Of(1).Remove(1).IsEmpty() {
		t.Error("expected removing the sole element to yield the empty set, didn't")
	}
	if !Of(1).Remove(2).Contains(1) {
		t.Error("expected removing an absent element to be a no-op, isn't")
	}
}

func TestHashSetPersistence(t *testing.T) {
	set := Range(0, 1000)
	smaller := set.Remove(500)
	if set.Size() != 1000 || !set.Contains(500) {
		t.Error("expected original set to stay unmodified, didn't")
	}
	if smaller.Size() != 999 || smaller.Contains(500) {
		t.Error("expected derived set to lack 500, doesn't")
	}
}

func TestHashSetToSlice(t *testing.T) {
	got := Of(3, 1, 2).ToSlice()
	sort.Ints(got)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected elements {1, 2, 3}, got %v", got)
	}
}

func TestHashSetTrieShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.hashset")
	defer teardown()
	//
	set := Range(0, 64)
	t.Logf("trie =\n%s", printSet(set))
	if set.root == nil {
		t.Fatal("expected a populated trie root, have none")
	}
	total := 0
	set.ForEach(func(int) { total++ })
	if total != 64 {
		t.Errorf("expected traversal to visit 64 elements, visited %d", total)
	}
}

// --- Print trie ------------------------------------------------------------

func printSet[T comparable](s Set[T]) string {
	header := fmt.Sprintf("\nHashSet(size=%d)\n", s.size)
	printer := tp.New()
	printTrie(printer, s.root)
	return header + printer.String() + "\n"
}

func printTrie[T comparable](printer tp.Tree, node *hnode[T]) {
	if node == nil {
		return
	}
	for _, e := range node.entries {
		if e.child != nil {
			printTrie(printer.AddBranch("▪︎"), e.child)
		} else {
			printer.AddNode(fmt.Sprintf("%v", e.bucket))
		}
	}
}
