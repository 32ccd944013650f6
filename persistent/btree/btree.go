package btree

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  clones of nodes.

- We use a programming-style reminiscent of functional programming (see remarks on
  re-balancing) where it makes things easier to understand.

- A new modified incarnation of a tree always is reflected by a new tree.root.

*/

import (
	"iter"

	"github.com/npillmayer/fp"
)

const defaultLowWaterMark uint = 3

// The high water mark is the maximum number of items a node may hold. Keeping it at
// twice the low water mark guarantees that merging two minimal siblings plus the
// separator item from their parent never overflows the merged node.
const defaultHighWaterMark uint = defaultLowWaterMark * 2

// Tree is an immutable in-memory B-tree, mapping keys of type K to values of type V.
// Trees have to be created by a call to Immutable, which equips them with a
// comparator establishing the total order of keys.
//
//	tree := btree.Immutable[int, string](cmp.Compare[int])
//	tree = tree.With(1, "World")
//
// returns a tree containing a single item ⟨1⟩ associated with value "World".
//
type Tree[K, V any] struct {
	root          *xnode[K, V]
	depth         uint
	size          int
	cmp           fp.Comparator[K]
	lowWaterMark  uint
	highWaterMark uint
}

// Immutable constructs a B-tree ordered by comparator `cmp`, with options, if you
// need any. Use it like this:
//
//	tree := btree.Immutable[int, string](cmp.Compare[int], btree.Degree[int, string](16))
//	tree = tree.With(42, "Galaxy")
//	value, found := tree.Find(42)   // returns "Galaxy"
//
func Immutable[K, V any](cmp fp.Comparator[K], opts ...Option[K, V]) Tree[K, V] {
	assertThat(cmp != nil, "tree needs a comparator to order keys by")
	tree := Tree[K, V]{
		cmp:           cmp,
		lowWaterMark:  defaultLowWaterMark,
		highWaterMark: defaultHighWaterMark,
	}
	for _, option := range opts {
		tree = option(tree)
	}
	return tree
}

// Option is a type to help initializing B-trees at creation time.
type Option[K, V any] func(Tree[K, V]) Tree[K, V]

// Degree is an option to set the minimum number of children a node in the tree owns.
// The lower bound for the degree is 3.
//
// Use it like this:
//
//	tree := btree.Immutable[int, string](cmp.Compare[int], btree.Degree[int, string](16))
//
func Degree[K, V any](n int) Option[K, V] {
	return func(tree Tree[K, V]) Tree[K, V] {
		low := max(2, n-1)
		tree.lowWaterMark = uint(low)
		tree.highWaterMark = uint(low) * 2
		return tree
	}
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the tree holds no items.
func (tree Tree[K, V]) IsEmpty() bool {
	return tree.size == 0
}

// Size returns the number of items in the tree. O(1).
func (tree Tree[K, V]) Size() int {
	return tree.size
}

// Find locates a key in a tree, if present, and returns the value associated with
// the key. If `key` is not found, the zero value for type V will be returned,
// together with found=false.
func (tree Tree[K, V]) Find(key K) (V, bool) {
	var found bool
	var path slotPath[K, V] = make([]slot[K, V], tree.depth)
	if found, path = tree.findKeyAndPath(key, path); found {
		return path.last().item().value, true
	}
	var none V
	return none, false
}

// Min returns the item with the smallest key, i.e. the leftmost item of the tree.
// For an empty tree, zero values will be returned, together with found=false.
func (tree Tree[K, V]) Min() (K, V, bool) {
	if tree.root == nil {
		var k K
		var v V
		return k, v, false
	}
	node := tree.root
	for !node.isLeaf() {
		node = node.children[0]
	}
	item := node.items[0]
	return item.key, item.value, true
}

// All returns an iterator over all items of the tree, walking keys in ascending
// comparator order.
func (tree Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.root.walk(yield)
	}
}

// With returns a copy of a tree with a new key inserted, which is associated with
// `value`. If an entry for key is already present in tree, the associated value
// will be replaced (in a new incarnation of the tree, nevertheless).
func (tree Tree[K, V]) With(key K, value V) Tree[K, V] {
	assertThat(tree.cmp != nil, "tree has no comparator; always create trees with Immutable(…)")
	var found bool
	var path slotPath[K, V] = make([]slot[K, V], tree.depth)
	if found, path = tree.findKeyAndPath(key, path); found {
		return tree.replacing(key, value, path) // copy with replaced value
	}
	tracer().Debugf("insert: slot path = %s", path)
	item := xitem[K, V]{key, value}
	if tree.root == nil { // virgin tree => insert first node and return
		return tree.shallowCloneWithRoot(xnode[K, V]{}.withInsertedItem(item, 0)).withDepth(1).withSize(1)
	}
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	tracer().Debugf("insert: created copy of (leaf + key@%d) = %s", leafSlot.index, cow)
	newRoot := path.dropLast().foldR(splitAndClone[K, V](tree.highWaterMark, tree.cmp),
		slot[K, V]{node: &cow, index: leafSlot.index},
	)
	tracer().Debugf("insert: new root = %s", newRoot)
	if newRoot.node.overfull(tree.highWaterMark) {
		newRoot = xnode[K, V]{}.splitChild(newRoot, tree.cmp)
		tree.depth++ // miss-use of tree for intermediate storage of new depth
	}
	return tree.shallowCloneWithRoot(*newRoot.node).withSize(tree.size + 1)
}

// WithDeleted returns a copy of a tree with key deleted, if present. If key is not
// found, tree is returned unchanged.
func (tree Tree[K, V]) WithDeleted(key K) Tree[K, V] {
	assertThat(tree.cmp != nil, "tree has no comparator; always create trees with Immutable(…)")
	var found bool
	var path slotPath[K, V] = make([]slot[K, V], tree.depth)
	if found, path = tree.findKeyAndPath(key, path); !found {
		return tree // no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	del := path.last()
	var leafSlot slot[K, V]
	if del.node.isLeaf() {
		cow := del.node.withDeletedItem(del.index) // copy-on-write
		tracer().Debugf("created copy of leaf w/out deleted item: %v", cow.items)
		leafSlot = slot[K, V]{node: &cow, index: del.index}
	} else { // for inner node:
		// swap item with rightmost item of left subtree or leftmost item of right subtree
		cow := del.node.clone()                          // cow is clone of inner node
		cowSlot := slot[K, V]{node: &cow, index: del.index}
		path[len(path)-1] = cowSlot                      // remember clone in path
		leafItem, leafPath := cowSlot.stealPredOrSucc(path) // from left or right subtree
		cow.items[del.index] = leafItem                  // insert stolen item
		l := leafPath.last()                             //
		cowLeaf := l.node.withDeletedItem(l.index)       // remove stolen item from leaf
		path = leafPath                                  // continue with path from root to leaf
		leafSlot = slot[K, V]{node: &cowLeaf, index: l.index} // leaf to start balancing
	}
	// balance from leaf-node upwards, starting at the leaf where we deleted an item
	tracer().Debugf("after delete: path = %v", path)
	newRoot := path.dropLast().foldR(balance[K, V](tree.lowWaterMark),
		leafSlot,
	)
	tracer().Debugf("deletion: new root = %s", newRoot)
	newTree := tree.shallowCloneWithRoot(*newRoot.node).withSize(tree.size - 1)
	switch { // catch border cases where root is empty after deletion
	case newRoot.len() == 0 && !newRoot.node.isLeaf():
		newTree.root = newRoot.node.children[0]
		newTree.depth--
	case newRoot.len() == 0 && newRoot.node.isLeaf():
		newTree.root = nil
		newTree.depth = 0
	}
	return newTree
}
