package btree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/fp"
)

// xitem is a key/value pair stored in a tree node.
type xitem[K, V any] struct {
	key   K
	value V
}

// xnode is a tree node, holding a sorted list of items. Non-leaf nodes own
// len(items)+1 child links. Nodes are never mutated after they have been linked
// into a tree.
type xnode[K, V any] struct {
	items    []xitem[K, V]
	children []*xnode[K, V]
}

func (node xnode[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, item := range node.items {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", item.key)
	}
	sb.WriteString("⟩")
	return sb.String()
}

func (node *xnode[K, V]) isLeaf() bool {
	return len(node.children) == 0
}

func (node *xnode[K, V]) overfull(highWaterMark uint) bool {
	return len(node.items) > int(highWaterMark)
}

func (node *xnode[K, V]) underfull(lowWaterMark uint) bool {
	return len(node.items) < int(lowWaterMark)
}

// clone copies a node for change-on-write.
func (node xnode[K, V]) clone() xnode[K, V] {
	return node.cloneWithCapacity(len(node.items))
}

// cloneWithCapacity copies a node, reserving capacity for at least cap items.
func (node xnode[K, V]) cloneWithCapacity(cap int) xnode[K, V] {
	cow := xnode[K, V]{}
	cap = max(cap, len(node.items))
	cow.items = make([]xitem[K, V], len(node.items), ceiling(cap))
	copy(cow.items, node.items)
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, V], len(node.children), ceiling(cap)+1)
		copy(cow.children, node.children)
	}
	return cow
}

// slice copies a section of a node, together with the corresponding child links.
// to = -1 is shorthand for the end of the item list.
func (node xnode[K, V]) slice(from, to int) xnode[K, V] {
	if to < 0 {
		to = len(node.items)
	}
	assertThat(from <= to && to <= len(node.items), "node slice out of range: %d:%d", from, to)
	cow := xnode[K, V]{}
	cow.items = make([]xitem[K, V], to-from, ceiling(to-from))
	copy(cow.items, node.items[from:to])
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, V], to-from+1)
		copy(cow.children, node.children[from:to+1])
	}
	return cow
}

// asNonLeaf equips a leaf node with an (empty) child link table. A no-op for
// non-leaf nodes.
func (node xnode[K, V]) asNonLeaf() xnode[K, V] {
	if !node.isLeaf() {
		return node
	}
	cow := node
	cow.children = make([]*xnode[K, V], len(node.items)+1)
	return cow
}

// walk is an in-order traversal, feeding every item to yield until it signals stop.
func (node *xnode[K, V]) walk(yield func(K, V) bool) bool {
	if node == nil {
		return true
	}
	for i, item := range node.items {
		if !node.isLeaf() && !node.children[i].walk(yield) {
			return false
		}
		if !yield(item.key, item.value) {
			return false
		}
	}
	if !node.isLeaf() {
		return node.children[len(node.items)].walk(yield)
	}
	return true
}

// --- Lookup ----------------------------------------------------------------

func (tree Tree[K, V]) findKeyAndPath(key K, pathBuf slotPath[K, V]) (found bool, path slotPath[K, V]) {
	path = pathBuf[:0] // we track the path to the key's slot
	if tree.root == nil {
		return
	}
	var index int
	var node *xnode[K, V] = tree.root // walking nodes, start search at the top
	for !node.isLeaf() {
		tracer().Debugf("node = %v", node)
		found, index = node.findSlot(key, tree.cmp)
		path = append(path, slot[K, V]{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	tracer().Debugf("node = %v", node)
	found, index = node.findSlot(key, tree.cmp)
	path = append(path, slot[K, V]{node: node, index: index})
	tracer().Debugf("slot path for key=%v -> %s", key, path)
	return
}

func (node *xnode[K, V]) findSlot(key K, cmp fp.Comparator[K]) (bool, int) {
	items, itemcnt := node.items, len(node.items)
	slotinx := sort.Search(itemcnt, func(i int) bool {
		return cmp(items[i].key, key) >= 0 // sort.Search will find the smallest i for which this is true
	})
	return slotinx < itemcnt && cmp(items[slotinx].key, key) == 0, slotinx
}

// --- Insertion -------------------------------------------------------------

func (tree Tree[K, V]) replacing(key K, value V, path slotPath[K, V]) Tree[K, V] {
	assertThat(len(path) > 0, "cannot replace item without path")
	tracer().Debugf("replace: slot path = %s", path)
	hit := path.last() // slot where `key` lives
	item := xitem[K, V]{key: key, value: value}
	cow := hit.node.withReplacedValue(item, hit.index)
	tracer().Debugf("created copy of node for replacement: %s", cow)
	newRoot := path.dropLast().foldR(cloneSeam[K, V], slot[K, V]{node: &cow, index: hit.index})
	tracer().Debugf("replace: top = %s", newRoot)
	return tree.shallowCloneWithRoot(*newRoot.node)
}

// splitAndClone returns the folding operation for the upwards path propagation of
// an insertion: split an overfull child, otherwise just clone the seam.
func splitAndClone[K, V any](highWaterMark uint, cmp fp.Comparator[K]) func(slot[K, V], slot[K, V]) slot[K, V] {
	return func(parent, child slot[K, V]) slot[K, V] {
		tracer().Debugf("split&propagate: parent = %s, child = %s", parent, child)
		if child.node.overfull(highWaterMark) {
			tracer().Debugf("child is overfull: %v", child)
			return parent.node.splitChild(child, cmp)
		}
		return cloneSeam(parent, child)
	}
}

// cloneSeam clones parent and links the modified child copy into the clone.
func cloneSeam[K, V any](parent, child slot[K, V]) slot[K, V] {
	tracer().Debugf("seam: parent = %s, child = %s", parent, child)
	cowParent := parent.node.clone()
	cowParent.children[parent.index] = child.node
	return slot[K, V]{node: &cowParent, index: parent.index}
}

// splitChild splits an overfull child node. It is not checked if the child is
// indeed overfull. Returns a modified copy of node with 2 new children, where the
// left one substitutes a child of node.
//
// It's legal to pass in xnode{} as node (in order to create a new Tree.root).
//
func (node xnode[K, V]) splitChild(s slot[K, V], cmp fp.Comparator[K]) slot[K, V] {
	child := s.node
	half := len(child.items) / 2
	median := child.items[half]
	siblingL := child.slice(0, half)
	siblingR := child.slice(half+1, -1)
	found, index := node.findSlot(median.key, cmp)
	assertThat(!found, "internal inconsistency: child has same key as parent (during split)")
	cow := node.withInsertedItem(median, index).asNonLeaf()
	cow.children[index] = &siblingL
	cow.children[index+1] = &siblingR
	return slot[K, V]{node: &cow, index: index}
}

func (node xnode[K, V]) withReplacedValue(item xitem[K, V], at int) xnode[K, V] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items[at].value = item.value
	return cow
}

// withInsertedItem copies a node with item inserted at position `at`. For non-leaf
// nodes a vacant child link is inserted at position at+1, to be filled in by the
// caller.
func (node xnode[K, V]) withInsertedItem(item xitem[K, V], at int) xnode[K, V] {
	assertThat(at <= len(node.items), "given item index out of range: %d > %d", at, len(node.items))
	cow := node.cloneWithCapacity(len(node.items) + 1) // change-on-write behaviour requires copying
	var stopper xitem[K, V]
	cow.items = append(cow.items, stopper)
	copy(cow.items[at+1:], cow.items[at:])
	cow.items[at] = item
	if !cow.isLeaf() {
		cow.children = append(cow.children, nil)
		copy(cow.children[at+2:], cow.children[at+1:])
		cow.children[at+1] = nil
	}
	return cow
}

// --- Deletion --------------------------------------------------------------

// balance returns the folding operation for the upwards path propagation of a
// deletion: re-balance an underfull child, otherwise just clone the seam.
func balance[K, V any](lowWaterMark uint) func(slot[K, V], slot[K, V]) slot[K, V] {
	return func(parent, child slot[K, V]) slot[K, V] {
		tracer().Debugf("balance: parent = %s, child = %s", parent, child)
		if child.node.underfull(lowWaterMark) {
			tracer().Debugf("child is underfull: %v", child)
			return parent.balance(child, lowWaterMark)
		}
		return cloneSeam(parent, child)
	}
}

// stealPredOrSucc walks from an inner node down to the closest-by-key leaf item:
// either the rightmost item of the left subtree or the leftmost item of the right
// subtree, whichever subtree carries more weight. It extends path with the slots
// visited and returns the leaf item which is to substitute the deleted inner item.
func (del slot[K, V]) stealPredOrSucc(path slotPath[K, V]) (xitem[K, V], slotPath[K, V]) {
	assertThat(!del.node.isLeaf(), "attempt to steal a substitute item for a leaf")
	left, right := del.node.children[del.index], del.node.children[del.index+1]
	if len(left.items) >= len(right.items) { // steal predecessor item
		node := left
		for !node.isLeaf() {
			path = append(path, slot[K, V]{node: node, index: len(node.children) - 1})
			node = node.children[len(node.children)-1]
		}
		path = append(path, slot[K, V]{node: node, index: len(node.items) - 1})
		return node.items[len(node.items)-1], path
	}
	// steal successor item
	path[len(path)-1].index = del.index + 1 // descend to the right of the deleted item
	node := right
	for !node.isLeaf() {
		path = append(path, slot[K, V]{node: node, index: 0})
		node = node.children[0]
	}
	path = append(path, slot[K, V]{node: node, index: 0})
	return node.items[0], path
}

func (node xnode[K, V]) withDeletedItem(at int) xnode[K, V] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items = append(cow.items[:at], cow.items[at+1:]...)
	if !cow.isLeaf() {
		cow.children = append(cow.children[:at], cow.children[at+1:]...)
	}
	return cow
}

// withCutRight cuts the rightmost item off a node, together with the child link to
// the right of the item (nil for leafs).
func (node xnode[K, V]) withCutRight() (xnode[K, V], xitem[K, V], *xnode[K, V]) {
	assertThat(len(node.items) > 0, "attempt to cut right item from empty node")
	cow := node.clone()
	item := cow.items[len(cow.items)-1]
	cow.items = cow.items[:len(cow.items)-1]
	var grandChild *xnode[K, V]
	if !cow.isLeaf() {
		grandChild = cow.children[len(cow.children)-1]
		cow.children = cow.children[:len(cow.children)-1]
	}
	return cow, item, grandChild
}

// withCutLeft cuts the leftmost item off a node, together with the child link to
// the left of the item (nil for leafs).
func (node xnode[K, V]) withCutLeft() (xnode[K, V], xitem[K, V], *xnode[K, V]) {
	assertThat(len(node.items) > 0, "attempt to cut left item from empty node")
	cow := node.clone()
	item := cow.items[0]
	cow.items = cow.items[1:]
	var grandChild *xnode[K, V]
	if !cow.isLeaf() {
		grandChild = cow.children[0]
		cow.children = cow.children[1:]
	}
	return cow, item, grandChild
}

// balance re-establishes the low water mark for an underfull child, either by
// borrowing an item from a sibling (rotation) or, if both siblings sit at the low
// water mark themselves, by merging the child with one of them.
func (parent slot[K, V]) balance(child slot[K, V], lowWaterMark uint) slot[K, V] {
	assertThat(len(parent.node.children) > 0, "attempt to balance parent w/ zero children")
	if !parent.leftSibling(child).underfull(lowWaterMark + 1) {
		// steal item from left sibling ⇒ rotate right
		return parent.rotateRight(parent.leftSibling(child), child)
	} else if !parent.rightSibling(child).underfull(lowWaterMark + 1) {
		// steal item from right sibling ⇒ rotate left
		return parent.rotateLeft(child, parent.rightSibling(child))
	}
	// steal item from parent and merge child with a sibling
	return parent.merge(parent.siblings2(child))
}

// merge steals the separator item from parent and merges two siblings around it
// into a single node. Returns a new parent which may be underfull or even empty
// (in case of parent being root).
func (parent slot[K, V]) merge(mi mergeinfo[K, V]) slot[K, V] {
	p := mi.parent // p.index points at the separator item between left and right
	assertThat(p.len() > 0, "attempt to extract an item from an empty parent node")
	separator := p.item()
	cow := p.node.withDeletedItem(p.index) // also drops the child link to mi.left
	lsbl, rsbl := mi.left, mi.right
	cowch := lsbl.node.cloneWithCapacity(lsbl.len() + rsbl.len() + 1)
	cowch.items = append(cowch.items, separator)
	cowch.items = append(cowch.items, rsbl.items()...)
	if !cowch.isLeaf() && rsbl.node != nil {
		cowch.children = append(cowch.children, rsbl.node.children...)
		assertThat(len(cowch.children) == len(cowch.items)+1, "internal inconsistency (during merge)")
	}
	cow.children[p.index] = &cowch // link merged node into new parent
	return slot[K, V]{node: &cow, index: p.index}
}

// rotateRight borrows the rightmost item of the left sibling: it moves up into the
// parent, and the separator item of the parent moves down into child.
func (parent slot[K, V]) rotateRight(lsbl, child slot[K, V]) slot[K, V] {
	cow := parent.node.clone()
	newParent := slot[K, V]{node: &cow, index: parent.index}
	// cut rightmost item from left sibling
	cowlsbl, upItem, grandChild := lsbl.node.withCutRight()
	// separator between lsbl and child sits left of the child link
	separator := newParent.replaceItem(upItem, parent.index-1)
	// separator becomes the leftmost item of child
	cowChild := child.node.withInsertedItem(separator, 0)
	if !cowChild.isLeaf() {
		cowChild.children[1] = cowChild.children[0]
		cowChild.children[0] = grandChild
	}
	// link new children of parent/cow
	cow.children[parent.index-1] = &cowlsbl
	cow.children[parent.index] = &cowChild
	return newParent
}

// rotateLeft borrows the leftmost item of the right sibling: it moves up into the
// parent, and the separator item of the parent moves down into child.
func (parent slot[K, V]) rotateLeft(child, rsbl slot[K, V]) slot[K, V] {
	cow := parent.node.clone()
	newParent := slot[K, V]{node: &cow, index: parent.index}
	// cut leftmost item from right sibling
	cowrsbl, upItem, grandChild := rsbl.node.withCutLeft()
	// separator between child and rsbl sits right of the child link
	separator := newParent.replaceItem(upItem, parent.index)
	// separator becomes the rightmost item of child
	cowChild := child.node.withInsertedItem(separator, len(child.node.items))
	if !cowChild.isLeaf() {
		cowChild.children[len(cowChild.children)-1] = grandChild
	}
	// link new children of parent/cow
	cow.children[parent.index] = &cowChild
	cow.children[parent.index+1] = &cowrsbl
	return newParent
}

// --- Tree bookkeeping ------------------------------------------------------

func (tree Tree[K, V]) shallowCloneWithRoot(node xnode[K, V]) Tree[K, V] {
	tree.root = &node
	return tree
}

func (tree Tree[K, V]) withDepth(d uint) Tree[K, V] {
	tree.depth = d
	return tree
}

func (tree Tree[K, V]) withSize(n int) Tree[K, V] {
	tree.size = n
	return tree
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("btree: "+msg, msgargs...)
		panic(msg)
	}
}

// ceiling rounds n up to an even number, used for slice capacity reservation.
func ceiling(n int) int {
	return ((n + 1) >> 1) << 1
}
