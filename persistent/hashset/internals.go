package hashset

import (
	"fmt"
	"math/bits"
)

const (
	chunkBits = 6                  // hash bits consumed per trie level
	chunkMask = (1 << chunkBits) - 1
	maxShift  = 64                 // beyond this the hash is exhausted
)

// hnode is a HAMT node. The bitmap records which hash chunks are
// occupied; entries is the compressed array of occupants, indexed by the
// popcount of the bitmap below the chunk's bit. Nodes are never mutated
// after construction.
type hnode[T comparable] struct {
	bitmap  uint64
	entries []entry[T]
}

// entry is an occupant of a node: either a sub-trie or a bucket of
// elements. A bucket usually holds a single element; only full 64-bit
// hash collisions make it grow.
type entry[T comparable] struct {
	child  *hnode[T] // non-nil for a sub-trie
	bucket []T       // elements, for a leaf entry
}

func (node *hnode[T]) slotFor(h uint64, shift uint) (bit uint64, pos int) {
	chunk := (h >> shift) & chunkMask
	bit = uint64(1) << chunk
	pos = bits.OnesCount64(node.bitmap & (bit - 1))
	return
}

// clone copies a node for change-on-write, with room for extra entries.
func (node *hnode[T]) clone(extra int) *hnode[T] {
	cow := &hnode[T]{bitmap: node.bitmap}
	cow.entries = make([]entry[T], len(node.entries), len(node.entries)+extra)
	copy(cow.entries, node.entries)
	return cow
}

func (node *hnode[T]) contains(v T, h uint64, shift uint) bool {
	if shift >= maxShift {
		// hash exhausted, node degenerates to a single bucket entry
		return bucketContains(node.entries[0].bucket, v)
	}
	bit, pos := node.slotFor(h, shift)
	if node.bitmap&bit == 0 {
		return false
	}
	e := node.entries[pos]
	if e.child != nil {
		return e.child.contains(v, h, shift+chunkBits)
	}
	return bucketContains(e.bucket, v)
}

// withAdded returns a copy of the node with v inserted. The caller
// guarantees that v is not yet present.
func (node *hnode[T]) withAdded(v T, h uint64, shift uint) *hnode[T] {
	if shift >= maxShift {
		cow := node.clone(0)
		if len(cow.entries) == 0 {
			cow.entries = []entry[T]{{bucket: []T{v}}}
		} else {
			cow.entries[0] = entry[T]{bucket: appendToBucket(cow.entries[0].bucket, v)}
		}
		return cow
	}
	bit, pos := node.slotFor(h, shift)
	if node.bitmap&bit == 0 { // free slot, insert a fresh leaf entry
		cow := node.clone(1)
		cow.bitmap |= bit
		cow.entries = append(cow.entries[:pos], append([]entry[T]{{bucket: []T{v}}}, cow.entries[pos:]...)...)
		return cow
	}
	e := node.entries[pos]
	cow := node.clone(0)
	if e.child != nil {
		cow.entries[pos] = entry[T]{child: e.child.withAdded(v, h, shift+chunkBits)}
		return cow
	}
	// occupied leaf: all bucket elements share this chunk, split deeper
	tracer().Debugf("chunk collision at shift %d, splitting into sub-trie", shift)
	child := &hnode[T]{}
	for _, b := range e.bucket {
		child = child.withAdded(b, hashOf(b), shift+chunkBits)
	}
	child = child.withAdded(v, h, shift+chunkBits)
	cow.entries[pos] = entry[T]{child: child}
	return cow
}

// withRemoved returns a copy of the node with v removed, or nil if the
// node ends up empty. The caller guarantees that v is present.
func (node *hnode[T]) withRemoved(v T, h uint64, shift uint) *hnode[T] {
	if shift >= maxShift {
		bucket := removeFromBucket(node.entries[0].bucket, v)
		if len(bucket) == 0 {
			return nil
		}
		cow := node.clone(0)
		cow.entries[0] = entry[T]{bucket: bucket}
		return cow
	}
	bit, pos := node.slotFor(h, shift)
	assertThat(node.bitmap&bit != 0, "attempt to remove element from vacant slot")
	e := node.entries[pos]
	if e.child != nil {
		child := e.child.withRemoved(v, h, shift+chunkBits)
		if child == nil {
			return node.withoutEntry(bit, pos)
		}
		cow := node.clone(0)
		cow.entries[pos] = entry[T]{child: child}
		return cow
	}
	bucket := removeFromBucket(e.bucket, v)
	if len(bucket) == 0 {
		return node.withoutEntry(bit, pos)
	}
	cow := node.clone(0)
	cow.entries[pos] = entry[T]{bucket: bucket}
	return cow
}

func (node *hnode[T]) withoutEntry(bit uint64, pos int) *hnode[T] {
	if len(node.entries) == 1 {
		return nil
	}
	cow := &hnode[T]{bitmap: node.bitmap &^ bit}
	cow.entries = make([]entry[T], 0, len(node.entries)-1)
	cow.entries = append(cow.entries, node.entries[:pos]...)
	cow.entries = append(cow.entries, node.entries[pos+1:]...)
	return cow
}

func (node *hnode[T]) all(yield func(T) bool) bool {
	for _, e := range node.entries {
		if e.child != nil {
			if !e.child.all(yield) {
				return false
			}
			continue
		}
		for _, v := range e.bucket {
			if !yield(v) {
				return false
			}
		}
	}
	return true
}

func (node *hnode[T]) forEach(action func(T)) {
	for _, e := range node.entries {
		if e.child != nil {
			e.child.forEach(action)
			continue
		}
		for _, v := range e.bucket {
			action(v)
		}
	}
}

// --- Bucket helpers --------------------------------------------------------

func bucketContains[T comparable](bucket []T, v T) bool {
	for _, b := range bucket {
		if b == v {
			return true
		}
	}
	return false
}

func appendToBucket[T comparable](bucket []T, v T) []T {
	cow := make([]T, len(bucket), len(bucket)+1)
	copy(cow, bucket)
	return append(cow, v)
}

func removeFromBucket[T comparable](bucket []T, v T) []T {
	cow := make([]T, 0, len(bucket))
	for _, b := range bucket {
		if b != v {
			cow = append(cow, b)
		}
	}
	return cow
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashset: "+msg, msgargs...)
		panic(msg)
	}
}
