/*
Package btree implements a persistent (immutable) in-memory version of
B-trees, ordered by a client-provided comparator.

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.

“Modifying” operations clone the node path from the root down to the
affected leaf and share every other node with the previous incarnation of
the tree. Lookup, insertion and deletion all run in O(log n).

Immutable trees are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.btree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.btree")
}
