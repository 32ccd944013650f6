/*
Package hashset implements an immutable persistent set with uniqueness by
equality, backed by a hash array mapped trie (HAMT).

Elements are located by chunks of their 64-bit hash, 6 bits per trie
level; each node stores its occupied chunks in a bitmap and keeps a
compressed entry array. “Modifications” clone only the node path from the
root to the affected entry, sharing the rest of the trie with the
original set, which makes add, contains and remove run in amortized O(1).

Immutable sets are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.hashset'.
func tracer() tracing.Trace {
	return tracing.Select("fp.hashset")
}
