/*
Package treeset implements an immutable persistent set with uniqueness by
equality plus a total order over its elements, backed by a persistent
B-tree.

The order defaults to the natural ordering of the element type and may be
replaced by a client-provided comparator at creation time.

Immutable sets are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treeset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.treeset'.
func tracer() tracing.Trace {
	return tracing.Select("fp.treeset")
}
