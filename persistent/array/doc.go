/*
Package array implements an immutable indexed sequence with efficient
random access, backed by a contiguous buffer.

Arrays have copy-on-write behaviour: each “modification” (replacement,
removal, insertion) copies the minimal required region of the buffer into
a new array of adjusted length, leaving the original unmodified. Reads
never copy.

Immutable arrays are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package array

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.array'.
func tracer() tracing.Trace {
	return tracing.Select("fp.array")
}
