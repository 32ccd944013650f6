/*
Package stream implements an immutable, lazily-evaluated linked stream.

A stream is either empty or a Cons of a head element and a lazily
computed tail. Unlike a list, only the evaluated prefix of a stream is
kept in memory; tail elements are computed on demand and memoized, so
repeated traversal never re-executes the underlying generator. Streams
may be unbounded: operations like Take, Map and Filter defer their
continuation and terminate as long as the consumer only demands a bounded
prefix. Size and Last force the entire stream and must only be called on
bounded streams.

The memo cell of a stream's tail is the one mutable point in this module.
Forcing is thread-safe: a one-shot compare-and-set guarantees that of all
racing forcers only one result is ever retained. Under contention the
deferred computation may run more than once, with the losers discarding
their value; a side-effecting generator has to tolerate this.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.stream'.
func tracer() tracing.Trace {
	return tracing.Select("fp.stream")
}
