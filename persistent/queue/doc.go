/*
Package queue implements an immutable persistent FIFO queue.

A queue internally consists of two linked lists, front and rear. The front
list holds the elements to be dequeued, the rear list holds the enqueued
elements in reverse. Whenever the front list runs out of elements, the two
lists are swapped and the rear list is reversed, which makes enqueue and
dequeue run in amortized O(1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.queue'.
func tracer() tracing.Trace {
	return tracing.Select("fp.queue")
}
