/*
Package list implements an immutable persistent singly-linked list.

Persistent lists are formed recursively from a head and a tail: the head is
the first element, the tail is a list holding the remaining elements. Each
“modification” returns a new list, leaving the original unmodified. Lists
share their tails: pushing an element onto a list creates a single new node
which links to the unchanged original.

Immutable lists are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}
