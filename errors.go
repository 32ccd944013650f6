package fp

import "fmt"

// The persistent container packages never return failure-carrying values;
// violating a precondition of an operation on a plain container (accessing
// the head of an empty list, indexing out of range) is considered misuse
// and panics with one of the error types below. Clients who prefer values
// over panics wrap the access in try.Of.

// EmptyCollectionError is the panic value for operations which require at
// least one element.
type EmptyCollectionError struct {
	Op string // the violating operation, e.g. "list.Head"
}

func (e EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s: empty collection", e.Op)
}

// IndexOutOfRangeError is the panic value for indexed access outside of
// [0, Length).
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Length)
}

// MultipleElementsError is the panic value for operations which require
// exactly one element.
type MultipleElementsError struct {
	Op   string
	Size int
}

func (e MultipleElementsError) Error() string {
	return fmt.Sprintf("%s: expected a single element, have %d", e.Op, e.Size)
}
