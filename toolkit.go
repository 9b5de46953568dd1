// Package toolkit defines the contracts shared by the toolkit's generic
// containers and algorithms: the error taxonomy and the per-element
// cleanup callback.
//
// The containers live in their own packages (vec, list) and produce
// iterators speaking the protocol defined in the iterator package. The seq
// package provides algorithms written purely against that protocol, so one
// algorithm serves every container.
package toolkit

// Cleanup releases resources owned by one element, for example closing
// a handle the element wraps. Containers call it through Destroy,
// exactly once per element; it must not touch the container that
// invoked it.
type Cleanup[T any] func(*T)
