// Package field defines the zero-size typed field descriptor used as a key
// into the Object layer (spec.md §4.4/§6.3). It deliberately carries no
// logic of its own — only the registry knows a tag's kind and padding, and
// only the object package knows how to encode/decode through them — so that
// registry and object can both depend on field without a cycle.
package field

// Field is a compile-time marker that a given tag's logical value has Go
// type T. It carries no state beyond the tag; T is never stored, only used
// to select the right typed accessor at the call site and to catch
// tag/type mismatches at compile time for hand-written call sites.
type Field[T any] struct {
	Tag uint16
}
