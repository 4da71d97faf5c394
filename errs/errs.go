// Package errs defines the sentinel error values returned by every layer of
// the fiscal-data codec: value, padding, registry, object, document, and
// container. Higher layers wrap these with github.com/pkg/errors to attach
// context (tag, document variant, field name) without losing the sentinel
// identity, so callers can still compare with errors.Is.
package errs

import "errors"

var (
	// ErrEof is returned when a TLV frame or fixed-width value is truncated.
	ErrEof = errors.New("fdcodec: unexpected end of input")

	// ErrInvalidFormat is returned for a byte pattern invalid for its declared
	// kind, an unrecognized top-level document tag, or inconsistent nested
	// TLV structure.
	ErrInvalidFormat = errors.New("fdcodec: invalid format")

	// ErrNumberOutOfRange is returned when an integer value exceeds the width
	// its padding policy declares.
	ErrNumberOutOfRange = errors.New("fdcodec: number out of range")

	// ErrInvalidLength is returned when a fixed-length field receives a
	// wrong-size input on encode or decode.
	ErrInvalidLength = errors.New("fdcodec: invalid length")

	// ErrMissingField is returned at document-projection time when a required
	// field slot has no bound value. The bytes it was decoded from may still
	// round-trip through the Object layer even though projection failed.
	ErrMissingField = errors.New("fdcodec: missing required field")

	// ErrUnknownTag is returned when the field registry has no entry for a
	// requested tag. This is not raised by Object decode (unknown tags are
	// preserved opaquely there); it is raised by typed lookups that require
	// a registry entry.
	ErrUnknownTag = errors.New("fdcodec: unknown tag")

	// ErrRecursionLimit is returned when nested Object-kind fields exceed the
	// configured recursion depth, guarding against stack exhaustion from
	// hostile input.
	ErrRecursionLimit = errors.New("fdcodec: object nesting too deep")

	// ErrDuplicateTag is the error the field-registry build check panics with
	// when two entries declare the same tag.
	ErrDuplicateTag = errors.New("fdcodec: duplicate tag in registry")

	// ErrFiscalSignMismatch is returned by the persistence dedupe tracker
	// when a document is re-persisted under the same (fn, doc_num) key with
	// a different fiscal sign than the one the tracker recorded earlier for
	// that key.
	ErrFiscalSignMismatch = errors.New("fdcodec: fiscal sign mismatch for already-persisted document")
)
