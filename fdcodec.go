// Package fdcodec is the consumer-facing entry point for reading and
// writing Russian fiscal-document (FFD) TLV data: parse a provider
// envelope or a bare document body, project it into one of the fourteen
// typed document variants, and move between that representation and its
// JSON mirror (spec.md §6.3).
//
// Most callers only need Dispatch (bytes in, typed Document out),
// ToJSON/FromJSON (Document <-> JSON), and the container package's
// Wrap/Unwrap when the provider envelope sidecar is in play.
package fdcodec

import (
	"github.com/rufiscal/fdcodec/container"
	"github.com/rufiscal/fdcodec/document"
	"github.com/rufiscal/fdcodec/fdformat"
)

// Document re-exports document.Document so callers need only import this
// package for the common path.
type Document = document.Document

// Envelope re-exports container.Envelope.
type Envelope = container.Envelope

// Dispatch parses b as a single top-level document frame: a leading
// little-endian tag+length header followed by that tag's TLV body, with no
// provider envelope. Use container.Unwrap first when b carries one.
func Dispatch(b []byte) (*Document, error) {
	return document.Dispatch(b)
}

// DecodeEnvelope unwraps a provider-enveloped buffer and parses its TLV
// body as a document of the given variant in one step.
func DecodeEnvelope(tag fdformat.DocTag, b []byte) (*Envelope, *Document, error) {
	return container.DecodeDocument(tag, b)
}

// ToJSON renders d as the consumer-facing JSON map spec.md §6.2 describes,
// keyed by each field's registry JSON name plus the leading "code" field.
func ToJSON(d *Document) (map[string]any, error) {
	return d.ToJSON()
}

// FromJSON builds a Document of the given variant from a JSON-decoded map.
func FromJSON(tag fdformat.DocTag, m map[string]any) (*Document, error) {
	return document.FromJSON(tag, m)
}

// VariantName returns the JSON wrapper key spec.md §6.2 uses for tag, e.g.
// "receipt" for fdformat.DocReceipt.
func VariantName(tag fdformat.DocTag) (string, bool) {
	return document.VariantName(tag)
}
