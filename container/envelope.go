// Package container implements the 12-byte provider envelope wrapped around
// a document's TLV body on the wire: a 4-byte header plus an optional 8-byte
// message fiscal sign, in front of the same TLV bytes object.FromBytes and
// document.FromBytes already parse (spec.md §4.6).
//
// The wire shape is ambiguous by design — a stream may be
// header(4) ‖ tlv_body, or header(4) ‖ message_fiscal_sign(8) ‖ tlv_body,
// depending on the upstream provider. Unwrap disambiguates by attempting an
// inner-TLV parse at both candidate offsets and accepting whichever one
// parses cleanly and consumes the whole remainder.
package container

import (
	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/document"
	"github.com/rufiscal/fdcodec/endian"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/object"
)

const (
	headerLen = 4
	signLen   = 8
)

// Envelope wraps a parsed document body with its provider sidecar. Sign is
// nil when the stream carried no message fiscal sign.
type Envelope struct {
	Header [headerLen]byte
	Sign   *[signLen]byte
	Body   []byte // the raw TLV bytes following Header (and Sign, if present)
}

// Unwrap splits b into its header, optional sign, and TLV body, trying the
// shorter (signless) form first. A candidate offset wins when the bytes from
// that offset onward parse as a complete, self-consistent Object with no
// trailing garbage.
func Unwrap(b []byte) (*Envelope, error) {
	if len(b) < headerLen {
		return nil, errors.Wrap(errs.ErrEof, "container: buffer shorter than header")
	}

	var header [headerLen]byte
	copy(header[:], b[:headerLen])

	if body := b[headerLen:]; parsesCleanly(body) {
		return &Envelope{Header: header, Body: body}, nil
	}

	if len(b) >= headerLen+signLen {
		var sign [signLen]byte
		copy(sign[:], b[headerLen:headerLen+signLen])
		body := b[headerLen+signLen:]
		if parsesCleanly(body) {
			return &Envelope{Header: header, Sign: &sign, Body: body}, nil
		}
	}

	return nil, errors.Wrap(errs.ErrInvalidFormat, "container: body does not parse as TLV at either candidate offset")
}

// parsesCleanly reports whether body is a non-empty, fully-consumed TLV
// stream: object.FromBytes accepts trailing-garbage-free input only.
func parsesCleanly(body []byte) bool {
	if len(body) == 0 {
		return false
	}
	if _, err := object.FromBytes(body); err != nil {
		return false
	}

	return true
}

// Wrap concatenates header, an optional sign, and body into the requested
// wire form: header‖body when sign is nil, header‖sign‖body otherwise.
func Wrap(header [headerLen]byte, sign *[signLen]byte, body []byte) []byte {
	size := headerLen + len(body)
	if sign != nil {
		size += signLen
	}
	out := make([]byte, 0, size)
	out = append(out, header[:]...)
	if sign != nil {
		out = append(out, sign[:]...)
	}
	out = append(out, body...)

	return out
}

// MessageFiscalSign decodes Sign as a big-endian uint64, or returns
// (0, false) when the envelope carries none.
func (e *Envelope) MessageFiscalSign() (uint64, bool) {
	if e.Sign == nil {
		return 0, false
	}

	return endian.GetBigEndianEngine().Uint64(e.Sign[:]), true
}

// SetMessageFiscalSign stores v as Sign's big-endian encoding.
func (e *Envelope) SetMessageFiscalSign(v uint64) {
	var sign [signLen]byte
	endian.GetBigEndianEngine().PutUint64(sign[:], v)
	e.Sign = &sign
}

// DecodeDocument unwraps b and parses its TLV body as a document of tag, in
// one step, carrying any envelope sign over onto the returned Document's
// own Sign field (spec.md §4.5's document-level side channel).
func DecodeDocument(tag fdformat.DocTag, b []byte) (*Envelope, *document.Document, error) {
	e, err := Unwrap(b)
	if err != nil {
		return nil, nil, err
	}
	doc, err := document.FromBytes(tag, e.Body)
	if err != nil {
		return nil, nil, err
	}
	doc.Sign = e.Sign

	return e, doc, nil
}

// EncodeDocument serializes doc and wraps it with header into a single wire
// buffer, carrying doc.Sign over as the envelope's sign.
func EncodeDocument(header [headerLen]byte, doc *document.Document) ([]byte, error) {
	body, err := doc.IntoBytes()
	if err != nil {
		return nil, err
	}

	return Wrap(header, doc.Sign, body), nil
}
