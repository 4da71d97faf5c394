// Package document implements the typed document layer over object.Object:
// the fourteen top-level FFD document variants, each a schema of field
// slots projected from (or into) an untyped Object (spec.md §4.5).
//
// Ten variants are named directly by spec.md: RegistrationReport,
// ShiftStartReport, Receipt, Bso, ShiftEndReport, FnCloseReport,
// RegistrationParamUpdateReport, PaymentStateReport, CorrectionReceipt,
// CorrectionBso. Four more — MarkingCodeRequest, MarkedProductSaleNotification,
// MarkingResponse, NotificationReceipt — belong to the "marking"/Честный Знак
// exchange described in original_source's server.rs and legacy.rs; spec.md's
// Non-goals do not exclude them, so they are carried here on the same
// mechanism.
package document

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/endian"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/object"
)

// Presence records whether a document's field slot must be present. The
// codec enforces Required at projection time; SometimesRequired is an
// application-level rule (spec.md §4.5) and is treated as Optional here.
type Presence uint8

const (
	PresenceOptional Presence = iota
	PresenceRequired
	PresenceSometimesRequired
)

// Slot is one entry in a document's schema: a tag, whether it must be
// present, and whether it may repeat.
type Slot struct {
	Tag      uint16
	Presence Presence
	Multi    bool
}

// Document is the common representation every variant wraps: its leading
// doc tag plus the untyped Object holding its fields. Concrete variant
// types (Receipt, Bso, ...) are thin named wrappers that pair this with
// their own schema, for callers that want a distinct Go type per variant.
//
// Sign is a side-channel field (spec.md §4.5): the provider's message
// fiscal sign, carried alongside the document rather than as one of its
// own TLV fields, nil when the document arrived (or was built) without
// one.
type Document struct {
	Tag    fdformat.DocTag
	Object *object.Object
	Sign   *[8]byte
}

// MessageFiscalSign decodes Sign as a big-endian uint64, or returns
// (0, false) when the document carries none.
func (d *Document) MessageFiscalSign() (uint64, bool) {
	if d.Sign == nil {
		return 0, false
	}

	return endian.GetBigEndianEngine().Uint64(d.Sign[:]), true
}

// SetMessageFiscalSign stores v as Sign's big-endian encoding.
func (d *Document) SetMessageFiscalSign(v uint64) {
	var sign [8]byte
	endian.GetBigEndianEngine().PutUint64(sign[:], v)
	d.Sign = &sign
}

// schemaFor returns the slot table for a known doc tag.
func schemaFor(tag fdformat.DocTag) ([]Slot, bool) {
	switch tag {
	case fdformat.DocRegistrationReport:
		return RegistrationReportSchema, true
	case fdformat.DocShiftStartReport:
		return ShiftStartReportSchema, true
	case fdformat.DocReceipt:
		return ReceiptSchema, true
	case fdformat.DocBso:
		return BsoSchema, true
	case fdformat.DocShiftEndReport:
		return ShiftEndReportSchema, true
	case fdformat.DocFnCloseReport:
		return FnCloseReportSchema, true
	case fdformat.DocRegistrationParamUpdateReport:
		return RegistrationParamUpdateReportSchema, true
	case fdformat.DocPaymentStateReport:
		return PaymentStateReportSchema, true
	case fdformat.DocCorrectionReceipt:
		return CorrectionReceiptSchema, true
	case fdformat.DocCorrectionBso:
		return CorrectionBsoSchema, true
	case fdformat.DocMarkingCodeRequest:
		return MarkingCodeRequestSchema, true
	case fdformat.DocMarkedProductSaleNotification:
		return MarkedProductSaleNotificationSchema, true
	case fdformat.DocMarkingResponse:
		return MarkingResponseSchema, true
	case fdformat.DocNotificationReceipt:
		return NotificationReceiptSchema, true
	default:
		return nil, false
	}
}

// FromObject validates o against tag's schema and wraps it as a Document.
// Missing Required slots produce errs.ErrMissingField; decoding failures
// from lower layers are never encountered here since o is already parsed.
func FromObject(tag fdformat.DocTag, o *object.Object) (*Document, error) {
	schema, ok := schemaFor(tag)
	if !ok {
		return nil, errors.Errorf("document: unknown doc tag %d", tag)
	}
	for _, slot := range schema {
		if slot.Presence == PresenceRequired && !o.Contains(slot.Tag) {
			return nil, errors.Wrapf(errs.ErrMissingField, "doc tag %d missing required field %d", tag, slot.Tag)
		}
	}

	return &Document{Tag: tag, Object: o}, nil
}

// IntoObject returns the underlying Object; documents carry no data beyond
// what the Object already holds, so this is the identity projection.
func (d *Document) IntoObject() *object.Object {
	return d.Object
}

// FromBytes parses a document body (the bytes following the leading doc
// tag's own TLV header is NOT expected here; callers dispatching from a
// container should strip the envelope first) as an Object and validates
// it against tag's schema.
func FromBytes(tag fdformat.DocTag, body []byte) (*Document, error) {
	o, err := object.FromBytes(body)
	if err != nil {
		return nil, errors.Wrapf(err, "doc tag %d", tag)
	}

	return FromObject(tag, o)
}

// IntoBytes serializes the document's Object back to wire bytes.
func (d *Document) IntoBytes() ([]byte, error) {
	return d.Object.IntoBytes()
}

// Dispatch reads the leading little-endian uint16 tag from b, interprets
// the remainder as the document's own Object frames (b itself starts with
// that tag's frame, i.e. the document IS the single outer frame), and
// returns the typed Document. Unknown leading tags are InvalidFormat.
func Dispatch(b []byte) (*Document, error) {
	if len(b) < 4 {
		return nil, errors.Wrapf(errs.ErrEof, "document bytes too short to contain a frame header")
	}
	tag := fdformat.DocTag(binary.LittleEndian.Uint16(b[0:2]))
	length := binary.LittleEndian.Uint16(b[2:4])
	if _, ok := schemaFor(tag); !ok {
		return nil, errors.Wrapf(errs.ErrInvalidFormat, "unrecognized document tag %d", tag)
	}
	if len(b)-4 < int(length) {
		return nil, errors.Wrapf(errs.ErrEof, "doc tag %d declares body length %d, only %d bytes remain", tag, length, len(b)-4)
	}

	return FromBytes(tag, b[4:4+int(length)])
}
