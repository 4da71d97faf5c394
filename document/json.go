package document

import (
	"encoding/base64"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdval"
	"github.com/rufiscal/fdcodec/object"
	"github.com/rufiscal/fdcodec/registry"
)

// bitsetTags lists the enum fields serialized as a JSON array of set bit
// positions rather than a single discriminant integer (spec.md §6.2).
var bitsetTags = map[uint16]bool{
	1205: true, // KktInfoUpdateReason
}

// ToJSON renders the document's fields as a JSON-ready map, keyed by each
// tag's registry JSON name (resolved against this document's own tag as
// the enclosing context for alias overrides), plus the special leading
// "code" key carrying the document's own outer tag (spec.md §6.2).
//
// "messageFiscalSign" and "rawData" are sibling keys in the same map, not
// a separately-merged envelope object (original_source's FiscalReport
// struct nests them directly alongside a document's own fields, e.g.
// inside "receipt"). They are included only when present: "rawData" when
// the document's bytes can be reconstructed, "messageFiscalSign" when the
// document carries a Sign.
func (d *Document) ToJSON() (map[string]any, error) {
	m, err := objectToJSON(d.Object, uint16(d.Tag))
	if err != nil {
		return nil, err
	}
	m["code"] = int(d.Tag)

	if raw, err := d.IntoBytes(); err == nil {
		m["rawData"] = base64.StdEncoding.EncodeToString(raw)
	}
	if sign, ok := d.MessageFiscalSign(); ok {
		m["messageFiscalSign"] = sign
	}

	return m, nil
}

// variantJSONNames maps each doc tag to the key spec.md §6.2 wraps its
// fields under when embedded as `{ "<name>": { ... } }`.
var variantJSONNames = map[fdformat.DocTag]string{
	fdformat.DocRegistrationReport:            "registrationReport",
	fdformat.DocShiftStartReport:              "openShift",
	fdformat.DocReceipt:                       "receipt",
	fdformat.DocBso:                           "bso",
	fdformat.DocShiftEndReport:                "closeShift",
	fdformat.DocFnCloseReport:                 "closeFn",
	fdformat.DocRegistrationParamUpdateReport: "registrationParamUpdate",
	fdformat.DocPaymentStateReport:            "currentStateReport",
	fdformat.DocCorrectionReceipt:             "correctionReceipt",
	fdformat.DocCorrectionBso:                 "correctionBso",
	fdformat.DocMarkingCodeRequest:            "markingCodeRequest",
	fdformat.DocMarkedProductSaleNotification: "markedProductSaleNotification",
	fdformat.DocMarkingResponse:               "markingResponse",
	fdformat.DocNotificationReceipt:           "notificationReceipt",
}

// VariantName returns the JSON wrapper key for tag, per spec.md §6.2.
func VariantName(tag fdformat.DocTag) (string, bool) {
	name, ok := variantJSONNames[tag]

	return name, ok
}

// WrapJSON nests fields under its variant's JSON key, e.g. {"receipt": {...}}.
func WrapJSON(tag fdformat.DocTag, fields map[string]any) (map[string]any, error) {
	name, ok := VariantName(tag)
	if !ok {
		return nil, errors.Errorf("document: no JSON variant name for tag %d", tag)
	}

	return map[string]any{name: fields}, nil
}

// UnwrapJSON finds the single variant key in a `{ "<name>": {...} }` wrapper
// and returns its tag and inner field map.
func UnwrapJSON(m map[string]any) (fdformat.DocTag, map[string]any, error) {
	for name, v := range m {
		for tag, candidate := range variantJSONNames {
			if candidate != name {
				continue
			}
			fields, ok := v.(map[string]any)
			if !ok {
				return 0, nil, errors.Errorf("document: %q value is not an object", name)
			}

			return tag, fields, nil
		}
	}

	return 0, nil, errors.New("document: no recognized variant key")
}

// FromJSON builds a Document of the given variant from a JSON-decoded map
// (as produced by encoding/json.Unmarshal into map[string]any).
//
// "rawData" is never consulted: a document's fields always come from their
// own named keys, and original_source marks raw_data optional and commonly
// absent (skip_serializing_if = "Option::is_none") rather than something a
// reader must reconstruct from. "messageFiscalSign" is read tolerantly
// (spec.md §6.2 rule (e)): a non-integral float deserializes to no sign
// rather than an error.
//
// Validation here only enforces Required slots that the registry actually
// exposes under a JSON name for this document's tag. original_source's field
// table marks some slots Form::PRINTED rather than Form::ELECTRONIC (e.g.
// tag 1000's document name) — they belong to the printed-receipt rendering,
// never appear in an OFD JSON payload, and so carry no JSON name at all.
// Demanding them here would make FromJSON reject every real-world JSON
// document. FromBytes/FromObject, decoding a complete wire object, still
// enforce the full schema.
func FromJSON(tag fdformat.DocTag, m map[string]any) (*Document, error) {
	o, err := objectFromJSON(m, uint16(tag))
	if err != nil {
		return nil, err
	}

	schema, ok := schemaFor(tag)
	if !ok {
		return nil, errors.Errorf("document: unknown doc tag %d", tag)
	}
	for _, slot := range schema {
		if slot.Presence != PresenceRequired {
			continue
		}
		if _, hasName := registry.JSONName(slot.Tag, uint16(tag)); !hasName {
			continue
		}
		if !o.Contains(slot.Tag) {
			return nil, errors.Wrapf(errs.ErrMissingField, "doc tag %d missing required field %d", tag, slot.Tag)
		}
	}

	d := &Document{Tag: tag, Object: o}
	if v, present := m["messageFiscalSign"]; present {
		if sign, ok := exactUint64(v); ok {
			d.SetMessageFiscalSign(sign)
		}
		// non-integer (e.g. a float) or out-of-range: silently no sign, per
		// the tolerance rule — this is not a format error.
	}

	return d, nil
}

// exactUint64 accepts only JSON-decoded integral numbers (no fractional
// part) and already-typed integers; a bare float like 1.5 is rejected so it
// falls through to the "no sign" tolerance path rather than being truncated.
func exactUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case int:
		if n < 0 {
			return 0, false
		}

		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}

		return uint64(n), true
	case float64:
		if n < 0 || n != float64(int64(n)) {
			return 0, false
		}

		return uint64(n), true
	default:
		return 0, false
	}
}

func objectToJSON(o *object.Object, enclosingTag uint16) (map[string]any, error) {
	out := make(map[string]any)
	for _, tag := range o.Tags() {
		entry, ok := registry.Lookup(tag)
		if !ok {
			continue // unknown tags are preserved on the wire but not surfaced to JSON
		}
		name, hasName := registry.JSONName(tag, enclosingTag)
		if !hasName {
			continue
		}

		if entry.Multi {
			arr, err := jsonMultiValues(o, tag, entry)
			if err != nil {
				return nil, err
			}
			out[name] = arr

			continue
		}

		v, err := jsonValueForTag(o, tag, entry, enclosingTag)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}

	return out, nil
}

func jsonMultiValues(o *object.Object, tag uint16, entry registry.Entry) ([]any, error) {
	if entry.Kind == fdformat.KindObject {
		children, err := o.GetAllNestedObjects(tag)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(children))
		for _, child := range children {
			v, err := objectToJSON(child, tag)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	}

	raws := o.RawGetAll(tag)
	out := make([]any, 0, len(raws))
	for _, raw := range raws {
		v, err := decodeScalarJSON(raw, entry)
		if err != nil {
			return nil, errors.Wrapf(err, "tag %d", tag)
		}
		out = append(out, v)
	}

	return out, nil
}

func jsonValueForTag(o *object.Object, tag uint16, entry registry.Entry, enclosingTag uint16) (any, error) {
	if entry.Kind == fdformat.KindObject {
		child, ok, err := o.GetNestedObject(tag)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}

		return objectToJSON(child, tag)
	}

	raw, ok := o.RawGet(tag)
	if !ok {
		return nil, nil
	}
	v, err := decodeScalarJSON(raw, entry)
	if err != nil {
		return nil, errors.Wrapf(err, "tag %d", tag)
	}

	return v, nil
}

func decodeScalarJSON(raw []byte, entry registry.Entry) (any, error) {
	boxed, err := object.DecodeByKindExported(entry.Kind, raw, entry.Pad)
	if err != nil {
		return nil, err
	}

	switch entry.Kind {
	case fdformat.KindBool:
		if boxed.(bool) {
			return 1, nil
		}

		return 0, nil

	case fdformat.KindBytes, fdformat.KindFixedBytes:
		return base64.StdEncoding.EncodeToString(boxed.([]byte)), nil

	case fdformat.KindDate:
		return boxed.(time.Time).Format("2006-01-02"), nil

	case fdformat.KindDateTime:
		return boxed.(time.Time).Unix(), nil

	case fdformat.KindVarFloat:
		return boxed.(fdval.VarFloat).Float64(), nil

	case fdformat.KindEnum:
		v := boxed.(uint64)
		if bitsetTags[entry.Tag] {
			positions := fdformat.BitPositions(v)
			out := make([]any, len(positions))
			for i, p := range positions {
				out[i] = p
			}

			return out, nil
		}

		return v, nil

	default:
		return boxed, nil
	}
}

func objectFromJSON(m map[string]any, enclosingTag uint16) (*object.Object, error) {
	o := object.New()

	// Go's map iteration order is randomized, but frame insertion order
	// becomes part of a document's own wire bytes (object.Object.IntoBytes).
	// Walking keys in a fixed order keeps two Objects built from the same
	// logical JSON identical on the wire instead of merely JSON-equal.
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := m[key]
		tag, ok := registry.TagForJSONName(key, enclosingTag)
		if !ok {
			continue // unknown-key-drop (spec.md §6.2)
		}
		entry, _ := registry.Lookup(tag)

		if entry.Multi {
			items := coerceToSlice(raw)
			for _, item := range items {
				if err := pushJSONValue(o, tag, entry, item); err != nil {
					return nil, err
				}
			}

			continue
		}

		if err := setJSONValue(o, tag, entry, raw); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// coerceToSlice implements the single-or-many coercion rule: a bare scalar
// or object is treated as a one-element list.
func coerceToSlice(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}

	return []any{v}
}

func setJSONValue(o *object.Object, tag uint16, entry registry.Entry, raw any) error {
	if entry.Kind == fdformat.KindObject {
		m, ok := raw.(map[string]any)
		if !ok {
			return errors.Errorf("tag %d expects a JSON object", tag)
		}
		child, err := objectFromJSON(m, tag)
		if err != nil {
			return err
		}

		return o.PushNestedObject(tag, child)
	}

	wireBytes, err := encodeScalarJSON(raw, entry)
	if err != nil {
		return errors.Wrapf(err, "tag %d", tag)
	}
	o.RawSet(tag, wireBytes)

	return nil
}

func pushJSONValue(o *object.Object, tag uint16, entry registry.Entry, raw any) error {
	if entry.Kind == fdformat.KindObject {
		m, ok := raw.(map[string]any)
		if !ok {
			return errors.Errorf("tag %d expects a JSON object", tag)
		}
		child, err := objectFromJSON(m, tag)
		if err != nil {
			return err
		}

		return o.PushNestedObject(tag, child)
	}

	wireBytes, err := encodeScalarJSON(raw, entry)
	if err != nil {
		return errors.Wrapf(err, "tag %d", tag)
	}
	o.RawPush(tag, wireBytes)

	return nil
}

func encodeScalarJSON(raw any, entry registry.Entry) ([]byte, error) {
	var boxed any

	switch entry.Kind {
	case fdformat.KindBool:
		n, err := asFloat(raw)
		if err != nil {
			return nil, err
		}
		boxed = n != 0

	case fdformat.KindBytes, fdformat.KindFixedBytes:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("expected base64 string")
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, errors.Wrap(err, "invalid base64")
		}
		boxed = b

	case fdformat.KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("expected string")
		}
		boxed = s

	case fdformat.KindDate:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("expected ISO date string")
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, errors.Wrap(err, "invalid date")
		}
		boxed = t

	case fdformat.KindDateTime:
		n, err := asFloat(raw)
		if err != nil {
			return nil, err
		}
		boxed = time.Unix(int64(n), 0)

	case fdformat.KindU8, fdformat.KindU16, fdformat.KindU32, fdformat.KindU64:
		n, err := asFloat(raw)
		if err != nil {
			return nil, err
		}
		boxed = uint64(n) // tolerant float->int truncation

	case fdformat.KindVarFloat:
		n, err := asFloat(raw)
		if err != nil {
			return nil, err
		}
		boxed = fdval.VarFloatFromFloat64(n, varFloatScaleHint)

	case fdformat.KindEnum:
		if bitsetTags[entry.Tag] {
			items := coerceToSlice(raw)
			positions := make([]int, 0, len(items))
			for _, it := range items {
				n, err := asFloat(it)
				if err != nil {
					return nil, err
				}
				positions = append(positions, int(n))
			}
			boxed = fdformat.MaskFromBitPositions(positions)

			break
		}
		n, err := asFloat(raw)
		if err != nil {
			return nil, err
		}
		boxed = uint64(n)

	default:
		return nil, errors.Errorf("unhandled kind %s", entry.Kind)
	}

	return object.EncodeByKindExported(entry.Kind, boxed, entry.Pad)
}

// varFloatScaleHint is the decimal precision assumed when a VarFloat field
// arrives as a bare JSON float rather than a pre-scaled VarFloat value.
// Three digits covers every quantity/money field in the catalogue; exact
// round-tripping of TLV-sourced JSON always carries its own Scale via
// fdval.VarFloat and does not go through this path.
const varFloatScaleHint = 3

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, errors.Errorf("expected a number, got %T", v)
	}
}
