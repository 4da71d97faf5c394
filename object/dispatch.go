package object

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/fdval"
)

// DecodeByKindExported exposes decodeByKind to other codec-layer packages
// (document's JSON bridge) that need to decode a raw wire value without
// going through a typed field.Field[T].
func DecodeByKindExported(kind fdformat.Kind, raw []byte, pad fdpad.Policy) (any, error) {
	return decodeByKind(kind, raw, pad)
}

// EncodeByKindExported is DecodeByKindExported's encode-side counterpart.
func EncodeByKindExported(kind fdformat.Kind, v any, pad fdpad.Policy) ([]byte, error) {
	return encodeByKind(kind, v, pad)
}

// decodeByKind decodes raw wire bytes into the logical any value for kind,
// matching the Go type a field.Field[T] of that kind's table entry in
// registry carries (see the field.Field[T] type parameters declared in
// fields_*.go). Object-kind values
// decode to their raw bytes; recursive parsing is GetNestedObject's job.
func decodeByKind(kind fdformat.Kind, raw []byte, pad fdpad.Policy) (any, error) {
	switch kind {
	case fdformat.KindBool:
		return fdval.DecodeBool(raw, pad)
	case fdformat.KindString:
		return fdval.DecodeString(raw), nil
	case fdformat.KindBytes, fdformat.KindFixedBytes, fdformat.KindObject:
		return fdval.DecodeBytes(raw), nil
	case fdformat.KindU8, fdformat.KindU16, fdformat.KindU32, fdformat.KindU64:
		return fdval.DecodeUint(raw, kind, pad)
	case fdformat.KindVarFloat:
		return fdval.DecodeVarFloat(raw, pad)
	case fdformat.KindDateTime:
		return fdval.DecodeDateTime(raw, pad)
	case fdformat.KindDate:
		return fdval.DecodeDate(raw, pad)
	case fdformat.KindEnum:
		v, err := fdval.DecodeEnum(raw, pad)

		return uint64(v), err
	default:
		return nil, errors.Errorf("object: unhandled kind %s", kind)
	}
}

// encodeByKind is decodeByKind's inverse, dispatching on the concrete type
// of v rather than on kind, since the caller already knows kind matches v's
// static type through field.Field[T].
func encodeByKind(kind fdformat.Kind, v any, pad fdpad.Policy) ([]byte, error) {
	switch kind {
	case fdformat.KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, errors.Errorf("object: expected bool, got %T", v)
		}

		return fdval.EncodeBool(b, pad)

	case fdformat.KindString:
		s, ok := v.(string)
		if !ok {
			return nil, errors.Errorf("object: expected string, got %T", v)
		}

		return fdval.EncodeString(s, pad)

	case fdformat.KindBytes, fdformat.KindFixedBytes, fdformat.KindObject:
		b, ok := v.([]byte)
		if !ok {
			return nil, errors.Errorf("object: expected []byte, got %T", v)
		}

		return fdval.EncodeBytes(b, pad)

	case fdformat.KindU8, fdformat.KindU16, fdformat.KindU32, fdformat.KindU64:
		n, ok := v.(uint64)
		if !ok {
			return nil, errors.Errorf("object: expected uint64, got %T", v)
		}

		return fdval.EncodeUint(n, kind, pad)

	case fdformat.KindVarFloat:
		f, ok := v.(fdval.VarFloat)
		if !ok {
			return nil, errors.Errorf("object: expected fdval.VarFloat, got %T", v)
		}

		return fdval.EncodeVarFloat(f, pad)

	case fdformat.KindDateTime:
		t, ok := v.(time.Time)
		if !ok {
			return nil, errors.Errorf("object: expected time.Time, got %T", v)
		}

		return fdval.EncodeDateTime(t, pad)

	case fdformat.KindDate:
		t, ok := v.(time.Time)
		if !ok {
			return nil, errors.Errorf("object: expected time.Time, got %T", v)
		}

		return fdval.EncodeDate(t, pad)

	case fdformat.KindEnum:
		n, ok := v.(uint64)
		if !ok {
			return nil, errors.Errorf("object: expected uint64, got %T", v)
		}
		if n > 0xFF {
			return nil, errors.Errorf("object: enum discriminant %d overflows a byte", n)
		}

		return fdval.EncodeEnum(uint8(n), pad)

	default:
		return nil, errors.Errorf("object: unhandled kind %s", kind)
	}
}
