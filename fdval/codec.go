// Package fdval is the value codec: it converts between a typed logical
// value and its padded wire form, per spec.md §4.1. It knows nothing about
// tags or documents — that is the registry and object layers' job.
package fdval

import (
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
)

func kindWidth(kind fdformat.Kind) int {
	switch kind {
	case fdformat.KindU8, fdformat.KindBool, fdformat.KindEnum:
		return 1
	case fdformat.KindU16:
		return 2
	case fdformat.KindU32, fdformat.KindDateTime, fdformat.KindDate:
		return 4
	case fdformat.KindU64:
		return 8
	default:
		return 0
	}
}

// EncodeUint encodes v as the minimal little-endian byte sequence for kind's
// declared width (trailing zero bytes beyond the first are dropped, per
// spec.md §4.1), then applies the padding policy. Fixed policies reject a
// value whose minimal representation does not fit in the declared width.
func EncodeUint(v uint64, kind fdformat.Kind, pad fdpad.Policy) ([]byte, error) {
	width := kindWidth(kind)
	if width == 0 || width > 8 {
		return nil, errors.Errorf("fdval: %s is not an integer kind", kind)
	}

	full := make([]byte, 8)
	binary.LittleEndian.PutUint64(full, v)
	trimmed := trimTrailingZeros(full[:width])

	if pad.Kind() == fdpad.KindFixed {
		if uint32(len(trimmed)) > pad.Len() {
			return nil, errors.Wrapf(errs.ErrNumberOutOfRange, "value %d needs %d bytes, fixed width is %d", v, len(trimmed), pad.Len())
		}
		out := make([]byte, pad.Len())
		copy(out, trimmed)

		return out, nil
	}

	return pad.Apply(trimmed)
}

// trimTrailingZeros drops trailing zero bytes from a little-endian integer
// representation, keeping at least one byte.
func trimTrailingZeros(b []byte) []byte {
	end := len(b)
	for end > 1 && b[end-1] == 0 {
		end--
	}

	return b[:end]
}

// DecodeUint decodes a little-endian integer, zero-extending a short read on
// the right (spec.md §4.1) after trimming any Right-padding.
func DecodeUint(raw []byte, kind fdformat.Kind, pad fdpad.Policy) (uint64, error) {
	trimmed := pad.Trim(raw, kind)
	if len(trimmed) > 8 {
		return 0, errors.Wrapf(errs.ErrInvalidFormat, "integer wire form is %d bytes, exceeds u64 width", len(trimmed))
	}

	full := make([]byte, 8)
	copy(full, trimmed)

	return binary.LittleEndian.Uint64(full), nil
}

// EncodeBool encodes a boolean as a single 0/1 byte, then applies padding.
func EncodeBool(v bool, pad fdpad.Policy) ([]byte, error) {
	b := byte(0)
	if v {
		b = 1
	}

	return pad.Apply([]byte{b})
}

// DecodeBool decodes a boolean. An all-padding wire value (trimmed to zero
// length) decodes to false, matching the zero-extension rule for numeric
// kinds. Any trimmed value other than a single 0 or 1 byte is InvalidFormat.
func DecodeBool(raw []byte, pad fdpad.Policy) (bool, error) {
	trimmed := pad.Trim(raw, fdformat.KindBool)
	switch len(trimmed) {
	case 0:
		return false, nil
	case 1:
		switch trimmed[0] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return false, errors.Wrapf(errs.ErrInvalidFormat, "bool byte %#x is neither 0 nor 1", trimmed[0])
		}
	default:
		return false, errors.Wrapf(errs.ErrInvalidFormat, "bool wire form is %d bytes, expected 1", len(trimmed))
	}
}

// EncodeBytes applies the padding policy to an opaque byte string. Used for
// both Bytes and FixedBytes kinds; FixedBytes additionally requires a Fixed
// padding policy at the registry level.
func EncodeBytes(v []byte, pad fdpad.Policy) ([]byte, error) {
	return pad.Apply(v)
}

// DecodeBytes returns the wire bytes unmodified. Bytes and FixedBytes values
// are opaque and are never trimmed (spec.md §4.2: bytes kinds preserve
// padding since trailing content may be significant).
func DecodeBytes(raw []byte) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)

	return out
}

// EncodeString applies the padding policy to a UTF-8 string's bytes. No
// transcoding is performed; the codec treats the string as opaque per
// spec.md §3.
func EncodeString(v string, pad fdpad.Policy) ([]byte, error) {
	return pad.Apply([]byte(v))
}

// DecodeString returns the wire bytes as a string unmodified, preserving any
// trailing pad bytes (e.g. the space-padded INN-like identifiers in S2).
func DecodeString(raw []byte) string {
	return string(raw)
}

// EncodeDateTime encodes t as 4-byte little-endian Unix seconds, interpreted
// as local wall-clock time with no timezone per spec.md §4.1.
func EncodeDateTime(t time.Time, pad fdpad.Policy) ([]byte, error) {
	secs := uint64(t.Unix())
	if secs > 0xFFFFFFFF {
		return nil, errors.Wrapf(errs.ErrNumberOutOfRange, "unix seconds %d overflow 32 bits", secs)
	}

	return EncodeUint(secs, fdformat.KindDateTime, pad)
}

// DecodeDateTime decodes 4-byte little-endian Unix seconds as a local-time
// (no timezone) time.Time.
func DecodeDateTime(raw []byte, pad fdpad.Policy) (time.Time, error) {
	secs, err := DecodeUint(raw, fdformat.KindDateTime, pad)
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(int64(secs), 0), nil
}

// EncodeDate encodes t truncated to local midnight, same wire encoding as
// DateTime (spec.md §4.1: Date-typed fields emit 4 bytes with the time
// portion truncated to midnight).
func EncodeDate(t time.Time, pad fdpad.Policy) ([]byte, error) {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())

	return EncodeDateTime(midnight, pad)
}

// DecodeDate decodes the same 4-byte form as DateTime; callers that only
// need the date portion should use Date()/Format() on the result.
func DecodeDate(raw []byte, pad fdpad.Policy) (time.Time, error) {
	return DecodeDateTime(raw, pad)
}

// EncodeEnum encodes a 1-byte discriminant or bitset value.
func EncodeEnum(v uint8, pad fdpad.Policy) ([]byte, error) {
	return EncodeUint(uint64(v), fdformat.KindEnum, pad)
}

// DecodeEnum decodes a 1-byte discriminant or bitset value. Callers map the
// raw byte to a concrete enum type in fdformat, falling back to that type's
// Unknown handling for unrecognized values rather than failing here —
// unknown variants are a forward-compatibility concern, not a format error
// (spec.md §4.1).
func DecodeEnum(raw []byte, pad fdpad.Policy) (uint8, error) {
	v, err := DecodeUint(raw, fdformat.KindEnum, pad)
	if err != nil {
		return 0, err
	}
	if v > 0xFF {
		return 0, errors.Wrapf(errs.ErrInvalidFormat, "enum discriminant %d overflows a byte", v)
	}

	return uint8(v), nil
}

// EncodeVarFloat encodes a VarFloat as a 1-byte scale prefix followed by the
// minimal little-endian integer-part bytes, padded per policy. This is the
// concrete wire layout chosen for the variable-precision decimal described
// in spec.md's glossary (the original implementation's own bit layout is
// not present in the retrieved source — see DESIGN.md).
func EncodeVarFloat(v VarFloat, pad fdpad.Policy) ([]byte, error) {
	full := make([]byte, 8)
	binary.LittleEndian.PutUint64(full, v.Int)
	intBytes := trimTrailingZeros(full)

	body := make([]byte, 0, 1+len(intBytes))
	body = append(body, v.Scale)
	body = append(body, intBytes...)

	return pad.Apply(body)
}

// DecodeVarFloat is the inverse of EncodeVarFloat.
func DecodeVarFloat(raw []byte, pad fdpad.Policy) (VarFloat, error) {
	// VarFloat is never Right-padded with trailing trim semantics (the
	// scale-prefixed representation has no canonical "numeric trailing
	// zero" shape), so only an explicit Fixed/None policy's own Apply
	// matters; raw is used as-is here.
	if len(raw) < 1 {
		return VarFloat{}, errors.Wrapf(errs.ErrEof, "VarFloat wire form is empty")
	}
	scale := raw[0]
	intBytes := raw[1:]
	if len(intBytes) > 8 {
		return VarFloat{}, errors.Wrapf(errs.ErrInvalidFormat, "VarFloat integer part is %d bytes, exceeds u64 width", len(intBytes))
	}
	full := make([]byte, 8)
	copy(full, intBytes)

	return VarFloat{Int: binary.LittleEndian.Uint64(full), Scale: scale}, nil
}
