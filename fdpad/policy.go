// Package fdpad implements the per-field padding rules that turn a logical
// value's encoded bytes into the fixed- or minimum-width wire form and back.
//
// A Policy is one of three shapes, matching spec.md §4.2 exactly:
//
//	None{MaxLen}   variable length, optionally upper-bounded
//	Fixed{Len}     exactly Len bytes, or an encoding/decoding error
//	Right{Len,Pad} minimum Len bytes, right-padded with Pad; may exceed Len
package fdpad

import (
	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
)

// Kind identifies which of the three padding shapes a Policy carries.
type Kind uint8

const (
	KindNone Kind = iota
	KindFixed
	KindRight
)

// Policy is a tagged union over the three padding shapes. Use the
// constructor functions (None, Fixed, Right) rather than building one by
// hand so the Kind tag always matches the populated fields.
type Policy struct {
	kind   Kind
	maxLen *uint32 // None
	len    uint32  // Fixed, Right
	pad    byte    // Right
}

// None builds a variable-length policy. maxLen of nil means unbounded.
func None(maxLen *uint32) Policy {
	return Policy{kind: KindNone, maxLen: maxLen}
}

// Fixed builds a policy requiring exactly len bytes.
func Fixed(length uint32) Policy {
	return Policy{kind: KindFixed, len: length}
}

// Right builds a minimum-width, right-padded policy.
func Right(length uint32, pad byte) Policy {
	return Policy{kind: KindRight, len: length, pad: pad}
}

func (p Policy) Kind() Kind { return p.kind }
func (p Policy) Len() uint32 { return p.len }
func (p Policy) Pad() byte   { return p.pad }

// MaxLen returns the declared upper bound and whether one was set. Only
// meaningful for KindNone policies.
func (p Policy) MaxLen() (uint32, bool) {
	if p.maxLen == nil {
		return 0, false
	}

	return *p.maxLen, true
}

// Apply turns logical value bytes v into their wire form per the policy
// table in spec.md §4.2.
func (p Policy) Apply(v []byte) ([]byte, error) {
	n := uint32(len(v))

	switch p.kind {
	case KindNone:
		if max, ok := p.MaxLen(); ok && n > max {
			return nil, errors.Wrapf(errs.ErrNumberOutOfRange, "value length %d exceeds max %d", n, max)
		}

		return v, nil

	case KindFixed:
		if n != p.len {
			return nil, errors.Wrapf(errs.ErrInvalidLength, "expected exactly %d bytes, got %d", p.len, n)
		}

		return v, nil

	case KindRight:
		if n >= p.len {
			return v, nil
		}
		out := make([]byte, p.len)
		copy(out, v)
		for i := n; i < p.len; i++ {
			out[i] = p.pad
		}

		return out, nil

	default:
		return nil, errors.Errorf("fdpad: unknown policy kind %d", p.kind)
	}
}

// Trim reverses Right-padding on decode. Numeric and enum kinds strip every
// trailing pad byte down to the shortest representation; string and bytes
// kinds are returned unmodified since trailing pad bytes (typically spaces)
// may be significant to downstream consumers (spec.md §4.2, S2).
func (p Policy) Trim(wire []byte, kind fdformat.Kind) []byte {
	if p.kind != KindRight || !kind.IsNumeric() {
		return wire
	}

	end := len(wire)
	for end > 0 && wire[end-1] == p.pad {
		end--
	}

	return wire[:end]
}

// Validate checks a decoded wire-form length against a Fixed policy. None
// and Right policies place no upper constraint on decode (Right may always
// have grown past its declared minimum, e.g. a 32-bit counter overflowing
// to 8 bytes).
func (p Policy) Validate(wire []byte) error {
	if p.kind == KindFixed && uint32(len(wire)) != p.len {
		return errors.Wrapf(errs.ErrInvalidLength, "expected exactly %d bytes, got %d", p.len, len(wire))
	}

	return nil
}
