// Package object implements the TLV container described in spec.md §4.4: an
// insertion-ordered (tag -> value) multimap where a tag may repeat (Multi
// fields) and an Object-kind value is itself a nested, recursively-parsed
// instance of the same container.
//
// Object knows nothing about documents or JSON; it only knows how to read and
// write frames and, through the registry and fdval packages, how to decode
// and encode a tag's logical value. The typed accessors (Get, GetAll, Set,
// Push) are the normal entry point; RawGet/RawSet exist for tags the
// registry does not recognize, which are preserved opaquely rather than
// rejected (spec.md §4.4).
package object

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/field"
	"github.com/rufiscal/fdcodec/internal/pool"
	"github.com/rufiscal/fdcodec/registry"
)

// MaxNestingDepth bounds recursive Object-kind parsing (spec.md §4.4 edge
// case: a pathological or adversarial document must not blow the stack).
const MaxNestingDepth = 32

const headerSize = 4 // 2-byte tag + 2-byte length, both little-endian

type frame struct {
	tag uint16
	raw []byte
}

// Object is an ordered sequence of (tag, raw value) frames, indexed by tag
// for lookup. Frame order is exactly wire order: frames for different tags
// may interleave, and FromBytes/IntoBytes round-trip that order exactly.
type Object struct {
	frames []frame
	byTag  map[uint16][]int
	depth  int
}

// New returns an empty Object ready for Set/Push.
func New() *Object {
	return &Object{byTag: make(map[uint16][]int)}
}

// FromBytes parses a top-level TLV byte stream into an Object.
func FromBytes(data []byte) (*Object, error) {
	return fromBytesAt(data, 0)
}

func fromBytesAt(data []byte, depth int) (*Object, error) {
	if depth > MaxNestingDepth {
		return nil, errs.ErrRecursionLimit
	}

	o := &Object{byTag: make(map[uint16][]int), depth: depth}
	pos := 0
	for pos < len(data) {
		if len(data)-pos < headerSize {
			return nil, errors.Wrapf(errs.ErrEof, "truncated frame header at offset %d", pos)
		}
		tag := binary.LittleEndian.Uint16(data[pos : pos+2])
		length := binary.LittleEndian.Uint16(data[pos+2 : pos+4])
		pos += headerSize

		if len(data)-pos < int(length) {
			return nil, errors.Wrapf(errs.ErrEof, "frame tag %d declares length %d, only %d bytes remain", tag, length, len(data)-pos)
		}
		raw := make([]byte, length)
		copy(raw, data[pos:pos+int(length)])
		pos += int(length)

		o.appendFrame(tag, raw)
	}

	return o, nil
}

func (o *Object) appendFrame(tag uint16, raw []byte) {
	idx := len(o.frames)
	o.frames = append(o.frames, frame{tag: tag, raw: raw})
	o.byTag[tag] = append(o.byTag[tag], idx)
}

// IntoBytes serializes the Object back to its wire form, in frame order.
func (o *Object) IntoBytes() ([]byte, error) {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	for _, f := range o.frames {
		if len(f.raw) > 0xFFFF {
			return nil, errors.Wrapf(errs.ErrInvalidLength, "tag %d value is %d bytes, exceeds the 16-bit length field", f.tag, len(f.raw))
		}
		var hdr [headerSize]byte
		binary.LittleEndian.PutUint16(hdr[0:2], f.tag)
		binary.LittleEndian.PutUint16(hdr[2:4], uint16(len(f.raw)))
		bb.MustWrite(hdr[:])
		bb.MustWrite(f.raw)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// Contains reports whether tag appears at least once.
func (o *Object) Contains(tag uint16) bool {
	return len(o.byTag[tag]) > 0
}

// Remove deletes every frame for tag and returns how many were removed.
func (o *Object) Remove(tag uint16) int {
	idxs := o.byTag[tag]
	if len(idxs) == 0 {
		return 0
	}
	removed := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		removed[i] = true
	}

	kept := o.frames[:0]
	newByTag := make(map[uint16][]int, len(o.byTag))
	for i, f := range o.frames {
		if removed[i] {
			continue
		}
		newByTag[f.tag] = append(newByTag[f.tag], len(kept))
		kept = append(kept, f)
	}
	o.frames = kept
	o.byTag = newByTag

	return len(idxs)
}

// RawGet returns the first occurrence of tag's raw wire bytes.
func (o *Object) RawGet(tag uint16) ([]byte, bool) {
	idxs := o.byTag[tag]
	if len(idxs) == 0 {
		return nil, false
	}

	return o.frames[idxs[0]].raw, true
}

// RawGetAll returns every occurrence of tag's raw wire bytes, in order.
func (o *Object) RawGetAll(tag uint16) [][]byte {
	idxs := o.byTag[tag]
	out := make([][]byte, len(idxs))
	for i, idx := range idxs {
		out[i] = o.frames[idx].raw
	}

	return out
}

// RawPush appends a frame for tag with raw wire bytes already encoded,
// without consulting the registry. Used for unknown tags preserved
// opaquely (spec.md §4.4) and internally by the typed Set/Push helpers.
func (o *Object) RawPush(tag uint16, raw []byte) {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	o.appendFrame(tag, cp)
}

// RawSet replaces the first occurrence of tag (or appends if absent) with
// raw wire bytes, removing any further occurrences. Used for single-valued
// fields; Multi fields should use RawPush/Push.
func (o *Object) RawSet(tag uint16, raw []byte) {
	idxs := o.byTag[tag]
	if len(idxs) == 0 {
		o.RawPush(tag, raw)

		return
	}

	cp := make([]byte, len(raw))
	copy(cp, raw)
	firstPos := idxs[0]
	o.frames[firstPos].raw = cp

	if len(idxs) == 1 {
		return
	}

	// More than one existing occurrence: keep the first frame's position
	// (now carrying the new value) and drop the rest, then rebuild the
	// index. This path only matters when a caller repairs a Multi tag
	// down to a single value.
	kept := make([]frame, 0, len(o.frames)-len(idxs)+1)
	for i, f := range o.frames {
		if i != firstPos && f.tag == tag {
			continue
		}
		kept = append(kept, f)
	}
	o.frames = kept

	newByTag := make(map[uint16][]int, len(o.byTag))
	for i, f := range o.frames {
		newByTag[f.tag] = append(newByTag[f.tag], i)
	}
	o.byTag = newByTag
}

// Get decodes the first occurrence of f's tag as T. ok is false if the tag
// is absent.
func Get[T any](o *Object, f field.Field[T]) (T, bool, error) {
	var zero T

	entry, ok := registry.Lookup(f.Tag)
	if !ok {
		return zero, false, errors.Wrapf(errs.ErrUnknownTag, "tag %d", f.Tag)
	}
	raw, ok := o.RawGet(f.Tag)
	if !ok {
		return zero, false, nil
	}

	val, err := decodeByKind(entry.Kind, raw, entry.Pad)
	if err != nil {
		return zero, false, errors.Wrapf(err, "tag %d", f.Tag)
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false, errors.Errorf("tag %d: decoded %T, want %T", f.Tag, val, zero)
	}

	return typed, true, nil
}

// GetAll decodes every occurrence of f's tag as T, in wire order.
func GetAll[T any](o *Object, f field.Field[T]) ([]T, error) {
	entry, ok := registry.Lookup(f.Tag)
	if !ok {
		return nil, errors.Wrapf(errs.ErrUnknownTag, "tag %d", f.Tag)
	}

	raws := o.RawGetAll(f.Tag)
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		val, err := decodeByKind(entry.Kind, raw, entry.Pad)
		if err != nil {
			return nil, errors.Wrapf(err, "tag %d", f.Tag)
		}
		typed, ok := val.(T)
		if !ok {
			return nil, errors.Errorf("tag %d: decoded %T, want %T", f.Tag, val, typed)
		}
		out = append(out, typed)
	}

	return out, nil
}

// Set encodes v and replaces the first (and only, for non-Multi fields)
// occurrence of f's tag.
func Set[T any](o *Object, f field.Field[T], v T) error {
	entry, ok := registry.Lookup(f.Tag)
	if !ok {
		return errors.Wrapf(errs.ErrUnknownTag, "tag %d", f.Tag)
	}
	raw, err := encodeByKind(entry.Kind, v, entry.Pad)
	if err != nil {
		return errors.Wrapf(err, "tag %d", f.Tag)
	}
	o.RawSet(f.Tag, raw)

	return nil
}

// Push encodes v and appends a new occurrence of f's tag, for Multi fields.
func Push[T any](o *Object, f field.Field[T], v T) error {
	entry, ok := registry.Lookup(f.Tag)
	if !ok {
		return errors.Wrapf(errs.ErrUnknownTag, "tag %d", f.Tag)
	}
	raw, err := encodeByKind(entry.Kind, v, entry.Pad)
	if err != nil {
		return errors.Wrapf(err, "tag %d", f.Tag)
	}
	o.RawPush(f.Tag, raw)

	return nil
}

// GetNestedObject parses tag's first occurrence as a nested Object. It is
// the Object-kind counterpart to Get, kept outside the generic accessors
// to avoid a registry/object import cycle through a *Object type
// parameter.
func (o *Object) GetNestedObject(tag uint16) (*Object, bool, error) {
	entry, ok := registry.Lookup(tag)
	if !ok {
		return nil, false, errors.Wrapf(errs.ErrUnknownTag, "tag %d", tag)
	}
	if entry.Kind != fdformat.KindObject {
		return nil, false, errors.Errorf("tag %d is not Object-kind", tag)
	}
	raw, ok := o.RawGet(tag)
	if !ok {
		return nil, false, nil
	}

	nested, err := fromBytesAt(raw, o.depth+1)
	if err != nil {
		return nil, false, errors.Wrapf(err, "tag %d nested object", tag)
	}

	return nested, true, nil
}

// GetAllNestedObjects parses every occurrence of tag as a nested Object.
func (o *Object) GetAllNestedObjects(tag uint16) ([]*Object, error) {
	entry, ok := registry.Lookup(tag)
	if !ok {
		return nil, errors.Wrapf(errs.ErrUnknownTag, "tag %d", tag)
	}
	if entry.Kind != fdformat.KindObject {
		return nil, errors.Errorf("tag %d is not Object-kind", tag)
	}

	raws := o.RawGetAll(tag)
	out := make([]*Object, 0, len(raws))
	for _, raw := range raws {
		nested, err := fromBytesAt(raw, o.depth+1)
		if err != nil {
			return nil, errors.Wrapf(err, "tag %d nested object", tag)
		}
		out = append(out, nested)
	}

	return out, nil
}

// PushNestedObject encodes child and appends it as a new occurrence of tag.
func (o *Object) PushNestedObject(tag uint16, child *Object) error {
	entry, ok := registry.Lookup(tag)
	if !ok {
		return errors.Wrapf(errs.ErrUnknownTag, "tag %d", tag)
	}
	if entry.Kind != fdformat.KindObject {
		return errors.Errorf("tag %d is not Object-kind", tag)
	}
	raw, err := child.IntoBytes()
	if err != nil {
		return errors.Wrapf(err, "tag %d nested object", tag)
	}
	o.RawPush(tag, raw)

	return nil
}

// Tags returns the distinct tags present, in first-occurrence order.
func (o *Object) Tags() []uint16 {
	seen := make(map[uint16]bool, len(o.byTag))
	out := make([]uint16, 0, len(o.byTag))
	for _, f := range o.frames {
		if seen[f.tag] {
			continue
		}
		seen[f.tag] = true
		out = append(out, f.tag)
	}

	return out
}
