// Package registry is the static, compile-time (tag -> Entry) table used by
// every higher layer: the value kind, padding policy, JSON alias(es), and
// multi-valued flag for each of the catalogue's fields (spec.md §4.3).
//
// The table is built once, in init(), from package-level literal slices
// split across fields_*.go by tag range — the same shape a schema-driven
// code generator would produce (spec.md §9's own design note), which keeps
// the table straightforward to extend to the full ~300-tag catalogue
// without a design change.
package registry

import (
	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
)

// EnclosureAlias renames a field's JSON key when it appears nested inside a
// specific enclosing tag, e.g. tag 1213 serializes as "fdKeyResource" at top
// level but as "keyResource" inside document tag 21 (spec.md §4.3/§4.5).
type EnclosureAlias struct {
	EnclosingTag uint16
	Name         string
}

// Entry is the registry's static record for one tag.
type Entry struct {
	Tag        uint16
	Kind       fdformat.Kind
	Pad        fdpad.Policy
	JSONName   string // "" means not serialized to JSON
	Aliases    []EnclosureAlias
	Multi      bool
	Deprecated bool
	Doc        string
}

var byTag map[uint16]Entry

func register(entries []Entry) {
	if byTag == nil {
		byTag = make(map[uint16]Entry, 320)
	}
	for _, e := range entries {
		if _, exists := byTag[e.Tag]; exists {
			panic(errors.Wrapf(errs.ErrDuplicateTag, "tag %d registered twice", e.Tag).Error())
		}
		byTag[e.Tag] = e
	}
}

// Lookup returns the entry for tag, or false if the tag is not in the
// registry. Unknown tags are not an error at this layer — the Object layer
// preserves them opaquely (spec.md §4.4).
func Lookup(tag uint16) (Entry, bool) {
	e, ok := byTag[tag]

	return e, ok
}

// IsMulti reports whether tag permits multiple occurrences under the same
// parent. Unknown tags report false.
func IsMulti(tag uint16) bool {
	e, ok := byTag[tag]

	return ok && e.Multi
}

// JSONName returns the contextual JSON alias for tag when nested inside
// enclosingTag (0 for top level), falling back to the default alias, or
// ("", false) if the field is not serialized to JSON at all.
func JSONName(tag uint16, enclosingTag uint16) (string, bool) {
	e, ok := byTag[tag]
	if !ok || e.JSONName == "" {
		return "", false
	}
	for _, a := range e.Aliases {
		if a.EnclosingTag == enclosingTag {
			return a.Name, true
		}
	}

	return e.JSONName, true
}

// TagForJSONName reverses JSONName: given a JSON key observed while nested
// inside enclosingTag (0 for top level), returns the tag it names. An
// enclosure-specific alias is checked before the default name. Where several
// tags share a name, the lowest tag wins.
func TagForJSONName(name string, enclosingTag uint16) (uint16, bool) {
	var aliasTag, defaultTag uint16
	aliasFound, defaultFound := false, false
	for tag, e := range byTag {
		if e.JSONName == "" {
			continue
		}
		for _, a := range e.Aliases {
			if a.EnclosingTag == enclosingTag && a.Name == name && (!aliasFound || tag < aliasTag) {
				aliasTag, aliasFound = tag, true
			}
		}
		if e.JSONName == name && (!defaultFound || tag < defaultTag) {
			defaultTag, defaultFound = tag, true
		}
	}
	if aliasFound {
		return aliasTag, true
	}

	return defaultTag, defaultFound
}

// Iterate returns every registered entry, in an unspecified order, for total
// enumeration use cases (diagnostics, schema export).
func Iterate() []Entry {
	out := make([]Entry, 0, len(byTag))
	for _, e := range byTag {
		out = append(out, e)
	}

	return out
}

// Count returns the number of registered tags.
func Count() int {
	return len(byTag)
}

// u32p is a literal-friendly &uint32(n) for the fields_*.go tables, which
// only ever need a bound at construction time.
func u32p(n uint32) *uint32 {
	return &n
}
