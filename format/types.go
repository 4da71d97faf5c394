// Package format holds wire-level enum types shared by the archive/compress
// layer, kept separate from fdformat (the TLV value-kind vocabulary) since
// these describe an archive file's outer framing rather than a field's value.
package format

// CompressionType identifies the algorithm an archived TLV payload was
// compressed with, stored in the archive file's extension/header (spec.md
// §6.4's `<fn>_<doc_num>.tlv[.zst|.lz4|.s2]` naming).
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file suffix archive filenames append for this
// compression type, or "" for CompressionNone.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
