// Package compress provides compression and decompression codecs for
// archived fiscal-document TLV payloads (spec.md §6.4).
//
// # Overview
//
// A persisted document is stored as its raw TLV bytes, optionally run
// through a general-purpose compressor chosen per archive:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Choosing an algorithm
//
// Most fiscal documents are small (a receipt's TLV body is typically under
// 4KB), so the deciding factor is usually archive size over many documents
// rather than per-document latency:
//   - Zstd for cold, long-retained archives (registration reports, shift
//     closes) where storage cost matters more than CPU.
//   - S2 or LZ4 for a hot write path that must keep up with receipt volume.
//   - None when the caller compresses at a layer above (e.g. an already-
//     compressed filesystem or object store).
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
