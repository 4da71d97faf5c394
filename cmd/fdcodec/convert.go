package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rufiscal/fdcodec/compress"
	"github.com/rufiscal/fdcodec/document"
	"github.com/rufiscal/fdcodec/format"
	"github.com/rufiscal/fdcodec/internal/dedupe"
	"github.com/rufiscal/fdcodec/internal/hash"
	"github.com/rufiscal/fdcodec/object"
	"github.com/rufiscal/fdcodec/registry"
)

// Config holds the resolved CLI/TOML/env settings for one batch run.
type Config struct {
	Mode     string // "tlv2json" or "json2tlv"
	Dir      string
	OutDir   string
	Compress string
	Workers  int
}

// Run dispatches to the requested conversion direction.
func Run(cfg Config, logger log.Logger) error {
	codecType, err := parseCompression(cfg.Compress)
	if err != nil {
		return err
	}
	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return err
	}

	switch cfg.Mode {
	case "tlv2json":
		return convertDir(cfg, logger, func(src string) (string, []byte, error) {
			return tlvToJSON(codec, src)
		})
	case "json2tlv":
		// Shared across every worker goroutine convertDir fans out below:
		// persisting a batch keyed by (fn, doc_num) needs one tracker seeing
		// every file, not one per file (spec.md §6.4 / SPEC_FULL.md §10).
		tracker := dedupe.NewTracker()

		return convertDir(cfg, logger, func(src string) (string, []byte, error) {
			return jsonToTLV(codec, codecType.Extension(), tracker, src)
		})
	default:
		return errors.Errorf("fdcodec: unknown -mode %q (want tlv2json or json2tlv)", cfg.Mode)
	}
}

func parseCompression(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, errors.Errorf("fdcodec: unknown -compress %q", name)
	}
}

type convertFn func(srcPath string) (dstName string, dstData []byte, err error)

// convertDir fans a directory's matching files out across cfg.Workers
// goroutines, converting each independently; one failure cancels the rest
// via the shared errgroup context.
func convertDir(cfg Config, logger log.Logger, convert convertFn) error {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return errors.Wrap(err, "fdcodec: reading input directory")
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return errors.Wrap(err, "fdcodec: creating output directory")
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Workers)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		srcPath := filepath.Join(cfg.Dir, entry.Name())
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			dstName, dstData, err := convert(srcPath)
			if err != nil {
				level.Error(logger).Log("msg", "conversion failed", "file", srcPath, "err", err)

				return err
			}
			if dstName == "" {
				level.Debug(logger).Log("msg", "skipped", "file", srcPath)

				return nil // not a matching input file, or a harmless redelivery
			}

			dstPath := filepath.Join(cfg.OutDir, dstName)
			if err := os.WriteFile(dstPath, dstData, 0o644); err != nil {
				return errors.Wrapf(err, "fdcodec: writing %s", dstPath)
			}
			level.Info(logger).Log("msg", "converted", "src", srcPath, "dst", dstPath)

			return nil
		})
	}

	return g.Wait()
}

// archiveIdentity reads the two fields that name an archived document on
// disk: its fiscal drive number ("fn", tag 1041) and its document number
// within that drive ("doc_num", tag 1040). Both are schema-Required on
// every variant except RegistrationParamUpdateReport (tag 11) and the
// marking variants (tags 81-84), which lack one or both; a document
// missing either is rejected with an error.
func archiveIdentity(doc *document.Document) (fn string, docNum uint64, err error) {
	fn, ok, err := object.Get(doc.Object, registry.DriveNum)
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, errors.New("fdcodec: document has no fiscal drive number (tag 1041)")
	}
	docNum, ok, err = object.Get(doc.Object, registry.DocNum)
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, errors.New("fdcodec: document has no document number (tag 1040)")
	}

	return fn, docNum, nil
}

// jsonArchiveName mirrors dedupe.ArchiveName's "<fn>_<doc_num:07>" naming
// (spec.md §6.4) for the JSON mirror this CLI emits, which carries no
// compression suffix of its own.
func jsonArchiveName(fn string, docNum uint64) string {
	return fmt.Sprintf("%s_%07d.json", fn, docNum)
}

// fiscalSignProxy collapses a document's identity-distinguishing content
// into a single uint64 for dedupe.Tracker: the provider's own
// messageFiscalSign when the document carries one, otherwise a hash of the
// document's own fiscal sign field (tag 1077) — either way, two deliveries
// of the same signed content hash identically and a genuinely different one
// does not.
func fiscalSignProxy(doc *document.Document) (uint64, error) {
	if sign, ok := doc.MessageFiscalSign(); ok {
		return sign, nil
	}

	sign, ok, err := object.Get(doc.Object, registry.DocFiscalSign)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.New("fdcodec: document has no fiscal sign to dedupe on (tag 1077)")
	}

	return hash.ID(string(sign)), nil
}

// tlvToJSON reads a "<fn>_<doc_num>.tlv[.ext]" archive file, decompresses
// it if needed, dispatches it as a Document, and renders the variant-
// wrapped JSON form under its canonical "<fn>_<doc_num>.json" name.
//
// Archive files are bare self-describing document frames with no provider
// envelope (spec.md §6.4: "No magic bytes, no version header"); the
// container package's Envelope models the separate OFD-fetch wire boundary
// (original_source/src/ofd/oneofd.rs's set_container_header/
// set_message_fiscal_sign, populated from a live HTTP ticket response) and
// so has nothing to unwrap here. See DESIGN.md's container-package entry.
func tlvToJSON(codec compress.Codec, srcPath string) (string, []byte, error) {
	base := filepath.Base(srcPath)
	if !strings.Contains(base, ".tlv") {
		return "", nil, nil
	}

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return "", nil, errors.Wrap(err, "fdcodec: reading archive file")
	}
	body, err := codec.Decompress(raw)
	if err != nil {
		return "", nil, errors.Wrap(err, "fdcodec: decompressing archive file")
	}

	doc, err := document.Dispatch(body)
	if err != nil {
		return "", nil, errors.Wrap(err, "fdcodec: parsing TLV body")
	}

	fn, docNum, err := archiveIdentity(doc)
	if err != nil {
		return "", nil, err
	}

	fields, err := doc.ToJSON()
	if err != nil {
		return "", nil, err
	}
	wrapped, err := document.WrapJSON(doc.Tag, fields)
	if err != nil {
		return "", nil, err
	}

	out, err := json.MarshalIndent(wrapped, "", "  ")
	if err != nil {
		return "", nil, errors.Wrap(err, "fdcodec: marshaling JSON")
	}

	return jsonArchiveName(fn, docNum), out, nil
}

// jsonToTLV reads a "<fn>_<doc_num>.json" file containing the variant-
// wrapped JSON form, reconstructs its Document, and writes the (optionally
// compressed) TLV archive file under its canonical
// "<fn>_<doc_num_zero_padded_to_7>.tlv[.ext]" name (spec.md §6.4).
//
// tracker enforces the persistence rule SPEC_FULL.md §10 promises: a
// differing fiscal sign for an already-seen (fn, doc_num) pair is a loud
// error, an identical one a silent no-op (empty dstName, no write).
func jsonToTLV(codec compress.Codec, ext string, tracker *dedupe.Tracker, srcPath string) (string, []byte, error) {
	base := filepath.Base(srcPath)
	if filepath.Ext(base) != ".json" {
		return "", nil, nil
	}

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return "", nil, errors.Wrap(err, "fdcodec: reading JSON file")
	}

	var wrapped map[string]any
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return "", nil, errors.Wrap(err, "fdcodec: parsing JSON file")
	}

	tag, fields, err := document.UnwrapJSON(wrapped)
	if err != nil {
		return "", nil, err
	}
	doc, err := document.FromJSON(tag, fields)
	if err != nil {
		return "", nil, err
	}

	fn, docNum, err := archiveIdentity(doc)
	if err != nil {
		return "", nil, err
	}
	signProxy, err := fiscalSignProxy(doc)
	if err != nil {
		return "", nil, err
	}
	skip, err := tracker.ObserveSkip(fn, docNum, signProxy)
	if err != nil {
		return "", nil, errors.Wrapf(err, "fdcodec: %s", srcPath)
	}
	if skip {
		return "", nil, nil
	}

	body, err := doc.IntoBytes()
	if err != nil {
		return "", nil, err
	}
	if len(body) > 0xFFFF {
		return "", nil, errors.Errorf("fdcodec: document body of %d bytes does not fit one TLV frame", len(body))
	}
	frame := make([]byte, 4+len(body))
	binary.LittleEndian.PutUint16(frame[0:2], uint16(doc.Tag))
	binary.LittleEndian.PutUint16(frame[2:4], uint16(len(body)))
	copy(frame[4:], body)
	compressed, err := codec.Compress(frame)
	if err != nil {
		return "", nil, errors.Wrap(err, "fdcodec: compressing TLV body")
	}

	return dedupe.ArchiveName(fn, docNum, ext), compressed, nil
}
