// Package dedupe tracks which (fn, doc_num) pairs have already been
// persisted to an archive, so a re-delivered document can be recognized as
// either a harmless duplicate or a genuine fiscal-sign mismatch worth
// raising an error over.
package dedupe

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/internal/hash"
)

// archiveKey collapses (fn, doc_num) into a single map key via xxHash64,
// the same hashing approach the teacher's tracker uses for metric
// identity — here the identity is a fiscal document instead of a metric.
func archiveKey(fn string, docNum uint64) uint64 {
	return hash.ID(fmt.Sprintf("%s:%d", fn, docNum))
}

// Tracker remembers the fiscal sign last seen for each (fn, doc_num) pair.
// Safe for concurrent use: the CLI's batch converter fans persistence out
// across goroutines via errgroup, all observing the same Tracker.
type Tracker struct {
	mu    sync.Mutex
	signs map[uint64]uint64
}

// NewTracker creates an empty dedupe tracker.
func NewTracker() *Tracker {
	return &Tracker{signs: make(map[uint64]uint64)}
}

// Observe records that (fn, docNum) was persisted with fiscalSign.
//
//   - If the pair has not been seen before, it is recorded and Observe
//     returns nil.
//   - If it has been seen with the SAME fiscal sign, this is a harmless
//     re-delivery and Observe returns nil without altering state.
//   - If it has been seen with a DIFFERENT fiscal sign, Observe returns
//     errs.ErrFiscalSignMismatch: the same document identity produced two
//     different signed contents, which the archive layer must not silently
//     overwrite.
func (t *Tracker) Observe(fn string, docNum uint64, fiscalSign uint64) error {
	_, err := t.ObserveSkip(fn, docNum, fiscalSign)

	return err
}

// ObserveSkip is Observe plus a skip flag: true when (fn, docNum,
// fiscalSign) is an exact repeat of what was already recorded, the case an
// archive writer should treat as a silent no-op rather than rewriting the
// file.
func (t *Tracker) ObserveSkip(fn string, docNum uint64, fiscalSign uint64) (skip bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := archiveKey(fn, docNum)
	if existing, seen := t.signs[k]; seen {
		if existing != fiscalSign {
			return false, errors.Wrapf(errs.ErrFiscalSignMismatch, "fn=%s doc_num=%d: had sign %d, now %d", fn, docNum, existing, fiscalSign)
		}

		return true, nil
	}
	t.signs[k] = fiscalSign

	return false, nil
}

// Count returns the number of distinct (fn, doc_num) pairs tracked.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.signs)
}

// Reset clears all tracked state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k := range t.signs {
		delete(t.signs, k)
	}
}

// ArchiveName returns the canonical archive filename for a document, per
// spec.md §6.4: "<fn>_<doc_num:07>.tlv[.ext]".
func ArchiveName(fn string, docNum uint64, ext string) string {
	return fmt.Sprintf("%s_%07d.tlv%s", fn, docNum, ext)
}
