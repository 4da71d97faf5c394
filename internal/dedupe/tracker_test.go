package dedupe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/errs"
)

func TestTracker_FirstObservationIsRecorded(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Observe("archive1", 7, 111))
	require.Equal(t, 1, tr.Count())
}

func TestTracker_SameSignRedeliveryIsHarmless(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Observe("archive1", 7, 111))
	require.NoError(t, tr.Observe("archive1", 7, 111))
	require.Equal(t, 1, tr.Count())
}

func TestTracker_DifferentSignIsMismatch(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Observe("archive1", 7, 111))
	err := tr.Observe("archive1", 7, 222)
	require.ErrorIs(t, err, errs.ErrFiscalSignMismatch)
}

func TestTracker_DistinctKeysTrackedIndependently(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Observe("archive1", 7, 111))
	require.NoError(t, tr.Observe("archive1", 8, 222))
	require.NoError(t, tr.Observe("archive2", 7, 333))
	require.Equal(t, 3, tr.Count())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Observe("archive1", 7, 111))
	tr.Reset()
	require.Equal(t, 0, tr.Count())

	require.NoError(t, tr.Observe("archive1", 7, 999), "sign mismatch state must not survive a reset")
}

func TestTracker_ObserveSkip(t *testing.T) {
	tr := NewTracker()

	skip, err := tr.ObserveSkip("archive1", 7, 111)
	require.NoError(t, err)
	require.False(t, skip, "first observation is never a skip")

	skip, err = tr.ObserveSkip("archive1", 7, 111)
	require.NoError(t, err)
	require.True(t, skip, "identical redelivery is a skip")

	_, err = tr.ObserveSkip("archive1", 7, 222)
	require.ErrorIs(t, err, errs.ErrFiscalSignMismatch)
}

func TestArchiveName(t *testing.T) {
	require.Equal(t, "fn123_0000042.tlv", ArchiveName("fn123", 42, ""))
	require.Equal(t, "fn123_0000042.tlv.zst", ArchiveName("fn123", 42, ".zst"))
}
