package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/document"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/internal/dedupe"
	"github.com/rufiscal/fdcodec/object"
	"github.com/rufiscal/fdcodec/registry"
)

func sampleShiftStartDoc(t *testing.T) *document.Document {
	t.Helper()
	o := object.New()
	require.NoError(t, object.Set(o, registry.DocName, "doc"))
	require.NoError(t, object.Set(o, registry.FfdVer, 2))
	require.NoError(t, object.Set(o, registry.User, "ООО Ромашка"))
	require.NoError(t, object.Set(o, registry.UserInn, "7707083893"))
	require.NoError(t, object.Set(o, registry.RetailPlaceAddress, "addr"))
	require.NoError(t, object.Set(o, registry.RetailPlace, "place"))
	require.NoError(t, object.Set(o, registry.DateTime, time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, object.Set(o, registry.ShiftNum, 1))
	require.NoError(t, object.Set(o, registry.KktRegNum, "0000000000012345"))
	require.NoError(t, object.Set(o, registry.KktVer, "1.0"))
	require.NoError(t, object.Set(o, registry.KktFfdVer, 2))
	require.NoError(t, object.Set(o, registry.DocNum, 42))
	require.NoError(t, object.Set(o, registry.DriveNum, "9999078900004312"))
	require.NoError(t, object.Set(o, registry.DocFiscalSign, []byte{1, 2, 3, 4, 5, 6}))

	doc, err := document.FromObject(fdformat.DocShiftStartReport, o)
	require.NoError(t, err)

	return doc
}

func TestArchiveIdentity(t *testing.T) {
	fn, docNum, err := archiveIdentity(sampleShiftStartDoc(t))
	require.NoError(t, err)
	require.Equal(t, "9999078900004312", fn)
	require.EqualValues(t, 42, docNum)
}

func TestJSONArchiveName(t *testing.T) {
	require.Equal(t, "fn123_0000042.json", jsonArchiveName("fn123", 42))
}

func TestFiscalSignProxy_UsesMessageFiscalSignWhenPresent(t *testing.T) {
	doc := sampleShiftStartDoc(t)
	doc.SetMessageFiscalSign(9999)

	sign, err := fiscalSignProxy(doc)
	require.NoError(t, err)
	require.EqualValues(t, 9999, sign)
}

func TestFiscalSignProxy_FallsBackToDocFiscalSign(t *testing.T) {
	a := sampleShiftStartDoc(t)
	b := sampleShiftStartDoc(t)

	signA, err := fiscalSignProxy(a)
	require.NoError(t, err)
	signB, err := fiscalSignProxy(b)
	require.NoError(t, err)
	require.Equal(t, signA, signB, "identical fiscal sign bytes hash identically")
}

func TestDedupeTracker_ArchiveIdentity_SkipsIdenticalRedeliveryAndRejectsMismatch(t *testing.T) {
	tracker := dedupe.NewTracker()
	doc := sampleShiftStartDoc(t)

	fn, docNum, err := archiveIdentity(doc)
	require.NoError(t, err)
	sign, err := fiscalSignProxy(doc)
	require.NoError(t, err)

	skip, err := tracker.ObserveSkip(fn, docNum, sign)
	require.NoError(t, err)
	require.False(t, skip)

	// Same document delivered again: silent no-op.
	skip, err = tracker.ObserveSkip(fn, docNum, sign)
	require.NoError(t, err)
	require.True(t, skip)

	// Same (fn, doc_num) but different signed content: loud error.
	_, err = tracker.ObserveSkip(fn, docNum, sign+1)
	require.Error(t, err)
}
