package container

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/document"
	"github.com/rufiscal/fdcodec/fdformat"
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
	require.NoError(t, object.Set(o, registry.DocNum, 1))
	require.NoError(t, object.Set(o, registry.DriveNum, "9999078900004312"))
	require.NoError(t, object.Set(o, registry.DocFiscalSign, []byte{1, 2, 3, 4, 5, 6}))

	doc, err := document.FromObject(fdformat.DocShiftStartReport, o)
	require.NoError(t, err)

	return doc
}

func TestEncodeDecodeDocument_SignRoundTrip(t *testing.T) {
	doc := sampleShiftStartDoc(t)
	doc.SetMessageFiscalSign(42)

	header := [headerLen]byte{0xAA, 0xBB, 0xCC, 0xDD}
	wire, err := EncodeDocument(header, doc)
	require.NoError(t, err)

	e, back, err := DecodeDocument(fdformat.DocShiftStartReport, wire)
	require.NoError(t, err)
	require.Equal(t, header, e.Header)

	sign, ok := back.MessageFiscalSign()
	require.True(t, ok)
	require.EqualValues(t, 42, sign)
}

func TestEncodeDecodeDocument_NoSign(t *testing.T) {
	doc := sampleShiftStartDoc(t)

	header := [headerLen]byte{0x01, 0x00, 0x00, 0x00}
	wire, err := EncodeDocument(header, doc)
	require.NoError(t, err)

	_, back, err := DecodeDocument(fdformat.DocShiftStartReport, wire)
	require.NoError(t, err)
	_, ok := back.MessageFiscalSign()
	require.False(t, ok)
}
