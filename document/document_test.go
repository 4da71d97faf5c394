package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/errs"
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/object"
	"github.com/rufiscal/fdcodec/registry"
)

func newShiftStartReport(t *testing.T) *object.Object {
	t.Helper()
	o := object.New()
	require.NoError(t, object.Set(o, registry.DocName, "Отчет об открытии смены"))
	require.NoError(t, object.Set(o, registry.FfdVer, 2))
	require.NoError(t, object.Set(o, registry.User, "ООО Ромашка"))
	require.NoError(t, object.Set(o, registry.UserInn, "7707083893"))
	require.NoError(t, object.Set(o, registry.RetailPlaceAddress, "г. Москва, ул. Ленина, д. 1"))
	require.NoError(t, object.Set(o, registry.RetailPlace, "Магазин №1"))
	require.NoError(t, object.Set(o, registry.DateTime, time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, object.Set(o, registry.ShiftNum, 42))
	require.NoError(t, object.Set(o, registry.KktRegNum, "0000000000012345"))
	require.NoError(t, object.Set(o, registry.KktVer, "1.0"))
	require.NoError(t, object.Set(o, registry.KktFfdVer, 2))
	require.NoError(t, object.Set(o, registry.DocNum, 7))
	require.NoError(t, object.Set(o, registry.DriveNum, "9999078900004312"))
	require.NoError(t, object.Set(o, registry.DocFiscalSign, []byte{1, 2, 3, 4, 5, 6}))

	return o
}

func TestFromObject_MissingRequiredFieldRejected(t *testing.T) {
	o := newShiftStartReport(t)
	o.Remove(registry.KktRegNum.Tag)

	_, err := FromObject(fdformat.DocShiftStartReport, o)
	require.ErrorIs(t, err, errs.ErrMissingField)
}

func TestFromObject_UnknownDocTagRejected(t *testing.T) {
	_, err := FromObject(fdformat.DocTag(9999), object.New())
	require.Error(t, err)
}

func TestFromObject_AllRequiredPresentSucceeds(t *testing.T) {
	doc, err := FromObject(fdformat.DocShiftStartReport, newShiftStartReport(t))
	require.NoError(t, err)
	require.Equal(t, fdformat.DocShiftStartReport, doc.Tag)
}

func TestDocument_IntoBytesFromBytesRoundTrip(t *testing.T) {
	doc, err := FromObject(fdformat.DocShiftStartReport, newShiftStartReport(t))
	require.NoError(t, err)

	body, err := doc.IntoBytes()
	require.NoError(t, err)

	back, err := FromBytes(fdformat.DocShiftStartReport, body)
	require.NoError(t, err)

	got, ok, err := object.Get(back.Object, registry.User)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ООО Ромашка", got)
}

func TestDispatch_WrapsLeadingTagFrame(t *testing.T) {
	doc, err := FromObject(fdformat.DocShiftStartReport, newShiftStartReport(t))
	require.NoError(t, err)

	body, err := doc.IntoBytes()
	require.NoError(t, err)

	frame := make([]byte, 4+len(body))
	frame[0] = byte(fdformat.DocShiftStartReport)
	frame[1] = byte(uint16(fdformat.DocShiftStartReport) >> 8)
	length := uint16(len(body))
	frame[2] = byte(length)
	frame[3] = byte(length >> 8)
	copy(frame[4:], body)

	dispatched, err := Dispatch(frame)
	require.NoError(t, err)
	require.Equal(t, fdformat.DocShiftStartReport, dispatched.Tag)
}

func TestDispatch_UnrecognizedTagIsInvalidFormat(t *testing.T) {
	frame := []byte{0xFF, 0xFF, 0x00, 0x00}
	_, err := Dispatch(frame)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestDispatch_TruncatedHeaderIsEOF(t *testing.T) {
	_, err := Dispatch([]byte{0x02, 0x00})
	require.ErrorIs(t, err, errs.ErrEof)
}
