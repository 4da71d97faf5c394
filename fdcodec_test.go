package fdcodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/object"
	"github.com/rufiscal/fdcodec/registry"
)

func TestDispatch_EndToEnd(t *testing.T) {
	o := object.New()
	require.NoError(t, object.Set(o, registry.DocName, "test"))
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

	body, err := o.IntoBytes()
	require.NoError(t, err)

	frame := make([]byte, 4+len(body))
	frame[0] = byte(fdformat.DocShiftStartReport)
	length := uint16(len(body))
	frame[2] = byte(length)
	frame[3] = byte(length >> 8)
	copy(frame[4:], body)

	doc, err := Dispatch(frame)
	require.NoError(t, err)
	require.Equal(t, fdformat.DocShiftStartReport, doc.Tag)

	fields, err := ToJSON(doc)
	require.NoError(t, err)
	require.Equal(t, "7707083893", fields["userInn"])

	name, ok := VariantName(doc.Tag)
	require.True(t, ok)
	require.Equal(t, "openShift", name)
}
