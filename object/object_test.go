package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/registry"
)

func TestObject_ScalarRoundTrip(t *testing.T) {
	o := New()

	require.NoError(t, Set(o, registry.DocName, "ОФД Тест"))

	got, ok, err := Get(o, registry.DocName)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ОФД Тест", got)
}

func TestObject_FixedWidthPadRecovery(t *testing.T) {
	o := New()

	require.NoError(t, Set(o, registry.FfdVer, 2))

	raw, ok := o.RawGet(registry.FfdVer.Tag)
	require.True(t, ok)
	require.Len(t, raw, 1, "FfdVer is a single-byte enum on the wire")

	got, ok, err := Get(o, registry.FfdVer)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 2, got)
}

func TestObject_MultiValueAccumulation(t *testing.T) {
	o := New()

	require.NoError(t, Push(o, registry.TransferOperatorAddress, "г. Москва"))
	require.NoError(t, Push(o, registry.TransferOperatorAddress, "г. Казань"))

	all, err := GetAll(o, registry.TransferOperatorAddress)
	require.NoError(t, err)
	require.Equal(t, []string{"г. Москва", "г. Казань"}, all)
}

func TestObject_GetMissingTagIsNotAnError(t *testing.T) {
	o := New()

	_, ok, err := Get(o, registry.DocName)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestObject_IntoBytesFromBytesRoundTrip(t *testing.T) {
	o := New()
	require.NoError(t, Set(o, registry.DocName, "hello"))
	require.NoError(t, Push(o, registry.TransferOperatorAddress, "a"))
	require.NoError(t, Push(o, registry.TransferOperatorAddress, "b"))

	encoded, err := o.IntoBytes()
	require.NoError(t, err)

	decoded, err := FromBytes(encoded)
	require.NoError(t, err)

	got, ok, err := Get(decoded, registry.DocName)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello", got)

	allAddrs, err := GetAll(decoded, registry.TransferOperatorAddress)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, allAddrs)
}

func TestObject_NestedObjectRoundTrip(t *testing.T) {
	parent := New()
	child := New()
	require.NoError(t, Set(child, registry.DocName, "child-field"))

	require.NoError(t, parent.PushNestedObject(registry.BuyerInfo.Tag, child))

	got, ok, err := parent.GetNestedObject(registry.BuyerInfo.Tag)
	require.NoError(t, err)
	require.True(t, ok)

	name, ok, err := Get(got, registry.DocName)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "child-field", name)
}

func TestObject_UnknownTagPreservedOpaquely(t *testing.T) {
	data := frameBytes(9999, []byte{0x01, 0x02})
	o, err := FromBytes(data)
	require.NoError(t, err)
	require.True(t, o.Contains(9999))

	raw, ok := o.RawGet(9999)
	require.True(t, ok)
	require.Equal(t, []byte{0x01, 0x02}, raw)
}

func TestObject_TruncatedFrameIsEOF(t *testing.T) {
	_, err := FromBytes([]byte{0x01, 0x00, 0x05, 0x00, 0x01}) // declares length 5, has 1
	require.Error(t, err)
}

func TestObject_RemoveDropsAllOccurrences(t *testing.T) {
	o := New()
	require.NoError(t, Push(o, registry.TransferOperatorAddress, "a"))
	require.NoError(t, Push(o, registry.TransferOperatorAddress, "b"))

	removed := o.Remove(registry.TransferOperatorAddress.Tag)
	require.Equal(t, 2, removed)
	require.False(t, o.Contains(registry.TransferOperatorAddress.Tag))
}

func frameBytes(tag uint16, value []byte) []byte {
	out := make([]byte, 4+len(value))
	out[0] = byte(tag)
	out[1] = byte(tag >> 8)
	length := uint16(len(value))
	out[2] = byte(length)
	out[3] = byte(length >> 8)
	copy(out[4:], value)

	return out
}
