package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/object"
	"github.com/rufiscal/fdcodec/registry"
)

func sampleBody(t *testing.T) []byte {
	t.Helper()
	o := object.New()
	require.NoError(t, object.Set(o, registry.DocName, "test-doc"))
	b, err := o.IntoBytes()
	require.NoError(t, err)

	return b
}

func TestWrapUnwrap_SignlessRoundTrip(t *testing.T) {
	header := [headerLen]byte{0x01, 0x00, 0xAA, 0xBB}
	body := sampleBody(t)

	wire := Wrap(header, nil, body)

	e, err := Unwrap(wire)
	require.NoError(t, err)
	require.Equal(t, header, e.Header)
	require.Nil(t, e.Sign)
	require.Equal(t, body, e.Body)
}

func TestWrapUnwrap_SignedRoundTrip(t *testing.T) {
	header := [headerLen]byte{0x02, 0x00, 0x00, 0x00}
	var sign [signLen]byte
	sign[7] = 0x2A // 42, trivially distinguishable in the trailing byte
	body := sampleBody(t)

	wire := Wrap(header, &sign, body)

	e, err := Unwrap(wire)
	require.NoError(t, err)
	require.Equal(t, header, e.Header)
	require.NotNil(t, e.Sign)
	require.Equal(t, sign, *e.Sign)
	require.Equal(t, body, e.Body)

	got, ok := e.MessageFiscalSign()
	require.True(t, ok)
	require.EqualValues(t, 0x2A, got)
}

func TestUnwrap_AmbiguousOffsetPicksCleanParse(t *testing.T) {
	// A signless body that happens to be longer than signLen (8) bytes: the naive
	// signed-offset parse at headerLen+signLen must not also parse cleanly,
	// or disambiguation would be genuinely ambiguous. object.FromBytes
	// enforces full consumption, so slicing 8 bytes off the front of a
	// valid TLV stream almost never yields another valid, fully-consumed
	// stream, which is exactly the property Unwrap leans on.
	header := [headerLen]byte{0x03, 0x00, 0x00, 0x00}
	body := sampleBody(t)
	require.GreaterOrEqual(t, len(body), signLen+1)

	wire := Wrap(header, nil, body)

	e, err := Unwrap(wire)
	require.NoError(t, err)
	require.Nil(t, e.Sign, "shorter signless parse must win when it alone parses cleanly")
	require.Equal(t, body, e.Body)
}

func TestUnwrap_TooShortForHeaderIsEOF(t *testing.T) {
	_, err := Unwrap([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestUnwrap_GarbageBodyIsInvalidFormat(t *testing.T) {
	header := [headerLen]byte{0x01, 0x00, 0x00, 0x00}
	garbage := append(header[:], []byte{0xFF, 0xFF, 0xFF}...)

	_, err := Unwrap(garbage)
	require.Error(t, err)
}

func TestEnvelope_SetMessageFiscalSign(t *testing.T) {
	e := &Envelope{}
	_, ok := e.MessageFiscalSign()
	require.False(t, ok)

	e.SetMessageFiscalSign(9297210640046662345)
	got, ok := e.MessageFiscalSign()
	require.True(t, ok)
	require.EqualValues(t, 9297210640046662345, got)
}
