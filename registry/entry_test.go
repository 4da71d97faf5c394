package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/fdformat"
)

func TestLookup_KnownTag(t *testing.T) {
	e, ok := Lookup(DocName.Tag)
	require.True(t, ok)
	require.Equal(t, fdformat.KindString, e.Kind)
}

func TestLookup_UnknownTag(t *testing.T) {
	_, ok := Lookup(0xFFFF)
	require.False(t, ok)
}

func TestIsMulti(t *testing.T) {
	require.True(t, IsMulti(TransferOperatorAddress.Tag))
	require.False(t, IsMulti(DocName.Tag))
	require.False(t, IsMulti(0xFFFF))
}

func TestJSONName_DefaultAlias(t *testing.T) {
	name, ok := JSONName(FfdVer.Tag, 0)
	require.True(t, ok)
	require.Equal(t, "fiscalDocumentFormatVer", name)
}

func TestJSONName_NoJSONSurface(t *testing.T) {
	_, ok := JSONName(DocName.Tag, 0)
	require.False(t, ok)
}

func TestJSONName_ContextualAlias(t *testing.T) {
	top, ok := JSONName(FiscalSignValidityPeriod.Tag, uint16(fdformat.DocRegistrationReport))
	require.True(t, ok)
	require.Equal(t, "fdKeyResource", top)

	nested, ok := JSONName(FiscalSignValidityPeriod.Tag, uint16(fdformat.DocPaymentStateReport))
	require.True(t, ok)
	require.Equal(t, "keyResource", nested)
}

func TestTagForJSONName_RoundTripsJSONName(t *testing.T) {
	tag, ok := TagForJSONName("keyResource", uint16(fdformat.DocPaymentStateReport))
	require.True(t, ok)
	require.Equal(t, FiscalSignValidityPeriod.Tag, tag)
}

func TestTagForJSONName_UnknownNameNotFound(t *testing.T) {
	_, ok := TagForJSONName("notARealField", 0)
	require.False(t, ok)
}

func TestCount_MatchesIterate(t *testing.T) {
	require.Equal(t, Count(), len(Iterate()))
	require.Greater(t, Count(), 0)
}
