package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/format"
)

func TestParseCompression(t *testing.T) {
	cases := map[string]format.CompressionType{
		"":     format.CompressionNone,
		"none": format.CompressionNone,
		"zstd": format.CompressionZstd,
		"ZSTD": format.CompressionZstd,
		"s2":   format.CompressionS2,
		"lz4":  format.CompressionLZ4,
	}
	for name, want := range cases {
		got, err := parseCompression(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseCompression_Unknown(t *testing.T) {
	_, err := parseCompression("bogus")
	require.Error(t, err)
}
