package htmlenc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/heathj/htmlscan/htmlenc"
)

func TestNativeNormalizesAliases(t *testing.T) {
	m := htmlenc.NewDefault()

	native, ok := m.Native("UTF8")
	require.True(t, ok)
	require.Equal(t, "utf-8", native)

	native, ok = m.Native("US-ASCII")
	require.True(t, ok)
	require.Equal(t, "windows-1252", native)

	native, ok = m.Native("ISO-8859-1")
	require.True(t, ok)
	require.Equal(t, "windows-1252", native)
}

func TestNativeUnknownName(t *testing.T) {
	m := htmlenc.NewDefault()
	_, ok := m.Native("x-made-up-charset")
	require.False(t, ok)
}

func TestDecoderResolvesKnownEncodings(t *testing.T) {
	m := htmlenc.NewDefault()

	dec, ok := m.Decoder("utf-8")
	require.True(t, ok)
	require.Equal(t, unicode.UTF8, dec)

	dec, ok = m.Decoder("windows-1252")
	require.True(t, ok)
	require.Equal(t, charmap.Windows1252, dec)
}
