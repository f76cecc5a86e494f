package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heathj/htmlscan/source"
)

func TestExpandedSystemIDPassesThroughAbsoluteURLs(t *testing.T) {
	require.Equal(t, "https://example.com/a.html", source.ExpandedSystemID("https://example.com/a.html", ""))
}

func TestExpandedSystemIDEmptyStaysEmpty(t *testing.T) {
	require.Equal(t, "", source.ExpandedSystemID("", "http://example.com/"))
}

func TestExpandedSystemIDResolvesAgainstBase(t *testing.T) {
	got := source.ExpandedSystemID("b.html", "http://example.com/dir/a.html")
	require.Equal(t, "http://example.com/dir/b.html", got)
}

func TestExpandedSystemIDResolvesAbsolutePathAgainstBase(t *testing.T) {
	got := source.ExpandedSystemID("/c.html", "http://example.com/dir/a.html")
	require.Equal(t, "http://example.com/c.html", got)
}
