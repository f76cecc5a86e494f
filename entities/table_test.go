package entities_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heathj/htmlscan/entities"
)

func TestXMLBuiltinsResolve(t *testing.T) {
	tbl := entities.NewDefault()
	c, ok := tbl.Get("amp")
	require.True(t, ok)
	require.Equal(t, '&', c)
	require.True(t, entities.IsXMLBuiltin("amp"))
}

func TestNamedHTMLEntityResolves(t *testing.T) {
	tbl := entities.NewDefault()
	c, ok := tbl.Get("copy")
	require.True(t, ok)
	require.Equal(t, '©', c)
	require.False(t, entities.IsXMLBuiltin("copy"))
}

func TestUnknownEntityMisses(t *testing.T) {
	tbl := entities.NewDefault()
	_, ok := tbl.Get("nosuch")
	require.False(t, ok)
}
