package htmlcat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heathj/htmlscan/htmlcat"
)

func TestScriptAndStyleAreSpecial(t *testing.T) {
	cat := htmlcat.NewDefault()

	el, ok := cat.Get("SCRIPT")
	require.True(t, ok)
	require.True(t, el.Special)

	el, ok = cat.Get("style")
	require.True(t, ok)
	require.True(t, el.Special)
}

func TestOrdinaryElementDefaultsToBodyParent(t *testing.T) {
	cat := htmlcat.NewDefault()
	el, ok := cat.Get("DIV")
	require.True(t, ok)
	require.False(t, el.Special)
	require.Equal(t, "BODY", el.Parent)
}

func TestUnknownElementNameIsUnrecognized(t *testing.T) {
	cat := htmlcat.NewDefault()
	_, ok := cat.Get("frobnicator")
	require.False(t, ok)
}
