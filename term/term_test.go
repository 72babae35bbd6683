package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringWidth(t *testing.T) {
	require.Equal(t, 0, StringWidth(""))
	require.Equal(t, 5, StringWidth("hello"))
	// Wide runes occupy two cells each.
	require.Equal(t, 6, StringWidth("日本語"))
	require.Equal(t, 8, StringWidth("ab日本語"))
}

func TestDimensionsWithoutTTY(t *testing.T) {
	if StdoutIsTTY() {
		t.Skip("stdout is a terminal")
	}
	_, _, ok := Dimensions()
	require.False(t, ok)
}

func TestStyleRendersContent(t *testing.T) {
	style := NewStyle().Bold(true).Foreground(Color("5"))
	require.Contains(t, style.Render("warning"), "warning")
}

func TestTTYDetectionIsConsistent(t *testing.T) {
	// Both streams point at the test harness; detection must not panic and
	// must agree with Dimensions on stdout.
	_, _, ok := Dimensions()
	if !StdoutIsTTY() {
		require.False(t, ok)
	}
}
