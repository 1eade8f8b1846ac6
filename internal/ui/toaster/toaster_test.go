package toaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Hidden(t *testing.T) {
	m := New()

	require.False(t, m.Visible())
	require.Empty(t, m.Message())
	require.Empty(t, m.View())
}

func TestShow_MakesVisible(t *testing.T) {
	m := New().Show("Saved accent.aqua", StyleSuccess)

	require.True(t, m.Visible())
	require.Equal(t, "Saved accent.aqua", m.Message())
	require.Contains(t, m.View(), "Saved accent.aqua")
}

func TestShow_ReplacesPreviousNotice(t *testing.T) {
	m := New().Show("first", StyleInfo).Show("second", StyleError)

	require.Equal(t, "second", m.Message())
	require.NotContains(t, m.View(), "first")
}

func TestUpdate_DismissHides(t *testing.T) {
	m := New().Show("bye", StyleInfo)

	m = m.Update(DismissMsg{Seq: 1})
	require.False(t, m.Visible())
}

// A timer scheduled for a notice that has since been replaced must not
// hide its successor early.
func TestUpdate_StaleDismissIgnored(t *testing.T) {
	m := New().Show("first", StyleInfo)
	stale := DismissMsg{Seq: 1}

	m = m.Show("second", StyleInfo)
	m = m.Update(stale)

	require.True(t, m.Visible())
	require.Equal(t, "second", m.Message())
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	bg := "line one\nline two"
	require.Equal(t, bg, New().Overlay(bg, 40, 10))
}

func TestOverlay_VisibleContainsNotice(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(" ", 40)+"\n", 9) + strings.Repeat(" ", 40)
	out := New().Show("copied", StyleSuccess).Overlay(bg, 40, 10)

	require.Contains(t, out, "copied")
}
