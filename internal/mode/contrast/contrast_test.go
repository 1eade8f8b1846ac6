package contrast

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/lgtok/internal/cachemanager"
	"github.com/zjrosen/lgtok/internal/clipboard"
	"github.com/zjrosen/lgtok/internal/color"
	"github.com/zjrosen/lgtok/internal/config"
	"github.com/zjrosen/lgtok/internal/edit"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/token"
)

func testServices() mode.Services {
	cfg := config.Defaults()
	return mode.Services{
		Store:     token.NewStore(token.Defaults()),
		Session:   &edit.Session{},
		Config:    &cfg,
		Clipboard: &clipboard.Mock{},
		ContrastCache: cachemanager.NewInMemory[color.Result](
			time.Minute, time.Minute),
	}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	c, cmd := m.Update(msg)
	updated, ok := c.(Model)
	require.True(t, ok)
	return updated, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestNew_EmptyInputsUnsupported(t *testing.T) {
	m := New(testServices())

	require.False(t, m.Result().Supported)
	require.Contains(t, ansi.Strip(m.View()), "Unsupported")
}

func TestTyping_LiteralColorsComputeRatio(t *testing.T) {
	m := New(testServices())

	m = typeText(t, m, "#000000")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "#FFFFFF")

	require.True(t, m.Result().Supported)
	require.InDelta(t, 21.0, m.Result().Ratio, 0.01)
	require.True(t, m.Result().AAA)
	require.Contains(t, ansi.Strip(m.View()), "21.00:1")
}

func TestTyping_TokenNamesResolve(t *testing.T) {
	m := New(testServices())

	m = typeText(t, m, "accent.aqua")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "#000000")

	require.True(t, m.Result().Supported)
	want := color.Check("#7ee5ff", "#000000", DefaultBackdrop)
	require.InDelta(t, want.Ratio, m.Result().Ratio, 1e-9)
}

func TestTyping_OverriddenTokenUsesEffectiveValue(t *testing.T) {
	services := testServices()
	value := "#000000"
	require.NoError(t, services.Store.SetOverride("accent.aqua", token.Override{Value: &value}))

	m := New(services)
	m = typeText(t, m, "accent.aqua")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "#FFFFFF")

	require.InDelta(t, 21.0, m.Result().Ratio, 0.01)
}

func TestBackdrop_FlattensTranslucentColors(t *testing.T) {
	m := New(testServices())

	m = typeText(t, m, "rgba(0,0,0,0.5)")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "#FFFFFF")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "#000000")

	// Against a black backdrop the half-transparent foreground
	// flattens to pure black.
	require.InDelta(t, 21.0, m.Result().Ratio, 0.01)
}

func TestUnparseableInput_DegradesToUnsupported(t *testing.T) {
	m := New(testServices())

	m = typeText(t, m, "blue")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "#FFFFFF")

	require.False(t, m.Result().Supported)
}

func TestFocus_TabCyclesAllThreeFields(t *testing.T) {
	m := New(testServices())
	require.True(t, m.Typing())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldBackground, m.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldBackdrop, m.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldForeground, m.focus)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Typing())
}
