package editform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNew_SeedsDrafts(t *testing.T) {
	m := New("accent.aqua", "#7EE5FF", "Interactive tint", "Links, Buttons")

	require.Equal(t, "accent.aqua", m.Name())
	require.Equal(t, "#7EE5FF", m.Value())
	require.Equal(t, "Interactive tint", m.Description())
	require.Equal(t, "Links, Buttons", m.UsedBy())
}

func TestUpdate_EnterEmitsSaveWithEdits(t *testing.T) {
	m := New("accent.aqua", "", "", "")
	m, _ = m.Update(keyMsg("#123456"))

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	save, ok := cmd().(SaveMsg)
	require.True(t, ok)
	require.Equal(t, "accent.aqua", save.Name)
	require.Equal(t, "#123456", save.Value)
	require.Empty(t, save.Description)
}

func TestUpdate_EscEmitsCancel(t *testing.T) {
	m := New("accent.aqua", "#7EE5FF", "", "")

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)

	_, ok := cmd().(CancelMsg)
	require.True(t, ok)
}

func TestUpdate_TabMovesTypingToNextField(t *testing.T) {
	m := New("accent.aqua", "", "", "")

	m, _ = m.Update(keyMsg("tab"))
	m, _ = m.Update(keyMsg("updated description"))

	require.Empty(t, m.Value())
	require.Equal(t, "updated description", m.Description())
}

func TestUpdate_ShiftTabWrapsToUsedBy(t *testing.T) {
	m := New("accent.aqua", "", "", "")

	m, _ = m.Update(keyMsg("shift+tab"))
	m, _ = m.Update(keyMsg("Focus ring"))

	require.Equal(t, "Focus ring", m.UsedBy())
}

func TestView_ContainsTitleAndFields(t *testing.T) {
	view := New("glass.blur.24", "blur(24px)", "", "").View()

	require.Contains(t, view, "Edit glass.blur.24")
	require.Contains(t, view, "blur(24px)")
	require.Contains(t, view, "Used by")
}
