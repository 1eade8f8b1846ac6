// Package editform is the modal form for editing a token's value,
// description, and used-by tags.
package editform

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/lgtok/internal/ui/styles"
)

const fieldCount = 3

const (
	fieldValue = iota
	fieldDescription
	fieldUsedBy
)

// SaveMsg carries the confirmed drafts back to the owner.
type SaveMsg struct {
	Name        string
	Value       string
	Description string
	UsedBy      string
}

// CancelMsg signals that the edit was discarded.
type CancelMsg struct{}

// Model holds the form state.
type Model struct {
	name   string
	inputs [fieldCount]textinput.Model
	focus  int
	width  int
}

// New builds a form for a token, seeding the inputs with its current
// drafts.
func New(name, value, description, usedBy string) Model {
	m := Model{name: name}

	labelsAndValues := []struct {
		placeholder string
		value       string
	}{
		{placeholder: "value", value: value},
		{placeholder: "description", value: description},
		{placeholder: "used by (comma separated)", value: usedBy},
	}
	for i, f := range labelsAndValues {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.SetValue(f.value)
		in.CharLimit = 0
		in.Width = 48
		m.inputs[i] = in
	}
	m.inputs[fieldValue].Focus()
	return m
}

// Name returns the token this form edits.
func (m Model) Name() string { return m.name }

// SetWidth adjusts the form to the viewport.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// Update handles key events while the form is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	case "enter":
		save := SaveMsg{
			Name:        m.name,
			Value:       m.inputs[fieldValue].Value(),
			Description: m.inputs[fieldDescription].Value(),
			UsedBy:      m.inputs[fieldUsedBy].Value(),
		}
		return m, func() tea.Msg { return save }
	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount), nil
	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
	}

	return m.updateInputs(msg)
}

func (m Model) setFocus(focus int) Model {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// Value returns the current value draft.
func (m Model) Value() string { return m.inputs[fieldValue].Value() }

// Description returns the current description draft.
func (m Model) Description() string { return m.inputs[fieldDescription].Value() }

// UsedBy returns the current used-by draft.
func (m Model) UsedBy() string { return m.inputs[fieldUsedBy].Value() }

// View renders the modal box.
func (m Model) View() string {
	labels := [fieldCount]string{"Value", "Description", "Used by"}

	rows := make([]string, 0, fieldCount*2+2)
	rows = append(rows, styles.OverlayTitleStyle.Render("Edit "+m.name), "")
	for i := range m.inputs {
		label := styles.FormLabelStyle
		if i == m.focus {
			label = styles.FormLabelFocusedStyle
		}
		rows = append(rows, label.Render(labels[i]), m.inputs[i].View())
	}
	rows = append(rows, "", styles.FormLabelStyle.Render("enter save · esc cancel · tab next field"))

	return styles.OverlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
