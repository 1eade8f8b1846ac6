// Package contrast implements the interactive WCAG contrast checker.
// Each field takes either a token name or a literal color; translucent
// colors are flattened against the backdrop before the check.
package contrast

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/lgtok/internal/cachemanager"
	"github.com/zjrosen/lgtok/internal/color"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/ui/styles"
)

const (
	fieldForeground = iota
	fieldBackground
	fieldBackdrop
	fieldCount
)

// DefaultBackdrop is assumed when the backdrop field is left empty.
const DefaultBackdrop = "#FFFFFF"

var fieldLabels = [fieldCount]string{"Foreground", "Background", "Backdrop"}

// Model holds the contrast mode state.
type Model struct {
	services mode.Services
	inputs   [fieldCount]textinput.Model
	focus    int
	result   color.Result

	width  int
	height int
}

// New creates the contrast mode controller.
func New(services mode.Services) Model {
	m := Model{services: services}
	placeholders := [fieldCount]string{
		"accent.aqua or #7EE5FF",
		"glass.opacity.65 or rgba(...)",
		DefaultBackdrop,
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = ""
		in.Width = 34
		m.inputs[i] = in
	}
	m.inputs[fieldForeground].Focus()
	return m.recompute()
}

// resolve maps a token name to its effective value, or passes a
// literal color string through untouched.
func (m Model) resolve(raw string) string {
	raw = strings.TrimSpace(raw)
	if tok, ok := m.services.Store.Effective(raw); ok {
		return tok.Value
	}
	return raw
}

func (m Model) recompute() Model {
	fg := m.resolve(m.inputs[fieldForeground].Value())
	bg := m.resolve(m.inputs[fieldBackground].Value())
	backdrop := m.resolve(m.inputs[fieldBackdrop].Value())
	if backdrop == "" {
		backdrop = DefaultBackdrop
	}

	key := fg + "\x00" + bg + "\x00" + backdrop
	m.result = cachemanager.Memoize(m.services.ContrastCache, key,
		cachemanager.DefaultExpiration, func() color.Result {
			return color.Check(fg, bg, backdrop)
		})
	return m
}

// Init returns initial commands for the mode.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Typing reports whether a text input has focus.
func (m Model) Typing() bool {
	for i := range m.inputs {
		if m.inputs[i].Focused() {
			return true
		}
	}
	return false
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	return m
}

// Update handles messages for the contrast mode.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down", "enter":
			return m.setFocus((m.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
		case "esc":
			m.inputs[m.focus].Blur()
			return m, nil
		case "i":
			if !m.Typing() {
				return m, m.inputs[m.focus].Focus()
			}
		}
	}

	if !m.Typing() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m.recompute(), cmd
}

func (m Model) setFocus(focus int) Model {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
	return m
}

// Result exposes the current check outcome for tests.
func (m Model) Result() color.Result {
	return m.result
}

// View renders the three inputs and the ratio verdict.
func (m Model) View() string {
	sections := []string{
		styles.OverlayTitleStyle.Render("Contrast check"),
		"",
	}
	for i := range m.inputs {
		label := styles.FormLabelStyle
		if i == m.focus && m.inputs[i].Focused() {
			label = styles.FormLabelFocusedStyle
		}
		sections = append(sections,
			label.Render(fieldLabels[i]),
			m.inputs[i].View(),
			"")
	}
	sections = append(sections, m.viewVerdict())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewVerdict() string {
	if !m.result.Supported {
		return styles.UsedByStyle.Render("Unsupported")
	}

	ratio := fmt.Sprintf("%.2f:1", m.result.Ratio)
	badge := func(name string, pass bool) string {
		if pass {
			return styles.PassStyle.Render(name + " pass")
		}
		return styles.FailStyle.Render(name + " fail")
	}
	verdicts := lipgloss.JoinHorizontal(lipgloss.Top,
		badge("AA large", m.result.AALarge), "  ",
		badge("AA", m.result.AANormal), "  ",
		badge("AAA", m.result.AAA))
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.OverlayTitleStyle.Render(ratio),
		verdicts)
}
