// Package importer implements the edits-JSON import mode: a paste
// area with a live validation verdict, a file loader, and a value diff
// preview against the current effective tokens.
package importer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/lgtok/internal/edits"
	"github.com/zjrosen/lgtok/internal/export"
	"github.com/zjrosen/lgtok/internal/keys"
	"github.com/zjrosen/lgtok/internal/log"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/ui/styles"
	"github.com/zjrosen/lgtok/internal/ui/toaster"
)

const previewLimit = 6

// Model holds the import mode state.
type Model struct {
	services mode.Services
	keys     keys.ImportKeyMap

	input   textarea.Model
	verdict edits.Result

	// Path prompt shown while loading from a file.
	pathMode bool
	path     textinput.Model

	dmp *diffmatchpatch.DiffMatchPatch

	width  int
	height int
}

// New creates the import mode controller.
func New(services mode.Services) Model {
	input := textarea.New()
	input.Placeholder = `{"version": 1, "overrides": {...}}`
	input.CharLimit = 0
	input.SetHeight(10)
	input.Focus()

	path := textinput.New()
	path.Placeholder = "path/to/" + export.EditsFileName
	path.Prompt = "file: "

	m := Model{
		services: services,
		keys:     keys.Import,
		input:    input,
		path:     path,
		dmp:      diffmatchpatch.New(),
	}
	return m.revalidate()
}

func (m Model) revalidate() Model {
	m.verdict = edits.Validate(m.input.Value(), m.services.Store.Names())
	return m
}

// Init returns initial commands for the mode.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Typing reports whether a text input has focus.
func (m Model) Typing() bool {
	return m.pathMode || m.input.Focused()
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	w := width - 6
	if w > 80 {
		w = 80
	}
	if w > 0 {
		m.input.SetWidth(w)
		m.path.Width = w
	}
	return m
}

// Update handles messages for the import mode.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.pathMode {
		if isKey {
			switch keyMsg.String() {
			case "esc":
				m.pathMode = false
				m.path.Blur()
				return m, nil
			case "enter":
				return m.loadFile()
			}
		}
		var cmd tea.Cmd
		m.path, cmd = m.path.Update(msg)
		return m, cmd
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.OpenFile):
			m.pathMode = true
			return m, m.path.Focus()

		case key.Matches(keyMsg, m.keys.Apply):
			return m.apply()

		case key.Matches(keyMsg, m.keys.Clear):
			m.input.SetValue("")
			return m.revalidate(), nil
		}

		switch keyMsg.String() {
		case "esc":
			m.input.Blur()
			return m, nil
		case "i", "enter":
			if !m.input.Focused() {
				return m, m.input.Focus()
			}
		}
	}

	if !m.input.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m.revalidate(), cmd
}

func (m Model) loadFile() (mode.Controller, tea.Cmd) {
	path := strings.TrimSpace(m.path.Value())
	m.pathMode = false
	m.path.Blur()

	raw, err := edits.ReadFile(path)
	if err != nil {
		log.Warn(log.CatImport, "load failed: %v", err)
		return m, mode.Notice(err.Error(), toaster.StyleError)
	}
	m.input.SetValue(raw)
	return m.revalidate(), mode.Notice("Loaded "+path, toaster.StyleInfo)
}

func (m Model) apply() (mode.Controller, tea.Cmd) {
	accepted, ok := m.verdict.(edits.Accepted)
	if !ok {
		return m, nil
	}

	count := edits.Apply(m.services.Store, m.services.Session, accepted.Overrides)
	log.Info(log.CatImport, "applied %d overrides (%d ignored)", count, accepted.Ignored)
	m.input.SetValue("")
	m = m.revalidate()

	message := fmt.Sprintf("Imported %d edits", count)
	if accepted.Ignored > 0 {
		message = fmt.Sprintf("Imported %d edits (ignored %d)", count, accepted.Ignored)
	}
	notice := mode.Notice(message, toaster.StyleSuccess)
	reload := func() tea.Msg { return mode.TokensReloadedMsg{} }
	return m, tea.Batch(notice, reload)
}

// View renders the paste area, verdict line, and diff preview.
func (m Model) View() string {
	sections := []string{
		styles.OverlayTitleStyle.Render("Import edits"),
		"",
		m.input.View(),
		"",
		m.viewVerdict(),
	}

	if m.pathMode {
		sections = append(sections, "", m.path.View())
	}

	help := "ctrl+o load file · ctrl+s apply · ctrl+l clear · esc unfocus"
	sections = append(sections, "", styles.StatusBarStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewVerdict() string {
	switch v := m.verdict.(type) {
	case edits.Rejected:
		if v.Message == edits.MsgEmptyInput {
			return styles.UsedByStyle.Render(v.Message)
		}
		return styles.FailStyle.Render(v.Message)
	case edits.Accepted:
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.PassStyle.Render(v.Summary()),
			m.viewPreview(v))
	}
	return ""
}

// viewPreview shows per-token value diffs for the accepted overrides,
// sorted by name and capped at previewLimit lines.
func (m Model) viewPreview(accepted edits.Accepted) string {
	names := make([]string, 0, len(accepted.Overrides))
	for name := range accepted.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		if len(lines) == previewLimit {
			lines = append(lines, styles.UsedByStyle.Render(
				fmt.Sprintf("… and %d more", len(names)-previewLimit)))
			break
		}
		o := accepted.Overrides[name]
		if o.Value == nil {
			lines = append(lines, fmt.Sprintf("  %s: metadata only", name))
			continue
		}
		current, _ := m.services.Store.Effective(name)
		diffs := m.dmp.DiffMain(current.Value, *o.Value, false)
		lines = append(lines, fmt.Sprintf("  %s: %s", name, m.dmp.DiffPrettyText(diffs)))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}
