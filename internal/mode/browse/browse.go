// Package browse implements the token-table mode: filtering, copying,
// editing, and exporting the effective token list.
package browse

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/lgtok/internal/export"
	"github.com/zjrosen/lgtok/internal/keys"
	"github.com/zjrosen/lgtok/internal/log"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/token"
	"github.com/zjrosen/lgtok/internal/ui/editform"
	"github.com/zjrosen/lgtok/internal/ui/overlay"
	"github.com/zjrosen/lgtok/internal/ui/styles"
	"github.com/zjrosen/lgtok/internal/ui/toaster"
)

// Model holds the browse mode state.
type Model struct {
	services mode.Services
	keys     keys.BrowseKeyMap

	query     textinput.Model
	searching bool

	// Filter choice lists, each prefixed with the "all" sentinel.
	groups   []string
	groupIdx int
	tags     []string
	tagIdx   int

	visible []token.Token
	cursor  int

	form    editform.Model
	editing bool

	width  int
	height int
}

// New creates the browse mode controller.
func New(services mode.Services) Model {
	query := textinput.New()
	query.Placeholder = "filter tokens"
	query.Prompt = "/ "
	query.CharLimit = 0
	query.Width = 32

	m := Model{
		services: services,
		keys:     keys.Browse,
		query:    query,
	}
	return m.refresh()
}

// refresh recomputes the filter choice lists and the visible subset,
// keeping the cursor in range.
func (m Model) refresh() Model {
	effective := m.services.Store.EffectiveTokens()

	m.groups = append([]string{token.FilterAll}, token.Groups(effective)...)
	m.tags = append([]string{token.FilterAll}, token.UsedByTags(effective)...)
	if m.groupIdx >= len(m.groups) {
		m.groupIdx = 0
	}
	if m.tagIdx >= len(m.tags) {
		m.tagIdx = 0
	}

	m.visible = token.Filter(effective, m.criteria())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m Model) criteria() token.Criteria {
	return token.Criteria{
		Query:  m.query.Value(),
		Group:  m.groups[m.groupIdx],
		UsedBy: m.tags[m.tagIdx],
	}
}

// Init returns initial commands for the mode.
func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether a text input has focus.
func (m Model) Typing() bool {
	return m.searching || m.editing
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.form = m.form.SetWidth(width)
	return m
}

// Update handles messages for the browse mode.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case mode.TokensReloadedMsg:
		return m.refresh(), nil

	case editform.SaveMsg:
		return m.saveEdit(msg)

	case editform.CancelMsg:
		m.services.Session.Cancel()
		m.editing = false
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}
	return m.updateTable(keyMsg)
}

func (m Model) updateSearch(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.query.SetValue("")
		m.query.Blur()
		m.searching = false
		return m.refresh(), nil
	case "enter":
		m.query.Blur()
		m.searching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m.refresh(), cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.query.Focus()

	case key.Matches(msg, m.keys.Group):
		m.groupIdx = (m.groupIdx + 1) % len(m.groups)
		return m.refresh(), nil

	case key.Matches(msg, m.keys.UsedBy):
		m.tagIdx = (m.tagIdx + 1) % len(m.tags)
		return m.refresh(), nil

	case key.Matches(msg, m.keys.ClearQuery):
		m.query.SetValue("")
		m.groupIdx = 0
		m.tagIdx = 0
		return m.refresh(), nil

	case key.Matches(msg, m.keys.Edit):
		return m.openEdit()

	case key.Matches(msg, m.keys.CopyValue):
		tok, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.copyText(tok.Value, fmt.Sprintf("Copied %s value", tok.Name))

	case key.Matches(msg, m.keys.CopyCSS):
		tok, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.copyText(export.CSSVariable(tok), fmt.Sprintf("Copied %s CSS", tok.Name))

	case key.Matches(msg, m.keys.CopyRow):
		tok, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.copyText(export.TabRow(tok), fmt.Sprintf("Copied %s row", tok.Name))

	case key.Matches(msg, m.keys.CopyJSON):
		tok, ok := m.selected()
		if !ok {
			return m, nil
		}
		text, err := export.TokenJSON(tok)
		if err != nil {
			return m, mode.Notice("Export failed: "+err.Error(), toaster.StyleError)
		}
		return m, m.copyText(text, fmt.Sprintf("Copied %s JSON", tok.Name))

	case key.Matches(msg, m.keys.ResetAll):
		count := m.services.Store.OverrideCount()
		m.services.Store.ResetAll()
		m.services.Session.Cancel()
		m.editing = false
		return m.refresh(), mode.Notice(fmt.Sprintf("Cleared %d edits", count), toaster.StyleInfo)

	case key.Matches(msg, m.keys.ExportCSV):
		return m, m.exportCSV()

	case key.Matches(msg, m.keys.ExportEdit):
		return m, m.exportEdits()
	}

	return m, nil
}

func (m Model) selected() (token.Token, bool) {
	if len(m.visible) == 0 {
		return token.Token{}, false
	}
	return m.visible[m.cursor], true
}

func (m Model) openEdit() (mode.Controller, tea.Cmd) {
	tok, ok := m.selected()
	if !ok {
		return m, nil
	}
	// Begin implicitly cancels any prior in-progress edit.
	m.services.Session.Begin(tok)
	s := m.services.Session
	m.form = editform.New(tok.Name, s.DraftValue, s.DraftDescription, s.DraftUsedBy).SetWidth(m.width)
	m.editing = true
	return m, nil
}

func (m Model) saveEdit(msg editform.SaveMsg) (mode.Controller, tea.Cmd) {
	s := m.services.Session
	s.DraftValue = msg.Value
	s.DraftDescription = msg.Description
	s.DraftUsedBy = msg.UsedBy

	if err := s.Save(m.services.Store); err != nil {
		log.Error(log.CatUI, "saving edit: %v", err)
		return m, mode.Notice("Save failed: "+err.Error(), toaster.StyleError)
	}
	m.editing = false
	return m.refresh(), mode.Notice(fmt.Sprintf("Saved %s", msg.Name), toaster.StyleSuccess)
}

// copyText hands a formatted string to the clipboard; a failure is
// reported and never retried.
func (m Model) copyText(text, success string) tea.Cmd {
	if err := m.services.Clipboard.Copy(text); err != nil {
		log.Warn(log.CatClipboard, "copy failed: %v", err)
		return mode.Notice("Clipboard unavailable", toaster.StyleError)
	}
	return mode.Notice(success, toaster.StyleSuccess)
}

// exportCSV writes the filtered table to a CSV file; when the write
// fails, the same text falls back to the clipboard.
func (m Model) exportCSV() tea.Cmd {
	csv := export.CSV(m.visible)
	if err := os.WriteFile(export.CSVFileName, []byte(csv), 0o644); err != nil {
		log.Warn(log.CatExport, "csv write failed: %v", err)
		if cerr := m.services.Clipboard.Copy(csv); cerr != nil {
			return mode.Notice("Export failed", toaster.StyleError)
		}
		return mode.Notice("Export failed; CSV copied to clipboard", toaster.StyleWarn)
	}
	return mode.Notice("Exported "+export.CSVFileName, toaster.StyleSuccess)
}

func (m Model) exportEdits() tea.Cmd {
	doc, err := export.EditsFile(m.services.Store.Overrides(), time.Now())
	if err != nil {
		return mode.Notice("Export failed: "+err.Error(), toaster.StyleError)
	}
	if err := os.WriteFile(export.EditsFileName, []byte(doc), 0o644); err != nil {
		log.Warn(log.CatExport, "edits write failed: %v", err)
		if cerr := m.services.Clipboard.Copy(doc); cerr != nil {
			return mode.Notice("Export failed", toaster.StyleError)
		}
		return mode.Notice("Export failed; edits copied to clipboard", toaster.StyleWarn)
	}
	return mode.Notice("Exported "+export.EditsFileName, toaster.StyleSuccess)
}

// View renders the filter bar, token table, and status line.
func (m Model) View() string {
	sections := []string{
		m.viewFilterBar(),
		"",
		m.viewTable(),
		"",
		m.viewStatus(),
	}
	bg := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.editing {
		return overlay.Place(overlay.Config{
			Width:    m.width,
			Height:   m.height,
			Position: overlay.Center,
		}, m.form.View(), bg)
	}
	return bg
}

func (m Model) viewFilterBar() string {
	group := styles.GroupBadgeStyle.Render("group:" + m.groups[m.groupIdx])
	tag := styles.GroupBadgeStyle.Render("used-by:" + m.tags[m.tagIdx])
	return lipgloss.JoinHorizontal(lipgloss.Top, m.query.View(), "  ", group, "  ", tag)
}

func (m Model) viewStatus() string {
	status := fmt.Sprintf("%d/%d tokens · %d edits",
		len(m.visible), len(m.services.Store.BaseTokens()), m.services.Store.OverrideCount())
	return styles.StatusBarStyle.Render(status)
}
