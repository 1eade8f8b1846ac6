package importer

import (
	"os"
	"path/filepath"
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
	"github.com/zjrosen/lgtok/internal/edits"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/token"
)

const validDoc = `{"version": 1, "overrides": {"accent.aqua": {"value": "#0000FF"}}}`

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

// paste injects text directly; typing rune-by-rune through the
// textarea is equivalent but slower.
func paste(t *testing.T, m Model, text string) Model {
	t.Helper()
	m.input.SetValue(text)
	return m.revalidate()
}

func TestNew_EmptyInputPrompt(t *testing.T) {
	m := New(testServices())

	rejected, ok := m.verdict.(edits.Rejected)
	require.True(t, ok)
	require.Equal(t, edits.MsgEmptyInput, rejected.Message)
	require.True(t, m.Typing())
}

func TestPaste_ValidDocumentAccepted(t *testing.T) {
	m := paste(t, New(testServices()), validDoc)

	accepted, ok := m.verdict.(edits.Accepted)
	require.True(t, ok)
	require.Len(t, accepted.Overrides, 1)
	require.Contains(t, ansi.Strip(m.View()), "Ready to import 1 edits")
}

func TestPaste_InvalidJSONRejected(t *testing.T) {
	m := paste(t, New(testServices()), "{not json")

	rejected, ok := m.verdict.(edits.Rejected)
	require.True(t, ok)
	require.Equal(t, edits.MsgInvalidJSON, rejected.Message)
}

func TestApply_SetsOverridesAndClears(t *testing.T) {
	services := testServices()
	m := paste(t, New(services), validDoc)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	require.True(t, services.Store.HasOverride("accent.aqua"))
	tok, _ := services.Store.Effective("accent.aqua")
	require.Equal(t, "#0000FF", tok.Value)
	require.Empty(t, m.input.Value())

	// The batch carries both the notice and the refresh broadcast.
	msgs := collectMsgs(cmd())
	var sawNotice, sawReload bool
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case mode.NoticeMsg:
			sawNotice = true
			require.Equal(t, "Imported 1 edits", msg.Message)
		case mode.TokensReloadedMsg:
			sawReload = true
		}
	}
	require.True(t, sawNotice)
	require.True(t, sawReload)
}

func TestApply_RejectedInputIsNoOp(t *testing.T) {
	services := testServices()
	m := paste(t, New(services), "{}")

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
	require.Zero(t, services.Store.OverrideCount())
}

func TestApply_CancelsInProgressEdit(t *testing.T) {
	services := testServices()
	tok, _ := services.Store.Effective("accent.aqua")
	services.Session.Begin(tok)

	m := paste(t, New(services), validDoc)
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	require.False(t, services.Session.Editing())
}

func TestClear_EmptiesInput(t *testing.T) {
	m := paste(t, New(testServices()), validDoc)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Empty(t, m.input.Value())

	rejected, ok := m.verdict.(edits.Rejected)
	require.True(t, ok)
	require.Equal(t, edits.MsgEmptyInput, rejected.Message)
}

func TestLoadFile_FillsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.json")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	m := New(testServices())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, m.pathMode)

	m.path.SetValue(path)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	require.False(t, m.pathMode)
	require.Equal(t, validDoc, m.input.Value())
	_, ok := m.verdict.(edits.Accepted)
	require.True(t, ok)
}

func TestLoadFile_RejectsNonJSONExtension(t *testing.T) {
	m := New(testServices())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m.path.SetValue("edits.txt")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Empty(t, m.input.Value())

	notice, ok := cmd().(mode.NoticeMsg)
	require.True(t, ok)
	require.Contains(t, notice.Message, ".json")
}

func TestView_ShowsValueDiffPreview(t *testing.T) {
	m := paste(t, New(testServices()), validDoc)

	view := ansi.Strip(m.View())
	require.Contains(t, view, "accent.aqua")
}

// collectMsgs flattens a possibly batched command into its messages.
func collectMsgs(msg tea.Msg) []tea.Msg {
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, cmd := range batch {
		if cmd != nil {
			out = append(out, collectMsgs(cmd())...)
		}
	}
	return out
}
