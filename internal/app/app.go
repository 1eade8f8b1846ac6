// Package app contains the root Bubble Tea model: mode routing,
// global key handling, notices, and live token reloads.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/lgtok/internal/config"
	"github.com/zjrosen/lgtok/internal/keys"
	"github.com/zjrosen/lgtok/internal/log"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/mode/browse"
	"github.com/zjrosen/lgtok/internal/mode/contrast"
	"github.com/zjrosen/lgtok/internal/mode/guide"
	"github.com/zjrosen/lgtok/internal/mode/importer"
	"github.com/zjrosen/lgtok/internal/pubsub"
	"github.com/zjrosen/lgtok/internal/token"
	"github.com/zjrosen/lgtok/internal/ui/styles"
	"github.com/zjrosen/lgtok/internal/ui/toaster"
)

var modeOrder = []mode.AppMode{mode.ModeBrowse, mode.ModeImport, mode.ModeContrast, mode.ModeGuide}

var modeNames = map[mode.AppMode]string{
	mode.ModeBrowse:   "Tokens",
	mode.ModeImport:   "Import",
	mode.ModeContrast: "Contrast",
	mode.ModeGuide:    "Guide",
}

// Model is the root application model.
type Model struct {
	services mode.Services
	keys     keys.GlobalKeyMap

	current mode.AppMode
	modes   map[mode.AppMode]mode.Controller

	toaster toaster.Model

	// listener delivers debounced change events for the external
	// tokens file; nil when auto-reload is off.
	listener *pubsub.ContinuousListener[string]

	width  int
	height int
}

// New creates the root model. listener may be nil.
func New(services mode.Services, listener *pubsub.ContinuousListener[string]) Model {
	return Model{
		services: services,
		keys:     keys.Global,
		current:  mode.ModeBrowse,
		modes: map[mode.AppMode]mode.Controller{
			mode.ModeBrowse:   browse.New(services),
			mode.ModeImport:   importer.New(services),
			mode.ModeContrast: contrast.New(services),
			mode.ModeGuide:    guide.New(services),
		},
		toaster:  toaster.New(),
		listener: listener,
	}
}

// Init starts the mode controllers and the reload listener.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.modes)+1)
	for _, am := range modeOrder {
		cmds = append(cmds, m.modes[am].Init())
	}
	if m.listener != nil {
		cmds = append(cmds, m.listener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the toaster, global key handling, and the
// active mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for am, c := range m.modes {
			m.modes[am] = c.SetSize(msg.Width, msg.Height-2)
		}
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case mode.NoticeMsg:
		m.toaster = m.toaster.Show(msg.Message, msg.Style)
		return m, m.toaster.ScheduleDismiss()

	case mode.TokensReloadedMsg:
		return m.broadcast(msg)

	case pubsub.Event[string]:
		return m.reloadTokens(msg.Payload)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateCurrent(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits; everything else yields to a focused input.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.modes[m.current].Typing() {
		return m.updateCurrent(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Browse):
		return m.switchMode(mode.ModeBrowse)
	case key.Matches(msg, m.keys.Import):
		return m.switchMode(mode.ModeImport)
	case key.Matches(msg, m.keys.Contrast):
		return m.switchMode(mode.ModeContrast)
	case key.Matches(msg, m.keys.Guide):
		return m.switchMode(mode.ModeGuide)
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Motion):
		return m.toggleMotion()
	}

	return m.updateCurrent(msg)
}

func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	c, cmd := m.modes[m.current].Update(msg)
	m.modes[m.current] = c
	return m, cmd
}

// broadcast delivers a message to every mode so each can refresh its
// derived state.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for am, c := range m.modes {
		updated, cmd := c.Update(msg)
		m.modes[am] = updated
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) switchMode(target mode.AppMode) (tea.Model, tea.Cmd) {
	if target == m.current {
		return m, nil
	}
	m.current = target
	return m, m.modes[target].Init()
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	cfg := m.services.Config
	if cfg.Theme == config.ThemeDark {
		cfg.Theme = config.ThemeLight
	} else {
		cfg.Theme = config.ThemeDark
	}
	styles.ApplyTheme(cfg.Theme)

	if err := config.SavePreferences(m.services.ConfigPath, cfg.Theme, cfg.Motion); err != nil {
		log.Warn(log.CatConfig, "saving theme: %v", err)
	}
	return m, mode.Notice("Theme: "+cfg.Theme, toaster.StyleInfo)
}

func (m Model) toggleMotion() (tea.Model, tea.Cmd) {
	cfg := m.services.Config
	if cfg.ReducedMotion() {
		cfg.Motion = config.MotionFull
	} else {
		cfg.Motion = config.MotionReduced
	}

	if err := config.SavePreferences(m.services.ConfigPath, cfg.Theme, cfg.Motion); err != nil {
		log.Warn(log.CatConfig, "saving motion: %v", err)
	}
	return m, mode.Notice("Motion: "+cfg.Motion, toaster.StyleInfo)
}

// reloadTokens re-reads the external dataset after a watcher event,
// then re-arms the listener.
func (m Model) reloadTokens(path string) (tea.Model, tea.Cmd) {
	rearm := func() tea.Cmd {
		if m.listener == nil {
			return nil
		}
		return m.listener.Listen()
	}

	tokens, err := token.LoadFile(path)
	if err != nil {
		log.Error(log.CatWatcher, "reloading tokens: %v", err)
		return m, tea.Batch(
			mode.Notice("Reload failed: "+err.Error(), toaster.StyleError),
			rearm())
	}

	dropped := m.services.Store.OverrideCount()
	m.services.Store.ReplaceBase(tokens)
	dropped -= m.services.Store.OverrideCount()
	log.Info(log.CatWatcher, "reloaded %d tokens (%d edits dropped)", len(tokens), dropped)

	model, cmds := m.broadcast(mode.TokensReloadedMsg{})
	return model, tea.Batch(cmds,
		mode.Notice(fmt.Sprintf("Reloaded %d tokens", len(tokens)), toaster.StyleInfo),
		rearm())
}

// View renders the mode tabs, the active mode, and any notice.
func (m Model) View() string {
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		m.modes[m.current].View())

	if !m.toaster.Visible() {
		return view
	}
	// Reduced motion keeps the notice in the document flow instead of
	// floating it over the content.
	if m.services.Config.ReducedMotion() {
		return lipgloss.JoinVertical(lipgloss.Left, view,
			styles.StatusBarStyle.Render(m.toaster.Message()))
	}
	return m.toaster.Overlay(view, m.width, m.height)
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, len(modeOrder))
	for i, am := range modeOrder {
		if i > 0 {
			parts = append(parts, "  ")
		}
		label := fmt.Sprintf("%d %s", i+1, modeNames[am])
		if am == m.current {
			parts = append(parts, styles.TableSelectedStyle.Render(label))
		} else {
			parts = append(parts, styles.GroupBadgeStyle.Render(label))
		}
	}
	return styles.StatusBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}
