// Package guide renders the bundled accessibility guide as scrollable
// markdown.
package guide

import (
	_ "embed"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/zjrosen/lgtok/internal/config"
	"github.com/zjrosen/lgtok/internal/log"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/ui/styles"
)

//go:embed guide.md
var guideMarkdown string

// Model holds the guide mode state.
type Model struct {
	services mode.Services
	view     viewport.Model
	rendered bool

	width  int
	height int
}

// New creates the guide mode controller. Rendering is deferred until
// the first resize so the markdown wraps to the real terminal width.
func New(services mode.Services) Model {
	return Model{
		services: services,
		view:     viewport.New(0, 0),
	}
}

// Init returns initial commands for the mode.
func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether a text input has focus.
func (m Model) Typing() bool {
	return false
}

// SetSize handles terminal resize events and re-renders the markdown
// at the new wrap width.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.view.Width = width
	if height > 2 {
		m.view.Height = height - 2
	}
	return m.render()
}

func (m Model) render() Model {
	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	if wrap > 100 {
		wrap = 100
	}

	// WithStylePath instead of WithAutoStyle: auto style probes the
	// terminal background and its OSC response can leak into the
	// input stream.
	style := "dark"
	if m.services.Config.Theme == config.ThemeLight {
		style = "light"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap))
	if err != nil {
		log.Error(log.CatUI, "creating markdown renderer: %v", err)
		m.view.SetContent(guideMarkdown)
		m.rendered = true
		return m
	}

	out, err := renderer.Render(guideMarkdown)
	if err != nil {
		log.Error(log.CatUI, "rendering guide: %v", err)
		out = guideMarkdown
	}
	m.view.SetContent(out)
	m.rendered = true
	return m
}

// Update handles messages for the guide mode.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View renders the scrollable guide.
func (m Model) View() string {
	if !m.rendered {
		return styles.UsedByStyle.Render("  Loading guide...")
	}
	return m.view.View()
}
