// Package toaster provides the ephemeral notice banner.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/lgtok/internal/ui/overlay"
	"github.com/zjrosen/lgtok/internal/ui/styles"
)

// DismissAfter is how long a notice stays visible. A new notice
// restarts the clock.
const DismissAfter = 2200 * time.Millisecond

// Style determines the visual appearance of the notice.
type Style int

const (
	// StyleSuccess shows a green-bordered notice.
	StyleSuccess Style = iota
	// StyleError shows a red-bordered notice.
	StyleError
	// StyleInfo shows a blue-bordered notice.
	StyleInfo
	// StyleWarn shows a yellow-bordered notice.
	StyleWarn
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq identifies the latest Show, so a stale dismiss timer from a
	// replaced notice cannot hide its successor early.
	seq int
}

// New creates an empty toaster.
func New() Model {
	return Model{}
}

// Show displays a notice, replacing any visible one and restarting the
// dismiss clock.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m
}

// Hide dismisses the notice.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible reports whether a notice is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the current notice text, or "" when hidden.
func (m Model) Message() string {
	if !m.visible {
		return ""
	}
	return m.message
}

// View renders the notice box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		content = "✗ " + m.message
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		content = "• " + m.message
	case StyleWarn:
		style = style.BorderForeground(styles.ToastBorderWarnColor)
		content = "! " + m.message
	default: // StyleSuccess
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		content = "✓ " + m.message
	}

	return style.Render(content)
}

// Overlay renders the notice over a background view, bottom-centered.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg signals that a notice's timer expired. Seq ties the
// message to the Show that scheduled it.
type DismissMsg struct {
	Seq int
}

// ScheduleDismiss returns the auto-dismiss command for the current
// notice.
func (m Model) ScheduleDismiss() tea.Cmd {
	seq := m.seq
	return tea.Tick(DismissAfter, func(_ time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

// Update handles dismiss timers, ignoring stale ones from replaced
// notices.
func (m Model) Update(msg tea.Msg) Model {
	if dismiss, ok := msg.(DismissMsg); ok && dismiss.Seq == m.seq {
		return m.Hide()
	}
	return m
}
