// Package mode defines the mode controller interface and the shared
// services injected into each mode.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/lgtok/internal/cachemanager"
	"github.com/zjrosen/lgtok/internal/clipboard"
	"github.com/zjrosen/lgtok/internal/color"
	"github.com/zjrosen/lgtok/internal/config"
	"github.com/zjrosen/lgtok/internal/edit"
	"github.com/zjrosen/lgtok/internal/token"
	"github.com/zjrosen/lgtok/internal/ui/toaster"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeImport
	ModeContrast
	ModeGuide
)

// Controller defines the interface all modes implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns the updated controller.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller

	// Typing reports whether a text input currently has focus, so the
	// app knows to keep global shortcuts out of the way.
	Typing() bool
}

// Services contains shared dependencies injected into mode
// controllers. Store and Session are the single mutable state owners;
// everything else is read-only or side-effect-free.
type Services struct {
	Store         *token.Store
	Session       *edit.Session
	Config        *config.Config
	ConfigPath    string
	Clipboard     clipboard.Clipboard
	ContrastCache cachemanager.CacheManager[color.Result]
}

// NoticeMsg asks the app to show an ephemeral notice.
type NoticeMsg struct {
	Message string
	Style   toaster.Style
}

// Notice returns a command that raises a notice.
func Notice(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Message: message, Style: style}
	}
}

// TokensReloadedMsg tells modes that the dataset changed, whether from
// a base reload or a batch of imported overrides, and any derived
// state (filters, cursors) should be recomputed.
type TokensReloadedMsg struct{}
