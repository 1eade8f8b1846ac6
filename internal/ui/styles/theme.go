package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/zjrosen/lgtok/internal/config"
)

// ApplyTheme forces the light or dark side of every adaptive color.
// An empty theme keeps whatever the terminal probe decided.
func ApplyTheme(theme string) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}

// DetectTheme reads the terminal's background as the system preference
// signal, used when no theme flag has been persisted.
func DetectTheme() string {
	if termenv.HasDarkBackground() {
		return config.ThemeDark
	}
	return config.ThemeLight
}
