// Package styles contains Lip Gloss style definitions for the token
// browser. Colors are adaptive pairs; the active theme picks the side
// via lipgloss.SetHasDarkBackground.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1B2733", Dark: "#E8F1F5"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#4A5865", Dark: "#AFC4CE"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8A97A3", Dark: "#5F6E78"}
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#5C6B77", Dark: "#93A7B1"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#9AA7B2", Dark: "#55646E"}

	// The two palette accents from the liquid-glass system.
	AccentAquaColor  = lipgloss.AdaptiveColor{Light: "#1592B4", Dark: "#7EE5FF"}
	AccentCoralColor = lipgloss.AdaptiveColor{Light: "#C75B35", Dark: "#FF9F7A"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#C6D0D8", Dark: "#3C4A54"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#1592B4", Dark: "#7EE5FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#C79A1B", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D64545", Dark: "#FF8787"}

	// Toast notifications
	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor   = StatusErrorColor
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#3E7BC0", Dark: "#54A0FF"}
	ToastBorderWarnColor    = StatusWarningColor

	// Selection indicator (the "> " prefix in the token table)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentAquaColor)

	// Token table
	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(TextSecondaryColor)
	TableRowStyle      = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentAquaColor)
	OverrideMarkStyle  = lipgloss.NewStyle().Foreground(AccentCoralColor).Bold(true)

	GroupBadgeStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	UsedByStyle     = lipgloss.NewStyle().Foreground(TextMutedColor)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(TextDescriptionColor).
				Padding(0, 1)

	// Forms
	FormLabelStyle        = lipgloss.NewStyle().Foreground(TextMutedColor)
	FormLabelFocusedStyle = lipgloss.NewStyle().Foreground(BorderFocusColor).Bold(true)

	// Overlays / modals
	OverlayTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	OverlayBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderDefaultColor).
				Padding(1, 2)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Verdict badges in the contrast checker
	PassStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	FailStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
