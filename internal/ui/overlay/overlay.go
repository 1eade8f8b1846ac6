// Package overlay renders foreground content on top of a background
// view without clearing the screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the middle of the viewport.
	Center Position = iota
	// Bottom places the overlay at the bottom center.
	Bottom
)

// Config controls overlay rendering.
type Config struct {
	// Width and Height are the viewport dimensions.
	Width  int
	Height int
	// Position selects the placement.
	Position Position
	// PadY adds vertical padding from the bottom edge (Bottom only).
	PadY int
}

// Place draws fg over bg using ANSI-aware splicing so styling in both
// layers survives.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	fgHeight := len(fgLines)
	fgWidth := lipgloss.Width(fg)
	startX, startY := position(cfg, fgWidth, fgHeight)

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}

		bgLine := bgLines[y]
		lineWidth := ansi.StringWidth(fgLine)

		left := ansi.Truncate(bgLine, startX, "")
		if w := ansi.StringWidth(left); w < startX {
			left += strings.Repeat(" ", startX-w)
		}

		var right string
		if endX := startX + lineWidth; endX < ansi.StringWidth(bgLine) {
			right = ansi.TruncateLeft(bgLine, endX, "")
		}

		bgLines[y] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}

func position(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
