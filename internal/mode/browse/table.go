package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/lgtok/internal/token"
	"github.com/zjrosen/lgtok/internal/ui/styles"
)

const (
	nameColWidth   = 24
	valueColWidth  = 26
	usedByColWidth = 28
)

// viewTable renders the filtered tokens as a fixed-column table with a
// cursor prefix and an override marker. The selected token's
// description is shown below when enabled.
func (m Model) viewTable() string {
	if len(m.visible) == 0 {
		return styles.UsedByStyle.Render("  No tokens match the current filters.")
	}

	var b strings.Builder
	b.WriteString("  " + styles.TableHeaderStyle.Render(
		pad("NAME", nameColWidth)+pad("VALUE", valueColWidth)+pad("USED BY", usedByColWidth)))
	b.WriteString("\n")

	for i, tok := range m.visible {
		prefix := "  "
		rowStyle := styles.TableRowStyle
		if i == m.cursor {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
			rowStyle = styles.TableSelectedStyle
		}

		mark := " "
		if m.services.Store.HasOverride(tok.Name) {
			mark = styles.OverrideMarkStyle.Render("*")
		}

		row := pad(tok.Name, nameColWidth) +
			pad(tok.Value, valueColWidth) +
			pad(strings.Join(tok.UsedBy, ", "), usedByColWidth)
		b.WriteString(prefix + rowStyle.Render(row) + mark)
		if i < len(m.visible)-1 {
			b.WriteString("\n")
		}
	}

	table := b.String()
	if !m.services.Config.UI.ShowDescriptions {
		return table
	}

	tok, ok := m.selected()
	if !ok || tok.Description == "" {
		return table
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	desc := styles.DescriptionStyle.Render(wordwrap.String(tok.Description, width))
	return lipgloss.JoinVertical(lipgloss.Left, table, "", desc)
}

// pad truncates to the column width and right-pads with spaces,
// accounting for wide runes.
func pad(s string, width int) string {
	s = runewidth.Truncate(s, width-2, "…")
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// Visible exposes the filtered tokens for tests and the export path.
func (m Model) Visible() []token.Token {
	return m.visible
}
