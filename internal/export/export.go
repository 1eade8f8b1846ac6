// Package export renders tokens and overrides as CSV, clipboard text,
// JSON, and CSS variable snippets.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/zjrosen/lgtok/internal/token"
)

// Suggested filenames for file exports.
const (
	CSVFileName   = "liquid-glass-tokens.csv"
	EditsFileName = "liquid-glass-token-edits.json"
)

// CSVHeader is the literal header row of a token CSV export.
const CSVHeader = "name,value,description,usedBy"

// usedByJoined renders the used-by set for flat text formats.
func usedByJoined(t token.Token) string {
	return strings.Join(t.UsedBy, "; ")
}

// csvField wraps a value in double quotes, doubling any internal
// quotes. Fields are always quoted regardless of content.
func csvField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSVRow renders one token as a quoted CSV row without a newline.
func CSVRow(t token.Token) string {
	fields := []string{
		csvField(t.Name),
		csvField(t.Value),
		csvField(t.Description),
		csvField(usedByJoined(t)),
	}
	return strings.Join(fields, ",")
}

// CSV renders a token list as a full CSV document: header, one row per
// token, newline after every row including the last.
func CSV(tokens []token.Token) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')
	for _, t := range tokens {
		b.WriteString(CSVRow(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// TabRow renders one token as a tab-separated line for clipboard
// copies, with a trailing newline.
func TabRow(t token.Token) string {
	return t.Name + "\t" + t.Value + "\t" + t.Description + "\t" + usedByJoined(t) + "\n"
}

// TokenJSON renders the full effective token record as pretty-printed
// JSON with a trailing newline.
func TokenJSON(t token.Token) (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding token: %w", err)
	}
	return string(data) + "\n", nil
}

// TokensJSON renders a token list as a pretty-printed JSON array with
// a trailing newline.
func TokensJSON(tokens []token.Token) (string, error) {
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding tokens: %w", err)
	}
	return string(data) + "\n", nil
}

// CSSVariable renders a token as a CSS custom-property declaration,
// e.g. "--lg-glass-blur-24: blur(24px);".
func CSSVariable(t token.Token) string {
	name := strings.ReplaceAll(t.Name, ".", "-")
	return "--lg-" + name + ": " + t.Value + ";"
}

// CSSVariables renders the token list as a block of custom-property
// declarations, one per line.
func CSSVariables(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(CSSVariable(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// editsFile is the on-disk edits document shape.
type editsFile struct {
	Version     int                       `json:"version"`
	GeneratedAt string                    `json:"generatedAt"`
	Overrides   map[string]token.Override `json:"overrides"`
}

// EditsVersion is the current edits-file schema version.
const EditsVersion = 1

// EditsFile serializes the override mapping as an importable edits
// document, pretty-printed with a trailing newline. The timestamp is
// recorded in ISO-8601 form.
func EditsFile(overrides map[string]token.Override, now time.Time) (string, error) {
	doc := editsFile{
		Version:     EditsVersion,
		GeneratedAt: now.Format(time.RFC3339),
		Overrides:   overrides,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding edits: %w", err)
	}
	return string(data) + "\n", nil
}
