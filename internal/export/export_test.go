package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/lgtok/internal/token"
)

func coral() token.Token {
	return token.Token{
		Name:        "accent.coral",
		Value:       "#ff9f7a",
		Description: "Secondary accent for warmth.",
		UsedBy:      []string{"Focus ring"},
	}
}

func TestCSV(t *testing.T) {
	got := CSV([]token.Token{coral()})

	want := "name,value,description,usedBy\n" +
		`"accent.coral","#ff9f7a","Secondary accent for warmth.","Focus ring"` + "\n"
	assert.Equal(t, want, got)
}

func TestCSV_QuotesDoubled(t *testing.T) {
	tok := token.Token{Name: "x.y", Value: `say "hi"`, Description: ""}

	got := CSVRow(tok)

	assert.Equal(t, `"x.y","say ""hi""","",""`, got)
}

func TestCSV_MultipleUsedByTags(t *testing.T) {
	tok := token.Token{Name: "glass.blur.24", Value: "blur(24px)", UsedBy: []string{"Float Card", "Halo Input"}}

	got := CSVRow(tok)

	assert.Contains(t, got, `"Float Card; Halo Input"`)
}

func TestCSV_TrailingNewlineAfterLastRow(t *testing.T) {
	got := CSV([]token.Token{coral(), coral()})

	assert.Equal(t, byte('\n'), got[len(got)-1])
	assert.NotContains(t, got, "\n\n")
}

func TestTabRow(t *testing.T) {
	got := TabRow(coral())

	assert.Equal(t, "accent.coral\t#ff9f7a\tSecondary accent for warmth.\tFocus ring\n", got)
}

func TestTokenJSON(t *testing.T) {
	got, err := TokenJSON(coral())
	require.NoError(t, err)

	want := `{
  "name": "accent.coral",
  "value": "#ff9f7a",
  "description": "Secondary accent for warmth.",
  "usedBy": [
    "Focus ring"
  ]
}
`
	assert.Equal(t, want, got)
}

func TestTokenJSON_OmitsAbsentUsedBy(t *testing.T) {
	got, err := TokenJSON(token.Token{Name: "a.b", Value: "1", Description: "d"})
	require.NoError(t, err)

	assert.NotContains(t, got, "usedBy")
}

func TestCSSVariable(t *testing.T) {
	tok := token.Token{Name: "glass.blur.24", Value: "blur(24px)"}

	assert.Equal(t, "--lg-glass-blur-24: blur(24px);", CSSVariable(tok))
}

func TestCSSVariables(t *testing.T) {
	got := CSSVariables([]token.Token{
		{Name: "accent.aqua", Value: "#7ee5ff"},
		{Name: "accent.coral", Value: "#ff9f7a"},
	})

	assert.Equal(t, "--lg-accent-aqua: #7ee5ff;\n--lg-accent-coral: #ff9f7a;\n", got)
}

func TestEditsFile(t *testing.T) {
	value := "#000000"
	overrides := map[string]token.Override{
		"accent.coral": {Value: &value},
	}
	now := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)

	got, err := EditsFile(overrides, now)
	require.NoError(t, err)

	assert.Equal(t, byte('\n'), got[len(got)-1])

	var doc struct {
		Version     int                       `json:"version"`
		GeneratedAt string                    `json:"generatedAt"`
		Overrides   map[string]map[string]any `json:"overrides"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &doc))
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, "2026-09-01T12:30:00Z", doc.GeneratedAt)
	require.Contains(t, doc.Overrides, "accent.coral")
	assert.Equal(t, "#000000", doc.Overrides["accent.coral"]["value"])
	assert.NotContains(t, doc.Overrides["accent.coral"], "usedBy")
}
