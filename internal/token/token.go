// Package token holds the design-token model: the immutable base
// palette, local per-token overrides, and filtering over the effective
// token list.
package token

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Token is a named design value from the liquid-glass palette. Name is
// the primary key (dotted, e.g. "accent.coral"). Value is a free-form
// string: a CSS-legal value, hex color, or bare number. UsedBy lists
// the components known to consume the token; nil means no usage
// recorded.
type Token struct {
	Name        string   `json:"name"`
	Value       string   `json:"value"`
	Description string   `json:"description"`
	UsedBy      []string `json:"usedBy,omitempty"`
}

// Group returns the token's category: the name segment before the
// first dot. A name with no dot belongs to the empty group.
func (t Token) Group() string {
	group, _, found := strings.Cut(t.Name, ".")
	if !found {
		return ""
	}
	return group
}

//go:embed tokens.json
var defaultTokens []byte

// Defaults returns the built-in liquid-glass palette.
func Defaults() []Token {
	tokens, err := parseTokens(defaultTokens)
	if err != nil {
		// The embedded dataset is validated by tests; reaching this
		// means a broken build.
		panic(fmt.Sprintf("embedded token dataset: %v", err))
	}
	return tokens
}

// LoadFile reads a base token dataset from a JSON file.
func LoadFile(path string) ([]Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tokens file: %w", err)
	}
	tokens, err := parseTokens(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tokens, nil
}

func parseTokens(data []byte) ([]Token, error) {
	var tokens []Token
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("invalid token JSON: %w", err)
	}
	seen := make(map[string]struct{}, len(tokens))
	for i, t := range tokens {
		if t.Name == "" {
			return nil, fmt.Errorf("token %d has no name", i)
		}
		if _, dup := seen[t.Name]; dup {
			return nil, fmt.Errorf("duplicate token name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return tokens, nil
}
