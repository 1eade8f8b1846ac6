package token

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel choice meaning "no restriction" for the
// group and used-by criteria. An empty string is equivalent.
const FilterAll = "all"

// Criteria holds the three independent filter inputs. The zero value
// matches every token.
type Criteria struct {
	// Query matches case-insensitively as a substring over name,
	// value, description, and the joined used-by tags.
	Query string
	// Group must equal the token's dotted-prefix group, or be
	// empty/"all".
	Group string
	// UsedBy must be a member of the token's used-by set, or be
	// empty/"all".
	UsedBy string
}

func unrestricted(choice string) bool {
	return choice == "" || choice == FilterAll
}

// Match reports whether a single token passes all three criteria.
func (c Criteria) Match(t Token) bool {
	if !unrestricted(c.Group) && t.Group() != c.Group {
		return false
	}
	if !unrestricted(c.UsedBy) {
		found := false
		for _, tag := range t.UsedBy {
			if tag == c.UsedBy {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.Query == "" {
		return true
	}
	q := strings.ToLower(c.Query)
	for _, field := range []string{t.Name, t.Value, t.Description, strings.Join(t.UsedBy, ", ")} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Filter returns the visible subset of tokens in their original order.
func Filter(tokens []Token, c Criteria) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if c.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Groups returns the distinct group values across tokens, sorted
// lexicographically. Used to populate the group filter choices. An
// ungrouped token's empty group is skipped: as a criteria value it
// would mean "no restriction", not "no group".
func Groups(tokens []Token) []string {
	seen := make(map[string]struct{})
	for _, t := range tokens {
		if g := t.Group(); g != "" {
			seen[g] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// UsedByTags returns the distinct used-by tags across tokens, sorted
// lexicographically.
func UsedByTags(tokens []Token) []string {
	seen := make(map[string]struct{})
	for _, t := range tokens {
		for _, tag := range t.UsedBy {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
