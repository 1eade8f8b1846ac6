// Package edits validates untrusted edits-JSON documents and applies
// accepted override mappings to the token store.
package edits

import (
	"encoding/json"
	"strings"

	"github.com/zjrosen/lgtok/internal/edit"
	"github.com/zjrosen/lgtok/internal/token"
)

// Rejection messages shown verbatim to the user.
const (
	MsgEmptyInput       = "Paste edits JSON to import."
	MsgInvalidJSON      = "Invalid JSON."
	MsgInvalidDocument  = "Invalid edits JSON."
	MsgMissingOverrides = `Missing "overrides" object.`
	MsgNoValidOverrides = "No valid overrides found."
)

// Result is the outcome of validating an edits document: either
// Accepted or Rejected.
type Result interface{ result() }

// Accepted carries the validated override mapping plus the number of
// entries that were silently skipped (unknown names, wrong shapes).
type Accepted struct {
	Overrides map[string]token.Override
	Ignored   int
}

// Rejected carries the user-facing diagnostic for a document that
// produced no usable overrides.
type Rejected struct {
	Message string
}

func (Accepted) result() {}
func (Rejected) result() {}

// Validate parses raw edits-JSON against the known token-name set.
// The document's "version" field is accepted but unchecked; only
// "overrides" is consulted. Individual invalid or unknown entries are
// counted as ignored rather than failing the import, unless nothing
// usable remains.
func Validate(raw string, known map[string]struct{}) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Rejected{Message: MsgEmptyInput}
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Rejected{Message: MsgInvalidJSON}
	}

	doc, ok := parsed.(map[string]any)
	if !ok || doc == nil {
		return Rejected{Message: MsgInvalidDocument}
	}

	overrides, ok := doc["overrides"].(map[string]any)
	if !ok || overrides == nil {
		return Rejected{Message: MsgMissingOverrides}
	}

	accepted := make(map[string]token.Override)
	ignored := 0
	for name, candidate := range overrides {
		if _, knownName := known[name]; !knownName {
			ignored++
			continue
		}
		o, ok := cleanOverride(candidate)
		if !ok {
			ignored++
			continue
		}
		accepted[name] = o
	}

	if len(accepted) == 0 {
		return Rejected{Message: MsgNoValidOverrides}
	}
	return Accepted{Overrides: accepted, Ignored: ignored}
}

// cleanOverride builds a partial override from an untrusted candidate,
// taking only fields of the expected type. Returns false when the
// candidate is not an object or yields zero accepted fields.
func cleanOverride(candidate any) (token.Override, bool) {
	fields, ok := candidate.(map[string]any)
	if !ok || fields == nil {
		return token.Override{}, false
	}

	var o token.Override
	if v, ok := fields["value"].(string); ok {
		value := v
		o.Value = &value
	}
	if d, ok := fields["description"].(string); ok {
		description := d
		o.Description = &description
	}
	if tags, ok := cleanUsedBy(fields["usedBy"]); ok {
		o.UsedBy = tags
	}

	if o.Empty() {
		return token.Override{}, false
	}
	return o, true
}

// cleanUsedBy accepts only an array whose every element is a
// non-empty-after-trim string. An empty array carries no usage
// information and is dropped like an absent field.
func cleanUsedBy(raw any) ([]string, bool) {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}
		tags = append(tags, s)
	}
	return tags, true
}

// Apply merges an accepted mapping into the store, replacing each
// token's override wholesale, and cancels any in-progress edit
// session. Returns the number of tokens imported.
func Apply(store *token.Store, session *edit.Session, overrides map[string]token.Override) int {
	count := 0
	for name, o := range overrides {
		if err := store.SetOverride(name, o); err != nil {
			// Validation already filtered unknown names; a failure
			// here means the mapping predates a dataset reload.
			continue
		}
		count++
	}
	session.Cancel()
	return count
}
