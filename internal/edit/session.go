// Package edit tracks the single in-progress token edit: which token
// is being edited and the three draft field values.
package edit

import (
	"fmt"
	"strings"

	"github.com/zjrosen/lgtok/internal/token"
)

// Session is a two-state machine: idle, or editing exactly one token.
// Drafts are plain strings mirroring the effective token's fields at
// the moment editing began (used-by joined with ", ").
type Session struct {
	name             string
	DraftValue       string
	DraftDescription string
	DraftUsedBy      string
}

// Editing reports whether a token is currently being edited.
func (s *Session) Editing() bool { return s.name != "" }

// Name returns the token being edited, or "" when idle.
func (s *Session) Name() string { return s.name }

// Begin starts editing a token, seeding drafts from its effective
// fields. Beginning a new edit while one is in progress cancels the
// previous one without saving.
func (s *Session) Begin(t token.Token) {
	s.name = t.Name
	s.DraftValue = t.Value
	s.DraftDescription = t.Description
	s.DraftUsedBy = strings.Join(t.UsedBy, ", ")
}

// Cancel discards the drafts without touching the store.
func (s *Session) Cancel() {
	*s = Session{}
}

// Save commits the drafts as a fresh override for the edited token and
// clears the session. The used-by draft is split on commas, trimmed,
// and empties dropped; an empty result omits the field entirely.
func (s *Session) Save(store *token.Store) error {
	if !s.Editing() {
		return fmt.Errorf("no token is being edited")
	}
	// Copy the drafts so the stored override does not alias session
	// memory that Save is about to clear.
	value, description := s.DraftValue, s.DraftDescription
	o := token.Override{
		Value:       &value,
		Description: &description,
		UsedBy:      SplitUsedBy(s.DraftUsedBy),
	}
	if err := store.SetOverride(s.name, o); err != nil {
		return err
	}
	*s = Session{}
	return nil
}

// SplitUsedBy parses a comma-joined used-by draft into a tag list.
// Returns nil when no non-empty tags remain.
func SplitUsedBy(draft string) []string {
	var tags []string
	for _, piece := range strings.Split(draft, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			tags = append(tags, piece)
		}
	}
	return tags
}
