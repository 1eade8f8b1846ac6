package token

import (
	"fmt"
	"maps"
)

// Override is a sparse partial replacement of a token's fields. Nil
// fields mean "keep the base value"; presence is per-field, so a
// stored empty string is a real edit. UsedBy is never stored empty.
type Override struct {
	Value       *string  `json:"value,omitempty"`
	Description *string  `json:"description,omitempty"`
	UsedBy      []string `json:"usedBy,omitempty"`
}

// Empty reports whether the override carries no fields at all.
func (o Override) Empty() bool {
	return o.Value == nil && o.Description == nil && o.UsedBy == nil
}

// apply merges the override into a base token, field by field.
func (o Override) apply(t Token) Token {
	if o.Value != nil {
		t.Value = *o.Value
	}
	if o.Description != nil {
		t.Description = *o.Description
	}
	if o.UsedBy != nil {
		t.UsedBy = o.UsedBy
	}
	return t
}

// Store owns the base token list and the local overrides on top of it.
// The base list is loaded once and never mutated; all edits live in
// the override map.
type Store struct {
	base      []Token
	byName    map[string]int
	overrides map[string]Override
}

// NewStore creates a store over an ordered base token list.
func NewStore(base []Token) *Store {
	byName := make(map[string]int, len(base))
	for i, t := range base {
		byName[t.Name] = i
	}
	return &Store{
		base:      base,
		byName:    byName,
		overrides: make(map[string]Override),
	}
}

// BaseTokens returns the base list in load order.
func (s *Store) BaseTokens() []Token {
	out := make([]Token, len(s.base))
	copy(out, s.base)
	return out
}

// EffectiveTokens returns every token in base order with its override
// fields merged in.
func (s *Store) EffectiveTokens() []Token {
	out := make([]Token, len(s.base))
	for i, t := range s.base {
		if o, ok := s.overrides[t.Name]; ok {
			t = o.apply(t)
		}
		out[i] = t
	}
	return out
}

// Effective returns the effective token for a name.
func (s *Store) Effective(name string) (Token, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Token{}, false
	}
	t := s.base[i]
	if o, ok := s.overrides[name]; ok {
		t = o.apply(t)
	}
	return t, true
}

// Known reports whether name exists in the base token set.
func (s *Store) Known(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Names returns the set of base token names.
func (s *Store) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(s.base))
	for _, t := range s.base {
		names[t.Name] = struct{}{}
	}
	return names
}

// SetOverride replaces the stored override for name wholesale. A later
// commit drops any field the new override does not carry; merging
// happens against the base token, never against a prior override. An
// empty override clears the entry instead of persisting a no-op.
func (s *Store) SetOverride(name string, o Override) error {
	if _, ok := s.byName[name]; !ok {
		return fmt.Errorf("unknown token %q", name)
	}
	if len(o.UsedBy) == 0 {
		o.UsedBy = nil
	}
	if o.Empty() {
		delete(s.overrides, name)
		return nil
	}
	s.overrides[name] = o
	return nil
}

// HasOverride reports whether name carries a local edit.
func (s *Store) HasOverride(name string) bool {
	_, ok := s.overrides[name]
	return ok
}

// Overrides returns a copy of the override mapping.
func (s *Store) Overrides() map[string]Override {
	return maps.Clone(s.overrides)
}

// OverrideCount returns the number of tokens with an active override.
func (s *Store) OverrideCount() int {
	return len(s.overrides)
}

// ResetAll drops every override, returning the store to the base data.
func (s *Store) ResetAll() {
	s.overrides = make(map[string]Override)
}

// ReplaceBase swaps in a freshly loaded base list, keeping overrides
// for tokens that still exist and dropping the rest.
func (s *Store) ReplaceBase(base []Token) {
	byName := make(map[string]int, len(base))
	for i, t := range base {
		byName[t.Name] = i
	}
	for name := range s.overrides {
		if _, ok := byName[name]; !ok {
			delete(s.overrides, name)
		}
	}
	s.base = base
	s.byName = byName
}
