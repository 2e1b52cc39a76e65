package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrConflictingModes is returned when both the wizard and wildcard
// selections are requested at the same time.
var ErrConflictingModes = errors.New("wizard and wildcard filters are mutually exclusive")

// ModeKind identifies which filter is active.
type ModeKind int

const (
	ModeKindNone ModeKind = iota
	ModeKindWizard
	ModeKindWildcard
)

func (k ModeKind) String() string {
	switch k {
	case ModeKindWizard:
		return "wizard"
	case ModeKindWildcard:
		return "wildcard"
	default:
		return "none"
	}
}

// FilterMode selects which comment records are kept. The zero value is ModeNone.
type FilterMode struct {
	kind    ModeKind
	pattern string
}

// ModeNone keeps every record.
func ModeNone() FilterMode { return FilterMode{} }

// ModeWizardOnly keeps comments written by the setup wizards.
func ModeWizardOnly() FilterMode { return FilterMode{kind: ModeKindWizard} }

// ModeWildcard keeps comments matching a * / ? pattern.
func ModeWildcard(pattern string) FilterMode {
	return FilterMode{kind: ModeKindWildcard, pattern: pattern}
}

func (m FilterMode) Kind() ModeKind  { return m.kind }
func (m FilterMode) Pattern() string { return m.pattern }

func (m FilterMode) String() string {
	if m.kind == ModeKindWildcard {
		return fmt.Sprintf("wildcard(%q)", m.pattern)
	}
	return m.kind.String()
}

// Next cycles None → Wizard → Wildcard → None, keeping the pattern.
func (m FilterMode) Next() FilterMode {
	switch m.kind {
	case ModeKindNone:
		return FilterMode{kind: ModeKindWizard, pattern: m.pattern}
	case ModeKindWizard:
		return FilterMode{kind: ModeKindWildcard, pattern: m.pattern}
	default:
		return FilterMode{pattern: m.pattern}
	}
}

// MarshalJSON encodes the mode as {"Kind": "...", "Pattern": "..."}.
func (m FilterMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"Kind"`
		Pattern string `json:"Pattern,omitempty"`
	}{m.kind.String(), m.pattern})
}

// ModeFromSelection builds a mode from the two UI toggles and the pattern field.
func ModeFromSelection(wizard, wildcard bool, pattern string) (FilterMode, error) {
	switch {
	case wizard && wildcard:
		return FilterMode{}, ErrConflictingModes
	case wizard:
		return ModeWizardOnly(), nil
	case wildcard:
		return ModeWildcard(pattern), nil
	default:
		return ModeNone(), nil
	}
}

// ParseMode maps a mode name ("none", "wizard", "wildcard") to a FilterMode.
// An empty name means none.
func ParseMode(name, pattern string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "all":
		return ModeNone(), nil
	case "wizard":
		return ModeWizardOnly(), nil
	case "wildcard":
		return ModeWildcard(pattern), nil
	default:
		return FilterMode{}, fmt.Errorf("unknown filter mode %q (want none, wizard or wildcard)", name)
	}
}
