package scan

import (
	"regexp"

	"fgcomment/internal/model"
)

// wizardComment matches the comments FortiOS setup wizards leave behind,
// e.g. "Created by VPN wizard" or "Created automatically by wizard".
// At most one word may sit between "created" and "by".
var wizardComment = regexp.MustCompile(`(?i)created\s+(?:\w+\s+)?by\b.*wizard`)

// IsWizardComment reports whether text looks like a wizard-generated comment.
func IsWizardComment(text string) bool {
	return wizardComment.MatchString(text)
}

// Filter returns the records selected by mode, in their original order.
func Filter(records []model.CommentRecord, mode model.FilterMode) []model.CommentRecord {
	var keep func(string) bool

	switch mode.Kind() {
	case model.ModeKindWizard:
		keep = IsWizardComment
	case model.ModeKindWildcard:
		w := CompileWildcard(mode.Pattern())
		if w == nil {
			return records
		}
		keep = w.Match
	default:
		return records
	}

	var out []model.CommentRecord
	for _, r := range records {
		if keep(r.CommentText) {
			out = append(out, r)
		}
	}
	return out
}
