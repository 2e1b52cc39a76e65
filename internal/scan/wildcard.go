package scan

import (
	"regexp"
	"strings"
)

// Wildcard is a compiled * / ? pattern. It matches anywhere in the input,
// ignoring case, so a plain word works as a substring search.
type Wildcard struct {
	pattern string
	re      *regexp.Regexp
}

// CompileWildcard translates a glob pattern. Only * and ? are special; every
// other character matches itself. A blank pattern returns nil, meaning no
// constraint.
func CompileWildcard(pattern string) *Wildcard {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	var b strings.Builder
	b.WriteString("(?i)")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return &Wildcard{pattern: pattern, re: regexp.MustCompile(b.String())}
}

// Match reports whether s contains a match. A nil Wildcard matches everything.
func (w *Wildcard) Match(s string) bool {
	if w == nil {
		return true
	}
	return w.re.MatchString(s)
}

func (w *Wildcard) String() string {
	if w == nil {
		return ""
	}
	return w.pattern
}
