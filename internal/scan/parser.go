package scan

import (
	"regexp"
	"strings"

	"fgcomment/internal/model"
)

// LineKind is the shape of one configuration line.
type LineKind int

const (
	LineOther LineKind = iota
	LineOpenBlock
	LineCloseBlock
	LineOpenSub
	LineCloseSub
	LineComment
)

func (k LineKind) String() string {
	switch k {
	case LineOpenBlock:
		return "config"
	case LineCloseBlock:
		return "end"
	case LineOpenSub:
		return "edit"
	case LineCloseSub:
		return "next"
	case LineComment:
		return "comment"
	default:
		return "other"
	}
}

// Line is a classified line. Value holds the block name for config/edit
// lines and the quoted text for comment lines.
type Line struct {
	Kind  LineKind
	Value string
}

// lineMatcher recognises one line shape. Matchers are tried in order and
// the first hit wins.
type lineMatcher struct {
	kind LineKind
	re   *regexp.Regexp
}

var lineMatchers = []lineMatcher{
	{LineOpenBlock, regexp.MustCompile(`(?i)^\s*config\s+(.+?)\s*$`)},
	{LineCloseBlock, regexp.MustCompile(`(?i)^\s*end\s*$`)},
	{LineOpenSub, regexp.MustCompile(`(?i)^\s*edit\s+(.+?)\s*$`)},
	{LineCloseSub, regexp.MustCompile(`(?i)^\s*next\s*$`)},
	// "set comment" and "set comments" are both in use across firmware versions.
	{LineComment, regexp.MustCompile(`(?i)^\s*set\s+comments?\s+"([^"]*)"\s*$`)},
}

// Classify returns the shape of a single line.
func Classify(raw string) Line {
	for _, m := range lineMatchers {
		sub := m.re.FindStringSubmatch(raw)
		if sub == nil {
			continue
		}
		l := Line{Kind: m.kind}
		if len(sub) > 1 {
			l.Value = sub[1]
			if m.kind != LineComment {
				l.Value = strings.TrimSpace(l.Value)
			}
		}
		return l
	}
	return Line{Kind: LineOther}
}

// Parser walks a configuration text and records every comment statement
// together with the block path it was found in.
type Parser struct {
	// observe, if set, is called after each line is applied. Tests use it
	// to check tracker invariants line by line.
	observe func(lineNo int, t *Tracker)
}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse scans text in one pass and returns the comment records in line order.
func (p *Parser) Parse(text string) []model.CommentRecord {
	var tracker Tracker
	var out []model.CommentRecord

	if text == "" {
		return out
	}

	for i, raw := range model.SplitLines(text) {
		line := Classify(raw)
		switch line.Kind {
		case LineOpenBlock:
			tracker.OpenConfig(line.Value)
		case LineCloseBlock:
			tracker.CloseConfig()
		case LineOpenSub:
			tracker.OpenEdit(line.Value)
		case LineCloseSub:
			tracker.CloseEdit()
		case LineComment:
			configs, edits := tracker.Snapshot()
			out = append(out, model.CommentRecord{
				LineNumber:  i + 1,
				CommentText: line.Value,
				ConfigPath:  configs,
				SubPath:     edits,
			})
		}
		if p.observe != nil {
			p.observe(i+1, &tracker)
		}
	}
	return out
}

// Extract is NewParser().Parse(text).
func Extract(text string) []model.CommentRecord {
	return NewParser().Parse(text)
}
