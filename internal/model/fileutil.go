package model

import (
	"fmt"
	"strings"
)

// ContextRadius is the number of lines shown on each side of a comment.
const ContextRadius = 2

// SourceLine is one numbered line of the configuration text.
type SourceLine struct {
	Number int
	Text   string
}

// LineContext is a window of source lines around a target line.
type LineContext struct {
	LineNumber int          // Line number of the target
	Window     []SourceLine // Target plus up to ContextRadius lines either side
	ErrorMsg   string       // Set when the target is out of range
}

// SplitLines splits text on \n and \r\n alike.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// GetLineContext returns the 1-based target line of an already split source
// together with its neighbours.
func GetLineContext(lines []string, lineNumber int) LineContext {
	ctx := LineContext{LineNumber: lineNumber}
	if lineNumber < 1 || lineNumber > len(lines) {
		ctx.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return ctx
	}

	first := max(1, lineNumber-ContextRadius)
	last := min(len(lines), lineNumber+ContextRadius)
	for n := first; n <= last; n++ {
		ctx.Window = append(ctx.Window, SourceLine{Number: n, Text: lines[n-1]})
	}
	return ctx
}

// Target returns the text of the target line, or "" when out of range.
func (c LineContext) Target() string {
	for _, l := range c.Window {
		if l.Number == c.LineNumber {
			return l.Text
		}
	}
	return ""
}

// Render formats the window as numbered lines, marking the target.
func (c LineContext) Render() string {
	if c.ErrorMsg != "" {
		return c.ErrorMsg
	}
	rows := make([]string, 0, len(c.Window))
	for _, l := range c.Window {
		marker := " "
		if l.Number == c.LineNumber {
			marker = IconSelected
		}
		rows = append(rows, fmt.Sprintf("%s %4d  %s", marker, l.Number, l.Text))
	}
	return strings.Join(rows, "\n")
}
