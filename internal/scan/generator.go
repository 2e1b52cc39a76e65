package scan

import (
	"strings"

	"fgcomment/internal/model"
)

// DefaultScriptName is the file name used when the script is saved.
const DefaultScriptName = "remove-comments.cli"

// RemovalBlock rebuilds the nested block that re-opens the record's path,
// unsets the comment and closes the path again.
func RemovalBlock(r model.CommentRecord) string {
	out := r.PathLines()
	out = append(out, "unset comment", "next")

	start := 0
	if r.HasVdomFrame() {
		start = 1
	}
	for i := start; i < len(r.ConfigPath); i++ {
		out = append(out, "end")
	}
	if r.HasVdomFrame() {
		out = append(out, "end")
	}
	return strings.Join(out, "\n")
}

// Generate builds the removal script for records. Identical blocks are
// emitted once, at the position of their first occurrence, and blocks are
// separated by a blank line. No records gives an empty script.
func Generate(records []model.CommentRecord) string {
	seen := make(map[string]bool, len(records))
	var blocks []string
	for _, r := range records {
		block := RemovalBlock(r)
		if seen[block] {
			continue
		}
		seen[block] = true
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// ScriptFile returns the script as written to disk, newline terminated.
func ScriptFile(script string) string {
	if script == "" {
		return ""
	}
	return script + "\n"
}
