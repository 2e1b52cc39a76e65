package model

import "strings"

// VdomContainer is the outer virtual-domain block that wraps everything else
// in a multi-vdom configuration.
const VdomContainer = "vdom"

// CommentRecord is one comment statement found in a configuration file.
type CommentRecord struct {
	LineNumber  int      `json:"LineNumber"`  // 1-based line in the source text
	CommentText string   `json:"CommentText"` // Content between the quotes
	ConfigPath  []string `json:"ConfigPath"`  // Open config blocks, outermost first
	SubPath     []string `json:"SubPath"`     // Open edit per config level, "" if none
}

// HasVdomFrame reports whether the record sits inside "config vdom" / "edit <name>".
func (r CommentRecord) HasVdomFrame() bool {
	return len(r.ConfigPath) > 0 && r.ConfigPath[0] == VdomContainer &&
		len(r.SubPath) > 0 && r.SubPath[0] != ""
}

// Breadcrumb renders the record's path for display, e.g.
// "config vdom → edit root → config firewall policy → edit 3".
func (r CommentRecord) Breadcrumb() string {
	return strings.Join(r.PathLines(), " "+IconPath+" ")
}

// PathLines returns the config/edit statements that re-open the record's path.
func (r CommentRecord) PathLines() []string {
	var parts []string
	start := 0
	if r.HasVdomFrame() {
		parts = append(parts, "config "+VdomContainer, "edit "+r.SubPath[0])
		start = 1
	}
	for i := start; i < len(r.ConfigPath); i++ {
		parts = append(parts, "config "+r.ConfigPath[i])
		if i < len(r.SubPath) && r.SubPath[i] != "" {
			parts = append(parts, "edit "+r.SubPath[i])
		}
	}
	return parts
}

// AnalysisResult contains the output of one extract → filter → generate pass.
type AnalysisResult struct {
	Total   int             // Comments found before filtering
	Records []CommentRecord // Comments selected by the filter mode
	Mode    FilterMode
	Script  string
	Summary string
	Lines   []string `json:"-"` // Source lines, kept for line context lookups
}
