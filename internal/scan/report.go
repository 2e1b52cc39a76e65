package scan

import (
	"fmt"
	"strings"

	"fgcomment/internal/model"
)

// GenerateReport renders a plain text report of an analysis. Verbose adds
// the raw path arrays of every record.
func GenerateReport(result model.AnalysisResult, verbose bool) string {
	var b strings.Builder

	b.WriteString("FortiOS Comment Report\n")
	b.WriteString("======================\n\n")
	fmt.Fprintf(&b, "Filter:   %s\n", result.Mode)
	fmt.Fprintf(&b, "Scanned:  %d comment(s) in %d line(s)\n", result.Total, len(result.Lines))
	fmt.Fprintf(&b, "Selected: %s\n", result.Summary)

	for i, r := range result.Records {
		fmt.Fprintf(&b, "\n%d. Line %d\n", i+1, r.LineNumber)
		if crumb := r.Breadcrumb(); crumb != "" {
			fmt.Fprintf(&b, "   %s\n", crumb)
		} else {
			b.WriteString("   (top level)\n")
		}
		fmt.Fprintf(&b, "   set comment %q\n", r.CommentText)
		if verbose {
			fmt.Fprintf(&b, "   ConfigPath: %q\n", r.ConfigPath)
			fmt.Fprintf(&b, "   SubPath:    %q\n", r.SubPath)
			if r.HasVdomFrame() {
				fmt.Fprintf(&b, "   %s vdom frame: %s\n", model.IconVdom, r.SubPath[0])
			}
		}
	}

	b.WriteString("\nRemoval Script\n")
	b.WriteString("--------------\n")
	if result.Script == "" {
		b.WriteString("(nothing to remove)\n")
	} else {
		b.WriteString(ScriptFile(result.Script))
	}
	return b.String()
}
