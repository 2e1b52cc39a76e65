package scan

import (
	"fmt"
	"log/slog"

	"fgcomment/internal/logging"
	"fgcomment/internal/model"
)

// Analyzer runs extraction, filtering and script generation over one
// configuration text.
type Analyzer struct {
	parser *Parser
	logger *slog.Logger
}

func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{
		parser: NewParser(),
		logger: logging.Default(logger).With("component", "analyzer"),
	}
}

// Analyze extracts every comment from text, keeps those selected by mode and
// generates the removal script for them.
func (a *Analyzer) Analyze(text string, mode model.FilterMode) model.AnalysisResult {
	all := a.parser.Parse(text)
	selected := Filter(all, mode)
	script := Generate(selected)

	a.logger.Debug("analysis complete",
		"mode", mode.String(),
		"comments", len(all),
		"selected", len(selected),
		"script_bytes", len(script),
	)

	return model.AnalysisResult{
		Total:   len(all),
		Records: selected,
		Mode:    mode,
		Script:  script,
		Summary: Summary(len(selected)),
		Lines:   model.SplitLines(text),
	}
}

// Summary is the one-line result count shown above the match list.
func Summary(n int) string {
	if n == 0 {
		return "0 comments found."
	}
	return fmt.Sprintf("%d comment(s) found.", n)
}
