package tui

import (
	"log/slog"

	"fgcomment/internal/logging"
	"fgcomment/internal/model"
	"fgcomment/internal/scan"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the TUI.
type Options struct {
	Path     string           // Config file to scan
	Mode     model.FilterMode // Initial filter
	SavePath string           // Where 's' writes the script, default remove-comments.cli
	Watcher  *scan.Watcher    // Optional; re-scan on change
	Logger   *slog.Logger     // Nil discards
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Path    string
	Text    string
	Result  model.AnalysisResult
	Mode    model.FilterMode
	Loading bool
	Err     error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	ShowScript  bool
	Status      string // One-off feedback from copy/save/reload

	// Pattern entry
	InputMode   bool
	InputBuffer textinput.Model

	// Components
	ScriptViewport viewport.Model

	savePath string
	watcher  *scan.Watcher
	analyzer *scan.Analyzer
	logger   *slog.Logger
	copyFn   func(string) error
	saveFn   func(path, script string) error
}

// InitialModel returns the initial state.
func InitialModel(opts Options) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Wildcard, e.g. *wizard*"
	ti.CharLimit = 120
	ti.Width = 30

	savePath := opts.SavePath
	if savePath == "" {
		savePath = scan.DefaultScriptName
	}
	logger := logging.Default(opts.Logger).With("component", "tui")

	return AppModel{
		Path:           opts.Path,
		Mode:           opts.Mode,
		Loading:        true,
		InputBuffer:    ti,
		ScriptViewport: viewport.New(40, 10),
		savePath:       savePath,
		watcher:        opts.Watcher,
		analyzer:       scan.NewAnalyzer(logger),
		logger:         logger,
		copyFn:         clipboard.WriteAll,
		saveFn:         scan.WriteScript,
	}
}

// selected returns the record under the cursor.
func (m AppModel) selected() (model.CommentRecord, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Result.Records) {
		return model.CommentRecord{}, false
	}
	return m.Result.Records[m.SelectedIdx], true
}
