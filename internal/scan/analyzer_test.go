package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fgcomment/internal/logging"
	"fgcomment/internal/model"
)

func TestAnalyze(t *testing.T) {
	var buf bytes.Buffer
	a := NewAnalyzer(logging.New(&buf, true))

	res := a.Analyze(sampleConfig, model.ModeWizardOnly())
	assert.Equal(t, 4, res.Total)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 10, res.Records[0].LineNumber)
	assert.Equal(t, "1 comment(s) found.", res.Summary)
	assert.Equal(t, Generate(res.Records), res.Script)
	assert.Equal(t, model.SplitLines(sampleConfig), res.Lines)
	assert.Contains(t, buf.String(), "analysis complete")
	assert.Contains(t, buf.String(), "selected=1")
}

func TestAnalyzeEmpty(t *testing.T) {
	res := NewAnalyzer(nil).Analyze("", model.ModeNone())
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Records)
	assert.Equal(t, "", res.Script)
	assert.Equal(t, "0 comments found.", res.Summary)
}

func TestGenerateReport(t *testing.T) {
	res := NewAnalyzer(nil).Analyze(sampleConfig, model.ModeWildcard("dns"))
	report := GenerateReport(res, false)

	assert.Contains(t, report, `Filter:   wildcard("dns")`)
	assert.Contains(t, report, "Scanned:  4 comment(s)")
	assert.Contains(t, report, "1. Line 13")
	assert.Contains(t, report, "config vdom → edit root → config firewall policy → edit 4")
	assert.Contains(t, report, `set comment "allow dns"`)
	assert.True(t, strings.HasSuffix(report, "next\nend\nend\n"))
	assert.NotContains(t, report, "ConfigPath:")

	verbose := GenerateReport(res, true)
	assert.Contains(t, verbose, `ConfigPath: ["vdom" "firewall policy"]`)
	assert.Contains(t, verbose, "vdom frame: root")
}

func TestGenerateReportNothingSelected(t *testing.T) {
	res := NewAnalyzer(nil).Analyze("config system global\nend\n", model.ModeNone())
	report := GenerateReport(res, false)
	assert.Contains(t, report, "0 comments found.")
	assert.Contains(t, report, "(nothing to remove)")
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fw.conf")
	require.NoError(t, os.WriteFile(path, []byte("config a\nend\n"), 0644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.conf"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	select {
	case _, ok := <-w.Changes():
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}
