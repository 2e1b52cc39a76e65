package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fgcomment/internal/model"
)

func TestRemovalBlockShapes(t *testing.T) {
	tests := []struct {
		name string
		rec  model.CommentRecord
		want string
	}{
		{
			name: "single config",
			rec:  model.CommentRecord{ConfigPath: []string{"system"}, SubPath: []string{""}},
			want: "config system\nunset comment\nnext\nend",
		},
		{
			name: "vdom frame",
			rec:  model.CommentRecord{ConfigPath: []string{"vdom", "firewall"}, SubPath: []string{"root", ""}},
			want: "config vdom\nedit root\nconfig firewall\nunset comment\nnext\nend\nend",
		},
		{
			name: "vdom frame with edit",
			rec:  model.CommentRecord{ConfigPath: []string{"vdom", "firewall policy"}, SubPath: []string{"root", "3"}},
			want: "config vdom\nedit root\nconfig firewall policy\nedit 3\nunset comment\nnext\nend\nend",
		},
		{
			name: "vdom without edit is a plain config",
			rec:  model.CommentRecord{ConfigPath: []string{"vdom"}, SubPath: []string{""}},
			want: "config vdom\nunset comment\nnext\nend",
		},
		{
			name: "vdom only matters at depth 0",
			rec:  model.CommentRecord{ConfigPath: []string{"global", "vdom"}, SubPath: []string{"", "x"}},
			want: "config global\nconfig vdom\nedit x\nunset comment\nnext\nend\nend",
		},
		{
			name: "top level comment",
			rec:  model.CommentRecord{},
			want: "unset comment\nnext",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemovalBlock(tt.rec))
			assert.Equal(t, tt.want, Generate([]model.CommentRecord{tt.rec}))
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, "", Generate(nil))
	assert.Equal(t, "", Generate([]model.CommentRecord{}))
	assert.Equal(t, "", ScriptFile(""))
}

func TestGenerateDedupKeepsFirstOrder(t *testing.T) {
	a := model.CommentRecord{LineNumber: 1, ConfigPath: []string{"a"}, SubPath: []string{"1"}}
	b := model.CommentRecord{LineNumber: 5, ConfigPath: []string{"b"}, SubPath: []string{""}}
	// Same path as a, different comment and line: same block.
	a2 := model.CommentRecord{LineNumber: 9, CommentText: "other", ConfigPath: []string{"a"}, SubPath: []string{"1"}}

	got := Generate([]model.CommentRecord{a, b, a2, b})
	want := RemovalBlock(a) + "\n\n" + RemovalBlock(b)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, strings.Count(got, "config a\n"))
}

func TestGenerateFromSample(t *testing.T) {
	script := Generate(Extract(sampleConfig))
	blocks := strings.Split(script, "\n\n")
	require.Len(t, blocks, 4)
	assert.Equal(t, "config system global\nunset comment\nnext\nend", blocks[0])
	assert.Equal(t, "config vdom\nedit root\nconfig firewall policy\nedit 3\nunset comment\nnext\nend\nend", blocks[1])
	assert.Equal(t, "config vdom\nedit root\nconfig firewall policy\nedit 4\nunset comment\nnext\nend\nend", blocks[2])
	assert.Equal(t, "config vdom\nedit root\nconfig firewall address\nedit \"srv\"\nunset comment\nnext\nend\nend", blocks[3])
}

func TestWriteScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultScriptName)
	require.NoError(t, WriteScript(path, "config system\nunset comment\nnext\nend"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "config system\nunset comment\nnext\nend\n", string(data))

	err = WriteScript(filepath.Join(dir, "missing", "x.cli"), "x")
	assert.Error(t, err)
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fw.conf")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	text, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, sampleConfig, text)

	_, err = ReadSource(filepath.Join(dir, "nope.conf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
