package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadcrumb(t *testing.T) {
	tests := []struct {
		name string
		rec  CommentRecord
		want string
	}{
		{"single level", CommentRecord{ConfigPath: []string{"system global"}, SubPath: []string{""}}, "config system global"},
		{"config and edit", CommentRecord{ConfigPath: []string{"firewall policy"}, SubPath: []string{"3"}}, "config firewall policy → edit 3"},
		{
			"vdom frame",
			CommentRecord{ConfigPath: []string{"vdom", "firewall address"}, SubPath: []string{"root", "\"lan\""}},
			"config vdom → edit root → config firewall address → edit \"lan\"",
		},
		{"vdom without edit", CommentRecord{ConfigPath: []string{"vdom"}, SubPath: []string{""}}, "config vdom"},
		{"empty", CommentRecord{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Breadcrumb())
		})
	}
}

func TestModeFromSelection(t *testing.T) {
	m, err := ModeFromSelection(false, false, "ignored")
	require.NoError(t, err)
	assert.Equal(t, ModeKindNone, m.Kind())

	m, err = ModeFromSelection(true, false, "")
	require.NoError(t, err)
	assert.Equal(t, ModeKindWizard, m.Kind())

	m, err = ModeFromSelection(false, true, "vpn*")
	require.NoError(t, err)
	assert.Equal(t, ModeKindWildcard, m.Kind())
	assert.Equal(t, "vpn*", m.Pattern())

	_, err = ModeFromSelection(true, true, "")
	assert.True(t, errors.Is(err, ErrConflictingModes))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Wizard ", "")
	require.NoError(t, err)
	assert.Equal(t, ModeWizardOnly(), m)

	m, err = ParseMode("", "x")
	require.NoError(t, err)
	assert.Equal(t, ModeNone(), m)

	m, err = ParseMode("wildcard", "a?c")
	require.NoError(t, err)
	assert.Equal(t, ModeWildcard("a?c"), m)

	_, err = ParseMode("regex", "")
	assert.Error(t, err)
}

func TestModeNextCycles(t *testing.T) {
	m := ModeWildcard("keep")
	m = m.Next()
	assert.Equal(t, ModeKindNone, m.Kind())
	m = m.Next()
	assert.Equal(t, ModeKindWizard, m.Kind())
	m = m.Next()
	assert.Equal(t, ModeKindWildcard, m.Kind())
	assert.Equal(t, "keep", m.Pattern())
}

func TestModeJSON(t *testing.T) {
	b, err := ModeWildcard("a*").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"Kind":"wildcard","Pattern":"a*"}`, string(b))
}

func TestGetLineContext(t *testing.T) {
	lines := SplitLines("one\r\ntwo\nthree\nfour\nfive")
	require.Len(t, lines, 5)

	ctx := GetLineContext(lines, 1)
	assert.Equal(t, "one", ctx.Target())
	assert.Equal(t, []SourceLine{{1, "one"}, {2, "two"}, {3, "three"}}, ctx.Window)

	ctx = GetLineContext(lines, 5)
	assert.Equal(t, "five", ctx.Target())
	require.Len(t, ctx.Window, 3)
	assert.Equal(t, 3, ctx.Window[0].Number)

	ctx = GetLineContext(lines, 3)
	assert.Len(t, ctx.Window, 5)
	assert.Equal(t, "     1  one\n     2  two\n"+IconSelected+"    3  three\n     4  four\n     5  five", ctx.Render())

	ctx = GetLineContext(lines, 9)
	assert.NotEmpty(t, ctx.ErrorMsg)
	assert.Equal(t, ctx.ErrorMsg, ctx.Render())
}
