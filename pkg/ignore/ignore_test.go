package ignore

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnored(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		path     string
		exp      bool
	}{
		{
			name:     "BasenameMatch",
			contents: "*.log",
			path:     "logs/app.log",
			exp:      true,
		},
		{
			name:     "FullPathMatch",
			contents: "build/*",
			path:     "build/out/site.tar",
			exp:      true,
		},
		{
			name:     "NoMatch",
			contents: "*.log",
			path:     "index.html",
			exp:      false,
		},
		{
			name:     "QuestionMark",
			contents: "draft?.html",
			path:     "draft1.html",
			exp:      true,
		},
		{
			name:     "CharacterClass",
			contents: "[ab].css",
			path:     "styles/a.css",
			exp:      true,
		},
		{
			name:     "CharacterClassMiss",
			contents: "[ab].css",
			path:     "styles/c.css",
			exp:      false,
		},
		{
			name:     "CaseSensitive",
			contents: "*.LOG",
			path:     "app.log",
			exp:      false,
		},
		{
			name:     "ExactName",
			contents: "node_modules",
			path:     "src/node_modules",
			exp:      true,
		},
		{
			name:     "CommentSkipped",
			contents: "# *.html",
			path:     "index.html",
			exp:      false,
		},
		{
			name:     "BlankLinesSkipped",
			contents: "\n\n*.tmp\n\n",
			path:     "cache.tmp",
			exp:      true,
		},
		{
			name:     "AnyPatternWins",
			contents: "*.log\n*.tmp\nsecret.txt",
			path:     "secret.txt",
			exp:      true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			matcher := Parse(test.contents)
			assert.Equal(t, test.exp, matcher.Ignored(test.path))
		})
	}
}

func TestParseSkipsBadPatterns(t *testing.T) {
	matcher := Parse("[unclosed\n*.log\n")
	assert.Equal(t, []string{"*.log"}, matcher.Patterns())
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	contents := "# generated files\n*.log\n\nbuild\n"
	require.NoError(t, afero.WriteFile(fs, "/site/.gitignore", []byte(contents), 0644))

	matcher, err := Load(fs, "/site")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "build"}, matcher.Patterns())
	assert.True(t, matcher.Ignored("app.log"))
	assert.False(t, matcher.Ignored("index.html"))
}

func TestLoadMissingFile(t *testing.T) {
	matcher, err := Load(afero.NewMemMapFs(), "/site")
	require.NoError(t, err)
	assert.False(t, matcher.Ignored("anything"))
	assert.Empty(t, matcher.Patterns())
}
