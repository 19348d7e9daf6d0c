// Package ignore decides which files are excluded from a push based on the
// glob patterns in the site's ignore file.
package ignore

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/reocities/reocities-cli/pkg/errors"
)

// FileName is the well-known name of the ignore file at the push root.
const FileName = ".gitignore"

// pattern is a single compiled ignore pattern.
type pattern struct {
	raw     string
	matcher glob.Glob
}

// Matcher reports whether paths match any of the loaded ignore patterns.
type Matcher struct {
	patterns []pattern
}

// Load reads the ignore file in root and compiles its patterns. A missing
// ignore file yields a Matcher that ignores nothing.
func Load(fs afero.Fs, root string) (*Matcher, error) {
	contents, err := afero.ReadFile(fs, filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Matcher{}, nil
		}
		return nil, errors.WithContext(err, "read ignore file")
	}
	return Parse(string(contents)), nil
}

// Parse compiles the given ignore file contents. Blank lines and lines
// starting with "#" are skipped, as are patterns that fail to compile.
func Parse(contents string) *Matcher {
	var patterns []pattern
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Compiling without separators gives `*` the same reach as fnmatch:
		// it matches across `/` as well.
		matcher, err := glob.Compile(line)
		if err != nil {
			log.WithError(err).Debugf("Skipping unparseable ignore pattern %q", line)
			continue
		}
		patterns = append(patterns, pattern{line, matcher})
	}
	return &Matcher{patterns}
}

// Ignored returns whether the given slash-separated relative path is
// excluded. A path is excluded when any pattern matches either the full
// relative path or its final segment. Matching is case-sensitive.
func (m *Matcher) Ignored(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	base := path.Base(relPath)
	for _, p := range m.patterns {
		if p.matcher.Match(relPath) || p.matcher.Match(base) {
			return true
		}
	}
	return false
}

// Patterns returns the raw patterns that were successfully compiled.
func (m *Matcher) Patterns() []string {
	var raw []string
	for _, p := range m.patterns {
		raw = append(raw, p.raw)
	}
	return raw
}
