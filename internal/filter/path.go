package filter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"
)

// PathFilter rejects files whose slash-separated relative path matches an
// ignore glob or a gitignore rule. Stateless after construction; O(patterns)
// per path with compiled globs, no content inspection.
type PathFilter struct {
	globs []compiledGlob
	rules *ignore.GitIgnore
}

type compiledGlob struct {
	source string
	g      glob.Glob
}

// NewPathFilter compiles the configured ignore globs. Invalid globs are
// reported as warnings and skipped so one bad entry cannot disable the rest.
func NewPathFilter(ignorePaths []string) (*PathFilter, []string) {
	f := &PathFilter{}
	var warnings []string

	for _, pattern := range ignorePaths {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping ignore glob %q: %v", pattern, err))
			continue
		}
		f.globs = append(f.globs, compiledGlob{source: pattern, g: g})
	}

	return f, warnings
}

// SetGitignore installs gitignore rules (typically compiled from the scan
// root's .gitignore) to apply in addition to the configured globs.
func (f *PathFilter) SetGitignore(rules *ignore.GitIgnore) {
	f.rules = rules
}

// Check decides whether the file at rel (relative to the scan root, slash
// separated) should be excluded.
func (f *PathFilter) Check(rel string) Decision {
	rel = filepath.ToSlash(rel)

	for _, cg := range f.globs {
		if cg.g.Match(rel) || matchesBase(cg, rel) {
			return exclude(fmt.Sprintf("path matches ignore pattern %q", cg.source))
		}
	}

	if f.rules != nil && f.rules.MatchesPath(rel) {
		return exclude("path matches gitignore rule")
	}

	return include
}

// matchesBase applies bare-name globs (no slash) to the file's base name so
// that "*.min.js" excludes nested files the way gitignore patterns do.
func matchesBase(cg compiledGlob, rel string) bool {
	if strings.ContainsRune(cg.source, '/') {
		return false
	}
	return cg.g.Match(filepath.Base(rel))
}
