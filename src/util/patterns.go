package util

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"javasmells/src/config"
)

// ExclusionMatcher matches source paths against exclusion patterns
type ExclusionMatcher struct {
	filePatterns []string
	files        []string
}

// NewExclusionMatcher creates a new exclusion matcher from config
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	return &ExclusionMatcher{
		filePatterns: cfg.FilePatterns,
		files:        cfg.Files,
	}
}

// Matches checks if a file should be skipped
func (m *ExclusionMatcher) Matches(filePath string) bool {
	filePath = filepath.ToSlash(filepath.Clean(filePath))

	for _, f := range m.files {
		if filePath == filepath.ToSlash(filepath.Clean(f)) {
			return true
		}
	}

	for _, pattern := range m.filePatterns {
		if MatchGlob(pattern, filePath) {
			return true
		}
	}

	return false
}

// MatchGlob matches a slash-separated path against a glob pattern, where **
// spans directories. A relative pattern ignores the path's leading slash.
func MatchGlob(pattern, name string) bool {
	if !strings.HasPrefix(pattern, "/") {
		name = strings.TrimPrefix(name, "/")
	}
	if matched, _ := doublestar.Match(pattern, name); matched {
		return true
	}
	// bare patterns such as *.java also match the base name
	if !strings.Contains(pattern, "/") {
		matched, _ := doublestar.Match(pattern, path.Base(name))
		return matched
	}
	return false
}
