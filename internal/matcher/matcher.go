// Package matcher compiles exclude glob patterns once and answers whether a
// relative path or a single path segment matches any of them.
package matcher

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	pathSeparator    = "/"
	anyDepthPrefix   = "**/"
	windowsSeparator = `\`
	patternErrFormat = "invalid exclude pattern %q"
)

// PatternError reports an exclude pattern that fails to compile under both
// the as-given and the depth-wildcard-rewritten forms.
type PatternError struct {
	Pattern string
}

// Error names the offending pattern.
func (patternError *PatternError) Error() string {
	return fmt.Sprintf(patternErrFormat, patternError.Pattern)
}

// PatternMatcher holds the normalized, validated exclude patterns.
type PatternMatcher struct {
	patterns []string
}

// NewPatternMatcher normalizes and validates the raw patterns. A pattern
// containing a path separator is used as-is (backslashes normalized to
// forward slashes); a bare name is rewritten to match at any depth. When the
// normalized form does not validate, the depth-wildcard rewrite of the raw
// pattern is tried as a second attempt; only if both fail is the pattern
// rejected.
func NewPatternMatcher(rawPatterns []string) (*PatternMatcher, error) {
	normalizedPatterns := make([]string, 0, len(rawPatterns))
	for _, rawPattern := range rawPatterns {
		trimmedPattern := strings.TrimSpace(rawPattern)
		if trimmedPattern == "" {
			continue
		}
		normalizedPattern := normalizePattern(trimmedPattern)
		if !doublestar.ValidatePattern(normalizedPattern) {
			rewrittenPattern := anyDepthPrefix + trimmedPattern
			if !doublestar.ValidatePattern(rewrittenPattern) {
				return nil, &PatternError{Pattern: rawPattern}
			}
			normalizedPattern = rewrittenPattern
		}
		normalizedPatterns = append(normalizedPatterns, normalizedPattern)
	}
	return &PatternMatcher{patterns: normalizedPatterns}, nil
}

// normalizePattern rewrites a bare name to match at any depth and converts
// backslash separators to forward slashes.
func normalizePattern(pattern string) string {
	if strings.Contains(pattern, pathSeparator) || strings.Contains(pattern, windowsSeparator) {
		return strings.ReplaceAll(pattern, windowsSeparator, pathSeparator)
	}
	return anyDepthPrefix + pattern
}

// Matches reports whether the full relative path matches any exclude pattern.
// The path is evaluated in forward-slash form and matching is case-sensitive.
func (patternMatcher *PatternMatcher) Matches(relativePath string) bool {
	normalizedPath := strings.ReplaceAll(relativePath, windowsSeparator, pathSeparator)
	for _, pattern := range patternMatcher.patterns {
		matched, matchError := doublestar.Match(pattern, normalizedPath)
		if matchError == nil && matched {
			return true
		}
	}
	return false
}

// MatchesSegment reports whether a single path component matches any exclude
// pattern, allowing exclusion by bare name regardless of position.
func (patternMatcher *PatternMatcher) MatchesSegment(name string) bool {
	for _, pattern := range patternMatcher.patterns {
		matched, matchError := doublestar.Match(pattern, name)
		if matchError == nil && matched {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher holds no patterns at all.
func (patternMatcher *PatternMatcher) Empty() bool {
	return len(patternMatcher.patterns) == 0
}
