package matcher_test

import (
	"errors"
	"testing"

	"github.com/temirov/code2md/internal/matcher"
)

func TestNewPatternMatcherInvalidPattern(t *testing.T) {
	_, constructionError := matcher.NewPatternMatcher([]string{"node_modules", "["})
	if constructionError == nil {
		t.Fatalf("expected error for invalid pattern")
	}
	var patternError *matcher.PatternError
	if !errors.As(constructionError, &patternError) {
		t.Fatalf("expected PatternError, got %T", constructionError)
	}
	if patternError.Pattern != "[" {
		t.Fatalf("expected offending pattern '[', got %q", patternError.Pattern)
	}
}

func TestMatches(t *testing.T) {
	patternMatcher, constructionError := matcher.NewPatternMatcher([]string{
		"node_modules",
		"*.log",
		"src/generated",
		"docs/**",
	})
	if constructionError != nil {
		t.Fatalf("NewPatternMatcher error: %v", constructionError)
	}

	testCases := []struct {
		name         string
		relativePath string
		expected     bool
	}{
		{name: "bare name at root", relativePath: "node_modules", expected: true},
		{name: "bare name at depth", relativePath: "packages/app/node_modules", expected: true},
		{name: "wildcard at root", relativePath: "debug.log", expected: true},
		{name: "wildcard at depth", relativePath: "logs/debug.log", expected: true},
		{name: "path pattern exact", relativePath: "src/generated", expected: true},
		{name: "path pattern elsewhere", relativePath: "other/src/generated", expected: false},
		{name: "double star subtree", relativePath: "docs/guide/intro.md", expected: true},
		{name: "unmatched path", relativePath: "src/main.py", expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := patternMatcher.Matches(testCase.relativePath)
			if result != testCase.expected {
				t.Fatalf("Matches(%q): expected %v, got %v", testCase.relativePath, testCase.expected, result)
			}
		})
	}
}

func TestMatchesSegment(t *testing.T) {
	patternMatcher, constructionError := matcher.NewPatternMatcher([]string{
		"node_modules",
		"*.egg-info",
		"src/generated",
	})
	if constructionError != nil {
		t.Fatalf("NewPatternMatcher error: %v", constructionError)
	}

	testCases := []struct {
		name     string
		segment  string
		expected bool
	}{
		{name: "bare directory name", segment: "node_modules", expected: true},
		{name: "wildcard segment", segment: "mypkg.egg-info", expected: true},
		{name: "path pattern never matches a segment", segment: "generated", expected: false},
		{name: "case sensitive", segment: "Node_Modules", expected: false},
		{name: "unrelated segment", segment: "src", expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := patternMatcher.MatchesSegment(testCase.segment)
			if result != testCase.expected {
				t.Fatalf("MatchesSegment(%q): expected %v, got %v", testCase.segment, testCase.expected, result)
			}
		})
	}
}

func TestSingleStarDoesNotCrossSeparators(t *testing.T) {
	patternMatcher, constructionError := matcher.NewPatternMatcher([]string{"src/*.py"})
	if constructionError != nil {
		t.Fatalf("NewPatternMatcher error: %v", constructionError)
	}
	if !patternMatcher.Matches("src/main.py") {
		t.Fatalf("expected src/main.py to match src/*.py")
	}
	if patternMatcher.Matches("src/sub/main.py") {
		t.Fatalf("expected src/sub/main.py not to match src/*.py")
	}
}

func TestEmpty(t *testing.T) {
	patternMatcher, constructionError := matcher.NewPatternMatcher(nil)
	if constructionError != nil {
		t.Fatalf("NewPatternMatcher error: %v", constructionError)
	}
	if !patternMatcher.Empty() {
		t.Fatalf("expected matcher without patterns to report Empty")
	}
	if patternMatcher.Matches("anything") {
		t.Fatalf("expected no match from empty matcher")
	}
}
