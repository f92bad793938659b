package utils_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/code2md/internal/utils"
)

func TestDeduplicatePatterns(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "empty", input: nil, expected: []string{}},
		{name: "unique preserved", input: []string{"a", "b"}, expected: []string{"a", "b"}},
		{name: "duplicates removed keeping first", input: []string{"a", "b", "a", "c", "b"}, expected: []string{"a", "b", "c"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.DeduplicatePatterns(testCase.input)
			if !reflect.DeepEqual(result, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, result)
			}
		})
	}
}

func TestRelativePathOrSelf(t *testing.T) {
	rootDirectory := t.TempDir()
	nestedPath := filepath.Join(rootDirectory, "src", "main.py")

	if result := utils.RelativePathOrSelf(nestedPath, rootDirectory); result != "src/main.py" {
		t.Fatalf("expected src/main.py, got %s", result)
	}
	if result := utils.RelativePathOrSelf(rootDirectory, rootDirectory); result != "." {
		t.Fatalf("expected '.', got %s", result)
	}
}

func TestNormalizeExtension(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: ".py", expected: ".py"},
		{name: "missing dot", input: "py", expected: ".py"},
		{name: "upper case", input: ".PY", expected: ".py"},
		{name: "surrounding whitespace", input: "  Go ", expected: ".go"},
		{name: "empty", input: "", expected: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.NormalizeExtension(testCase.input)
			if result != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "safe name unchanged", input: "my-project_1", expected: "my-project_1"},
		{name: "spaces and slashes replaced", input: "my project/v2", expected: "my_project_v2"},
		{name: "unicode replaced", input: "prøject", expected: "pr_ject"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.SanitizeFileName(testCase.input)
			if result != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}
