package markdown_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/temirov/code2md/internal/content"
	"github.com/temirov/code2md/internal/markdown"
	"github.com/temirov/code2md/internal/registry"
	"github.com/temirov/code2md/internal/types"
)

func TestGenerateAnchor(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "nested path", path: "src/main.py", expected: "srcmainpy"},
		{name: "config path", path: "config/settings.json", expected: "configsettingsjson"},
		{name: "dashes preserved", path: "my-pkg/my-file.py", expected: "my-pkgmy-filepy"},
		{name: "upper case lowered", path: "SRC/Main.PY", expected: "srcmainpy"},
		{name: "empty", path: "", expected: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := markdown.GenerateAnchor(testCase.path)
			if result != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestGenerateAnchorDeterministicAndRestricted(t *testing.T) {
	inputPath := "Some/Deeply_Nested/path-1.txt"
	firstResult := markdown.GenerateAnchor(inputPath)
	secondResult := markdown.GenerateAnchor(inputPath)
	if firstResult != secondResult {
		t.Fatalf("anchor not deterministic: %q vs %q", firstResult, secondResult)
	}
	for _, character := range firstResult {
		isLowerAlphanumeric := (character >= 'a' && character <= 'z') ||
			(character >= '0' && character <= '9') || character == '-'
		if !isLowerAlphanumeric {
			t.Fatalf("anchor contains forbidden character %q in %q", character, firstResult)
		}
	}
}

// newTestAssembler builds an assembler with a pinned timestamp over real files.
func newTestAssembler() *markdown.Assembler {
	return &markdown.Assembler{
		Syntax:   registry.NewDefaultRegistry(),
		Contents: &content.Reader{},
		Now: func() time.Time {
			return time.Date(2024, time.January, 2, 15, 4, 5, 0, time.Local)
		},
	}
}

func writeFile(t *testing.T, root string, relativePath string, contentText string) string {
	t.Helper()
	fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
	if makeDirError := os.MkdirAll(filepath.Dir(fullPath), 0o755); makeDirError != nil {
		t.Fatalf("mkdir for %s: %v", relativePath, makeDirError)
	}
	if writeError := os.WriteFile(fullPath, []byte(contentText), 0o644); writeError != nil {
		t.Fatalf("write %s: %v", relativePath, writeError)
	}
	return fullPath
}

func TestAssembleDocumentStructure(t *testing.T) {
	rootDirectory := t.TempDir()
	mainPath := writeFile(t, rootDirectory, "src/main.py", "print('hello')\n\n\n")
	configPath := writeFile(t, rootDirectory, "config.json", "{}\n")

	documentAssembler := newTestAssembler()
	documentText := documentAssembler.Assemble(
		types.CollectedFiles{Files: []string{configPath, mainPath}, BasePath: rootDirectory},
		markdown.Options{ProjectLabel: "myproj", IncludeTree: true},
	)

	if !strings.HasPrefix(documentText, "# myproj\n") {
		t.Fatalf("expected title line, got %q", firstLine(documentText))
	}
	for _, expectedFragment := range []string{
		"> Generated at 2024-01-02 15:04:05",
		"> File count: 2",
		"## Table of Contents",
		"1. [Directory Structure](#directory-structure)",
		"2. [Files](#files)",
		"   - [`config.json`](#configjson)",
		"   - [`src/main.py`](#srcmainpy)",
		"## Directory Structure",
		"myproj/",
		"├── src/",
		"│   └── main.py",
		"└── config.json",
		"## Files",
		"### `config.json`",
		"### `src/main.py`",
		"```python\nprint('hello')\n```",
		"```json\n{}\n```",
	} {
		if !strings.Contains(documentText, expectedFragment) {
			t.Fatalf("expected document to contain %q\ndocument:\n%s", expectedFragment, documentText)
		}
	}
}

func TestAssembleOmitsTreeWhenDisabled(t *testing.T) {
	rootDirectory := t.TempDir()
	mainPath := writeFile(t, rootDirectory, "main.py", "pass\n")

	documentAssembler := newTestAssembler()
	documentText := documentAssembler.Assemble(
		types.CollectedFiles{Files: []string{mainPath}, BasePath: rootDirectory},
		markdown.Options{ProjectLabel: "plain", IncludeTree: false},
	)

	if strings.Contains(documentText, "## Directory Structure") {
		t.Fatalf("expected no directory structure section")
	}
	if !strings.Contains(documentText, "1. [Files](#files)") {
		t.Fatalf("expected files entry to be the first table of contents item")
	}
}

func TestAssembleTableOfContentsMatchesSectionOrder(t *testing.T) {
	rootDirectory := t.TempDir()
	paths := []string{
		writeFile(t, rootDirectory, "a/one.py", "1\n"),
		writeFile(t, rootDirectory, "b/two.py", "2\n"),
		writeFile(t, rootDirectory, "zeta.py", "3\n"),
	}

	documentAssembler := newTestAssembler()
	documentText := documentAssembler.Assemble(
		types.CollectedFiles{Files: paths, BasePath: rootDirectory},
		markdown.Options{ProjectLabel: "order", IncludeTree: false},
	)

	var tableOfContentsPaths []string
	var sectionPaths []string
	for _, line := range strings.Split(documentText, "\n") {
		if strings.HasPrefix(line, "   - [`") {
			entry := strings.TrimPrefix(line, "   - [`")
			tableOfContentsPaths = append(tableOfContentsPaths, entry[:strings.Index(entry, "`")])
		}
		if strings.HasPrefix(line, "### `") {
			entry := strings.TrimPrefix(line, "### `")
			sectionPaths = append(sectionPaths, strings.TrimSuffix(entry, "`"))
		}
	}

	if len(tableOfContentsPaths) != 3 || len(sectionPaths) != 3 {
		t.Fatalf("expected 3 entries in both lists, got %v and %v", tableOfContentsPaths, sectionPaths)
	}
	for index := range tableOfContentsPaths {
		if tableOfContentsPaths[index] != sectionPaths[index] {
			t.Fatalf("ordering mismatch: table of contents %v, sections %v", tableOfContentsPaths, sectionPaths)
		}
	}
}

func TestAssembleEmbedsPlaceholderForUnreadableFile(t *testing.T) {
	rootDirectory := t.TempDir()
	missingPath := filepath.Join(rootDirectory, "missing.py")

	documentAssembler := newTestAssembler()
	documentText := documentAssembler.Assemble(
		types.CollectedFiles{Files: []string{missingPath}, BasePath: rootDirectory},
		markdown.Options{ProjectLabel: "broken", IncludeTree: false},
	)

	if !strings.Contains(documentText, "[error:") {
		t.Fatalf("expected inline error placeholder in document:\n%s", documentText)
	}
	if !strings.Contains(documentText, "### `missing.py`") {
		t.Fatalf("expected a section for the unreadable file")
	}
}

func TestAssembleIdempotentWithPinnedTimestamp(t *testing.T) {
	rootDirectory := t.TempDir()
	mainPath := writeFile(t, rootDirectory, "main.py", "pass\n")

	documentAssembler := newTestAssembler()
	collected := types.CollectedFiles{Files: []string{mainPath}, BasePath: rootDirectory}
	options := markdown.Options{ProjectLabel: "stable", IncludeTree: true}

	firstDocument := documentAssembler.Assemble(collected, options)
	secondDocument := documentAssembler.Assemble(collected, options)
	if firstDocument != secondDocument {
		t.Fatalf("expected byte-identical documents for unchanged input")
	}
}

func firstLine(text string) string {
	if newlineIndex := strings.Index(text, "\n"); newlineIndex >= 0 {
		return text[:newlineIndex]
	}
	return text
}
