// Package markdown assembles the final document from the discovered file
// list: title and metadata, a table of contents with deterministic anchors,
// the optional directory tree, and one fenced content section per file.
package markdown

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/temirov/code2md/internal/tree"
	"github.com/temirov/code2md/internal/types"
	"github.com/temirov/code2md/internal/utils"
)

const (
	tableOfContentsHeading    = "## Table of Contents"
	directoryTreeHeading      = "## Directory Structure"
	directoryTreeAnchor       = "#directory-structure"
	filesHeading              = "## Files"
	filesAnchor               = "#files"
	sectionSeparator          = "---"
	codeFence                 = "```"
	generatedAtFormat         = "> Generated at %s"
	basePathFormat            = "> Base path: `%s`"
	fileCountFormat           = "> File count: %d"
	tableOfContentsLineFormat = "   - [`%s`](#%s)"
	fileHeadingFormat         = "### `%s`"
)

// SyntaxResolver maps a file name to its highlighting-language tag.
type SyntaxResolver interface {
	SyntaxForFile(filename string) string
}

// ContentProvider supplies the text of discovered files for embedding.
type ContentProvider interface {
	ReadAll(paths []string) []types.FileContent
}

// Options selects the presentation of the assembled document.
type Options struct {
	ProjectLabel string
	IncludeTree  bool
}

// Assembler produces the Markdown document. Syntax and Contents are injected
// collaborators; Now may be overridden to pin the generation timestamp.
type Assembler struct {
	Syntax   SyntaxResolver
	Contents ContentProvider
	Now      func() time.Time
}

// Assemble renders the complete document for the collected files. The table
// of contents and the per-file sections iterate the same sorted list, so both
// always agree on ordering.
func (documentAssembler *Assembler) Assemble(collected types.CollectedFiles, options Options) string {
	nowFunc := documentAssembler.Now
	if nowFunc == nil {
		nowFunc = time.Now
	}

	relativePaths := make([]string, len(collected.Files))
	for fileIndex, filePath := range collected.Files {
		relativePaths[fileIndex] = utils.RelativePathOrSelf(filePath, collected.BasePath)
	}

	var lines []string
	appendLine := func(line string) { lines = append(lines, line) }

	appendLine("# " + options.ProjectLabel)
	appendLine("")
	appendLine(fmt.Sprintf(generatedAtFormat, utils.FormatTimestamp(nowFunc())))
	appendLine(fmt.Sprintf(basePathFormat, collected.BasePath))
	appendLine(fmt.Sprintf(fileCountFormat, len(collected.Files)))
	appendLine("")

	appendLine(tableOfContentsHeading)
	appendLine("")
	if options.IncludeTree {
		appendLine(fmt.Sprintf("1. [Directory Structure](%s)", directoryTreeAnchor))
		appendLine(fmt.Sprintf("2. [Files](%s)", filesAnchor))
	} else {
		appendLine(fmt.Sprintf("1. [Files](%s)", filesAnchor))
	}
	for _, relativePath := range relativePaths {
		appendLine(fmt.Sprintf(tableOfContentsLineFormat, relativePath, GenerateAnchor(relativePath)))
	}
	appendLine("")

	if options.IncludeTree {
		appendLine(sectionSeparator)
		appendLine("")
		appendLine(directoryTreeHeading)
		appendLine("")
		appendLine(codeFence)
		lines = append(lines, tree.RenderTree(collected.Files, collected.BasePath, options.ProjectLabel)...)
		appendLine(codeFence)
		appendLine("")
	}

	appendLine(sectionSeparator)
	appendLine("")
	appendLine(filesHeading)
	appendLine("")

	fileContents := documentAssembler.Contents.ReadAll(collected.Files)
	for fileIndex, relativePath := range relativePaths {
		fileName := filepath.Base(collected.Files[fileIndex])
		syntaxTag := documentAssembler.Syntax.SyntaxForFile(fileName)

		appendLine(fmt.Sprintf(fileHeadingFormat, relativePath))
		appendLine("")
		appendLine(codeFence + syntaxTag)
		appendLine(strings.TrimRightFunc(fileContents[fileIndex].Text, unicode.IsSpace))
		appendLine(codeFence)
		appendLine("")
	}

	return strings.Join(lines, "\n")
}

// GenerateAnchor derives a document anchor from a relative path by keeping
// alphanumeric characters lower-cased and literal dashes, and dropping every
// other character. The transform is deterministic but lossy; distinct paths
// can collide and the table of contents does not disambiguate them.
func GenerateAnchor(path string) string {
	var builder strings.Builder
	builder.Grow(len(path))
	for _, character := range path {
		switch {
		case unicode.IsLetter(character) || unicode.IsDigit(character):
			builder.WriteRune(unicode.ToLower(character))
		case character == '-':
			builder.WriteRune('-')
		}
	}
	return builder.String()
}
