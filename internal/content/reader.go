// Package content loads the textual content of discovered files. Reads never
// fail the pipeline: undecodable bytes degrade to a lossy conversion and
// unreadable paths degrade to an inline placeholder embedded in the document.
package content

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/code2md/internal/types"
)

const (
	// readErrorPlaceholderFormat is embedded verbatim inside a file's code
	// block when the file cannot be read.
	readErrorPlaceholderFormat = "[error: file could not be read - %v]"
	// defaultReadConcurrency bounds parallel content reads.
	defaultReadConcurrency = 8
)

// Reader provides file content to the document assembler. Concurrency limits
// the number of parallel reads performed by ReadAll; zero selects the default.
type Reader struct {
	Concurrency int
}

// ReadFile returns the text of the file at path. Valid UTF-8 content is
// returned unchanged; invalid sequences are replaced and the result is marked
// lossy. A failed read yields the inline placeholder naming the error instead
// of failing, so a single unreadable file never aborts document assembly.
func (contentReader *Reader) ReadFile(path string) types.FileContent {
	fileBytes, readError := os.ReadFile(path)
	if readError != nil {
		return types.FileContent{
			Path: path,
			Text: fmt.Sprintf(readErrorPlaceholderFormat, readError),
		}
	}
	if utf8.Valid(fileBytes) {
		return types.FileContent{Path: path, Text: string(fileBytes)}
	}
	return types.FileContent{
		Path:  path,
		Text:  strings.ToValidUTF8(string(fileBytes), string(utf8.RuneError)),
		Lossy: true,
	}
}

// ReadAll loads every path with bounded parallelism while preserving input
// order in the result. Reads are independent and idempotent; a failure of one
// file degrades to that file's placeholder only.
func (contentReader *Reader) ReadAll(paths []string) []types.FileContent {
	concurrencyLimit := contentReader.Concurrency
	if concurrencyLimit <= 0 {
		concurrencyLimit = defaultReadConcurrency
	}

	results := make([]types.FileContent, len(paths))
	readGroup := new(errgroup.Group)
	readGroup.SetLimit(concurrencyLimit)
	for pathIndex, filePath := range paths {
		pathIndex, filePath := pathIndex, filePath
		readGroup.Go(func() error {
			results[pathIndex] = contentReader.ReadFile(filePath)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes completion.
	_ = readGroup.Wait()
	return results
}
