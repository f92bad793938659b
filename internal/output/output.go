// Package output delivers the assembled document to its destination.
package output

import (
	"fmt"
	"os"
)

// StdoutTarget selects standard output instead of a file.
const StdoutTarget = "-"

// WriteDocument writes documentText to outputPath, or to stdout when the
// target is StdoutTarget. It returns the number of bytes written so the
// caller can report the document size.
func WriteDocument(outputPath string, documentText string) (int64, error) {
	if outputPath == StdoutTarget {
		bytesWritten, writeError := os.Stdout.WriteString(documentText)
		if writeError != nil {
			return 0, fmt.Errorf("writing document to stdout: %w", writeError)
		}
		return int64(bytesWritten), nil
	}

	writeError := os.WriteFile(outputPath, []byte(documentText), 0o644)
	if writeError != nil {
		return 0, fmt.Errorf("writing document to %s: %w", outputPath, writeError)
	}
	return int64(len(documentText)), nil
}
