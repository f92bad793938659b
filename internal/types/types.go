// Package types defines cross-package data structures used by the code2md CLI.
package types

// CollectedFiles is the result of file discovery: the sorted list of absolute
// file paths together with the canonical root they were discovered under.
type CollectedFiles struct {
	Files    []string
	BasePath string
}

// FileContent is the text of a single discovered file as returned by the
// content provider. Lossy reports that the raw bytes were not valid UTF-8 and
// invalid sequences were replaced during decoding. Failed reads are expressed
// as an inline placeholder in Text, never as an error.
type FileContent struct {
	Path  string
	Text  string
	Lossy bool
}
