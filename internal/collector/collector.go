// Package collector walks a project root and produces the ordered list of
// files that pass the extension allow-list and the exclude patterns.
package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/code2md/internal/matcher"
	"github.com/temirov/code2md/internal/types"
	"github.com/temirov/code2md/internal/utils"
)

const (
	warningAccessPathFormat = "Warning: error accessing path %s: %v\n"
)

// InvalidRootError reports a root path that is missing or not a directory.
// It is fatal and raised before any traversal begins.
type InvalidRootError struct {
	Path string
	Err  error
}

// Error names the offending root path.
func (rootError *InvalidRootError) Error() string {
	if rootError.Err != nil {
		return fmt.Sprintf("invalid project root %q: %v", rootError.Path, rootError.Err)
	}
	return fmt.Sprintf("invalid project root %q: not a directory", rootError.Path)
}

// Unwrap exposes the underlying cause.
func (rootError *InvalidRootError) Unwrap() error {
	return rootError.Err
}

// NoFilesError reports a traversal that completed without matching any file.
// An empty document is not useful output, so the pipeline treats it as fatal.
type NoFilesError struct {
	Root string
}

// Error names the searched root.
func (noFilesError *NoFilesError) Error() string {
	return fmt.Sprintf("no matching files found under %q", noFilesError.Root)
}

// Collector discovers files beneath a project root. Extensions holds the
// lower-case, dot-prefixed allow-list; Excludes answers path and segment
// exclusion queries.
type Collector struct {
	Extensions map[string]struct{}
	Excludes   *matcher.PatternMatcher
}

// Collect walks rootPath depth-first without following symbolic links and
// returns every regular file whose extension is allow-listed and which no
// exclude pattern rejects. Excluded directories are pruned before descent so
// dependency caches are never traversed. The result is sorted by
// case-insensitive comparison of the root-relative path and contains no
// duplicates. Unreadable entries encountered mid-walk are skipped with a
// warning; only an invalid root or an empty result is fatal.
func (fileCollector *Collector) Collect(rootPath string) (types.CollectedFiles, error) {
	canonicalRootPath, rootValidationError := validateRoot(rootPath)
	if rootValidationError != nil {
		return types.CollectedFiles{}, rootValidationError
	}

	seenPaths := make(map[string]struct{})
	var discoveredFiles []string

	walkError := filepath.WalkDir(canonicalRootPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			fmt.Fprintf(os.Stderr, warningAccessPathFormat, walkedPath, accessError)
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if walkedPath == canonicalRootPath {
			return nil
		}

		relativePath := utils.RelativePathOrSelf(walkedPath, canonicalRootPath)
		entryName := directoryEntry.Name()

		if directoryEntry.IsDir() {
			if fileCollector.Excludes.Matches(relativePath) || fileCollector.Excludes.MatchesSegment(entryName) {
				return filepath.SkipDir
			}
			return nil
		}
		if !directoryEntry.Type().IsRegular() {
			return nil
		}
		if fileCollector.Excludes.Matches(relativePath) || fileCollector.Excludes.MatchesSegment(entryName) {
			return nil
		}

		extension := fileExtension(entryName)
		if extension == "" {
			return nil
		}
		if _, allowed := fileCollector.Extensions[extension]; !allowed {
			return nil
		}

		if _, seen := seenPaths[walkedPath]; seen {
			return nil
		}
		seenPaths[walkedPath] = struct{}{}
		discoveredFiles = append(discoveredFiles, walkedPath)
		return nil
	})
	if walkError != nil {
		return types.CollectedFiles{}, walkError
	}

	sortByRelativePath(discoveredFiles, canonicalRootPath)

	if len(discoveredFiles) == 0 {
		return types.CollectedFiles{}, &NoFilesError{Root: canonicalRootPath}
	}

	return types.CollectedFiles{Files: discoveredFiles, BasePath: canonicalRootPath}, nil
}

// validateRoot canonicalizes rootPath and confirms it exists and is a directory.
func validateRoot(rootPath string) (string, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return "", &InvalidRootError{Path: rootPath, Err: absolutePathError}
	}
	resolvedRootPath, resolveError := filepath.EvalSymlinks(absoluteRootPath)
	if resolveError != nil {
		return "", &InvalidRootError{Path: rootPath, Err: resolveError}
	}
	rootInformation, statError := os.Stat(resolvedRootPath)
	if statError != nil {
		return "", &InvalidRootError{Path: rootPath, Err: statError}
	}
	if !rootInformation.IsDir() {
		return "", &InvalidRootError{Path: rootPath}
	}
	return resolvedRootPath, nil
}

// fileExtension returns the lower-cased, dot-prefixed extension of a file
// name, or an empty string when the name has none. A leading dot alone, as in
// ".gitignore", does not count as an extension.
func fileExtension(name string) string {
	dotIndex := strings.LastIndex(name, ".")
	if dotIndex <= 0 {
		return ""
	}
	return strings.ToLower(name[dotIndex:])
}

// sortByRelativePath orders the discovered files by case-insensitive
// comparison of their paths relative to the root, which keeps document output
// reproducible regardless of filesystem enumeration order.
func sortByRelativePath(filePaths []string, rootPath string) {
	sort.Slice(filePaths, func(firstIndex, secondIndex int) bool {
		firstRelative := strings.ToLower(utils.RelativePathOrSelf(filePaths[firstIndex], rootPath))
		secondRelative := strings.ToLower(utils.RelativePathOrSelf(filePaths[secondIndex], rootPath))
		if firstRelative == secondRelative {
			return filePaths[firstIndex] < filePaths[secondIndex]
		}
		return firstRelative < secondRelative
	})
}
