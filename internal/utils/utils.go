// Package utils contains general helper functions used across the code2md tool.
package utils

import (
	"path/filepath"
	"strings"
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// RelativePathOrSelf calculates the relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
// The result always uses forward slashes.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, absoluteRootError := filepath.Abs(root)
	if absoluteRootError != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relativeError := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relativeError != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// NormalizeExtension lower-cases an extension string and guarantees a leading dot.
func NormalizeExtension(extension string) string {
	loweredExtension := strings.ToLower(strings.TrimSpace(extension))
	if loweredExtension == "" {
		return ""
	}
	if !strings.HasPrefix(loweredExtension, ".") {
		return "." + loweredExtension
	}
	return loweredExtension
}

// SanitizeFileName replaces every character that is not alphanumeric, a dash,
// or an underscore with an underscore so the result is safe as a file name.
func SanitizeFileName(name string) string {
	var builder strings.Builder
	builder.Grow(len(name))
	for _, character := range name {
		if character == '-' || character == '_' ||
			(character >= 'a' && character <= 'z') ||
			(character >= 'A' && character <= 'Z') ||
			(character >= '0' && character <= '9') {
			builder.WriteRune(character)
			continue
		}
		builder.WriteRune('_')
	}
	return builder.String()
}
