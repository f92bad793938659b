package utils

import "fmt"

const (
	kilobyte int64 = 1024
	megabyte int64 = 1024 * 1024
)

// FormatFileSize converts a byte length into a human-readable unit string.
// Values below 1024 are reported in whole bytes, values below one megabyte
// in kilobytes with two decimals, and everything above in megabytes.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes >= megabyte:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(megabyte))
	case bytes >= kilobyte:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kilobyte))
	default:
		return fmt.Sprintf("%d Bytes", bytes)
	}
}
