package utils

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes converts a byte count into a human-readable size string
// using 1024-based scaling, e.g. 1536 -> "1.5KB". Negative values yield
// "Unknown" rather than an error.
func FormatBytes(n int64) string {
	if n < 0 {
		return "Unknown"
	}

	size := float64(n)
	i := 0
	for size >= 1024 && i < len(byteUnits)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f%s", size, byteUnits[i])
}

// FormatBytesPtr renders an optional byte count, mapping nil to "Unknown".
func FormatBytesPtr(n *int64) string {
	if n == nil {
		return "Unknown"
	}
	return FormatBytes(*n)
}
