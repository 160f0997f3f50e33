package strings

import (
	"strings"
)

// DefaultCellMaxLen is the default maximum length for table cells in
// formatted output.
const DefaultCellMaxLen = 60

// MinTruncateLen is the minimum maxLen value for TruncateCell. Values
// smaller than this would not leave room for content plus "...".
const MinTruncateLen = 4

// TruncateCell truncates a string to maxLen characters and ensures
// single-line output: newlines become spaces, runs of whitespace collapse,
// and "..." marks a truncation. Operates on runes so multi-byte characters
// are never cut in half.
func TruncateCell(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
