package utils

import "strings"

// Truncate shortens s to at most max characters, appending a marker when
// anything was cut off.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n... (truncated)"
}

// DigitsOnly returns the concatenation of all decimal digits in s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
