package tracker

import "strings"

// SanitizeWeight strips everything but digits and the first decimal point.
// Nothing is rejected and no range is checked.
func SanitizeWeight(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeReps strips everything but digits.
func SanitizeReps(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
