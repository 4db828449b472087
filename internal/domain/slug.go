package domain

import "strings"

// Slugify lowercases s and collapses every run of non-alphanumeric characters
// into a single dash, trimming dashes from both ends. Archive entry names
// derived from author-provided identifiers pass through this so they stay
// filesystem-safe on extraction.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
