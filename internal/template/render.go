package template

import "regexp"

// varPattern matches {{TOKEN}} placeholders for template expansion.
// A token is an alphanumeric-and-underscore identifier enclosed in double
// braces; matching is case-sensitive and exact.
// This is a package-level compiled regex for performance (immutable after init).
var varPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes placeholder tokens in a template with provided values.
//
// Render is a total function: known tokens are replaced with their value,
// unknown tokens are replaced with the empty string, and no input can make it
// fail. Replacement is global (every occurrence of every key) and single-pass:
// substituted values are never re-scanned for further placeholders, so a value
// containing {{SOMETHING}} cannot trigger recursive expansion.
func Render(tmpl string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-2]
		return vars[name]
	})
}

// UnresolvedTokens returns the placeholder token names remaining in s, in
// order of first appearance with duplicates removed. The validator uses this
// to reject epic definitions that still carry {{TOKEN}} markers.
func UnresolvedTokens(s string) []string {
	matches := varPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}
