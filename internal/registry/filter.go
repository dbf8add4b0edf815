package registry

import (
	"path"
	"strings"
)

// FilterByName filters cases by a wildcard pattern matched against the
// suite-qualified name. Supports patterns like "HelloTest/*" or "*Basic*";
// a pattern without wildcards matches as a substring.
func FilterByName(cases []Case, pattern string) []Case {
	if pattern == "" {
		return cases
	}

	var filtered []Case
	for _, c := range cases {
		if matchesPattern(c.FullName(), pattern) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func matchesPattern(name, pattern string) bool {
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	// Patterns like "*Basic*" that path.Match rejected against a
	// slash-qualified name fall back to ordered substring matching.
	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		remainder := name
		hasContent := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasContent = true
			index := strings.Index(remainder, part)
			if index < 0 {
				return false
			}
			remainder = remainder[index+len(part):]
		}
		return hasContent
	}

	return strings.Contains(name, pattern)
}
