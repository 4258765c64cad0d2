package security

import (
	"regexp"
	"strings"
)

// compilePattern turns a shell-glob pattern (the only wildcard is "*",
// matching any run of characters; every other regex metacharacter is
// quoted literally) into a fully-anchored matcher.
func compilePattern(pattern string) *regexp.Regexp {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")
}

func anyMatch(patterns []string, name string) bool {
	for _, p := range patterns {
		if compilePattern(p).MatchString(name) {
			return true
		}
	}
	return false
}
