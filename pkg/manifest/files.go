package manifest

import "strings"

// alwaysIncludedPrefixes name files present in every published package regardless of
// the files list.
var alwaysIncludedPrefixes = []string{"package.json", "readme", "license", "licence", "changelog"}

// FileSelection is the parsed form of the "files" field.
type FileSelection struct {
	Patterns       []string
	Negations      []string
	AlwaysIncluded []string
	HasGlobs       bool
	IncludeAll     bool
}

// ParseFiles parses the raw "files" list. A nil/absent value means every
// file is included (IncludeAll=true); an explicit empty list means none of
// the caller's own files are selected beyond the always-included set.
func ParseFiles(value any) FileSelection {
	sel := FileSelection{AlwaysIncluded: append([]string{}, alwaysIncludedPrefixes...)}

	raw, ok := value.([]any)
	if !ok {
		if value == nil {
			sel.IncludeAll = true
			return sel
		}
		if strs, ok := value.([]string); ok {
			for _, s := range strs {
				raw = append(raw, s)
			}
		} else {
			sel.IncludeAll = true
			return sel
		}
	}

	for _, item := range raw {
		s, ok := item.(string)
		if !ok || s == "" {
			continue
		}
		if strings.HasPrefix(s, "!") {
			sel.Negations = append(sel.Negations, strings.TrimPrefix(s, "!"))
			continue
		}
		sel.Patterns = append(sel.Patterns, s)
		if strings.ContainsAny(s, "*?[") {
			sel.HasGlobs = true
		}
	}

	return sel
}

// ValidateFiles warns on suspicious bare-directory patterns and, when main
// is known, whether it falls outside the declared selection.
func ValidateFiles(sel FileSelection, main string) []Diagnostic {
	var warns []Diagnostic

	for _, p := range sel.Patterns {
		trimmed := strings.TrimSuffix(p, "/")
		if trimmed == "src" || trimmed == "lib" {
			warns = append(warns, Diagnostic{
				Field:   "files",
				Code:    CodeSuspiciousIncludePattern,
				Message: "pattern " + p + " includes an entire source directory",
				Value:   p,
			})
		}
	}

	if main != "" && !sel.IncludeAll && !fileReachable(sel, main) {
		warns = append(warns, Diagnostic{
			Field:   "files",
			Code:    CodeMainNotIncluded,
			Message: "main entry point " + main + " is not reachable under the files list",
			Value:   main,
		})
	}

	return warns
}

// fileReachable conservatively reports whether path could be selected by
// sel: an exact match, a prefix-directory match, or any glob pattern present
// (globs aren't expanded here, so their presence is treated as a possible
// match to avoid false positives).
func fileReachable(sel FileSelection, path string) bool {
	path = strings.TrimPrefix(path, "./")
	for _, p := range sel.Patterns {
		clean := strings.TrimPrefix(strings.TrimSuffix(p, "/"), "./")
		if clean == path || strings.HasPrefix(path, clean+"/") {
			return true
		}
		if strings.ContainsAny(p, "*?[") {
			return true
		}
	}
	return false
}
