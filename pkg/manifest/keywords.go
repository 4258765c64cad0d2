package manifest

import "strings"

const maxKeywordLength = 50

// NormalizeKeywords lowercases, trims, drops empty/non-string entries, and
// de-duplicates while preserving first-seen order. It also returns a
// warning for any keyword exceeding the maximum length (checked before
// lowercasing has any bearing, on the trimmed original form).
func NormalizeKeywords(value any) ([]string, []Diagnostic) {
	raw, ok := value.([]any)
	if !ok {
		if strs, ok := value.([]string); ok {
			raw = make([]any, len(strs))
			for i, s := range strs {
				raw[i] = s
			}
		} else {
			return nil, nil
		}
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	var warns []Diagnostic

	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		trimmed := strings.ToLower(strings.TrimSpace(s))
		if trimmed == "" {
			continue
		}
		if len(trimmed) > maxKeywordLength {
			warns = append(warns, errDiag("keywords", CodeKeywordTooLong, "keyword exceeds the maximum length", s))
		}
		if seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}

	return out, warns
}
