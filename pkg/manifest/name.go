package manifest

import (
	"fmt"
	"strings"
)

// coreModules are Node.js builtin identifiers a package name must not shadow.
var coreModules = map[string]bool{
	"assert": true, "buffer": true, "child_process": true, "cluster": true,
	"crypto": true, "dgram": true, "dns": true, "domain": true, "events": true,
	"fs": true, "http": true, "https": true, "net": true, "os": true,
	"path": true, "punycode": true, "querystring": true, "readline": true,
	"stream": true, "string_decoder": true, "tls": true, "tty": true,
	"url": true, "util": true, "v8": true, "vm": true, "zlib": true,
}

var blacklistedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

const maxNameLength = 214

// ValidateName checks a package name against the registry naming rules,
// returning the diagnostics produced, in rule order. An empty result means
// the name is valid.
func ValidateName(name string) []Diagnostic {
	if name == "" {
		return []Diagnostic{errDiag("name", CodeInvalidName, "name is required", name)}
	}

	if scope, local, ok := splitScope(name); ok {
		return validateScopedName(name, scope, local)
	}
	if strings.HasPrefix(name, "@") {
		return []Diagnostic{errDiag("name", CodeNameInvalidScope, "scoped name must be @scope/name", name)}
	}

	return validateUnscopedName(name)
}

// splitScope reports whether name has the @scope/local shape (exactly one
// slash, leading @) and, if so, returns the two parts.
func splitScope(name string) (scope, local string, ok bool) {
	if !strings.HasPrefix(name, "@") {
		return "", "", false
	}
	rest := name[1:]
	idx := strings.Index(rest, "/")
	if idx < 0 {
		return "", "", false
	}
	if strings.Count(rest, "/") != 1 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}

func validateScopedName(full, scope, local string) []Diagnostic {
	if scope == "" || local == "" {
		return []Diagnostic{errDiag("name", CodeNameInvalidScope, "scope and name must both be non-empty", full)}
	}
	if len(full) > maxNameLength {
		return []Diagnostic{errDiag("name", CodeNameTooLong, fmt.Sprintf("name must be %d characters or fewer", maxNameLength), full)}
	}
	if scope != strings.ToLower(scope) {
		return []Diagnostic{errDiag("name", CodeNameInvalidScope, "scope must be lowercase", full)}
	}
	if local != strings.ToLower(local) {
		return []Diagnostic{errDiag("name", CodeNameMustBeLowercase, "name must be lowercase", full)}
	}
	if !validNameChars(scope) || !validNameChars(local) {
		return []Diagnostic{errDiag("name", CodeNameContainsInvalidChars, "name contains invalid characters", full)}
	}
	return nil
}

func validateUnscopedName(name string) []Diagnostic {
	if len(name) > maxNameLength {
		return []Diagnostic{errDiag("name", CodeNameTooLong, fmt.Sprintf("name must be %d characters or fewer", maxNameLength), name)}
	}
	if strings.HasPrefix(name, ".") {
		return []Diagnostic{errDiag("name", CodeNameCannotStartWithDot, "name cannot start with a dot", name)}
	}
	if strings.HasPrefix(name, "_") {
		return []Diagnostic{errDiag("name", CodeNameCannotStartWithUnderscore, "name cannot start with an underscore", name)}
	}
	if name != strings.ToLower(name) {
		return []Diagnostic{errDiag("name", CodeNameMustBeLowercase, "name must be lowercase", name)}
	}
	if strings.ContainsAny(name, " \t\n\r") {
		return []Diagnostic{errDiag("name", CodeNameContainsInvalidChars, "name cannot contain whitespace", name)}
	}
	if strings.Contains(name, "/") {
		return []Diagnostic{errDiag("name", CodeNameURLUnsafe, "unscoped name cannot contain a slash", name)}
	}
	if !validNameChars(name) {
		return []Diagnostic{errDiag("name", CodeNameContainsInvalidChars, "name contains invalid characters", name)}
	}
	if blacklistedNames[name] {
		return []Diagnostic{errDiag("name", CodeNameBlacklisted, fmt.Sprintf("%q is a reserved name", name), name)}
	}
	if coreModules[name] {
		return []Diagnostic{errDiag("name", CodeNameCoreModule, fmt.Sprintf("%q shadows a core module", name), name)}
	}
	return nil
}

// validNameChars reports whether s consists only of lowercase letters,
// digits, dots, underscores, and hyphens.
func validNameChars(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
