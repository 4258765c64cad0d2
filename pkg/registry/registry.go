// Package registry implements the registry-facing naming rules that gate how
// a package name becomes a URL path segment or a multi-tenant namespace: no
// ambient I/O, pure string transforms and validations.
package registry

import (
	"regexp"
	"strings"
)

// ScopeCheck is the result of validatePackageNameForRegistry.
type ScopeCheck struct {
	Valid  bool
	Scoped bool
	Scope  string
	Name   string
	Error  string
}

// ValidatePackageNameForRegistry checks that name is shaped correctly for use
// as a registry path segment, without applying the full manifest name rules
// (lowercase, length, blacklist) — those live in pkg/manifest.
func ValidatePackageNameForRegistry(name string) ScopeCheck {
	if name == "" {
		return ScopeCheck{Error: "EMPTY_INPUT"}
	}
	if !strings.HasPrefix(name, "@") {
		return ScopeCheck{Valid: true, Scoped: false, Name: name}
	}
	if strings.HasPrefix(name, "@@") {
		return ScopeCheck{Error: "INVALID_SCOPE_PREFIX"}
	}

	rest := name[1:]
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return ScopeCheck{Error: "MISSING_SLASH"}
	}
	if strings.IndexByte(rest[slash+1:], '/') >= 0 {
		return ScopeCheck{Error: "MULTIPLE_SLASHES"}
	}

	scope := rest[:slash]
	pkgName := rest[slash+1:]
	if scope == "" {
		return ScopeCheck{Error: "EMPTY_SCOPE"}
	}
	if pkgName == "" {
		return ScopeCheck{Error: "EMPTY_NAME"}
	}

	return ScopeCheck{Valid: true, Scoped: true, Scope: scope, Name: pkgName}
}

// EncodePackageName URL-encodes a scoped name's "/" separator (e.g.
// "@types/node" -> "@types%2Fnode") so it can appear as a single registry
// URL path segment. Unscoped names pass through unchanged.
func EncodePackageName(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	check := ValidatePackageNameForRegistry(name)
	if !check.Valid {
		return "", false
	}
	if !check.Scoped {
		return name, true
	}
	return "@" + check.Scope + "%2F" + check.Name, true
}

var namespaceRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateNamespace reports whether value is safe to use as a multi-tenant
// routing path segment: 1-64 characters drawn strictly from
// [A-Za-z0-9_-]. Anything else — path separators, dots, whitespace, control
// bytes, Unicode — is rejected.
func ValidateNamespace(value string) bool {
	return namespaceRe.MatchString(value)
}
