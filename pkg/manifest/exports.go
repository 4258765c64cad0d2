package manifest

import (
	"strings"

	"github.com/tuckertucker/tkr-pkgcore/pkg/semver"
)

// ResolveOptions configures ResolveEntryPoint.
type ResolveOptions struct {
	Type PackageType
	// Subpath is the import path requested, e.g. "." or "./feature". Empty
	// defaults to ".".
	Subpath string
	// Conditions lists export conditions in priority order, e.g.
	// ["node", "import"]. "import"/"require" are implied by Type when not
	// already present.
	Conditions []string
	// ResolveTypes additionally resolves the "types" field/typesVersions.
	ResolveTypes bool
	// TSVersion is the TypeScript version string used to pick a typesVersions
	// range when ResolveTypes is set.
	TSVersion string
}

// ResolveResult is the outcome of entry-point resolution.
type ResolveResult struct {
	Found      bool
	Restricted bool
	Resolved   string
	Types      string
}

// ResolveEntryPoint resolves a subpath import against a manifest's exports
// map (when present) or the legacy main/module fallback, and optionally its
// published types.
func ResolveEntryPoint(m *Manifest, opts ResolveOptions) ResolveResult {
	subpath := opts.Subpath
	if subpath == "" {
		subpath = "."
	}

	conditions := effectiveConditions(opts.Type, opts.Conditions)

	var res ResolveResult
	if m.Exports != nil {
		res = resolveExports(m.Exports, subpath, conditions)
	} else {
		res = resolveLegacyMain(m, opts.Type, subpath)
	}

	if opts.ResolveTypes && res.Found && !res.Restricted {
		res.Types = resolveTypes(m, opts.TSVersion)
	}

	return res
}

// effectiveConditions appends the type-implied module condition
// ("import" for ESM, "require" for CommonJS) if not already present, then
// "default" as the universal catch-all.
func effectiveConditions(pkgType PackageType, conditions []string) []string {
	out := append([]string{}, conditions...)
	implied := "require"
	if pkgType == TypeModule {
		implied = "import"
	}
	if !containsString(out, implied) {
		out = append(out, implied)
	}
	if !containsString(out, "default") {
		out = append(out, "default")
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// resolveExports resolves subpath against the manifest's "exports" value.
func resolveExports(exports any, subpath string, conditions []string) ResolveResult {
	switch v := exports.(type) {
	case string:
		if subpath != "." {
			return ResolveResult{Found: false}
		}
		return ResolveResult{Found: true, Resolved: v}
	case nil:
		return ResolveResult{Found: false, Restricted: true}
	case *OrderedMap:
		if isConditionMap(v) {
			if subpath != "." {
				return ResolveResult{Found: false}
			}
			return resolveConditional(v, conditions)
		}
		return resolveSubpathMap(v, subpath, conditions)
	default:
		return ResolveResult{Found: false}
	}
}

// isConditionMap reports whether an OrderedMap's keys are condition names
// (no leading ".") rather than subpath patterns.
func isConditionMap(m *OrderedMap) bool {
	for _, k := range m.Keys() {
		if strings.HasPrefix(k, ".") {
			return false
		}
	}
	return len(m.Keys()) > 0
}

// resolveSubpathMap walks a subpath-keyed exports map, supporting a single
// "*" wildcard substitution per pattern.
func resolveSubpathMap(m *OrderedMap, subpath string, conditions []string) ResolveResult {
	if v, ok := m.Get(subpath); ok {
		return resolveTarget(v, conditions)
	}

	var bestKey string
	var bestMatch string
	for _, key := range m.Keys() {
		idx := strings.Index(key, "*")
		if idx < 0 {
			continue
		}
		prefix, suffix := key[:idx], key[idx+1:]
		if strings.HasPrefix(subpath, prefix) && strings.HasSuffix(subpath, suffix) &&
			len(subpath) >= len(prefix)+len(suffix) {
			match := subpath[len(prefix) : len(subpath)-len(suffix)]
			if bestKey == "" || len(key) > len(bestKey) {
				bestKey, bestMatch = key, match
			}
		}
	}
	if bestKey == "" {
		return ResolveResult{Found: false}
	}
	v, _ := m.Get(bestKey)
	res := resolveTarget(v, conditions)
	if res.Found {
		res.Resolved = strings.Replace(res.Resolved, "*", bestMatch, 1)
	}
	return res
}

// resolveTarget resolves a single exports map value, which may itself be a
// nested conditional map, a string, or an explicit null (restricted).
func resolveTarget(v any, conditions []string) ResolveResult {
	switch t := v.(type) {
	case nil:
		return ResolveResult{Found: false, Restricted: true}
	case string:
		return ResolveResult{Found: true, Resolved: t}
	case *OrderedMap:
		return resolveConditional(t, conditions)
	default:
		return ResolveResult{Found: false}
	}
}

// resolveConditional walks a conditional exports map in the caller's
// condition priority order, falling through to "default".
func resolveConditional(m *OrderedMap, conditions []string) ResolveResult {
	for _, cond := range conditions {
		if v, ok := m.Get(cond); ok {
			return resolveTarget(v, conditions)
		}
	}
	return ResolveResult{Found: false}
}

// resolveLegacyMain implements the exports-absent fallback: module-type
// manifests prefer "module" then "main"; commonjs prefers "main" then
// "module"; otherwise "./index.js".
func resolveLegacyMain(m *Manifest, pkgType PackageType, subpath string) ResolveResult {
	if subpath != "." {
		return ResolveResult{Found: false}
	}
	order := []string{"main", "module"}
	if pkgType == TypeModule {
		order = []string{"module", "main"}
	}
	for _, field := range order {
		var v string
		switch field {
		case "main":
			v = m.Main
		case "module":
			v = m.Module
		}
		if v != "" {
			return ResolveResult{Found: true, Resolved: v}
		}
	}
	return ResolveResult{Found: true, Resolved: "./index.js"}
}

// resolveTypes resolves the published "types" field, consulting
// typesVersions for the first range key (in declared order) that is
// satisfied by tsVersion.
func resolveTypes(m *Manifest, tsVersion string) string {
	if m.TypesVersions != nil && tsVersion != "" {
		if v, ok := semver.Parse(tsVersion, semver.Options{Loose: true}); ok {
			for _, rangeKey := range m.TypesVersions.Keys() {
				r, ok := semver.ParseRange(rangeKey, semver.Options{})
				if !ok {
					continue
				}
				if semver.Satisfies(v, r, semver.Options{}) {
					mapping, _ := m.TypesVersions.Get(rangeKey)
					if resolved, ok := typesVersionsEntryFor(mapping); ok {
						return resolved
					}
				}
			}
		}
	}

	if m.Types != "" {
		return m.Types
	}
	return m.Typings
}

// typesVersionsEntryFor extracts the "*" mapping's first target from a
// typesVersions range entry, e.g. {"*": ["types/*.d.ts"]}.
func typesVersionsEntryFor(mapping any) (string, bool) {
	om, ok := mapping.(*OrderedMap)
	if !ok {
		return "", false
	}
	v, ok := om.Get("*")
	if !ok {
		return "", false
	}
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return "", false
	}
	s, ok := list[0].(string)
	return s, ok
}
