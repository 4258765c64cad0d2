// Package semver implements an npm (node-semver) compatible semantic
// version parser, comparator, and range engine. It has no ambient I/O: every
// operation is a pure function of its input and the Options it is given.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Options configures parsing and range behavior. The zero value is strict,
// prerelease-excluding, npm-default behavior.
type Options struct {
	// Loose relaxes the strict grammar: permits a leading "v"/"="/whitespace,
	// trailing whitespace, and leading zeros in numeric components.
	Loose bool
	// IncludePrerelease makes range satisfaction ignore the "same
	// major.minor.patch" gate normally applied to prerelease versions.
	IncludePrerelease bool
}

// Identifier is a single dot-separated segment of a prerelease or build
// metadata sequence. Exactly one of IsNumeric's two representations is
// meaningful: when IsNumeric is true, Num holds the parsed value; otherwise
// Str holds the original text.
type Identifier struct {
	Str       string
	Num       uint64
	IsNumeric bool
}

func (id Identifier) String() string {
	if id.IsNumeric {
		return strconv.FormatUint(id.Num, 10)
	}
	return id.Str
}

// Version is an immutable parsed semantic version. Construct one with Parse,
// New, or Coerce; Inc returns a new Version rather than mutating receivers
// shared elsewhere, but callers should still treat a Version as read-only to
// honor the documented immutability contract.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64

	Prerelease []Identifier
	Build      []Identifier

	// Raw is the exact original input string, preserved verbatim including
	// any "v" prefix stripped from the canonical form. Error messages in
	// higher layers rely on this being untouched.
	Raw string
}

// strictCoreRe matches a major.minor.patch core without leading zeros,
// looseCoreRe one that allows them, and identBodyRe a single prerelease or
// build identifier body.
var (
	strictCoreRe = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)
	looseCoreRe  = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
	identBodyRe  = regexp.MustCompile(`^[0-9A-Za-z-]+$`)
)

// Parse parses input as a semantic version under the given Options. Unlike
// New, it never fails loudly: malformed input yields (Version{}, false).
func Parse(input string, opts Options) (Version, bool) {
	raw := input
	s := input

	if opts.Loose {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "=")
		s = strings.TrimPrefix(s, "v")
		s = strings.TrimPrefix(s, "V")
		s = strings.TrimSpace(s)
	}

	core := s
	var prereleasePart, buildPart string
	hasPrerelease, hasBuild := false, false

	if i := strings.IndexByte(core, '+'); i >= 0 {
		buildPart = core[i+1:]
		core = core[:i]
		hasBuild = true
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		prereleasePart = core[i+1:]
		core = core[:i]
		hasPrerelease = true
	}

	coreRe := strictCoreRe
	if opts.Loose {
		coreRe = looseCoreRe
	}
	m := coreRe.FindStringSubmatch(core)
	if m == nil {
		return Version{}, false
	}

	major, okM := parseUintComponent(m[1], opts.Loose)
	minor, okN := parseUintComponent(m[2], opts.Loose)
	patch, okP := parseUintComponent(m[3], opts.Loose)
	if !okM || !okN || !okP {
		return Version{}, false
	}

	var prerelease []Identifier
	if hasPrerelease {
		if prereleasePart == "" {
			return Version{}, false
		}
		ids, ok := parsePrereleaseIdentifiers(prereleasePart, opts.Loose)
		if !ok {
			return Version{}, false
		}
		prerelease = ids
	}

	var build []Identifier
	if hasBuild {
		if buildPart == "" {
			return Version{}, false
		}
		ids, ok := parseBuildIdentifiers(buildPart)
		if !ok {
			return Version{}, false
		}
		build = ids
	}

	return Version{
		Major:      major,
		Minor:      minor,
		Patch:      patch,
		Prerelease: prerelease,
		Build:      build,
		Raw:        raw,
	}, true
}

func parseUintComponent(s string, loose bool) (uint64, bool) {
	if !loose && len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parsePrereleaseIdentifiers(s string, loose bool) ([]Identifier, bool) {
	parts := strings.Split(s, ".")
	ids := make([]Identifier, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
		if isAllDigits(p) {
			if !loose && len(p) > 1 && p[0] == '0' {
				return nil, false
			}
			n, err := strconv.ParseUint(p, 10, 64)
			if err != nil {
				return nil, false
			}
			ids = append(ids, Identifier{Num: n, IsNumeric: true})
			continue
		}
		if !identBodyRe.MatchString(p) {
			return nil, false
		}
		ids = append(ids, Identifier{Str: p})
	}
	return ids, true
}

func parseBuildIdentifiers(s string) ([]Identifier, bool) {
	parts := strings.Split(s, ".")
	ids := make([]Identifier, 0, len(parts))
	for _, p := range parts {
		if p == "" || !identBodyRe.MatchString(p) {
			return nil, false
		}
		ids = append(ids, Identifier{Str: p})
	}
	return ids, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// New parses input as a semantic version, returning a ParseError on failure.
// Use Parse when a sentinel (ok bool) is preferred over an error value.
func New(input string, opts Options) (Version, error) {
	v, ok := Parse(input, opts)
	if !ok {
		return Version{}, &ParseError{Input: input}
	}
	return v, nil
}

// Valid returns the canonical version string for input, or ("", false) if it
// does not parse.
func Valid(input string, opts Options) (string, bool) {
	v, ok := Parse(input, opts)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Clean trims outer whitespace and a leading "="/"v", then parses in strict
// mode.
func Clean(input string, opts Options) (string, bool) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "=")
	s = strings.TrimPrefix(s, "v")
	s = strings.TrimPrefix(s, "V")
	s = strings.TrimSpace(s)
	v, ok := Parse(s, Options{Loose: false})
	if !ok {
		return "", false
	}
	return v.String(), true
}

// String reconstructs the canonical version string from the structured
// fields, independent of how Raw was formatted.
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		writeIdentifiers(&b, v.Prerelease)
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		writeIdentifiers(&b, v.Build)
	}
	return b.String()
}

func writeIdentifiers(b *strings.Builder, ids []Identifier) {
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(id.String())
	}
}

// IsPrerelease reports whether v carries a non-empty prerelease sequence.
func (v Version) IsPrerelease() bool {
	return len(v.Prerelease) > 0
}
