package semver

import (
	"regexp"
	"strings"
)

// Range is a parsed npm-style version range: a disjunction ("||") of
// comparator sets, each set itself a conjunction of Comparators. Tildes,
// carets, X-ranges, and hyphen ranges are all expanded into plain comparator
// sets at parse time, so downstream matching only ever deals with Comparator.
type Range struct {
	all [][]Comparator
	Raw string
}

// Sets returns the OR-list of AND-comparator-sets this range expands to.
func (r Range) Sets() [][]Comparator {
	return r.all
}

func (r Range) String() string {
	parts := make([]string, len(r.all))
	for i, set := range r.all {
		toks := make([]string, len(set))
		for j, c := range set {
			toks[j] = c.String()
		}
		parts[i] = strings.Join(toks, " ")
	}
	return strings.Join(parts, " || ")
}

var orSplitRe = regexp.MustCompile(`\s*\|\|\s*`)

// ParseRange parses an npm range expression into a Range. An empty string or
// "*" means "any version".
func ParseRange(input string, opts Options) (Range, bool) {
	raw := input
	s := strings.TrimSpace(input)

	parts := orSplitRe.Split(s, -1)
	all := make([][]Comparator, 0, len(parts))
	for _, part := range parts {
		set, ok := parseComparatorSet(part, opts)
		if !ok {
			return Range{}, false
		}
		all = append(all, set)
	}
	if len(all) == 0 {
		return Range{}, false
	}
	return Range{all: all, Raw: raw}, true
}

func anyVersionSet() []Comparator {
	return []Comparator{{Op: OpGte, Version: Version{}}}
}

func parseComparatorSet(s string, opts Options) ([]Comparator, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" || s == "x" || s == "X" {
		return anyVersionSet(), true
	}

	if set, ok := tryHyphenRange(s, opts); ok {
		return set, true
	}

	tokens := strings.Fields(s)
	var result []Comparator
	for _, tok := range tokens {
		cmps, ok := parseToken(tok, opts)
		if !ok {
			return nil, false
		}
		result = append(result, cmps...)
	}
	if len(result) == 0 {
		return nil, false
	}
	return result, true
}

func parseToken(tok string, opts Options) ([]Comparator, bool) {
	switch {
	case strings.HasPrefix(tok, "^"):
		p, ok := parsePartial(tok[1:], opts)
		if !ok {
			return nil, false
		}
		return expandCaret(p), true
	case strings.HasPrefix(tok, "~>"):
		p, ok := parsePartial(tok[2:], opts)
		if !ok {
			return nil, false
		}
		return expandTilde(p), true
	case strings.HasPrefix(tok, "~"):
		p, ok := parsePartial(tok[1:], opts)
		if !ok {
			return nil, false
		}
		return expandTilde(p), true
	default:
		op, hasOp, rest := splitOperator(tok)
		rest = strings.TrimPrefix(rest, "v")
		rest = strings.TrimPrefix(rest, "V")
		p, ok := parsePartial(rest, opts)
		if !ok {
			return nil, false
		}
		return expandXRange(op, hasOp, p), true
	}
}

var comparatorPrefixes = []Op{OpLte, OpGte, OpLt, OpGt, OpNeq, OpEq}

func splitOperator(tok string) (Op, bool, string) {
	for _, op := range comparatorPrefixes {
		if strings.HasPrefix(tok, string(op)) {
			return op, true, strings.TrimSpace(tok[len(op):])
		}
	}
	return OpEq, false, tok
}

// partialVersion is a major[.minor[.patch]] specifier in which any component
// may be a wildcard ("x", "X", "*", or omitted); -1 marks a wildcard.
type partialVersion struct {
	major, minor, patch int64
	pre                 []Identifier
	hasPre              bool
}

var partialRe = regexp.MustCompile(`^(x|X|\*|\d+)(?:\.(x|X|\*|\d+))?(?:\.(x|X|\*|\d+))?(?:-([0-9A-Za-z-.]+))?(?:\+[0-9A-Za-z-.]+)?$`)

func parsePartial(s string, opts Options) (partialVersion, bool) {
	s = strings.TrimSpace(s)
	m := partialRe.FindStringSubmatch(s)
	if m == nil {
		return partialVersion{}, false
	}

	major, ok := partialComponent(m[1], opts.Loose)
	if !ok {
		return partialVersion{}, false
	}
	minor, ok := partialComponent(m[2], opts.Loose)
	if !ok {
		return partialVersion{}, false
	}
	patch, ok := partialComponent(m[3], opts.Loose)
	if !ok {
		return partialVersion{}, false
	}

	p := partialVersion{major: major, minor: minor, patch: patch}
	if m[4] != "" {
		ids, ok := parsePrereleaseIdentifiers(m[4], opts.Loose)
		if !ok {
			return partialVersion{}, false
		}
		p.pre = ids
		p.hasPre = true
	}
	return p, true
}

func partialComponent(s string, loose bool) (int64, bool) {
	if s == "" || s == "x" || s == "X" || s == "*" {
		return -1, true
	}
	n, ok := parseUintComponent(s, loose)
	if !ok {
		return 0, false
	}
	return int64(n), true
}

func isWildcard(n int64) bool { return n < 0 }

// placeholderPrerelease is the "-0" identifier used as an exclusive upper
// bound so that "<1.3.0" excludes every 1.3.0 prerelease too.
func placeholderPrerelease() []Identifier {
	return []Identifier{{Num: 0, IsNumeric: true}}
}

// ltWithPlaceholder builds a "<v-0" comparator: every exclusive upper bound
// synthesized from an X-range, tilde, caret, or partial hyphen range carries
// the placeholder so prereleases of the boundary version are excluded too.
func ltWithPlaceholder(v Version) Comparator {
	v.Prerelease = placeholderPrerelease()
	return Comparator{Op: OpLt, Version: v}
}

func expandXRange(op Op, hasOp bool, p partialVersion) []Comparator {
	major, minor, patch := p.major, p.minor, p.patch

	xM := isWildcard(major)
	xm := isWildcard(minor) || xM
	xp := isWildcard(patch) || xm
	anyX := xp

	if hasOp && op == OpEq && anyX {
		hasOp = false
	}

	if hasOp && anyX {
		if xm {
			minor = 0
		}
		patch = 0
		switch op {
		case OpGt:
			op = OpGte
			if xm {
				major++
				minor = 0
			} else {
				minor++
			}
			patch = 0
		case OpLte:
			op = OpLt
			if xm {
				major++
			} else {
				minor++
			}
		}
		v := Version{Major: u64(major), Minor: u64(minor), Patch: u64(patch)}
		if op == OpLt {
			v.Prerelease = placeholderPrerelease()
		}
		return []Comparator{{Op: op, Version: v}}
	}

	switch {
	case xM:
		return anyVersionSet()
	case xm:
		return []Comparator{
			{Op: OpGte, Version: Version{Major: u64(major)}},
			ltWithPlaceholder(Version{Major: u64(major) + 1}),
		}
	case xp:
		return []Comparator{
			{Op: OpGte, Version: Version{Major: u64(major), Minor: u64(minor)}},
			ltWithPlaceholder(Version{Major: u64(major), Minor: u64(minor) + 1}),
		}
	default:
		v := Version{Major: u64(major), Minor: u64(minor), Patch: u64(patch)}
		if p.hasPre {
			v.Prerelease = p.pre
		}
		usedOp := OpEq
		if hasOp {
			usedOp = op
		}
		return []Comparator{{Op: usedOp, Version: v}}
	}
}

func expandCaret(p partialVersion) []Comparator {
	major, minor, patch := p.major, p.minor, p.patch

	if isWildcard(major) {
		return anyVersionSet()
	}
	if isWildcard(minor) {
		return []Comparator{
			{Op: OpGte, Version: Version{Major: u64(major)}},
			ltWithPlaceholder(Version{Major: u64(major) + 1}),
		}
	}
	if isWildcard(patch) {
		if major == 0 {
			return []Comparator{
				{Op: OpGte, Version: Version{Major: u64(major), Minor: u64(minor)}},
				ltWithPlaceholder(Version{Major: u64(major), Minor: u64(minor) + 1}),
			}
		}
		return []Comparator{
			{Op: OpGte, Version: Version{Major: u64(major), Minor: u64(minor)}},
			ltWithPlaceholder(Version{Major: u64(major) + 1}),
		}
	}

	lower := Version{Major: u64(major), Minor: u64(minor), Patch: u64(patch)}
	if p.hasPre {
		lower.Prerelease = p.pre
	}

	var upper Version
	switch {
	case major == 0 && minor == 0:
		upper = Version{Major: 0, Minor: 0, Patch: u64(patch) + 1}
	case major == 0:
		upper = Version{Major: 0, Minor: u64(minor) + 1}
	default:
		upper = Version{Major: u64(major) + 1}
	}
	return []Comparator{
		{Op: OpGte, Version: lower},
		ltWithPlaceholder(upper),
	}
}

func expandTilde(p partialVersion) []Comparator {
	major, minor, patch := p.major, p.minor, p.patch

	if isWildcard(major) {
		return anyVersionSet()
	}
	if isWildcard(minor) {
		return []Comparator{
			{Op: OpGte, Version: Version{Major: u64(major)}},
			ltWithPlaceholder(Version{Major: u64(major) + 1}),
		}
	}
	if isWildcard(patch) {
		return []Comparator{
			{Op: OpGte, Version: Version{Major: u64(major), Minor: u64(minor)}},
			ltWithPlaceholder(Version{Major: u64(major), Minor: u64(minor) + 1}),
		}
	}

	lower := Version{Major: u64(major), Minor: u64(minor), Patch: u64(patch)}
	if p.hasPre {
		lower.Prerelease = p.pre
	}
	upper := Version{Major: u64(major), Minor: u64(minor) + 1}
	return []Comparator{
		{Op: OpGte, Version: lower},
		ltWithPlaceholder(upper),
	}
}

var hyphenRe = regexp.MustCompile(`^\s*(x|X|\*|\d+)(?:\.(x|X|\*|\d+))?(?:\.(x|X|\*|\d+))?(?:-([0-9A-Za-z-.]+))?\s+-\s+(x|X|\*|\d+)(?:\.(x|X|\*|\d+))?(?:\.(x|X|\*|\d+))?(?:-([0-9A-Za-z-.]+))?\s*$`)

func tryHyphenRange(s string, opts Options) ([]Comparator, bool) {
	m := hyphenRe.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}

	fM, ok := partialComponent(m[1], opts.Loose)
	if !ok {
		return nil, false
	}
	fm, ok := partialComponent(m[2], opts.Loose)
	if !ok {
		return nil, false
	}
	fp, ok := partialComponent(m[3], opts.Loose)
	if !ok {
		return nil, false
	}
	var fpre []Identifier
	if m[4] != "" {
		fpre, ok = parsePrereleaseIdentifiers(m[4], opts.Loose)
		if !ok {
			return nil, false
		}
	}

	tM, ok := partialComponent(m[5], opts.Loose)
	if !ok {
		return nil, false
	}
	tm, ok := partialComponent(m[6], opts.Loose)
	if !ok {
		return nil, false
	}
	tp, ok := partialComponent(m[7], opts.Loose)
	if !ok {
		return nil, false
	}
	var tpre []Identifier
	if m[8] != "" {
		tpre, ok = parsePrereleaseIdentifiers(m[8], opts.Loose)
		if !ok {
			return nil, false
		}
	}

	var set []Comparator

	switch {
	case isWildcard(fM):
		// no lower bound
	case isWildcard(fm):
		set = append(set, Comparator{Op: OpGte, Version: Version{Major: u64(fM)}})
	case isWildcard(fp):
		set = append(set, Comparator{Op: OpGte, Version: Version{Major: u64(fM), Minor: u64(fm)}})
	default:
		v := Version{Major: u64(fM), Minor: u64(fm), Patch: u64(fp)}
		if fpre != nil {
			v.Prerelease = fpre
		}
		set = append(set, Comparator{Op: OpGte, Version: v})
	}

	switch {
	case isWildcard(tM):
		// no upper bound
	case isWildcard(tm):
		set = append(set, ltWithPlaceholder(Version{Major: u64(tM) + 1}))
	case isWildcard(tp):
		set = append(set, ltWithPlaceholder(Version{Major: u64(tM), Minor: u64(tm) + 1}))
	case tpre != nil:
		v := Version{Major: u64(tM), Minor: u64(tm), Patch: u64(tp), Prerelease: tpre}
		set = append(set, Comparator{Op: OpLte, Version: v})
	default:
		v := Version{Major: u64(tM), Minor: u64(tm), Patch: u64(tp)}
		set = append(set, Comparator{Op: OpLte, Version: v})
	}

	if len(set) == 0 {
		set = anyVersionSet()
	}
	return set, true
}

func u64(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
