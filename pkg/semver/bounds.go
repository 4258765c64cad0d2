package semver

// MaxSatisfying returns the highest version in versions that satisfies r, or
// (Version{}, false) if none do.
func MaxSatisfying(versions []Version, r Range, opts Options) (Version, bool) {
	var best Version
	found := false
	for _, v := range versions {
		if !Satisfies(v, r, opts) {
			continue
		}
		if !found || Gt(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

// MinSatisfying returns the lowest version in versions that satisfies r, or
// (Version{}, false) if none do.
func MinSatisfying(versions []Version, r Range, opts Options) (Version, bool) {
	var best Version
	found := false
	for _, v := range versions {
		if !Satisfies(v, r, opts) {
			continue
		}
		if !found || Lt(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

// ValidRange returns the canonical string form of r, or ("", false) if input
// does not parse as a range.
func ValidRange(input string, opts Options) (string, bool) {
	r, ok := ParseRange(input, opts)
	if !ok {
		return "", false
	}
	return r.String(), true
}

// Intersects reports whether any version could satisfy both r1 and r2
// simultaneously, computed by testing each pair of OR-branches' combined
// lower/upper bounds rather than enumerating versions.
func Intersects(r1, r2 Range, opts Options) bool {
	for _, set1 := range r1.all {
		for _, set2 := range r2.all {
			if setsIntersect(set1, set2) {
				return true
			}
		}
	}
	return false
}

// setsIntersect reports whether the conjunction of two comparator sets is
// satisfiable, by folding each into a [lower, upper) interval and checking
// the intervals overlap. Equality comparators collapse a set to a point.
func setsIntersect(a, b []Comparator) bool {
	all := make([]Comparator, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)

	var lower *Version
	lowerInclusive := true
	var upper *Version
	upperInclusive := true
	var exact *Version

	for _, c := range all {
		switch c.Op {
		case OpEq, "":
			v := c.Version
			if exact != nil && !Eq(*exact, v) {
				return false
			}
			exact = &v
		case OpGt:
			if lower == nil || Gt(c.Version, *lower) || (Eq(c.Version, *lower) && lowerInclusive) {
				v := c.Version
				lower = &v
				lowerInclusive = false
			}
		case OpGte:
			if lower == nil || Gt(c.Version, *lower) {
				v := c.Version
				lower = &v
				lowerInclusive = true
			}
		case OpLt:
			if upper == nil || Lt(c.Version, *upper) || (Eq(c.Version, *upper) && upperInclusive) {
				v := c.Version
				upper = &v
				upperInclusive = false
			}
		case OpLte:
			if upper == nil || Lt(c.Version, *upper) {
				v := c.Version
				upper = &v
				upperInclusive = true
			}
		}
	}

	if exact != nil {
		if lower != nil {
			if lowerInclusive && Lt(*exact, *lower) {
				return false
			}
			if !lowerInclusive && Lte(*exact, *lower) {
				return false
			}
		}
		if upper != nil {
			if upperInclusive && Gt(*exact, *upper) {
				return false
			}
			if !upperInclusive && Gte(*exact, *upper) {
				return false
			}
		}
		return true
	}

	if lower == nil || upper == nil {
		return true
	}
	if Lt(*lower, *upper) {
		return true
	}
	if Eq(*lower, *upper) {
		return lowerInclusive && upperInclusive
	}
	return false
}
