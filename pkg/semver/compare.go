package semver

import "sort"

// Compare returns -1, 0, or 1 depending on whether a is less than, equal to,
// or greater than b, following semver precedence: major.minor.patch compare
// numerically, then a version with a prerelease is lower than one without,
// and prerelease sequences compare identifier-by-identifier. Build metadata
// never participates.
func Compare(a, b Version) int {
	if c := compareUint(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareUint(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareUint(a.Patch, b.Patch); c != 0 {
		return c
	}
	return comparePrerelease(a.Prerelease, b.Prerelease)
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease implements the semver.org precedence rule: no prerelease
// outranks any prerelease; otherwise identifiers compare pairwise (numeric <
// alphanumeric, numeric-vs-numeric by value, alphanumeric-vs-alphanumeric by
// ASCII order), and a prefix sequence is lower than a longer one that shares
// its prefix.
func comparePrerelease(a, b []Identifier) int {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 {
		return 1
	}
	if len(b) == 0 {
		return -1
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareUint(uint64(len(a)), uint64(len(b)))
}

func compareIdentifier(a, b Identifier) int {
	switch {
	case a.IsNumeric && b.IsNumeric:
		return compareUint(a.Num, b.Num)
	case a.IsNumeric && !b.IsNumeric:
		return -1
	case !a.IsNumeric && b.IsNumeric:
		return 1
	default:
		switch {
		case a.Str < b.Str:
			return -1
		case a.Str > b.Str:
			return 1
		default:
			return 0
		}
	}
}

// CompareBuild compares a and b the way Compare does, then breaks ties with
// build metadata (ASCII identifier-by-identifier, shorter-prefix-is-lower) so
// that otherwise-equal versions still sort deterministically.
func CompareBuild(a, b Version) int {
	if c := Compare(a, b); c != 0 {
		return c
	}
	if len(a.Build) == 0 || len(b.Build) == 0 {
		return compareUint(uint64(len(a.Build)), uint64(len(b.Build)))
	}
	return comparePrerelease(a.Build, b.Build)
}

// Lt, Gt, Eq, Neq, Lte, and Gte are convenience wrappers over Compare.
func Lt(a, b Version) bool  { return Compare(a, b) < 0 }
func Gt(a, b Version) bool  { return Compare(a, b) > 0 }
func Eq(a, b Version) bool  { return Compare(a, b) == 0 }
func Neq(a, b Version) bool { return Compare(a, b) != 0 }
func Lte(a, b Version) bool { return Compare(a, b) <= 0 }
func Gte(a, b Version) bool { return Compare(a, b) >= 0 }

// Rcompare is Compare with its arguments' result negated, i.e. Compare(b, a).
func Rcompare(a, b Version) int {
	return Compare(b, a)
}

// Sort sorts versions in ascending order in place.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
}

// Rsort sorts versions in descending order in place.
func Rsort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) > 0
	})
}
