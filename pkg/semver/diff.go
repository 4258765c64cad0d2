package semver

// DiffType names the kind of change between two versions, mirroring the
// ReleaseType vocabulary plus "" for identical versions (ignoring build
// metadata). DiffMiss ("miss") is part of the vocabulary, but Diff never
// returns it.
type DiffType string

const (
	DiffNone       DiffType = ""
	DiffMajor      DiffType = "major"
	DiffMinor      DiffType = "minor"
	DiffPatch      DiffType = "patch"
	DiffPremajor   DiffType = "premajor"
	DiffPreminor   DiffType = "preminor"
	DiffPrepatch   DiffType = "prepatch"
	DiffPrerelease DiffType = "prerelease"
	DiffMiss       DiffType = "miss"
)

// Diff classifies the change from a to b. The pair is order-independent: it
// describes the magnitude of difference, not a direction.
func Diff(a, b Version) DiffType {
	aPre := len(a.Prerelease) > 0
	bPre := len(b.Prerelease) > 0

	if a.Major != b.Major {
		if aPre || bPre {
			return DiffPremajor
		}
		return DiffMajor
	}
	if a.Minor != b.Minor {
		if aPre || bPre {
			return DiffPreminor
		}
		return DiffMinor
	}
	if a.Patch != b.Patch {
		if aPre || bPre {
			return DiffPrepatch
		}
		return DiffPatch
	}
	if aPre != bPre || comparePrerelease(a.Prerelease, b.Prerelease) != 0 {
		return DiffPrerelease
	}
	return DiffNone
}
