package semver

// ReleaseType names an increment operation.
type ReleaseType string

const (
	ReleaseMajor      ReleaseType = "major"
	ReleaseMinor      ReleaseType = "minor"
	ReleasePatch      ReleaseType = "patch"
	ReleasePremajor   ReleaseType = "premajor"
	ReleasePreminor   ReleaseType = "preminor"
	ReleasePrepatch   ReleaseType = "prepatch"
	ReleasePrerelease ReleaseType = "prerelease"
)

// Inc returns a new Version produced by applying release to v. identifier,
// when non-empty, seeds or preserves a named prerelease track (e.g. "beta"
// produces "-beta.0", "-beta.1", ...) across the pre* release types and
// "prerelease". identifierBase controls the numeric seed for a freshly
// created track: it seeds at 0, unless identifierBase is the literal string
// "false", in which case it seeds at 1. Build metadata is always dropped,
// matching npm's behavior that a fresh release carries no leftover build tag.
func Inc(v Version, release ReleaseType, identifier string, identifierBase string) (Version, bool) {
	out := v
	out.Build = nil

	switch release {
	case ReleaseMajor:
		if out.Minor != 0 || out.Patch != 0 || len(out.Prerelease) == 0 {
			out.Major++
		}
		out.Minor = 0
		out.Patch = 0
		out.Prerelease = nil
	case ReleaseMinor:
		if out.Patch != 0 || len(out.Prerelease) == 0 {
			out.Minor++
		}
		out.Patch = 0
		out.Prerelease = nil
	case ReleasePatch:
		if len(out.Prerelease) == 0 {
			out.Patch++
		}
		out.Prerelease = nil
	case ReleasePremajor:
		out.Prerelease = nil
		out.Patch = 0
		out.Minor = 0
		out.Major++
		out.Prerelease = seedPrerelease(nil, identifier, identifierBase)
	case ReleasePreminor:
		out.Prerelease = nil
		out.Patch = 0
		out.Minor++
		out.Prerelease = seedPrerelease(nil, identifier, identifierBase)
	case ReleasePrepatch:
		out.Prerelease = nil
		out.Patch++
		out.Prerelease = seedPrerelease(nil, identifier, identifierBase)
	case ReleasePrerelease:
		if len(out.Prerelease) == 0 {
			out.Patch++
		}
		out.Prerelease = bumpPrerelease(out.Prerelease, identifier, identifierBase)
	default:
		return Version{}, false
	}

	out.Raw = out.String()
	return out, true
}

func seedPrerelease(existing []Identifier, identifier string, identifierBase string) []Identifier {
	return bumpPrerelease(existing, identifier, identifierBase)
}

// bumpPrerelease implements npm's "pre" increment: it bumps the rightmost
// numeric identifier if one exists, otherwise appends a 0; when identifier is
// given, it additionally anchors the sequence to that named track, seeded at
// 0 unless identifierBase is the literal string "false", which seeds at 1.
func bumpPrerelease(prerelease []Identifier, identifier string, identifierBase string) []Identifier {
	ids := append([]Identifier(nil), prerelease...)

	bumped := false
	if len(ids) == 0 {
		ids = []Identifier{{Num: 0, IsNumeric: true}}
		bumped = true
	} else {
		for i := len(ids) - 1; i >= 0; i-- {
			if ids[i].IsNumeric {
				ids[i].Num++
				bumped = true
				break
			}
		}
		if !bumped {
			ids = append(ids, Identifier{Num: 0, IsNumeric: true})
		}
	}

	if identifier == "" {
		return ids
	}

	if len(ids) > 0 && !ids[0].IsNumeric && ids[0].Str == identifier {
		return ids
	}

	seed := Identifier{Num: 0, IsNumeric: true}
	if identifierBase == "false" {
		seed = Identifier{Num: 1, IsNumeric: true}
	}
	return []Identifier{{Str: identifier}, seed}
}
