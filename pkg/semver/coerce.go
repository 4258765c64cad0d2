package semver

import (
	"regexp"
	"strconv"
)

// maxCoerceDigits bounds how many digits Coerce will accept for a single
// numeric component, guarding against pathological input like a 200-digit
// "major" burning CPU in strconv.
const maxCoerceDigits = 16

var coerceRe = regexp.MustCompile(`(?:^|\D)(\d{1,16})(?:\.(\d{1,16}))?(?:\.(\d{1,16}))?`)

// Coerce extracts the first major[.minor[.patch]] numeric run found anywhere
// in input and returns it as a Version, defaulting any missing or unparsable
// trailing component to 0. It reports false only when no digit run at all is
// found.
func Coerce(input string) (Version, bool) {
	m := coerceRe.FindStringSubmatch(input)
	if m == nil {
		return Version{}, false
	}

	major := coerceComponent(m[1])
	minor := coerceComponent(m[2])
	patch := coerceComponent(m[3])

	v := Version{Major: major, Minor: minor, Patch: patch}
	v.Raw = v.String()
	return v, true
}

func coerceComponent(s string) uint64 {
	if s == "" || len(s) > maxCoerceDigits {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
