package semver

import "testing"

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version string
		rng     string
		want    bool
	}{
		{"1.2.3", "1.2.3", true},
		{"1.2.4", "1.2.3", false},
		{"1.2.3", "^1.2.0", true},
		{"2.0.0", "^1.2.0", false},
		{"1.2.3", "~1.2.0", true},
		{"1.3.0", "~1.2.0", false},
		{"1.2.3", ">=1.0.0 <2.0.0", true},
		{"2.0.0", ">=1.0.0 <2.0.0", false},
		{"1.2.3", "1.x || 2.x", true},
		{"3.0.0", "1.x || 2.x", false},
		{"1.2.4", "!=1.2.3", true},
		{"1.2.3", "!=1.2.3", false},
		{"1.2.3", "v1.2.3", true},
		{"1.2.4", "v1.2.3", false},
	}

	for _, tt := range tests {
		v := mustParse(t, tt.version)
		r, ok := ParseRange(tt.rng, Options{})
		if !ok {
			t.Fatalf("ParseRange(%q) failed", tt.rng)
		}
		if got := Satisfies(v, r, Options{}); got != tt.want {
			t.Errorf("Satisfies(%s, %q) = %v; want %v", tt.version, tt.rng, got, tt.want)
		}
	}
}

func TestSatisfies_PrereleaseGating(t *testing.T) {
	r, ok := ParseRange("^1.2.3", Options{})
	if !ok {
		t.Fatal("ParseRange failed")
	}

	pre := mustParse(t, "1.2.4-beta.0")
	if Satisfies(pre, r, Options{}) {
		t.Error("a prerelease of a version not mentioned in the range must not satisfy it")
	}

	sameTripleRange, ok := ParseRange(">=1.2.4-alpha", Options{})
	if !ok {
		t.Fatal("ParseRange failed")
	}
	if !Satisfies(pre, sameTripleRange, Options{}) {
		t.Error("a prerelease should satisfy a range that itself mentions a same-triple prerelease")
	}

	if !Satisfies(pre, r, Options{IncludePrerelease: true}) {
		t.Error("IncludePrerelease should lift the same-triple gate")
	}
}

func TestSatisfies_PlaceholderExcludesBoundaryPrerelease(t *testing.T) {
	// "^1.2.3" expands its upper bound to "<2.0.0-0", so a prerelease of the
	// next major must not sneak in underneath a naive "<2.0.0" bound.
	r, ok := ParseRange("^1.2.3", Options{})
	if !ok {
		t.Fatal("ParseRange failed")
	}
	boundaryPre := mustParse(t, "2.0.0-alpha")
	if Satisfies(boundaryPre, r, Options{}) {
		t.Error("2.0.0-alpha must not satisfy ^1.2.3")
	}
}
