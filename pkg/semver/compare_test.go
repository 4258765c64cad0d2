package semver

import "testing"

func mustParse(t *testing.T, s string) Version {
	t.Helper()
	v, ok := Parse(s, Options{})
	if !ok {
		t.Fatalf("Parse(%q) failed", s)
	}
	return v
}

func TestCompare_Precedence(t *testing.T) {
	// Ascending order taken from semver.org's precedence example.
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}

	for i := 0; i < len(ordered)-1; i++ {
		a := mustParse(t, ordered[i])
		b := mustParse(t, ordered[i+1])
		if !Lt(a, b) {
			t.Errorf("Lt(%s, %s) = false; want true", ordered[i], ordered[i+1])
		}
		if !Gt(b, a) {
			t.Errorf("Gt(%s, %s) = false; want true", ordered[i+1], ordered[i])
		}
	}
}

func TestCompare_CoreComponents(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"2.0.0", "1.9.9", 1},
		{"1.2.0", "1.10.0", -1},
		{"1.2.3", "1.2.10", -1},
	}
	for _, tt := range tests {
		a, b := mustParse(t, tt.a), mustParse(t, tt.b)
		if got := Compare(a, b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareBuild_BreaksTies(t *testing.T) {
	a := mustParse(t, "1.2.3+001")
	b := mustParse(t, "1.2.3+002")
	if Compare(a, b) != 0 {
		t.Fatal("Compare must ignore build metadata")
	}
	if CompareBuild(a, b) >= 0 {
		t.Error("CompareBuild(+001, +002) should be negative")
	}
}

func TestSortAndRsort(t *testing.T) {
	versions := []Version{
		mustParse(t, "1.2.3"),
		mustParse(t, "1.0.0"),
		mustParse(t, "2.0.0"),
	}
	Sort(versions)
	if versions[0].String() != "1.0.0" || versions[2].String() != "2.0.0" {
		t.Errorf("Sort produced %v", versions)
	}
	Rsort(versions)
	if versions[0].String() != "2.0.0" || versions[2].String() != "1.0.0" {
		t.Errorf("Rsort produced %v", versions)
	}
}
