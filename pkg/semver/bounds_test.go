package semver

import "testing"

func TestMaxMinSatisfying(t *testing.T) {
	versions := []Version{
		mustParse(t, "1.0.0"),
		mustParse(t, "1.2.0"),
		mustParse(t, "1.2.3"),
		mustParse(t, "2.0.0"),
	}
	r, ok := ParseRange("^1.0.0", Options{})
	if !ok {
		t.Fatal("ParseRange failed")
	}

	max, ok := MaxSatisfying(versions, r, Options{})
	if !ok || max.String() != "1.2.3" {
		t.Errorf("MaxSatisfying = %v, %v; want 1.2.3, true", max, ok)
	}

	min, ok := MinSatisfying(versions, r, Options{})
	if !ok || min.String() != "1.0.0" {
		t.Errorf("MinSatisfying = %v, %v; want 1.0.0, true", min, ok)
	}
}

func TestMaxSatisfying_NoneMatch(t *testing.T) {
	versions := []Version{mustParse(t, "3.0.0")}
	r, _ := ParseRange("^1.0.0", Options{})
	if _, ok := MaxSatisfying(versions, r, Options{}); ok {
		t.Error("MaxSatisfying should report false when nothing matches")
	}
}

func TestValidRange(t *testing.T) {
	if s, ok := ValidRange("^1.2.3", Options{}); !ok || s != ">=1.2.3 <2.0.0-0" {
		t.Errorf("ValidRange = %q, %v", s, ok)
	}
	if _, ok := ValidRange("!!!", Options{}); ok {
		t.Error("ValidRange should reject garbage")
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		r1, r2   string
		expected bool
	}{
		{"overlapping carets", "^1.2.0", "^1.0.0", true},
		{"disjoint majors", "^1.0.0", "^2.0.0", false},
		{"touching at a point", ">=1.0.0 <2.0.0", ">=2.0.0 <3.0.0", false},
		{"exact inside range", "1.5.0", ">=1.0.0 <2.0.0", true},
		{"exact outside range", "3.0.0", ">=1.0.0 <2.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r1, ok := ParseRange(tt.r1, Options{})
			if !ok {
				t.Fatalf("ParseRange(%q) failed", tt.r1)
			}
			r2, ok := ParseRange(tt.r2, Options{})
			if !ok {
				t.Fatalf("ParseRange(%q) failed", tt.r2)
			}
			if got := Intersects(r1, r2, Options{}); got != tt.expected {
				t.Errorf("Intersects(%q, %q) = %v; want %v", tt.r1, tt.r2, got, tt.expected)
			}
		})
	}
}
