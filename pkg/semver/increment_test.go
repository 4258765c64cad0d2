package semver

import "testing"

func TestInc(t *testing.T) {
	tests := []struct {
		name           string
		version        string
		release        ReleaseType
		identifier     string
		identifierBase string
		want           string
	}{
		{"major", "1.2.3", ReleaseMajor, "", "", "2.0.0"},
		{"major from prerelease same triple", "1.0.0-0", ReleaseMajor, "", "", "1.0.0"},
		{"minor", "1.2.3", ReleaseMinor, "", "", "1.3.0"},
		{"patch", "1.2.3", ReleasePatch, "", "", "1.2.4"},
		{"patch clears prerelease without bump", "1.2.3-0", ReleasePatch, "", "", "1.2.3"},
		{"premajor", "1.2.3", ReleasePremajor, "", "", "2.0.0-0"},
		{"preminor", "1.2.3", ReleasePreminor, "", "", "1.3.0-0"},
		{"prepatch", "1.2.3", ReleasePrepatch, "", "", "1.2.4-0"},
		{"prerelease from release", "1.2.3", ReleasePrerelease, "", "", "1.2.4-0"},
		{"prerelease bump", "1.2.4-0", ReleasePrerelease, "", "", "1.2.4-1"},
		{"premajor named", "1.2.3", ReleasePremajor, "beta", "", "2.0.0-beta.0"},
		{"prerelease named bump", "2.0.0-beta.0", ReleasePrerelease, "beta", "", "2.0.0-beta.1"},
		{"prerelease named switch", "2.0.0-alpha.3", ReleasePrerelease, "beta", "", "2.0.0-beta.0"},
		{"premajor named base false seeds at 1", "1.2.3", ReleasePremajor, "beta", "false", "2.0.0-beta.1"},
		{"prerelease named switch base false seeds at 1", "2.0.0-alpha.3", ReleasePrerelease, "beta", "false", "2.0.0-beta.1"},
		{"premajor unnamed ignores identifier base", "1.2.3", ReleasePremajor, "", "false", "2.0.0-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.version)
			out, ok := Inc(v, tt.release, tt.identifier, tt.identifierBase)
			if !ok {
				t.Fatalf("Inc(%s, %s) ok = false", tt.version, tt.release)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("Inc(%s, %s, %q, %q) = %s; want %s", tt.version, tt.release, tt.identifier, tt.identifierBase, got, tt.want)
			}
		})
	}
}

func TestInc_DropsBuildMetadata(t *testing.T) {
	v := mustParse(t, "1.2.3+build.5")
	out, ok := Inc(v, ReleasePatch, "", "")
	if !ok {
		t.Fatal("Inc failed")
	}
	if out.String() != "1.2.4" {
		t.Errorf("Inc dropped build incorrectly: got %s", out.String())
	}
}

func TestInc_UnknownRelease(t *testing.T) {
	v := mustParse(t, "1.2.3")
	if _, ok := Inc(v, ReleaseType("bogus"), "", ""); ok {
		t.Error("Inc with unknown release type should fail")
	}
}
