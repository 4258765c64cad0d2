package manifest

import "testing"

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
		wantOK   bool
	}{
		{"valid", "1.2.3", "", true},
		{"valid with prerelease", "1.2.3-alpha.1", "", true},
		{"empty", "", CodeInvalidVersion, false},
		{"leading v", "v1.2.3", CodeInvalidSemver, false},
		{"leading dash digit", "-1.2.3", CodeInvalidSemver, false},
		{"garbage", "not-a-version", CodeInvalidSemver, false},
		{"incomplete", "1.2", CodeInvalidSemver, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ValidateVersion(tt.input)
			if tt.wantOK {
				if d != nil {
					t.Fatalf("ValidateVersion(%q) = %v; want nil", tt.input, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("ValidateVersion(%q) = nil; want code %s", tt.input, tt.wantCode)
			}
			if d.Code != tt.wantCode {
				t.Errorf("ValidateVersion(%q) code = %s; want %s", tt.input, d.Code, tt.wantCode)
			}
		})
	}
}
