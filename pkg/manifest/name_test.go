package manifest

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
		wantOK   bool
	}{
		{"valid simple", "lodash", "", true},
		{"valid scoped", "@types/node", "", true},
		{"empty", "", CodeInvalidName, false},
		{"too long", string(make([]byte, 215)), CodeNameTooLong, false},
		{"leading dot", ".hidden", CodeNameCannotStartWithDot, false},
		{"leading underscore", "_private", CodeNameCannotStartWithUnderscore, false},
		{"uppercase", "Lodash", CodeNameMustBeLowercase, false},
		{"whitespace", "lo dash", CodeNameContainsInvalidChars, false},
		{"slash unscoped", "foo/bar", CodeNameURLUnsafe, false},
		{"invalid chars", "foo~bar", CodeNameContainsInvalidChars, false},
		{"blacklisted", "node_modules", CodeNameBlacklisted, false},
		{"core module", "http", CodeNameCoreModule, false},
		{"scope missing slash", "@scope", CodeNameInvalidScope, false},
		{"scope empty name", "@scope/", CodeNameInvalidScope, false},
		{"scope empty scope", "@/name", CodeNameInvalidScope, false},
		{"scope uppercase scope", "@Scope/name", CodeNameInvalidScope, false},
		{"scope uppercase name", "@scope/Name", CodeNameMustBeLowercase, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := ValidateName(tt.input)
			if tt.wantOK {
				if len(diags) != 0 {
					t.Fatalf("ValidateName(%q) = %v; want none", tt.input, diags)
				}
				return
			}
			if len(diags) == 0 {
				t.Fatalf("ValidateName(%q) = none; want code %s", tt.input, tt.wantCode)
			}
			if diags[0].Code != tt.wantCode {
				t.Errorf("ValidateName(%q) code = %s; want %s", tt.input, diags[0].Code, tt.wantCode)
			}
		})
	}
}

func TestValidateName_BlacklistedNameGetsOnlyBlacklistCode(t *testing.T) {
	// node_modules and favicon.ico are blacklist entries distinct from core
	// modules; both must produce exactly their own code, not be conflated.
	diags := ValidateName("favicon.ico")
	if len(diags) != 1 || diags[0].Code != CodeNameBlacklisted {
		t.Fatalf("ValidateName(favicon.ico) = %v; want NAME_BLACKLISTED", diags)
	}
}
