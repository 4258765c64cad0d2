package registry

import "testing"

func TestValidatePackageNameForRegistry(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantErr   string
		wantScope string
		wantName  string
	}{
		{"empty", "", false, "EMPTY_INPUT", "", ""},
		{"unscoped", "lodash", true, "", "", "lodash"},
		{"scoped", "@types/node", true, "", "types", "node"},
		{"double at", "@@scope/name", false, "INVALID_SCOPE_PREFIX", "", ""},
		{"missing slash", "@scope", false, "MISSING_SLASH", "", ""},
		{"multiple slashes", "@scope/name/extra", false, "MULTIPLE_SLASHES", "", ""},
		{"empty scope", "@/name", false, "EMPTY_SCOPE", "", ""},
		{"empty name", "@scope/", false, "EMPTY_NAME", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePackageNameForRegistry(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("Valid = %v; want %v", got.Valid, tt.wantValid)
			}
			if got.Error != tt.wantErr {
				t.Errorf("Error = %q; want %q", got.Error, tt.wantErr)
			}
			if tt.wantValid {
				if got.Scope != tt.wantScope || got.Name != tt.wantName {
					t.Errorf("Scope/Name = %q/%q; want %q/%q", got.Scope, got.Name, tt.wantScope, tt.wantName)
				}
			}
		})
	}
}

func TestEncodePackageName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"@types/node", "@types%2Fnode", true},
		{"lodash", "lodash", true},
		{"", "", false},
		{"@scope", "", false},
	}
	for _, tt := range tests {
		got, ok := EncodePackageName(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("EncodePackageName(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEncodePackageName_IdempotentOnUnscoped(t *testing.T) {
	first, _ := EncodePackageName("lodash")
	second, _ := EncodePackageName(first)
	if first != second {
		t.Errorf("encoding an unscoped name twice changed it: %q -> %q", first, second)
	}
}

func TestValidateNamespace(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"tenant-1", true},
		{"Tenant_2", true},
		{"", false},
		{"has a space", false},
		{"has.dot", false},
		{"has/slash", false},
	}
	for _, tt := range tests {
		if got := ValidateNamespace(tt.input); got != tt.want {
			t.Errorf("ValidateNamespace(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}

	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	if !ValidateNamespace(string(long)) {
		t.Error("64-char namespace should be valid")
	}
	tooLong := append(long, 'a')
	if ValidateNamespace(string(tooLong)) {
		t.Error("65-char namespace should be invalid")
	}
}
