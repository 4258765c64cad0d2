package manifest

import "testing"

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"git+ssh://git@example.com/foo", true},
		{"not a url", false},
		{"", false},
		{"ftp://example.com/file", true},
	}
	for _, tt := range tests {
		if got := ValidateURL(tt.input); got != tt.want {
			t.Errorf("ValidateURL(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateHomepage(t *testing.T) {
	if d := ValidateHomepage("https://example.com"); d != nil {
		t.Errorf("valid https homepage should pass, got %v", d)
	}
	if d := ValidateHomepage("ftp://example.com"); d == nil || d.Code != CodeInvalidURLProtocol {
		t.Errorf("ftp homepage should be INVALID_URL_PROTOCOL, got %v", d)
	}
	if d := ValidateHomepage("not a url"); d == nil || d.Code != CodeInvalidURL {
		t.Errorf("garbage homepage should be INVALID_URL, got %v", d)
	}
	if d := ValidateHomepage(""); d != nil {
		t.Errorf("empty homepage should be fine, got %v", d)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.com", true},
		{"a@b", false},
		{"@b.com", false},
		{"a@", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.input); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeBugs(t *testing.T) {
	b, errs := NormalizeBugs("https://example.com/issues")
	if len(errs) != 0 || b.URL != "https://example.com/issues" {
		t.Fatalf("string bugs: b=%+v errs=%v", b, errs)
	}

	b, errs = NormalizeBugs(map[string]any{"url": "https://example.com/issues", "email": "a@b.com"})
	if len(errs) != 0 || b.URL == "" || b.Email == "" {
		t.Fatalf("object bugs: b=%+v errs=%v", b, errs)
	}

	b, errs = NormalizeBugs(nil)
	if b != nil || errs != nil {
		t.Fatalf("nil bugs should normalize to nothing, got b=%+v errs=%v", b, errs)
	}
}
