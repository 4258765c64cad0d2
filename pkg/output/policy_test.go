package output

import (
	"strings"
	"testing"

	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
)

func TestFormatPolicyCheck_Allowed(t *testing.T) {
	result := security.CheckResult{Package: "lodash", Allowed: true}
	out := FormatPolicyCheck(result)
	if !strings.Contains(out, "ALLOWED") {
		t.Errorf("got %q", out)
	}
}

func TestFormatPolicyCheck_Denied(t *testing.T) {
	result := security.CheckResult{
		Package: "evil",
		Allowed: false,
		Violations: []security.Violation{
			{Type: security.ViolationBlocklisted, Package: "evil", Message: "on deny list", Suggestion: "remove it"},
		},
	}
	out := FormatPolicyCheck(result)
	if !strings.Contains(out, "DENIED") || !strings.Contains(out, "remove it") {
		t.Errorf("got %q", out)
	}
}

func TestFormatPolicyCheckJSON(t *testing.T) {
	result := security.CheckResult{Package: "lodash", Allowed: true}
	out, err := FormatPolicyCheckJSON(result)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "lodash") {
		t.Errorf("got %q", out)
	}
}
