package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
)

// FormatPolicyCheck renders a single policy check result as human-readable
// text.
func FormatPolicyCheck(result security.CheckResult) string {
	var b strings.Builder

	if result.Allowed {
		b.WriteString(fmt.Sprintf("%s%s✓ %s: ALLOWED%s\n", colorGreen, colorBold, result.Package, colorReset))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s%s✗ %s: DENIED%s\n", colorRed, colorBold, result.Package, colorReset))
	for _, v := range result.Violations {
		b.WriteString(fmt.Sprintf("   %s[%s]%s %s\n", colorRed, v.Type, colorReset, v.Message))
		if v.Suggestion != "" {
			b.WriteString(fmt.Sprintf("   %sSuggestion:%s %s\n", colorYellow, colorReset, v.Suggestion))
		}
	}
	return b.String()
}

// FormatPolicyCheckJSON renders a policy check result as indented JSON.
func FormatPolicyCheckJSON(result security.CheckResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
