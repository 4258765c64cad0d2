package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tuckertucker/tkr-pkgcore/pkg/manifest"
)

// FormatValidation renders a manifest validation result as human-readable
// text: a pass/fail header followed by one line per error and warning.
func FormatValidation(name string, result manifest.ValidationResult) string {
	var b strings.Builder

	if result.Valid {
		b.WriteString(fmt.Sprintf("%s%s✓ %s: VALID%s\n", colorGreen, colorBold, name, colorReset))
	} else {
		b.WriteString(fmt.Sprintf("%s%s✗ %s: INVALID%s\n", colorRed, colorBold, name, colorReset))
	}

	if len(result.Errors) > 0 {
		b.WriteString(fmt.Sprintf("\n%s%sERRORS (%d)%s\n", colorRed, colorBold, len(result.Errors), colorReset))
		b.WriteString(fmt.Sprintf("%s%s%s\n", colorGray, ruleWidth, colorReset))
		for _, d := range result.Errors {
			writeDiagnostic(&b, colorRed, d)
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString(fmt.Sprintf("\n%s%sWARNINGS (%d)%s\n", colorYellow, colorBold, len(result.Warnings), colorReset))
		b.WriteString(fmt.Sprintf("%s%s%s\n", colorGray, ruleWidth, colorReset))
		for _, d := range result.Warnings {
			writeDiagnostic(&b, colorYellow, d)
		}
	}

	return b.String()
}

func writeDiagnostic(b *strings.Builder, color string, d manifest.Diagnostic) {
	b.WriteString(fmt.Sprintf("%s[%s]%s %s: %s\n", color, d.Code, colorReset, d.Field, d.Message))
	if d.Value != "" {
		b.WriteString(fmt.Sprintf("   %svalue:%s %q\n", colorGray, colorReset, d.Value))
	}
}

// FormatValidationJSON renders a manifest validation result as indented
// JSON.
func FormatValidationJSON(result manifest.ValidationResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
