package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tuckertucker/tkr-pkgcore/pkg/resolve"
	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
)

// FormatScan renders a directory scan as human-readable, box-drawing text:
// a summary section followed by one section per violation type found.
func FormatScan(result *resolve.ScanResult, timestamp time.Time) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s╔════════════════════════════════════════════════════════╗%s\n", colorBold, colorReset))
	b.WriteString(fmt.Sprintf("%s║  PACKAGE RESOLUTION REPORT                              ║%s\n", colorBold, colorReset))
	b.WriteString(fmt.Sprintf("%s╚════════════════════════════════════════════════════════╝%s\n", colorBold, colorReset))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%sSCAN SUMMARY%s\n", colorBold, colorReset))
	b.WriteString(fmt.Sprintf("%s%s%s\n", colorGray, ruleWidth, colorReset))
	b.WriteString(fmt.Sprintf("Manifests Scanned: %d files\n", result.ManifestsScanned))
	b.WriteString(fmt.Sprintf("Lockfiles Scanned: %d files\n", result.LockfilesScanned))
	b.WriteString(fmt.Sprintf("Packages Checked:  %d\n", result.PackagesChecked))
	b.WriteString(fmt.Sprintf("Timestamp:         %s\n", timestamp.Format("2006-01-02T15:04:05.000Z")))
	b.WriteString("\n")

	if len(result.Violations) == 0 {
		b.WriteString(fmt.Sprintf("%s%s✓ NO POLICY VIOLATIONS%s\n", colorGreen, colorBold, colorReset))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s%s⚠ POLICY VIOLATIONS FOUND: %d%s\n", colorRed, colorBold, len(result.Violations), colorReset))
	b.WriteString("\n")

	byType := groupViolations(result.Violations)
	for _, vt := range []security.ViolationType{
		security.ViolationBlocklisted,
		security.ViolationNotInAllowlist,
		security.ViolationLicense,
		security.ViolationVulnerability,
		security.ViolationSizeExceeded,
	} {
		violations := byType[vt]
		if len(violations) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s%s (%d)%s\n", colorRed, colorBold, strings.ToUpper(string(vt)), len(violations), colorReset))
		b.WriteString(fmt.Sprintf("%s%s%s\n", colorGray, ruleWidth, colorReset))
		for i, v := range violations {
			b.WriteString(fmt.Sprintf("\n%s%d. %s%s\n", colorRed, i+1, v.Package, colorReset))
			b.WriteString(fmt.Sprintf("   %sMessage:%s %s\n", colorGray, colorReset, v.Message))
			if v.Suggestion != "" {
				b.WriteString(fmt.Sprintf("   %sSuggestion:%s %s\n", colorYellow, colorReset, v.Suggestion))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func groupViolations(violations []security.Violation) map[security.ViolationType][]security.Violation {
	byType := make(map[security.ViolationType][]security.Violation)
	for _, v := range violations {
		byType[v.Type] = append(byType[v.Type], v)
	}
	return byType
}

// FormatScanJSON renders a directory scan as indented JSON.
func FormatScanJSON(result *resolve.ScanResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
