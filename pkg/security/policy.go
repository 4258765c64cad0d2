// Package security implements allow/deny enforcement over package names,
// SPDX license sets, vulnerability severity thresholds, and package-size
// limits, composed via presets and extension. It has no ambient I/O.
package security

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is a vulnerability severity level. Lower-ranked severities are
// more severe: Critical is the worst, Low the mildest.
type Severity string

const (
	Critical Severity = "critical"
	High     Severity = "high"
	Medium   Severity = "medium"
	Low      Severity = "low"
)

var severityRank = map[Severity]int{
	Critical: 0,
	High:     1,
	Medium:   2,
	Low:      3,
}

func (s Severity) rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return severityRank[Low]
}

// atLeastAsSevereAs reports whether s is the same severity or worse than
// threshold (lower rank number = worse).
func (s Severity) atLeastAsSevereAs(threshold Severity) bool {
	return s.rank() <= threshold.rank()
}

// Vulnerability is a single known vulnerability affecting a package.
type Vulnerability struct {
	ID       string
	Severity Severity
	Title    string
}

// ViolationType names the kind of policy breach a Violation reports.
type ViolationType string

const (
	ViolationBlocklisted    ViolationType = "blocklisted"
	ViolationNotInAllowlist ViolationType = "not_in_allowlist"
	ViolationLicense        ViolationType = "license_violation"
	ViolationVulnerability  ViolationType = "vulnerability"
	ViolationSizeExceeded   ViolationType = "size_exceeded"
)

// Violation is a single policy breach.
type Violation struct {
	Type       ViolationType
	Package    string
	Message    string
	Suggestion string
	Details    string
	Severity   Severity
}

// CheckResult is the outcome of a policy check: allowed iff no violations
// were produced (or, for checkAll, iff every sub-check allowed).
type CheckResult struct {
	Allowed    bool
	Package    string
	Violations []Violation
}

// Policy is an immutable security configuration. A nil AllowList/DenyList/
// AllowedLicenses means "not configured" (no restriction on that axis); an
// empty-but-non-nil AllowList means "configured to allow nothing".
type Policy struct {
	AllowList       []string
	DenyList        []string
	AllowedLicenses []string
	MaxSeverity     Severity
	MaxSizeBytes    int64
}

// Check enforces the allow/deny list against name.
func (p Policy) Check(name string) CheckResult {
	res := CheckResult{Package: name, Allowed: true}

	if name == "" {
		res.Allowed = false
		res.Violations = append(res.Violations, Violation{
			Type:    ViolationBlocklisted,
			Package: name,
			Message: "package name must not be empty",
		})
		return res
	}

	if anyMatch(p.DenyList, name) {
		res.Allowed = false
		res.Violations = append(res.Violations, Violation{
			Type:    ViolationBlocklisted,
			Package: name,
			Message: fmt.Sprintf("%q is on the deny list", name),
		})
	}

	if p.AllowList != nil && !anyMatch(p.AllowList, name) {
		res.Allowed = false
		res.Violations = append(res.Violations, Violation{
			Type:    ViolationNotInAllowlist,
			Package: name,
			Message: fmt.Sprintf("%q is not on the allow list", name),
		})
	}

	return res
}

// CheckLicense enforces the allowed-license set against a single SPDX
// expression. Only top-level OR/AND are understood here; richer expressions
// (WITH, nested parens) are the manifest license validator's job.
func (p Policy) CheckLicense(name, license string) CheckResult {
	res := CheckResult{Package: name, Allowed: true}

	if p.AllowedLicenses == nil {
		return res
	}

	if license == "" || strings.EqualFold(license, "UNLICENSED") {
		res.Allowed = false
		res.Violations = append(res.Violations, Violation{
			Type:    ViolationLicense,
			Package: name,
			Message: fmt.Sprintf("package %q has no usable license", name),
		})
		return res
	}

	ok := p.licenseSatisfied(license)
	if !ok {
		res.Allowed = false
		res.Violations = append(res.Violations, Violation{
			Type:    ViolationLicense,
			Package: name,
			Message: fmt.Sprintf("license %q is not permitted for %q", license, name),
		})
	}
	return res
}

func (p Policy) licenseSatisfied(license string) bool {
	if parts, ok := splitTop(license, " OR "); ok {
		for _, part := range parts {
			if p.licenseInSet(part) {
				return true
			}
		}
		return false
	}
	if parts, ok := splitTop(license, " AND "); ok {
		for _, part := range parts {
			if !p.licenseInSet(part) {
				return false
			}
		}
		return true
	}
	return p.licenseInSet(license)
}

func (p Policy) licenseInSet(id string) bool {
	id = strings.TrimSpace(id)
	for _, allowed := range p.AllowedLicenses {
		if strings.EqualFold(allowed, id) {
			return true
		}
	}
	return false
}

func splitTop(s, sep string) ([]string, bool) {
	if !strings.Contains(s, sep) {
		return nil, false
	}
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// CheckVulnerabilities flags every vulnerability at least as severe as
// p.MaxSeverity.
func (p Policy) CheckVulnerabilities(name string, vulns []Vulnerability) CheckResult {
	res := CheckResult{Package: name, Allowed: true}
	if p.MaxSeverity == "" {
		return res
	}
	for _, v := range vulns {
		if v.Severity.atLeastAsSevereAs(p.MaxSeverity) {
			res.Allowed = false
			res.Violations = append(res.Violations, Violation{
				Type:     ViolationVulnerability,
				Package:  name,
				Message:  fmt.Sprintf("%s: %s severity vulnerability %s", name, v.Severity, v.ID),
				Details:  v.Title,
				Severity: v.Severity,
			})
		}
	}
	return res
}

// CheckSize flags a package whose size strictly exceeds p.MaxSizeBytes.
func (p Policy) CheckSize(name string, sizeBytes int64) CheckResult {
	res := CheckResult{Package: name, Allowed: true}
	if p.MaxSizeBytes <= 0 {
		return res
	}
	if sizeBytes > p.MaxSizeBytes {
		res.Allowed = false
		res.Violations = append(res.Violations, Violation{
			Type:    ViolationSizeExceeded,
			Package: name,
			Message: fmt.Sprintf("%s exceeds the %d byte size limit", name, p.MaxSizeBytes),
		})
	}
	return res
}

// CheckAll runs every check and merges their results; Allowed is the
// conjunction of every sub-check.
func (p Policy) CheckAll(name, license string, vulns []Vulnerability, sizeBytes int64) CheckResult {
	merged := CheckResult{Package: name, Allowed: true}
	for _, r := range []CheckResult{
		p.Check(name),
		p.CheckLicense(name, license),
		p.CheckVulnerabilities(name, vulns),
		p.CheckSize(name, sizeBytes),
	} {
		if !r.Allowed {
			merged.Allowed = false
		}
		merged.Violations = append(merged.Violations, r.Violations...)
	}
	return merged
}

// Extend returns a new Policy combining p with additional: allow and deny
// lists concatenate; every other field uses additional's value when set,
// else p's.
func (p Policy) Extend(additional Policy) Policy {
	out := p
	out.AllowList = concatNilable(p.AllowList, additional.AllowList)
	out.DenyList = concatNilable(p.DenyList, additional.DenyList)
	if additional.AllowedLicenses != nil {
		out.AllowedLicenses = append([]string{}, additional.AllowedLicenses...)
	}
	if additional.MaxSeverity != "" {
		out.MaxSeverity = additional.MaxSeverity
	}
	if additional.MaxSizeBytes != 0 {
		out.MaxSizeBytes = additional.MaxSizeBytes
	}
	return out
}

func concatNilable(a, b []string) []string {
	if a == nil && b == nil {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

type policyJSON struct {
	AllowList       []string `json:"allowList"`
	DenyList        []string `json:"denyList,omitempty"`
	AllowedLicenses []string `json:"allowedLicenses"`
	MaxSeverity     Severity `json:"maxSeverity,omitempty"`
	MaxSizeBytes    int64    `json:"maxSizeBytes,omitempty"`
}

// ToJSON serializes the policy configuration.
func (p Policy) ToJSON() ([]byte, error) {
	return json.Marshal(policyJSON{
		AllowList:       p.AllowList,
		DenyList:        p.DenyList,
		AllowedLicenses: p.AllowedLicenses,
		MaxSeverity:     p.MaxSeverity,
		MaxSizeBytes:    p.MaxSizeBytes,
	})
}

// FromJSON deserializes a policy configuration produced by ToJSON.
func FromJSON(data []byte) (Policy, error) {
	var pj policyJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return Policy{}, fmt.Errorf("security: decode policy: %w", err)
	}
	return Policy{
		AllowList:       pj.AllowList,
		DenyList:        pj.DenyList,
		AllowedLicenses: pj.AllowedLicenses,
		MaxSeverity:     pj.MaxSeverity,
		MaxSizeBytes:    pj.MaxSizeBytes,
	}, nil
}

// PolicyError is the consolidated failure Assert/AssertAll raise.
type PolicyError struct {
	Package         string
	Violations      []Violation
	HighestSeverity Severity
}

func (e *PolicyError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("security policy rejected %q: %s", e.Package, strings.Join(msgs, "; "))
}

// Assert enforces the name/allow/deny rule only, failing loudly.
func (p Policy) Assert(name string) error {
	res := p.Check(name)
	if res.Allowed {
		return nil
	}
	return &PolicyError{Package: name, Violations: res.Violations}
}

// AssertAll enforces every check, failing loudly with the consolidated
// violation set and the single most severe vulnerability severity seen.
func (p Policy) AssertAll(name, license string, vulns []Vulnerability, sizeBytes int64) error {
	res := p.CheckAll(name, license, vulns, sizeBytes)
	if res.Allowed {
		return nil
	}
	highest := highestSeverity(res.Violations)
	return &PolicyError{Package: name, Violations: res.Violations, HighestSeverity: highest}
}

func highestSeverity(violations []Violation) Severity {
	var worst Severity
	worstRank := -1
	for _, v := range violations {
		if v.Severity == "" {
			continue
		}
		if r := v.Severity.rank(); worstRank == -1 || r < worstRank {
			worstRank = r
			worst = v.Severity
		}
	}
	return worst
}
