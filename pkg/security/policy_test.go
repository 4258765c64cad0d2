package security

import "testing"

func TestCheck_DenyListWinsOverAllowList(t *testing.T) {
	p := Policy{
		AllowList: []string{"event-stream"},
		DenyList:  []string{"event-stream"},
	}
	res := p.Check("event-stream")
	if res.Allowed {
		t.Error("deny list match must deny even when the allow list also matches")
	}
}

func TestCheck_EmptyAllowListDeniesEverything(t *testing.T) {
	p := Policy{AllowList: []string{}}
	if p.Check("anything").Allowed {
		t.Error("an empty-but-configured allow list must deny everything")
	}
}

func TestCheck_EmptyNameAlwaysDenied(t *testing.T) {
	p := Policy{}
	if p.Check("").Allowed {
		t.Error("empty package name must always be denied")
	}
}

func TestCheck_GlobPatterns(t *testing.T) {
	p := Policy{DenyList: []string{"@evil-scope/*"}}
	if p.Check("@evil-scope/pkg").Allowed {
		t.Error("glob deny pattern should match")
	}
	if !p.Check("@safe-scope/pkg").Allowed {
		t.Error("glob deny pattern should not match unrelated scope")
	}
}

func TestCheckLicense(t *testing.T) {
	p := Policy{AllowedLicenses: []string{"MIT"}}

	if !p.CheckLicense("pkg", "MIT OR Apache-2.0").Allowed {
		t.Error("OR expression should pass when any side is allowed")
	}
	if p.CheckLicense("pkg", "MIT AND Apache-2.0").Allowed {
		t.Error("AND expression should fail when any side is not allowed")
	}
	if !p.CheckLicense("pkg", "MIT").Allowed {
		t.Error("bare allowed identifier should pass")
	}
	if p.CheckLicense("pkg", "GPL-3.0-only").Allowed {
		t.Error("bare disallowed identifier should fail")
	}
	if p.CheckLicense("pkg", "").Allowed {
		t.Error("missing license should fail when a license set is configured")
	}
	if p.CheckLicense("pkg", "UNLICENSED").Allowed {
		t.Error("UNLICENSED should fail when a license set is configured")
	}
}

func TestCheckLicense_NoSetConfiguredAllowsAnything(t *testing.T) {
	p := Policy{}
	if !p.CheckLicense("pkg", "").Allowed {
		t.Error("no allowed-license set means every license passes")
	}
}

func TestCheckVulnerabilities_SeverityThreshold(t *testing.T) {
	p := Policy{MaxSeverity: High}
	vulns := []Vulnerability{
		{ID: "CVE-1", Severity: Critical},
		{ID: "CVE-2", Severity: Medium},
	}
	res := p.CheckVulnerabilities("pkg", vulns)
	if res.Allowed {
		t.Fatal("critical vulnerability must be flagged under a High ceiling")
	}
	if len(res.Violations) != 1 {
		t.Errorf("expected exactly the Critical vuln to violate, got %d violations", len(res.Violations))
	}
}

func TestCheckSize(t *testing.T) {
	p := Policy{MaxSizeBytes: 100}
	if p.CheckSize("pkg", 100).Allowed != true {
		t.Error("size exactly at the limit must be allowed")
	}
	if p.CheckSize("pkg", 101).Allowed {
		t.Error("size strictly over the limit must be denied")
	}
}

func TestExtend(t *testing.T) {
	base := Policy{AllowList: []string{"a"}, DenyList: []string{"x"}, MaxSeverity: Low, MaxSizeBytes: 10}
	extra := Policy{AllowList: []string{"b"}, MaxSeverity: High}

	combined := base.Extend(extra)
	if len(combined.AllowList) != 2 {
		t.Errorf("AllowList should concatenate, got %v", combined.AllowList)
	}
	if combined.MaxSeverity != High {
		t.Errorf("MaxSeverity should take the additional value, got %v", combined.MaxSeverity)
	}
	if combined.MaxSizeBytes != 10 {
		t.Errorf("MaxSizeBytes should fall back to base when unset in additional, got %v", combined.MaxSizeBytes)
	}
}

func TestToJSON_FromJSON_Roundtrip(t *testing.T) {
	p := RestrictedPreset()
	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if back.MaxSeverity != p.MaxSeverity || back.MaxSizeBytes != p.MaxSizeBytes {
		t.Errorf("round-tripped policy differs: %+v vs %+v", back, p)
	}
	if len(back.DenyList) != len(p.DenyList) {
		t.Errorf("deny list length differs after round-trip")
	}
}

func TestPresets_Scenario(t *testing.T) {
	p := RestrictedPreset()

	if p.Check("lodash").Allowed {
		t.Error("restricted preset should deny a package not on its empty allow list")
	}
	if p.Check("event-stream").Allowed {
		t.Error("restricted preset should deny the blocklisted event-stream package")
	}
	if p.CheckLicense("foo", "GPL-3.0-only").Allowed {
		t.Error("restricted preset should reject GPL-3.0-only")
	}
}

func TestAssert(t *testing.T) {
	p := RestrictedPreset()
	if err := p.Assert("lodash"); err == nil {
		t.Error("Assert should fail for a package outside the allow list")
	}
}

func TestAssertAll_HighestSeverity(t *testing.T) {
	p := Policy{MaxSeverity: Low}
	err := p.AssertAll("pkg", "", []Vulnerability{
		{ID: "a", Severity: Medium},
		{ID: "b", Severity: Critical},
	}, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*PolicyError)
	if !ok {
		t.Fatalf("err type = %T; want *PolicyError", err)
	}
	if pe.HighestSeverity != Critical {
		t.Errorf("HighestSeverity = %v; want critical", pe.HighestSeverity)
	}
}
