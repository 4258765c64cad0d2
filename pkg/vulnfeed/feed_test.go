package vulnfeed

import (
	"testing"

	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
)

func TestFeed_LoadAndLookup(t *testing.T) {
	f := NewFeed()
	f.Load([]Entry{
		{Package: "event-stream", Version: "3.3.6", Severity: security.Critical},
		{Package: "event-stream", Version: "3.3.5", Severity: security.High},
	})

	e, ok := f.Lookup("event-stream", "3.3.6")
	if !ok || e.Severity != security.Critical {
		t.Fatalf("got %+v ok=%v", e, ok)
	}

	_, ok = f.Lookup("event-stream", "9.9.9")
	if ok {
		t.Error("unknown version should not be found")
	}
}

func TestFeed_VersionsAndVulnerabilities(t *testing.T) {
	f := NewFeed()
	f.Load([]Entry{
		{Package: "lodash", Version: "4.17.15", Severity: security.High, ID: "CVE-X"},
	})

	versions := f.Versions("lodash")
	if len(versions) != 1 {
		t.Fatalf("got %v", versions)
	}

	vulns := f.Vulnerabilities("lodash")
	if len(vulns) != 1 || vulns[0].ID != "CVE-X" || vulns[0].Severity != security.High {
		t.Fatalf("got %+v", vulns)
	}

	if f.Vulnerabilities("nonexistent") != nil {
		t.Error("unknown package should have no vulnerabilities")
	}
}

func TestFeed_CountAndSize(t *testing.T) {
	f := NewFeed()
	f.Load([]Entry{
		{Package: "a", Version: "1.0.0"},
		{Package: "a", Version: "2.0.0"},
		{Package: "b", Version: "1.0.0"},
	})
	if f.Count() != 2 {
		t.Errorf("Count() = %d; want 2", f.Count())
	}
	if f.Size() != 3 {
		t.Errorf("Size() = %d; want 3", f.Size())
	}
}
