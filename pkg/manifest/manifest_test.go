package manifest

import "testing"

func TestParsePackageJson_Valid(t *testing.T) {
	doc := []byte(`{
		"name": "my-package",
		"version": "1.2.3",
		"license": "MIT",
		"main": "./index.js"
	}`)
	res := ParsePackageJson(doc, Options{})
	if !res.Valid {
		t.Fatalf("expected valid, got errors=%v", res.Errors)
	}
	if res.Parsed == nil || res.Parsed.Name != "my-package" {
		t.Fatalf("got %+v", res.Parsed)
	}
}

func TestParsePackageJson_MissingRequiredFields(t *testing.T) {
	res := ParsePackageJson([]byte(`{}`), Options{})
	if res.Valid {
		t.Fatal("expected invalid for missing name/version")
	}
	codes := map[Code]bool{}
	for _, e := range res.Errors {
		codes[e.Code] = true
	}
	if !codes[CodeRequiredFieldMissing] {
		t.Errorf("expected REQUIRED_FIELD_MISSING, got %v", res.Errors)
	}
}

func TestParsePackageJson_MalformedJSON(t *testing.T) {
	res := ParsePackageJson([]byte(`{not json`), Options{})
	if res.Valid || len(res.Errors) != 1 || res.Errors[0].Code != CodeJSONParseError {
		t.Fatalf("expected JSON_PARSE_ERROR, got %+v", res)
	}
}

func TestParsePackageJson_RelaxPrivate(t *testing.T) {
	doc := []byte(`{"name": "Invalid Name!!", "version": "not-semver", "private": true}`)
	res := ParsePackageJson(doc, Options{RelaxPrivate: true})
	if !res.Valid {
		t.Fatalf("private manifest with RelaxPrivate should skip name/version strictness, got %v", res.Errors)
	}
}

func TestParsePackageJson_InvalidType(t *testing.T) {
	doc := []byte(`{"name": "pkg", "version": "1.0.0", "type": "weird"}`)
	res := ParsePackageJson(doc, Options{})
	if res.Valid {
		t.Fatal("expected invalid type to fail")
	}
	found := false
	for _, e := range res.Errors {
		if e.Code == CodeInvalidType {
			found = true
		}
	}
	if !found {
		t.Errorf("expected INVALID_TYPE, got %v", res.Errors)
	}
}

func TestParsePackageJson_PublishConfigOnPrivate(t *testing.T) {
	doc := []byte(`{"name": "pkg", "version": "1.0.0", "private": true, "publishConfig": {"registry": "https://example.com"}}`)
	res := ParsePackageJson(doc, Options{})
	found := false
	for _, w := range res.Warnings {
		if w.Code == CodePublishConfigOnPrivate {
			found = true
		}
	}
	if !found {
		t.Errorf("expected PUBLISH_CONFIG_ON_PRIVATE warning, got %v", res.Warnings)
	}
}

func TestParsePackageJson_InvalidEngineRange(t *testing.T) {
	doc := []byte(`{"name": "pkg", "version": "1.0.0", "engines": {"node": "not a range"}}`)
	res := ParsePackageJson(doc, Options{})
	found := false
	for _, w := range res.Warnings {
		if w.Code == CodeInvalidEngineRange {
			found = true
		}
	}
	if !found {
		t.Errorf("expected INVALID_ENGINE_RANGE warning, got %v", res.Warnings)
	}
}

func TestValidatePackageJson_FromGenericMap(t *testing.T) {
	doc := map[string]any{
		"name":    "my-package",
		"version": "1.0.0",
	}
	res := ValidatePackageJson(doc, Options{})
	if !res.Valid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}
