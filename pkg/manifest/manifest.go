package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/tuckertucker/tkr-pkgcore/pkg/semver"
)

// rawManifest is the typed decode shape of a package.json document. Exports
// and TypesVersions are kept as raw JSON so they can be separately decoded
// into an order-preserving OrderedMap.
type rawManifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Private     *bool  `json:"private"`

	License string `json:"license"`
	Main    string `json:"main"`
	Module  string `json:"module"`
	Types   string `json:"types"`
	Typings string `json:"typings"`

	Homepage   string `json:"homepage"`
	Bugs       any    `json:"bugs"`
	Repository any    `json:"repository"`
	Keywords   any    `json:"keywords"`

	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`

	Engines map[string]string `json:"engines"`
	Scripts map[string]string `json:"scripts"`

	Exports       json.RawMessage `json:"exports"`
	TypesVersions json.RawMessage `json:"typesVersions"`

	Files any `json:"files"`
	Bin   any `json:"bin"`

	Directories   map[string]string `json:"directories"`
	PublishConfig any               `json:"publishConfig"`
}

// ParsePackageJson decodes text as JSON and validates the result. A decode
// failure is reported as a single JSON_PARSE_ERROR diagnostic rather than a
// Go error, matching the rest of this package's diagnostic-returning style.
func ParsePackageJson(text []byte, opts Options) ValidationResult {
	var raw rawManifest
	if err := json.Unmarshal(text, &raw); err != nil {
		return ValidationResult{
			Valid:  false,
			Errors: []Diagnostic{errDiag("", CodeJSONParseError, fmt.Sprintf("invalid JSON: %v", err), nil)},
		}
	}
	return validateRaw(raw, opts)
}

// ValidatePackageJson validates an already-decoded generic document. When
// value was decoded with encoding/json into map[string]any, exports and
// typesVersions key order is not preserved; callers that need order-
// sensitive resolution should use ParsePackageJson on the original text
// instead.
func ValidatePackageJson(value map[string]any, opts Options) ValidationResult {
	data, err := json.Marshal(value)
	if err != nil {
		return ValidationResult{
			Valid:  false,
			Errors: []Diagnostic{errDiag("", CodeJSONParseError, "could not re-encode document", nil)},
		}
	}
	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return ValidationResult{
			Valid:  false,
			Errors: []Diagnostic{errDiag("", CodeJSONParseError, fmt.Sprintf("invalid document: %v", err), nil)},
		}
	}
	return validateRaw(raw, opts)
}

func validateRaw(raw rawManifest, opts Options) ValidationResult {
	var errs, warns []Diagnostic

	if raw.Name == "" {
		errs = append(errs, errDiag("name", CodeRequiredFieldMissing, "name is required", nil))
	}
	if raw.Version == "" {
		errs = append(errs, errDiag("version", CodeRequiredFieldMissing, "version is required", nil))
	}

	private := raw.Private != nil && *raw.Private
	relax := opts.RelaxPrivate && private

	if !relax {
		if raw.Name != "" {
			errs = append(errs, ValidateName(raw.Name)...)
		}
		if raw.Version != "" {
			if d := ValidateVersion(raw.Version); d != nil {
				errs = append(errs, *d)
			}
		}
	}

	pkgType := TypeCommonJS
	if raw.Type != "" {
		switch raw.Type {
		case "module":
			pkgType = TypeModule
		case "commonjs":
			pkgType = TypeCommonJS
		default:
			errs = append(errs, errDiag("type", CodeInvalidType, fmt.Sprintf("%q is not a recognized module type", raw.Type), raw.Type))
		}
	}

	licenseErrs, licenseWarns := ValidateLicense(raw.License)
	errs = append(errs, licenseErrs...)
	warns = append(warns, licenseWarns...)

	if d := ValidateHomepage(raw.Homepage); d != nil {
		errs = append(errs, *d)
	}

	bugs, bugsErrs := NormalizeBugs(raw.Bugs)
	errs = append(errs, bugsErrs...)

	repo, repoErrs := NormalizeRepository(raw.Repository)
	errs = append(errs, repoErrs...)

	keywords, keywordWarns := NormalizeKeywords(raw.Keywords)
	warns = append(warns, keywordWarns...)

	for _, depMap := range []map[string]string{
		raw.Dependencies, raw.DevDependencies, raw.PeerDependencies, raw.OptionalDependencies,
	} {
		for name, spec := range depMap {
			if d := ValidateDependencySpec(name, spec); d != nil {
				errs = append(errs, *d)
			}
		}
	}

	for name, rng := range raw.Engines {
		if _, ok := parseEngineRange(name, rng); !ok {
			warns = append(warns, errDiag("engines."+name, CodeInvalidEngineRange, fmt.Sprintf("engine range %q for %q is not valid", rng, name), rng))
		}
	}

	dirBin := raw.Directories["bin"]
	_, binErrs := ParseBin(raw.Name, raw.Bin, dirBin, nil)
	errs = append(errs, binErrs...)

	fileSel := ParseFiles(raw.Files)
	warns = append(warns, ValidateFiles(fileSel, raw.Main)...)

	if publishConfigPresent(raw.PublishConfig) && private {
		warns = append(warns, Diagnostic{
			Field:   "publishConfig",
			Code:    CodePublishConfigOnPrivate,
			Message: "publishConfig is set on a private package",
		})
	}

	var exports any
	if len(raw.Exports) > 0 && string(raw.Exports) != "null" {
		exports = decodeExportsValue(raw.Exports)
	}
	var typesVersions *OrderedMap
	if len(raw.TypesVersions) > 0 {
		tv := &OrderedMap{}
		if err := tv.UnmarshalJSON(raw.TypesVersions); err == nil {
			typesVersions = tv
		}
	}

	result := ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}

	if result.Valid {
		result.Parsed = &Manifest{
			Name:                 raw.Name,
			Version:              raw.Version,
			Description:          raw.Description,
			Type:                 pkgType,
			Private:              private,
			License:              raw.License,
			Main:                 raw.Main,
			Module:               raw.Module,
			Types:                raw.Types,
			Typings:              raw.Typings,
			Homepage:             raw.Homepage,
			Bugs:                 bugs,
			Repository:           repo,
			Keywords:             keywords,
			Dependencies:         raw.Dependencies,
			DevDependencies:      raw.DevDependencies,
			PeerDependencies:     raw.PeerDependencies,
			OptionalDependencies: raw.OptionalDependencies,
			Engines:              raw.Engines,
			Scripts:              raw.Scripts,
			Exports:              exports,
			TypesVersions:        typesVersions,
			Files:                fileSel.Patterns,
			Bin:                  raw.Bin,
		}
	}

	return result
}

// decodeExportsValue decodes the raw "exports" JSON into a string, nil, or
// an order-preserving *OrderedMap.
func decodeExportsValue(raw json.RawMessage) any {
	v, err := decodeOrderedValue(raw)
	if err != nil {
		return nil
	}
	return v
}

func publishConfigPresent(v any) bool {
	if v == nil {
		return false
	}
	if m, ok := v.(map[string]any); ok {
		return len(m) > 0
	}
	return true
}

// parseEngineRange parses an engines.* value: "node" uses the semver range
// grammar; other engine names are accepted verbatim since they follow tool-
// specific (sometimes non-semver) conventions.
func parseEngineRange(name, rng string) (string, bool) {
	if rng == "" {
		return rng, true
	}
	if name != "node" {
		return rng, true
	}
	_, ok := semver.ParseRange(rng, semver.Options{})
	return rng, ok
}
