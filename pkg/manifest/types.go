// Package manifest parses, validates, and normalizes a package manifest
// document (package.json): names, versions, licenses, URLs, repository and
// keyword fields, dependency specifiers, scripts, entry-point resolution,
// the files list, and bin entries. It has no ambient I/O beyond the
// directory-listing collaborator callers may supply for bin resolution (see
// ListDirectory in bin.go).
package manifest

// Code is a stable identifier for a validation error or warning, part of
// this package's public contract — callers may switch on it.
type Code string

const (
	CodeRequiredFieldMissing           Code = "REQUIRED_FIELD_MISSING"
	CodeInvalidName                    Code = "INVALID_NAME"
	CodeNameMustBeLowercase            Code = "NAME_MUST_BE_LOWERCASE"
	CodeNameContainsInvalidChars       Code = "NAME_CONTAINS_INVALID_CHARS"
	CodeNameCannotStartWithDot         Code = "NAME_CANNOT_START_WITH_DOT"
	CodeNameCannotStartWithUnderscore  Code = "NAME_CANNOT_START_WITH_UNDERSCORE"
	CodeNameTooLong                    Code = "NAME_TOO_LONG"
	CodeNameURLUnsafe                  Code = "NAME_URL_UNSAFE"
	CodeNameBlacklisted                Code = "NAME_BLACKLISTED"
	CodeNameCoreModule                 Code = "NAME_CORE_MODULE"
	CodeNameInvalidScope               Code = "NAME_INVALID_SCOPE"
	CodeInvalidVersion                 Code = "INVALID_VERSION"
	CodeInvalidSemver                  Code = "INVALID_SEMVER"
	CodeInvalidType                    Code = "INVALID_TYPE"
	CodeInvalidURL                     Code = "INVALID_URL"
	CodeInvalidURLProtocol             Code = "INVALID_URL_PROTOCOL"
	CodeInvalidEmail                   Code = "INVALID_EMAIL"
	CodeInvalidSPDXIdentifier          Code = "INVALID_SPDX_IDENTIFIER"
	CodeInvalidSPDXExpression          Code = "INVALID_SPDX_EXPRESSION"
	CodeInvalidBinName                 Code = "INVALID_BIN_NAME"
	CodeInvalidDependency              Code = "INVALID_DEPENDENCY"
	CodeJSONParseError                 Code = "JSON_PARSE_ERROR"

	CodeDeprecatedLicense        Code = "DEPRECATED_LICENSE"
	CodeInvalidEngineRange       Code = "INVALID_ENGINE_RANGE"
	CodeKeywordTooLong           Code = "KEYWORD_TOO_LONG"
	CodeSuspiciousIncludePattern Code = "SUSPICIOUS_INCLUDE_PATTERN"
	CodeMainNotIncluded          Code = "MAIN_NOT_INCLUDED"
	CodeBinNotInFiles            Code = "BIN_NOT_IN_FILES"
	CodePublishConfigOnPrivate   Code = "PUBLISH_CONFIG_ON_PRIVATE"
	CodeDeprecatedField         Code = "DEPRECATED_FIELD"
)

// Diagnostic is a single structured error or warning: a field path, a
// stable code, a human message, and optionally the offending value.
type Diagnostic struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// PackageType is the module system a manifest declares via its "type" field.
type PackageType string

const (
	TypeCommonJS PackageType = "commonjs"
	TypeModule   PackageType = "module"
)

// Person is the normalized shape of an author/contributor/maintainer entry.
type Person struct {
	Name  string
	Email string
	URL   string
}

// Bugs is the normalized shape of the "bugs" field.
type Bugs struct {
	URL   string
	Email string
}

// Repository is the normalized shape of the "repository" field.
type Repository struct {
	Type      string
	URL       string
	Directory string
}

// Manifest is a validated, normalized package.json document.
type Manifest struct {
	Name        string
	Version     string
	Description string
	Type        PackageType
	Private     bool

	License string
	Main    string
	Module  string
	Types   string
	Typings string

	Homepage string
	Bugs     *Bugs
	Repository *Repository

	Keywords []string

	Dependencies         map[string]string
	DevDependencies      map[string]string
	PeerDependencies     map[string]string
	OptionalDependencies map[string]string

	Engines map[string]string

	Scripts map[string]string

	Exports       any
	TypesVersions *OrderedMap

	Files []string
	Bin   any

	Raw map[string]any
}

// ValidationResult is the outcome of validating a candidate manifest value.
type ValidationResult struct {
	Valid    bool         `json:"valid"`
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Parsed   *Manifest    `json:"parsed,omitempty"`
}

// Options configures validatePackageJson.
type Options struct {
	// RelaxPrivate skips name/version strictness for manifests marked
	// private.
	RelaxPrivate bool
}

func errDiag(field string, code Code, msg string, value any) Diagnostic {
	return Diagnostic{Field: field, Code: code, Message: msg, Value: value}
}
