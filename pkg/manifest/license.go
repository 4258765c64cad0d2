package manifest

import (
	"fmt"
	"strings"
)

// spdxIdentifiers is a non-exhaustive but broad set of recognized SPDX
// license identifiers, stored lowercase for case-insensitive lookup; the
// value is the canonical-case identifier.
var spdxIdentifiers = buildCanonicalIndex([]string{
	"MIT", "ISC", "0BSD", "Unlicense", "CC0-1.0",
	"Apache-2.0", "BSD-2-Clause", "BSD-3-Clause", "BSD-4-Clause",
	"MPL-2.0", "LGPL-2.1-only", "LGPL-2.1-or-later", "LGPL-3.0-only", "LGPL-3.0-or-later",
	"GPL-2.0-only", "GPL-2.0-or-later", "GPL-3.0-only", "GPL-3.0-or-later",
	"AGPL-3.0-only", "AGPL-3.0-or-later", "WTFPL", "Zlib", "Python-2.0",
	"Artistic-2.0", "EPL-1.0", "EPL-2.0", "BSL-1.0", "Unicode-DFS-2016",
})

func buildCanonicalIndex(ids []string) map[string]string {
	m := make(map[string]string, len(ids))
	for _, id := range ids {
		m[strings.ToLower(id)] = id
	}
	return m
}

// deprecatedLicenses maps a deprecated SPDX identifier (lowercase) to its
// canonical replacement, per the SPDX license-list deprecation table.
var deprecatedLicenses = map[string]string{
	"gpl-3.0":        "GPL-3.0-only",
	"gpl-2.0":        "GPL-2.0-only",
	"lgpl-3.0":       "LGPL-3.0-only",
	"lgpl-2.1":       "LGPL-2.1-only",
	"agpl-3.0":       "AGPL-3.0-only",
	"gpl-3.0+":       "GPL-3.0-or-later",
	"gpl-2.0+":       "GPL-2.0-or-later",
	"lgpl-3.0+":      "LGPL-3.0-or-later",
	"lgpl-2.1+":      "LGPL-2.1-or-later",
}

// licenseExceptions are SPDX exception identifiers valid after "WITH".
var licenseExceptions = map[string]bool{
	"classpath-exception-2.0": true,
	"gcc-exception-3.1":       true,
	"llvm-exception":          true,
}

// ValidateLicense checks the "license" field, returning errors and warnings.
// An empty license string produces no diagnostics by itself; callers enforce
// required-ness separately if a license is mandatory.
func ValidateLicense(license string) (errs []Diagnostic, warns []Diagnostic) {
	if license == "" {
		return nil, nil
	}

	trimmed := strings.TrimSpace(license)
	if strings.EqualFold(trimmed, "UNLICENSED") {
		return nil, nil
	}
	if strings.HasPrefix(strings.ToUpper(trimmed), "SEE LICENSE IN ") {
		rest := strings.TrimSpace(trimmed[len("SEE LICENSE IN "):])
		if rest == "" {
			return []Diagnostic{errDiag("license", CodeInvalidSPDXExpression, "SEE LICENSE IN requires a filename", license)}, nil
		}
		return nil, nil
	}

	expr := trimmed
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		inner := expr[1 : len(expr)-1]
		if !strings.Contains(inner, "(") && !strings.Contains(inner, ")") {
			expr = inner
		}
	}

	tokens, ok := tokenizeLicenseExpression(expr)
	if !ok {
		return []Diagnostic{errDiag("license", CodeInvalidSPDXExpression, "malformed license expression", license)}, nil
	}

	if err := validateLicenseTokenSequence(tokens); err != nil {
		return []Diagnostic{errDiag("license", CodeInvalidSPDXExpression, err.Error(), license)}, nil
	}

	for i, tok := range tokens {
		if tok.kind != tokIdentifier {
			continue
		}
		if i > 0 && tokens[i-1].kind == tokWith {
			// The exception after WITH is checked by validateLicenseTokenSequence
			// against licenseExceptions, not against the license table.
			continue
		}
		canonical, recognized := spdxIdentifiers[strings.ToLower(tok.text)]
		if replacement, deprecated := deprecatedLicenses[strings.ToLower(tok.text)]; deprecated {
			warns = append(warns, Diagnostic{
				Field:   "license",
				Code:    CodeDeprecatedLicense,
				Message: fmt.Sprintf("%q is deprecated; use %q", canonicalOrOriginal(canonical, tok.text), replacement),
				Value:   tok.text,
			})
			continue
		}
		if !recognized {
			errs = append(errs, errDiag("license", CodeInvalidSPDXIdentifier, fmt.Sprintf("%q is not a recognized SPDX identifier", tok.text), tok.text))
		}
	}

	return errs, warns
}

func canonicalOrOriginal(canonical, original string) string {
	if canonical != "" {
		return canonical
	}
	return original
}

type tokKind int

const (
	tokIdentifier tokKind = iota
	tokOr
	tokAnd
	tokWith
)

type licenseToken struct {
	kind tokKind
	text string
}

// tokenizeLicenseExpression splits a flattened (single outer paren stripped)
// SPDX expression into identifier and operator tokens.
func tokenizeLicenseExpression(expr string) ([]licenseToken, bool) {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return nil, false
	}
	tokens := make([]licenseToken, 0, len(fields))
	for _, f := range fields {
		switch strings.ToUpper(f) {
		case "OR":
			tokens = append(tokens, licenseToken{kind: tokOr, text: f})
		case "AND":
			tokens = append(tokens, licenseToken{kind: tokAnd, text: f})
		case "WITH":
			tokens = append(tokens, licenseToken{kind: tokWith, text: f})
		default:
			if strings.ContainsAny(f, "()") {
				return nil, false
			}
			tokens = append(tokens, licenseToken{kind: tokIdentifier, text: f})
		}
	}
	return tokens, true
}

// validateLicenseTokenSequence runs the identifier/operator state machine:
// start and after OR/AND expect an identifier; after an identifier, an
// operator or end; after WITH, an exception identifier.
func validateLicenseTokenSequence(tokens []licenseToken) error {
	const (
		stateStart = iota
		stateAfterIdentifier
		stateAfterOperator
		stateAfterWith
	)
	state := stateStart
	for _, tok := range tokens {
		switch state {
		case stateStart, stateAfterOperator:
			if tok.kind != tokIdentifier {
				return fmt.Errorf("expected an identifier, got %q", tok.text)
			}
			state = stateAfterIdentifier
		case stateAfterIdentifier:
			switch tok.kind {
			case tokOr, tokAnd:
				state = stateAfterOperator
			case tokWith:
				state = stateAfterWith
			default:
				return fmt.Errorf("expected OR, AND, or WITH, got %q", tok.text)
			}
		case stateAfterWith:
			if tok.kind != tokIdentifier {
				return fmt.Errorf("expected an exception identifier after WITH, got %q", tok.text)
			}
			if !licenseExceptions[strings.ToLower(tok.text)] {
				return fmt.Errorf("%q is not a recognized license exception", tok.text)
			}
			state = stateAfterIdentifier
		}
	}
	if state != stateAfterIdentifier {
		return fmt.Errorf("expression cannot end with an operator")
	}
	return nil
}
