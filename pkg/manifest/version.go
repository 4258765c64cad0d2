package manifest

import (
	"strings"

	"github.com/tuckertucker/tkr-pkgcore/pkg/semver"
)

// ValidateVersion checks a version string against strict semver, returning
// the diagnostic produced if any. A nil return means the version is valid.
func ValidateVersion(version string) *Diagnostic {
	if version == "" {
		d := errDiag("version", CodeInvalidVersion, "version is required", version)
		return &d
	}
	if strings.HasPrefix(version, "v") || strings.HasPrefix(version, "V") {
		d := errDiag("version", CodeInvalidSemver, "version must not have a leading v", version)
		return &d
	}
	if strings.HasPrefix(version, "-") && len(version) > 1 && version[1] >= '0' && version[1] <= '9' {
		d := errDiag("version", CodeInvalidSemver, "version must not start with a dash", version)
		return &d
	}
	if _, ok := semver.Parse(version, semver.Options{}); !ok {
		d := errDiag("version", CodeInvalidSemver, "version is not valid semver", version)
		return &d
	}
	return nil
}
