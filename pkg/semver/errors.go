package semver

import "fmt"

// ParseError reports that a string could not be parsed as a semantic
// version. Callers that need a hard failure (rather than the ok-bool
// returned by Parse) use New, which returns this error.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("semver: invalid version %q", e.Input)
}
