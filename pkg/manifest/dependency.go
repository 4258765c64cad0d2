package manifest

import (
	"regexp"
	"strings"

	"github.com/tuckertucker/tkr-pkgcore/pkg/semver"
)

// SpecifierKind classifies a dependency version specifier.
type SpecifierKind string

const (
	SpecifierExact     SpecifierKind = "exact"
	SpecifierRange     SpecifierKind = "range"
	SpecifierGit       SpecifierKind = "git"
	SpecifierGitHub    SpecifierKind = "github"
	SpecifierFile      SpecifierKind = "file"
	SpecifierAlias     SpecifierKind = "alias"
	SpecifierWorkspace SpecifierKind = "workspace"
	SpecifierURL       SpecifierKind = "url"
	SpecifierTag       SpecifierKind = "tag"
)

// DependencySpecifier is the classified form of a single dependency entry.
type DependencySpecifier struct {
	Kind     SpecifierKind
	Raw      string
	URL      string
	Ref      string
	Path     string
	RealName string
	Version  string
}

var githubShorthandRe = regexp.MustCompile(`^([\w.-]+)/([\w.-]+?)(?:#(.+))?$`)

// ClassifyDependency determines the kind of a dependency specifier string
// by trying, in order: exact semver, git, file, npm alias, workspace, URL,
// range, GitHub shorthand, else tag.
func ClassifyDependency(spec string) DependencySpecifier {
	out := DependencySpecifier{Raw: spec}

	if _, ok := semver.Parse(spec, semver.Options{}); ok {
		out.Kind = SpecifierExact
		return out
	}

	if strings.HasPrefix(spec, "git+") || strings.HasPrefix(spec, "git://") ||
		strings.HasPrefix(spec, "git@") || strings.HasSuffix(spec, ".git") {
		out.Kind = SpecifierGit
		out.URL = spec
		return out
	}

	if strings.HasPrefix(spec, "file:") {
		out.Kind = SpecifierFile
		out.Path = strings.TrimPrefix(spec, "file:")
		return out
	}

	if strings.HasPrefix(spec, "npm:") {
		rest := strings.TrimPrefix(spec, "npm:")
		out.Kind = SpecifierAlias
		if idx := strings.LastIndex(rest, "@"); idx > 0 {
			out.RealName = rest[:idx]
			out.Version = rest[idx+1:]
		} else {
			out.RealName = rest
		}
		return out
	}

	if strings.HasPrefix(spec, "workspace:") {
		out.Kind = SpecifierWorkspace
		return out
	}

	if strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://") {
		out.Kind = SpecifierURL
		out.URL = spec
		return out
	}

	if _, ok := semver.ParseRange(spec, semver.Options{}); ok {
		out.Kind = SpecifierRange
		return out
	}

	if m := githubShorthandRe.FindStringSubmatch(spec); m != nil && !strings.Contains(spec, ":") {
		out.Kind = SpecifierGitHub
		out.Ref = m[3]
		return out
	}

	out.Kind = SpecifierTag
	return out
}

// ValidateDependencySpec checks a range-typed dependency specifier actually
// parses as a valid range, returning a diagnostic if it does not.
func ValidateDependencySpec(name, spec string) *Diagnostic {
	classified := ClassifyDependency(spec)
	if classified.Kind != SpecifierRange {
		return nil
	}
	if _, ok := semver.ParseRange(spec, semver.Options{}); !ok {
		d := errDiag("dependencies."+name, CodeInvalidDependency, "dependency range does not parse", spec)
		return &d
	}
	return nil
}
