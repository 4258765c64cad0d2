package manifest

import (
	"regexp"
	"strings"
)

var shorthandRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

var hostedPrefixes = map[string]string{
	"github:":    "github.com",
	"gitlab:":    "gitlab.com",
	"bitbucket:": "bitbucket.org",
}

// NormalizeRepository converts a "repository" field value (string shorthand
// or object form) into its canonical object shape.
func NormalizeRepository(value any) (*Repository, []Diagnostic) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return normalizeRepositoryString(v)
	case map[string]any:
		repo := &Repository{Type: "git"}
		if t, ok := v["type"].(string); ok && t != "" {
			repo.Type = t
		}
		if dir, ok := v["directory"].(string); ok {
			repo.Directory = dir
		}
		rawURL, _ := v["url"].(string)
		if rawURL == "" {
			return nil, []Diagnostic{errDiag("repository.url", CodeInvalidURL, "repository object requires a url", value)}
		}
		repo.URL = upgradeGitProtocol(rawURL)
		return repo, nil
	default:
		return nil, []Diagnostic{errDiag("repository", CodeInvalidURL, "repository must be a string or object", value)}
	}
}

func normalizeRepositoryString(s string) (*Repository, []Diagnostic) {
	if s == "" {
		return nil, nil
	}

	for prefix, host := range hostedPrefixes {
		if strings.HasPrefix(s, prefix) {
			path := strings.TrimPrefix(s, prefix)
			if path == "" {
				return nil, []Diagnostic{errDiag("repository", CodeInvalidURL, "repository shorthand missing path", s)}
			}
			return &Repository{Type: "git", URL: "git+https://" + host + "/" + path + ".git"}, nil
		}
	}

	if strings.HasPrefix(s, "git://") || strings.HasPrefix(s, "git+") ||
		strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return &Repository{Type: "git", URL: upgradeGitProtocol(s)}, nil
	}

	if strings.HasPrefix(s, "git@") {
		return &Repository{Type: "git", URL: gitSSHToURL(s)}, nil
	}

	if shorthandRe.MatchString(s) {
		return &Repository{Type: "git", URL: "git+https://github.com/" + s + ".git"}, nil
	}

	return nil, []Diagnostic{errDiag("repository", CodeInvalidURL, "unrecognized repository shorthand", s)}
}

// upgradeGitProtocol rewrites a bare git:// URL to git+https://. Every other
// URL, including a plain http(s) URL without a git+ prefix, is returned
// unchanged.
func upgradeGitProtocol(s string) string {
	if strings.HasPrefix(s, "git://") {
		return "git+https://" + strings.TrimPrefix(s, "git://")
	}
	return s
}

// gitSSHToURL converts "git@host:path" into "git+ssh://git@host/path".
func gitSSHToURL(s string) string {
	rest := strings.TrimPrefix(s, "git@")
	idx := strings.Index(rest, ":")
	if idx < 0 {
		return "git+ssh://" + rest
	}
	host, path := rest[:idx], rest[idx+1:]
	return "git+ssh://git@" + host + "/" + path
}
