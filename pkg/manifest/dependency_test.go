package manifest

import "testing"

func TestClassifyDependency(t *testing.T) {
	tests := []struct {
		name string
		spec string
		kind SpecifierKind
	}{
		{"exact", "1.2.3", SpecifierExact},
		{"range caret", "^1.2.3", SpecifierRange},
		{"range tilde", "~1.2.3", SpecifierRange},
		{"git ssh", "git+ssh://git@github.com/user/repo.git", SpecifierGit},
		{"git plain", "git://github.com/user/repo.git", SpecifierGit},
		{"git at", "git@github.com:user/repo.git", SpecifierGit},
		{"github shorthand", "user/repo", SpecifierGitHub},
		{"github shorthand with ref", "user/repo#v1.0.0", SpecifierGitHub},
		{"file", "file:../local-pkg", SpecifierFile},
		{"alias", "npm:real-package@^1.0.0", SpecifierAlias},
		{"workspace", "workspace:*", SpecifierWorkspace},
		{"url", "https://example.com/pkg.tgz", SpecifierURL},
		{"tag", "latest", SpecifierTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDependency(tt.spec)
			if got.Kind != tt.kind {
				t.Errorf("ClassifyDependency(%q).Kind = %s; want %s", tt.spec, got.Kind, tt.kind)
			}
		})
	}
}

func TestClassifyDependency_AliasFields(t *testing.T) {
	got := ClassifyDependency("npm:real-package@^1.0.0")
	if got.RealName != "real-package" || got.Version != "^1.0.0" {
		t.Errorf("got %+v", got)
	}
}

func TestClassifyDependency_FilePath(t *testing.T) {
	got := ClassifyDependency("file:../local-pkg")
	if got.Path != "../local-pkg" {
		t.Errorf("got %+v", got)
	}
}

func TestValidateDependencySpec(t *testing.T) {
	if d := ValidateDependencySpec("foo", "^1.2.3"); d != nil {
		t.Errorf("valid range should not error, got %v", d)
	}
	if d := ValidateDependencySpec("foo", "1.2.3"); d != nil {
		t.Errorf("exact version is not range-kind, should not error here, got %v", d)
	}
}
