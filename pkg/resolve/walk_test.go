package resolve

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindManifests_SkipsNodeModules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"root"}`)
	writeFile(t, filepath.Join(root, "packages", "a", "package.json"), `{"name":"a"}`)
	writeFile(t, filepath.Join(root, "node_modules", "dep", "package.json"), `{"name":"dep"}`)

	found, err := FindManifests(root)
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(found)
	if len(found) != 2 {
		t.Fatalf("got %v", found)
	}
	for _, p := range found {
		if filepath.Base(filepath.Dir(p)) == "dep" {
			t.Errorf("node_modules manifest leaked into results: %s", p)
		}
	}
}

func TestFindLockfiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package-lock.json"), `{}`)
	writeFile(t, filepath.Join(root, "packages", "a", "yarn.lock"), ``)
	writeFile(t, filepath.Join(root, "node_modules", "dep", "package-lock.json"), `{}`)

	found, err := FindLockfiles(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("got %v", found)
	}
}

func TestIsYarnLockfile(t *testing.T) {
	if !IsYarnLockfile("/a/b/yarn.lock") {
		t.Error("expected yarn.lock to match")
	}
	if IsYarnLockfile("/a/b/package-lock.json") {
		t.Error("package-lock.json must not match")
	}
}
