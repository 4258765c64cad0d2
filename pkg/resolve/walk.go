// Package resolve discovers package manifests and lockfiles under a
// directory tree, validates each manifest through pkg/manifest, classifies
// its dependency specifiers, and runs pkg/security policy checks against
// the result. It is the registry-facing glue layer: thin coordination, no
// dependency-graph resolution.
package resolve

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindManifests finds every package.json file under root, skipping
// node_modules. Returns absolute-as-given paths in the order WalkDir visits
// them (lexical per directory).
func FindManifests(root string) ([]string, error) {
	var manifests []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "node_modules" {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == "package.json" {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve: find manifests: %w", err)
	}
	return manifests, nil
}

// FindLockfiles finds every package-lock.json or yarn.lock under root,
// skipping node_modules.
func FindLockfiles(root string) ([]string, error) {
	var lockfiles []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "node_modules" {
			return filepath.SkipDir
		}
		if d.IsDir() {
			return nil
		}
		switch d.Name() {
		case "package-lock.json", "yarn.lock":
			lockfiles = append(lockfiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve: find lockfiles: %w", err)
	}
	return lockfiles, nil
}

// IsYarnLockfile reports whether path names a yarn.lock file.
func IsYarnLockfile(path string) bool {
	return strings.HasSuffix(path, "yarn.lock")
}
