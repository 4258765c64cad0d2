package resolve

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResolvedPackage is a single package/version pin pulled out of a lockfile.
type ResolvedPackage struct {
	Name         string
	Version      string
	LockfilePath string
}

type npmPackageInfo struct {
	Version      string                 `json:"version,omitempty"`
	Dependencies map[string]interface{} `json:"dependencies,omitempty"`
}

// npmLockfile is the shape of package-lock.json, covering both the v2/v3
// flat "packages" map (npm 7+) and the v1 nested "dependencies" map
// (npm 5-6).
type npmLockfile struct {
	Version      int                       `json:"lockfileVersion"`
	Packages     map[string]npmPackageInfo `json:"packages,omitempty"`
	Dependencies map[string]npmPackageInfo `json:"dependencies,omitempty"`
}

// ParsePackageLock decodes a package-lock.json document.
func ParsePackageLock(data []byte) (*npmLockfile, error) {
	var lf npmLockfile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("resolve: parse package-lock.json: %w", err)
	}
	return &lf, nil
}

// ExtractResolvedPackages flattens a parsed package-lock.json into a list
// of resolved name/version pins, recursing through v1's nested
// dependencies when present.
func ExtractResolvedPackages(lf *npmLockfile, path string) []ResolvedPackage {
	var out []ResolvedPackage

	if len(lf.Packages) > 0 {
		for pkgPath, info := range lf.Packages {
			if pkgPath == "" || pkgPath == "." || info.Version == "" {
				continue
			}
			name := pkgPath
			if idx := strings.LastIndex(pkgPath, "node_modules/"); idx >= 0 {
				name = pkgPath[idx+len("node_modules/"):]
			}
			out = append(out, ResolvedPackage{Name: name, Version: info.Version, LockfilePath: path})
		}
		return out
	}

	if len(lf.Dependencies) > 0 {
		extractDepsRecursive(lf.Dependencies, &out, path)
	}
	return out
}

func extractDepsRecursive(deps map[string]npmPackageInfo, out *[]ResolvedPackage, path string) {
	for name, info := range deps {
		if info.Version == "" {
			continue
		}
		*out = append(*out, ResolvedPackage{Name: name, Version: info.Version, LockfilePath: path})

		if len(info.Dependencies) == 0 {
			continue
		}
		nested := make(map[string]npmPackageInfo, len(info.Dependencies))
		for k, v := range info.Dependencies {
			if m, ok := v.(map[string]interface{}); ok {
				version, _ := m["version"].(string)
				nested[k] = npmPackageInfo{Version: version}
			}
		}
		extractDepsRecursive(nested, out, path)
	}
}

// ParseYarnLock extracts name/version pins from a yarn.lock document. Only
// the resolved "version" field of each block is read; yarn.lock's
// non-JSON, YAML-adjacent grammar otherwise has no bearing on policy
// checks, which only need what got resolved.
func ParseYarnLock(data []byte, path string) []ResolvedPackage {
	var out []ResolvedPackage
	lines := strings.Split(string(data), "\n")

	var pendingNames []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if !strings.HasPrefix(line, " ") && strings.HasSuffix(trimmed, ":") {
			pendingNames = yarnBlockNames(strings.TrimSuffix(trimmed, ":"))
			continue
		}

		if strings.HasPrefix(trimmed, "version ") && len(pendingNames) > 0 {
			version := strings.Trim(strings.TrimPrefix(trimmed, "version "), `"`)
			for _, name := range pendingNames {
				out = append(out, ResolvedPackage{Name: name, Version: version, LockfilePath: path})
			}
			pendingNames = nil
		}
	}
	return out
}

// yarnBlockNames parses a yarn.lock descriptor-list header (e.g.
// `"lodash@^4.17.0", lodash@^4.17.20:`) into the distinct package names it
// declares.
func yarnBlockNames(header string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `"`)
		if part == "" {
			continue
		}
		at := strings.LastIndex(part, "@")
		if at <= 0 {
			continue
		}
		name := part[:at]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
