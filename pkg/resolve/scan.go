package resolve

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tuckertucker/tkr-pkgcore/pkg/manifest"
	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
)

// defaultConcurrency bounds how many manifests/lockfiles are fetched and
// parsed at once when ScanOptions.Concurrency is left at zero.
const defaultConcurrency = 8

// ScanOptions configures a directory scan.
type ScanOptions struct {
	// Path is the root directory to walk.
	Path string

	// Fetcher supplies file contents. Defaults to FileFetcher{}.
	Fetcher Fetcher

	// Policy is evaluated against every discovered package name, its
	// manifest license, and any known vulnerabilities. The zero Policy
	// imposes no restriction and every check passes.
	Policy security.Policy

	// Vulnerabilities looks up known-vulnerable versions for a package
	// name. May be nil, in which case no vulnerability checks run.
	Vulnerabilities VulnerabilitySource

	// LockfileOnly skips package.json discovery and validation, scanning
	// only lockfiles.
	LockfileOnly bool

	// Concurrency bounds concurrent fetches. Defaults to
	// defaultConcurrency when zero or negative.
	Concurrency int

	// Logger receives progress output when non-nil.
	Logger *CapturingLogger
}

// VulnerabilitySource supplies known vulnerabilities for a package name.
// pkg/vulnfeed.Feed satisfies this directly.
type VulnerabilitySource interface {
	Vulnerabilities(pkg string) []security.Vulnerability
}

// ClassifiedDependency pairs a dependency's declared name with its
// classified version specifier.
type ClassifiedDependency struct {
	Name       string
	Field      string // "dependencies", "devDependencies", "peerDependencies", "optionalDependencies"
	Specifier  manifest.DependencySpecifier
	Violations []security.Violation
}

// ManifestResult is the outcome of fetching, validating, and
// policy-checking a single package.json.
type ManifestResult struct {
	Path         string
	Validation   manifest.ValidationResult
	Dependencies []ClassifiedDependency
	Violations   []security.Violation
	FetchError   error
}

// ScanResult aggregates every manifest and lockfile processed during a
// scan.
type ScanResult struct {
	ManifestsScanned int
	LockfilesScanned int
	PackagesChecked  int

	ManifestResults  []ManifestResult
	LockfilePackages []ResolvedPackage

	Violations []security.Violation
}

// RunScan walks options.Path, validates every discovered manifest, and
// runs policy checks over every declared and resolved dependency. Manifest
// fetches run concurrently, bounded by options.Concurrency; lockfiles are
// then fetched and parsed the same way.
func RunScan(ctx context.Context, options ScanOptions) (*ScanResult, error) {
	if options.Fetcher == nil {
		options.Fetcher = FileFetcher{}
	}
	concurrency := options.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var manifestPaths, lockfilePaths []string
	var err error

	if !options.LockfileOnly {
		manifestPaths, err = FindManifests(options.Path)
		if err != nil {
			return nil, err
		}
	}
	lockfilePaths, err = FindLockfiles(options.Path)
	if err != nil {
		return nil, err
	}

	if options.Logger != nil {
		options.Logger.Printf("found %d manifests, %d lockfiles under %s\n",
			len(manifestPaths), len(lockfilePaths), options.Path)
	}

	manifestResults := make([]ManifestResult, len(manifestPaths))
	if len(manifestPaths) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, path := range manifestPaths {
			i, path := i, path
			g.Go(func() error {
				manifestResults[i] = resolveManifest(gctx, options, path)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("resolve: scan manifests: %w", err)
		}
	}

	lockfilePackagesByFile := make([][]ResolvedPackage, len(lockfilePaths))
	if len(lockfilePaths) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, path := range lockfilePaths {
			i, path := i, path
			g.Go(func() error {
				pkgs, err := resolveLockfile(gctx, options, path)
				if err != nil {
					if options.Logger != nil {
						options.Logger.Printf("warning: failed to parse %s: %v\n", path, err)
					}
					return nil
				}
				lockfilePackagesByFile[i] = pkgs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("resolve: scan lockfiles: %w", err)
		}
	}

	result := &ScanResult{
		ManifestsScanned: len(manifestPaths),
		LockfilesScanned: len(lockfilePaths),
		ManifestResults:  manifestResults,
	}

	for _, mr := range manifestResults {
		result.PackagesChecked += len(mr.Dependencies)
		result.Violations = append(result.Violations, mr.Violations...)
		for _, dep := range mr.Dependencies {
			result.Violations = append(result.Violations, dep.Violations...)
		}
	}

	for _, pkgs := range lockfilePackagesByFile {
		result.LockfilePackages = append(result.LockfilePackages, pkgs...)
		result.PackagesChecked += len(pkgs)
		for _, pkg := range pkgs {
			result.Violations = append(result.Violations, checkLockedPackage(options, pkg)...)
		}
	}

	return result, nil
}

func resolveManifest(ctx context.Context, options ScanOptions, path string) ManifestResult {
	data, err := options.Fetcher.Fetch(ctx, path)
	if err != nil {
		return ManifestResult{Path: path, FetchError: fmt.Errorf("resolve: fetch %s: %w", path, err)}
	}

	validation := manifest.ParsePackageJson(data, manifest.Options{})
	result := ManifestResult{Path: path, Validation: validation}

	if validation.Parsed == nil {
		return result
	}
	parsed := validation.Parsed

	var vulns []security.Vulnerability
	if options.Vulnerabilities != nil {
		vulns = options.Vulnerabilities.Vulnerabilities(parsed.Name)
	}
	check := options.Policy.CheckAll(parsed.Name, parsed.License, vulns, int64(len(data)))
	result.Violations = append(result.Violations, check.Violations...)

	result.Dependencies = append(result.Dependencies, classifyDependencyField(parsed.Dependencies, "dependencies")...)
	result.Dependencies = append(result.Dependencies, classifyDependencyField(parsed.DevDependencies, "devDependencies")...)
	result.Dependencies = append(result.Dependencies, classifyDependencyField(parsed.PeerDependencies, "peerDependencies")...)
	result.Dependencies = append(result.Dependencies, classifyDependencyField(parsed.OptionalDependencies, "optionalDependencies")...)

	for i := range result.Dependencies {
		dep := &result.Dependencies[i]
		var depVulns []security.Vulnerability
		if options.Vulnerabilities != nil {
			depVulns = options.Vulnerabilities.Vulnerabilities(dep.Name)
		}
		check := options.Policy.CheckAll(dep.Name, "", depVulns, 0)
		dep.Violations = check.Violations
	}

	return result
}

func classifyDependencyField(deps map[string]string, field string) []ClassifiedDependency {
	if len(deps) == 0 {
		return nil
	}
	out := make([]ClassifiedDependency, 0, len(deps))
	for name, spec := range deps {
		out = append(out, ClassifiedDependency{
			Name:      name,
			Field:     field,
			Specifier: manifest.ClassifyDependency(spec),
		})
	}
	return out
}

func resolveLockfile(ctx context.Context, options ScanOptions, path string) ([]ResolvedPackage, error) {
	data, err := options.Fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("resolve: fetch %s: %w", path, err)
	}

	if IsYarnLockfile(path) {
		return ParseYarnLock(data, path), nil
	}

	lf, err := ParsePackageLock(data)
	if err != nil {
		return nil, err
	}
	return ExtractResolvedPackages(lf, path), nil
}

func checkLockedPackage(options ScanOptions, pkg ResolvedPackage) []security.Violation {
	var vulns []security.Vulnerability
	if options.Vulnerabilities != nil {
		vulns = options.Vulnerabilities.Vulnerabilities(pkg.Name)
	}
	check := options.Policy.CheckAll(pkg.Name, "", vulns, 0)
	return check.Violations
}
