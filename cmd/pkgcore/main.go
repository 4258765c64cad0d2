// Command pkgcore is a thin CLI shell over the package-manifest, semver,
// security-policy, and directory-resolution packages. It carries no logic
// of its own beyond flag wiring and output formatting.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
