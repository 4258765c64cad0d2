package main

import (
	"github.com/spf13/cobra"
)

var jsonFlag bool

var rootCmd = &cobra.Command{
	Use:   "pkgcore",
	Short: "Core package-manifest, semver, and policy toolkit",
	Long: `pkgcore exposes the semantic-version engine, package-manifest
validator, security policy engine, and directory resolver as a single CLI.

Subcommands:
  validate   validate a package.json against the manifest rules
  semver     version/range utilities (satisfies, max-satisfying, valid-range, inc)
  policy     evaluate a security policy against a package
  resolve    walk a directory for manifests/lockfiles and report violations`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "output results as JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
