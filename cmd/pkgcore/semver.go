package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/tkr-pkgcore/pkg/semver"
)

var looseFlag bool

var semverCmd = &cobra.Command{
	Use:   "semver",
	Short: "Version and range utilities",
}

var satisfiesCmd = &cobra.Command{
	Use:   "satisfies <version> <range>",
	Short: "Report whether a version satisfies a range",
	Args:  cobra.ExactArgs(2),
	RunE:  runSatisfies,
}

var maxSatisfyingCmd = &cobra.Command{
	Use:   "max-satisfying <range> <version...>",
	Short: "Print the highest version satisfying a range",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMaxSatisfying,
}

var validRangeCmd = &cobra.Command{
	Use:   "valid-range <range>",
	Short: "Print the canonical form of a range, or fail if invalid",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidRange,
}

var incCmd = &cobra.Command{
	Use:   "inc <version> <release>",
	Short: "Increment a version (major, minor, patch, premajor, preminor, prepatch, prerelease)",
	Args:  cobra.ExactArgs(2),
	RunE:  runInc,
}

var (
	incIdentifierFlag     string
	incIdentifierBaseFlag string
)

func init() {
	rootCmd.AddCommand(semverCmd)
	semverCmd.PersistentFlags().BoolVar(&looseFlag, "loose", false, "parse with loose-mode tolerance")
	semverCmd.AddCommand(satisfiesCmd, maxSatisfyingCmd, validRangeCmd, incCmd)
	incCmd.Flags().StringVar(&incIdentifierFlag, "identifier", "", "prerelease identifier for pre* releases")
	incCmd.Flags().StringVar(&incIdentifierBaseFlag, "identifier-base", "", `seed for a freshly created prerelease track; "false" seeds at 1 instead of 0`)
}

func opts() semver.Options {
	return semver.Options{Loose: looseFlag}
}

func runSatisfies(cmd *cobra.Command, args []string) error {
	versionStr, rangeStr := args[0], args[1]

	v, ok := semver.Parse(versionStr, opts())
	if !ok {
		return fmt.Errorf("invalid version: %s", versionStr)
	}
	r, ok := semver.ParseRange(rangeStr, opts())
	if !ok {
		return fmt.Errorf("invalid range: %s", rangeStr)
	}

	satisfied := semver.Satisfies(v, r, opts())
	fmt.Println(satisfied)
	if !satisfied {
		os.Exit(1)
	}
	return nil
}

func runMaxSatisfying(cmd *cobra.Command, args []string) error {
	rangeStr := args[0]
	r, ok := semver.ParseRange(rangeStr, opts())
	if !ok {
		return fmt.Errorf("invalid range: %s", rangeStr)
	}

	versions := make([]semver.Version, 0, len(args)-1)
	for _, vs := range args[1:] {
		v, ok := semver.Parse(vs, opts())
		if !ok {
			return fmt.Errorf("invalid version: %s", vs)
		}
		versions = append(versions, v)
	}

	best, ok := semver.MaxSatisfying(versions, r, opts())
	if !ok {
		return fmt.Errorf("no version satisfies %s", rangeStr)
	}
	fmt.Println(best.String())
	return nil
}

func runValidRange(cmd *cobra.Command, args []string) error {
	canonical, ok := semver.ValidRange(args[0], opts())
	if !ok {
		return fmt.Errorf("invalid range: %s", args[0])
	}
	fmt.Println(canonical)
	return nil
}

func runInc(cmd *cobra.Command, args []string) error {
	v, ok := semver.Parse(args[0], opts())
	if !ok {
		return fmt.Errorf("invalid version: %s", args[0])
	}

	next, ok := semver.Inc(v, semver.ReleaseType(args[1]), incIdentifierFlag, incIdentifierBaseFlag)
	if !ok {
		return fmt.Errorf("invalid release type: %s", args[1])
	}
	fmt.Println(next.String())
	return nil
}
