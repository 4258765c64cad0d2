package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/tkr-pkgcore/pkg/output"
	"github.com/tuckertucker/tkr-pkgcore/pkg/resolve"
	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
	"github.com/tuckertucker/tkr-pkgcore/pkg/vulnfeed"
)

var (
	resolveLockfileOnlyFlag bool
	resolveConcurrencyFlag  int
	resolveDenyFlag         []string
	resolveAllowFlag        []string
	resolveLicensesFlag     []string
	resolveSeverityFlag     string
	resolveVulnFeedURLFlag  string
	resolveVerboseFlag      bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Walk a directory for manifests and lockfiles and report policy violations",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveLockfileOnlyFlag, "lockfile-only", false, "only scan lockfiles, skip package.json")
	resolveCmd.Flags().IntVar(&resolveConcurrencyFlag, "concurrency", 0, "bound concurrent fetches (default: 8)")
	resolveCmd.Flags().StringSliceVar(&resolveAllowFlag, "allow", nil, "allow-list glob patterns")
	resolveCmd.Flags().StringSliceVar(&resolveDenyFlag, "deny", nil, "deny-list glob patterns")
	resolveCmd.Flags().StringSliceVar(&resolveLicensesFlag, "allowed-license", nil, "allowed SPDX license identifiers")
	resolveCmd.Flags().StringVar(&resolveSeverityFlag, "max-severity", "", "maximum tolerated vulnerability severity")
	resolveCmd.Flags().StringVar(&resolveVulnFeedURLFlag, "vuln-feed-url", "", "CSV vulnerability feed URL (default: built-in feed)")
	resolveCmd.Flags().BoolVarP(&resolveVerboseFlag, "verbose", "v", false, "enable progress logging")
}

func runResolve(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}

	feed := vulnfeed.NewFeed()
	if resolveVulnFeedURLFlag != "" || len(resolveLicensesFlag) > 0 || resolveSeverityFlag != "" {
		if err := feed.LoadFromCSVURL(resolveVulnFeedURLFlag); err != nil && resolveVerboseFlag {
			fmt.Fprintf(os.Stderr, "warning: failed to load vulnerability feed: %v\n", err)
		}
	}

	var logger *resolve.CapturingLogger
	if resolveVerboseFlag {
		logger = resolve.NewCapturingLogger()
	}

	options := resolve.ScanOptions{
		Path:         path,
		LockfileOnly: resolveLockfileOnlyFlag,
		Concurrency:  resolveConcurrencyFlag,
		Logger:       logger,
		Policy: security.Policy{
			AllowList:       resolveAllowFlag,
			DenyList:        resolveDenyFlag,
			AllowedLicenses: resolveLicensesFlag,
			MaxSeverity:     security.Severity(resolveSeverityFlag),
		},
		Vulnerabilities: feed,
	}

	result, err := resolve.RunScan(context.Background(), options)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if jsonFlag {
		text, err := output.FormatScanJSON(result)
		if err != nil {
			return fmt.Errorf("format JSON output: %w", err)
		}
		fmt.Println(text)
	} else {
		fmt.Print(output.FormatScan(result, time.Now()))
	}

	if len(result.Violations) > 0 {
		os.Exit(1)
	}
	return nil
}
