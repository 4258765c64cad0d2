package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/tkr-pkgcore/pkg/output"
	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
)

var (
	policyFileFlag     string
	policyLicenseFlag  string
	policyMaxSizeFlag  int64
	policySizeFlag     int64
	policyAllowFlag    []string
	policyDenyFlag     []string
	policyLicensesFlag []string
	policySeverityFlag string
)

var policyCmd = &cobra.Command{
	Use:   "policy <package-name>",
	Short: "Evaluate a security policy against a package name, license, and size",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicy,
}

func init() {
	rootCmd.AddCommand(policyCmd)
	policyCmd.Flags().StringVar(&policyFileFlag, "policy-file", "", "path to a JSON-encoded policy (see security.Policy.ToJSON)")
	policyCmd.Flags().StringVar(&policyLicenseFlag, "license", "", "SPDX license expression to check")
	policyCmd.Flags().Int64Var(&policySizeFlag, "size", 0, "package size in bytes to check")
	policyCmd.Flags().StringSliceVar(&policyAllowFlag, "allow", nil, "allow-list glob patterns (ignored if --policy-file is set)")
	policyCmd.Flags().StringSliceVar(&policyDenyFlag, "deny", nil, "deny-list glob patterns (ignored if --policy-file is set)")
	policyCmd.Flags().StringSliceVar(&policyLicensesFlag, "allowed-license", nil, "allowed SPDX license identifiers (ignored if --policy-file is set)")
	policyCmd.Flags().StringVar(&policySeverityFlag, "max-severity", "", "maximum tolerated vulnerability severity (ignored if --policy-file is set)")
	policyCmd.Flags().Int64Var(&policyMaxSizeFlag, "max-size", 0, "maximum package size in bytes (ignored if --policy-file is set)")
}

func runPolicy(cmd *cobra.Command, args []string) error {
	name := args[0]

	policy, err := loadPolicy()
	if err != nil {
		return err
	}

	result := policy.CheckAll(name, policyLicenseFlag, nil, policySizeFlag)

	if jsonFlag {
		text, err := output.FormatPolicyCheckJSON(result)
		if err != nil {
			return fmt.Errorf("format JSON output: %w", err)
		}
		fmt.Println(text)
	} else {
		fmt.Print(output.FormatPolicyCheck(result))
	}

	if !result.Allowed {
		os.Exit(1)
	}
	return nil
}

func loadPolicy() (security.Policy, error) {
	if policyFileFlag != "" {
		data, err := os.ReadFile(policyFileFlag)
		if err != nil {
			return security.Policy{}, fmt.Errorf("read %s: %w", policyFileFlag, err)
		}
		return security.FromJSON(data)
	}

	return security.Policy{
		AllowList:       policyAllowFlag,
		DenyList:        policyDenyFlag,
		AllowedLicenses: policyLicensesFlag,
		MaxSeverity:     security.Severity(policySeverityFlag),
		MaxSizeBytes:    policyMaxSizeFlag,
	}, nil
}
