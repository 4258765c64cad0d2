package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/tkr-pkgcore/pkg/manifest"
	"github.com/tuckertucker/tkr-pkgcore/pkg/output"
)

var relaxPrivateFlag bool

var validateCmd = &cobra.Command{
	Use:   "validate <package.json>",
	Short: "Validate a package.json manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&relaxPrivateFlag, "relax-private", false, "skip name/version strictness for private packages")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	result := manifest.ParsePackageJson(data, manifest.Options{RelaxPrivate: relaxPrivateFlag})

	if jsonFlag {
		text, err := output.FormatValidationJSON(result)
		if err != nil {
			return fmt.Errorf("format JSON output: %w", err)
		}
		fmt.Println(text)
	} else {
		fmt.Print(output.FormatValidation(path, result))
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}
