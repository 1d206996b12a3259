package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/item-converter/internal/conversion"
	"github.com/jonathan/item-converter/internal/jsontree"
	"github.com/jonathan/item-converter/internal/observability"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a document against the publishing rules",
	Long:  "Applies the Status, PublishDate and TestRun rules to a JSON document without rendering it.",
	RunE:  runValidate,
}

var (
	validateInput   string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to JSON document (required)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a formatted verdict")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conv := newConverter(cfg, newLogger(cfg), nil)
	return validateFile(conv, validateInput, validateVerbose, cmd.OutOrStdout())
}

// validateFile prints the verdict for one file. A rule violation is returned
// as an error so the process exits with status 1.
func validateFile(conv *conversion.Converter, path string, verbose bool, out io.Writer) error {
	root, err := readDocument(path)
	if err != nil {
		return err
	}

	result, err := conv.Validate(root)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", path, err)
	}

	if verbose {
		observability.NewPrinter(out).PrintValidationResult(result)
	}
	if !result.Valid {
		_, _ = fmt.Fprintf(out, "Validation failed: %s\n", result.ErrorMessage)
		return &conversion.ValidationFailedError{Result: result}
	}

	_, _ = fmt.Fprintln(out, "Validation passed")
	return nil
}

// readDocument loads and parses a JSON document from path.
func readDocument(path string) (*jsontree.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("JSON file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	root, err := jsontree.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return root, nil
}
