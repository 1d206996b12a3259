package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/item-converter/internal/observability"
	"github.com/jonathan/item-converter/internal/schemas"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check a document's structure against a JSON Schema",
	Long: "Validates a JSON document against the bundled published-item schema, or against --schema. " +
		"This is a structural check only; use validate for the publishing rules.",
	RunE: runLint,
}

var (
	lintInput  string
	lintSchema string
)

func init() {
	lintCmd.Flags().StringVarP(&lintInput, "in", "i", "", "Path to JSON document (required)")
	lintCmd.Flags().StringVarP(&lintSchema, "schema", "s", "", "Path to JSON Schema file (defaults to the bundled schema)")

	if err := lintCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, _ []string) error {
	return lintFile(lintInput, lintSchema, cmd.OutOrStdout())
}

// lintFile checks path against schemaPath, or the bundled schema when
// schemaPath is empty.
func lintFile(path, schemaPath string, out io.Writer) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", path)
	}

	var err error
	if schemaPath != "" {
		resolved := schemas.ResolveSchemaPath(schemaPath)
		if resolved == "" {
			resolved = schemaPath
		}
		err = schemas.ValidateJSON(resolved, path)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		err = schemas.Lint(data)
	}

	if err == nil {
		_, _ = fmt.Fprintln(out, "Schema check passed")
		return nil
	}

	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		observability.NewPrinter(out).PrintSchemaErrors(verr)
		return fmt.Errorf("schema check found %d error(s)", len(verr.Errors))
	}
	return err
}
