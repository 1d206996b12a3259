package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jonathan/item-converter/internal/conversion"
	"github.com/jonathan/item-converter/internal/observability"
	"github.com/jonathan/item-converter/internal/rendering"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert JSON documents to XML",
	Long: "Validates each input document and writes the XML rendering of those that pass. " +
		"With a single input and no --out directory the XML is written to stdout.",
	RunE: runConvert,
}

var (
	convertInputs         []string
	convertOutputDir      string
	convertSkipValidation bool
	convertWorkers        int
	convertVerbose        bool
	convertDump           bool
)

func init() {
	convertCmd.Flags().StringArrayVarP(&convertInputs, "in", "i", nil, "Path to JSON document (repeatable, required)")
	convertCmd.Flags().StringVarP(&convertOutputDir, "out", "o", "", "Directory for <name>.xml outputs")
	convertCmd.Flags().BoolVar(&convertSkipValidation, "skip-validation", false, "Render without applying the publishing rules")
	convertCmd.Flags().IntVarP(&convertWorkers, "workers", "w", runtime.NumCPU(), "Maximum files converted concurrently")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print item summaries and a conversion report")
	convertCmd.Flags().BoolVar(&convertDump, "dump", false, "Print the extracted item model for debugging")

	if err := convertCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(convertCmd)
}

// convertOptions controls a batch conversion.
type convertOptions struct {
	OutputDir      string
	SkipValidation bool
	Workers        int
	Verbose        bool
	Dump           bool
}

func runConvert(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conv := newConverter(cfg, newLogger(cfg), nil)

	opts := convertOptions{
		OutputDir:      convertOutputDir,
		SkipValidation: convertSkipValidation,
		Workers:        convertWorkers,
		Verbose:        convertVerbose,
		Dump:           convertDump,
	}
	results, err := convertFiles(cmd.Context(), conv, convertInputs, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if opts.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintConversionSummary(results)
	}

	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", r.Input, r.Err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d file(s) failed:\n  %s", len(failed), len(results), strings.Join(failed, "\n  "))
	}
	return nil
}

// convertFiles converts every input, at most opts.Workers at a time. Per-file
// failures are reported in the results; the returned error is reserved for
// problems that stop the whole batch.
func convertFiles(ctx context.Context, conv *conversion.Converter, inputs []string, opts convertOptions, stdout, diag io.Writer) ([]observability.FileResult, error) {
	if len(inputs) == 0 {
		return nil, errors.New("at least one --in file is required")
	}
	if opts.OutputDir == "" && len(inputs) > 1 {
		return nil, errors.New("--out is required when converting more than one file")
	}
	if opts.OutputDir != "" {
		seen := make(map[string]string, len(inputs))
		for _, input := range inputs {
			path := outputPath(opts.OutputDir, input)
			if first, ok := seen[path]; ok {
				return nil, fmt.Errorf("inputs %s and %s both write %s", first, input, path)
			}
			seen[path] = input
		}
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	diag = &lockedWriter{w: diag}
	results := make([]observability.FileResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = observability.FileResult{Input: input, Err: err}
				return nil
			}
			results[i] = convertFile(conv, input, opts, stdout, diag)
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

// convertFile converts one input and writes its XML. Diagnostics are
// buffered and written to diag in a single call.
func convertFile(conv *conversion.Converter, input string, opts convertOptions, stdout, diag io.Writer) observability.FileResult {
	start := time.Now()
	result := observability.FileResult{Input: input}

	var buf bytes.Buffer
	printer := observability.NewPrinter(&buf)
	defer func() {
		if buf.Len() > 0 {
			_, _ = diag.Write(buf.Bytes())
		}
	}()

	root, err := readDocument(input)
	if err != nil {
		result.Err = err
		return result
	}

	if opts.Verbose || opts.Dump {
		item := rendering.Extract(root)
		if opts.Verbose {
			printer.PrintPublishedItem(item)
		}
		if opts.Dump {
			printer.Dump(item)
		}
	}

	var out []byte
	if opts.SkipValidation {
		out, err = conv.RenderBytes(root)
	} else {
		out, err = conv.ConvertBytes(root)
	}
	if err != nil {
		result.Err = err
		return result
	}

	if opts.OutputDir == "" {
		if _, err := stdout.Write(out); err != nil {
			result.Err = fmt.Errorf("failed to write output: %w", err)
			return result
		}
		result.Output = "(stdout)"
	} else {
		result.Output = outputPath(opts.OutputDir, input)
		if err := os.WriteFile(result.Output, out, 0644); err != nil {
			result.Err = fmt.Errorf("failed to write output file: %w", err)
			return result
		}
	}

	result.Bytes = len(out)
	result.Duration = time.Since(start)
	return result
}

// outputPath maps dir and an input such as data/item.json to dir/item.xml.
func outputPath(dir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".xml")
}
