// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jonathan/item-converter/internal/rendering"
	"github.com/jonathan/item-converter/internal/schemas"
	"github.com/jonathan/item-converter/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printBanner prints a single-line box
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(text string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, text)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// PrintPublishedItem outputs a human-readable summary of the fields that will be rendered.
func (p *Printer) PrintPublishedItem(item *rendering.PublishedItem) {
	if item == nil {
		return
	}

	var sb strings.Builder

	title := item.Title
	if title == "" {
		title = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Title:      %s\n", title))
	sb.WriteString(fmt.Sprintf("Published:  %s\n", item.PublishDate))
	sb.WriteString(fmt.Sprintf("Countries:  %s\n", strings.Join(item.Countries, ", ")))
	sb.WriteString("\n")

	if len(item.Groups) == 0 {
		sb.WriteString("No contact groups\n")
	} else {
		sb.WriteString(fmt.Sprintf("Contact groups: %d\n", len(item.Groups)))
		count := min(len(item.Groups), maxItemsToShow)
		for i := 0; i < count; i++ {
			group := item.Groups[i]
			sb.WriteString(fmt.Sprintf("  %d. %s (%d contacts)\n", i+1, group.GroupName, len(group.Contacts)))
			for _, person := range group.Contacts[:min(len(group.Contacts), 3)] {
				sb.WriteString(fmt.Sprintf("     • %s\n", person.DisplayName()))
			}
			if len(group.Contacts) > 3 {
				sb.WriteString(fmt.Sprintf("     ... and %d more\n", len(group.Contacts)-3))
			}
		}
		if len(item.Groups) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(item.Groups)-maxItemsToShow))
		}
	}

	p.printBox("PUBLISHED ITEM", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationResult outputs the business-rule verdict.
func (p *Printer) PrintValidationResult(result validation.Result) {
	if result.Valid {
		p.printBanner("✅ VALIDATION PASSED")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚠ %s\n", result.Rule))
	sb.WriteString(fmt.Sprintf("  %s", result.ErrorMessage))

	p.printBox("VALIDATION FAILED", sb.String())
}

// PrintSchemaErrors outputs structural problems reported by the schema lint.
func (p *Printer) PrintSchemaErrors(verr *schemas.ValidationError) {
	if verr == nil || len(verr.Errors) == 0 {
		p.printBanner("✅ NO SCHEMA ERRORS FOUND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d schema errors:\n\n", len(verr.Errors)))

	for i, fe := range verr.Errors {
		message := fe.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}

// FileResult is the outcome of converting one input file.
type FileResult struct {
	Input    string
	Output   string
	Bytes    int
	Duration time.Duration
	Err      error
}

// PrintConversionSummary outputs a per-file summary of a batch conversion.
func (p *Printer) PrintConversionSummary(results []FileResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	sb.WriteString(fmt.Sprintf("Converted %d of %d files\n\n", len(results)-failed, len(results)))

	for i, r := range results {
		if r.Err != nil {
			sb.WriteString(fmt.Sprintf("✗ %s\n", r.Input))
			sb.WriteString(fmt.Sprintf("  %v\n", r.Err))
		} else {
			sb.WriteString(fmt.Sprintf("✓ %s\n", r.Input))
			sb.WriteString(fmt.Sprintf("  %d bytes in %s\n", r.Bytes, r.Duration.Round(time.Microsecond)))
		}
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONVERSION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a debug rendering of v, such as an extracted item model.
func (p *Printer) Dump(v any) {
	dumpConfig.Fdump(p.out, v)
}
