package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/item-converter/internal/config"
	"github.com/jonathan/item-converter/internal/conversion"
	"github.com/jonathan/item-converter/internal/logging"
	"github.com/jonathan/item-converter/internal/rendering"
	"github.com/jonathan/item-converter/internal/validation"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
	"Status": 3,
	"PublishDate": "2024-08-26T18:19:59Z",
	"TestRun": false,
	"Title": "Quarterly Outlook",
	"CountryIds": ["US", "CA"],
	"ReportMetadata": {"ContactSection": [{"ContactInformation": [
		{"ContactHeader": "Media Contact", "Contacts": [
			{"FirstName": "Mike", "LastName": "Johnsen", "PhoneNumber": "1-646-731-2332"}
		]}
	]}]}
}`

const testRunDocument = `{"Status": 3, "PublishDate": "2024-08-26T18:19:59Z", "TestRun": true, "Title": "Draft"}`

// getBinaryPath returns the path to a prebuilt item_converter binary, skipping
// the test when there is none.
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "item_converter")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/item_converter ./cmd/item_converter'", binaryPath)
	}

	return binaryPath
}

func newTestConverter(t *testing.T) *conversion.Converter {
	t.Helper()
	cfg := config.Default()
	cfg.Render.RootElementName = "PublishedItem"

	logger := logging.Discard()
	v := validation.New(cfg.Validation, validation.WithLogger(logger), validation.WithLocation(time.UTC))
	tr := rendering.New(cfg.Render, rendering.WithLogger(logger))
	return conversion.New(v, tr, conversion.WithLogger(logger))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
