package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/item-converter/internal/schemas"
	bundled "github.com/jonathan/item-converter/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"published_item.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestEmbeddedSchemaMatchesFile(t *testing.T) {
	data, err := os.ReadFile("published_item.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), bundled.PublishedItem)
}

func TestPublishedItemSchema_AcceptsSampleDocument(t *testing.T) {
	doc := `{
		"Status": 3,
		"PublishDate": "2024-08-26T18:19:59Z",
		"TestRun": false,
		"Title": "Test Document",
		"CountryIds": ["US", "CA"],
		"ReportMetadata": {"ContactSection": [{"ContactInformation": [
			{"ContactHeader": "Media Contact", "Contacts": [{"FirstName": "Mike", "LastName": "Johnsen"}]}
		]}]}
	}`
	assert.NoError(t, schemas.Lint([]byte(doc)))
}

func TestPublishedItemSchema_RejectsStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing status", `{"PublishDate":"2024-08-26","TestRun":false}`, "(root)"},
		{"string status", `{"Status":"3","PublishDate":"2024-08-26","TestRun":false}`, "Status"},
		{"numeric country", `{"Status":3,"PublishDate":"2024-08-26","TestRun":false,"CountryIds":[1]}`, "CountryIds.0"},
		{"nameless contact", `{"Status":3,"PublishDate":"2024-08-26","TestRun":false,
			"ReportMetadata":{"ContactSection":[{"ContactInformation":[{"ContactHeader":"H","Contacts":[{"Title":"x"}]}]}]}}`,
			"ReportMetadata.ContactSection.0.ContactInformation.0.Contacts.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.Lint([]byte(tt.doc))
			var validationErr *schemas.ValidationError
			require.ErrorAs(t, err, &validationErr)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}
