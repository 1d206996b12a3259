package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesDocumentedValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 3, cfg.Validation.RequiredStatus)
	assert.True(t, cfg.Validation.MinPublishDate.Equal(time.Date(2024, 8, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Root", cfg.Render.RootElementName)
	assert.True(t, cfg.Render.Indent)
	assert.Equal(t, "    ", cfg.Render.IndentChars)
	assert.False(t, cfg.Render.OmitXMLDeclaration)
	assert.Equal(t, "utf-8", cfg.Render.Encoding)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"validation": {"required_status": 5, "min_publish_date": "2025-01-01T00:00:00Z"},
		"xml_conversion": {"root_element_name": "PublishedItem", "indent_xml": false},
		"server": {"port": 9090}
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 5, cfg.Validation.RequiredStatus)
	assert.Equal(t, 2025, cfg.Validation.MinPublishDate.Year())
	assert.Equal(t, "PublishedItem", cfg.Render.RootElementName)
	assert.False(t, cfg.Render.Indent)
	assert.Equal(t, 9090, cfg.Server.Port)

	// Fields absent from the file keep defaults
	assert.Equal(t, "    ", cfg.Render.IndentChars)
	assert.Equal(t, "utf-8", cfg.Render.Encoding)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{"xml_conversion": {"root_element_name": "FromFile"}}`), 0644)
	require.NoError(t, err)

	t.Setenv("XML_ROOT_ELEMENT_NAME", "FromEnv")
	t.Setenv("VALIDATION_REQUIRED_STATUS", "7")
	t.Setenv("VALIDATION_MIN_PUBLISH_DATE", "2023-05-01")
	t.Setenv("XML_INDENT_CHARS", "\t")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", cfg.Render.RootElementName)
	assert.Equal(t, 7, cfg.Validation.RequiredStatus)
	assert.True(t, cfg.Validation.MinPublishDate.Equal(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "\t", cfg.Render.IndentChars)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("XML_INDENT", "sometimes")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid XML_INDENT")
}

func TestLoad_InvalidMinPublishDate(t *testing.T) {
	t.Setenv("VALIDATION_MIN_PUBLISH_DATE", "08/24/2024")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VALIDATION_MIN_PUBLISH_DATE")
}

func TestValidate_RootElementName(t *testing.T) {
	cfg := Default()
	cfg.Render.RootElementName = "1Invalid Name"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RootElementName")
	assert.Contains(t, err.Error(), "xmlname")
}

func TestValidate_IndentChars(t *testing.T) {
	for _, indent := range []string{"", "  ", "\t", "\r\n  "} {
		cfg := Default()
		cfg.Render.IndentChars = indent
		assert.NoError(t, cfg.Validate(), "%q", indent)
	}

	cfg := Default()
	cfg.Render.IndentChars = "<x"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IndentChars")
	assert.Contains(t, err.Error(), "xmlspace")
}

func TestLoad_RejectsMarkupIndentFromEnv(t *testing.T) {
	t.Setenv("XML_INDENT_CHARS", "--")

	_, err := Load("")
	assert.ErrorContains(t, err, "IndentChars")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 70000

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"

	assert.Error(t, cfg.Validate())
}

func TestValidate_UnknownEncodingIsAllowed(t *testing.T) {
	cfg := Default()
	cfg.Render.Encoding = "latin-1"

	assert.NoError(t, cfg.Validate())
}

func TestIsXMLName(t *testing.T) {
	assert.True(t, IsXMLName("Root"))
	assert.True(t, IsXMLName("_private"))
	assert.True(t, IsXMLName("Published-Item.v2"))
	assert.True(t, IsXMLName("Élément"))
	assert.False(t, IsXMLName(""))
	assert.False(t, IsXMLName("2fast"))
	assert.False(t, IsXMLName("has space"))
	assert.False(t, IsXMLName("ns:prefixed"))
	assert.False(t, IsXMLName("-dash"))
}
