// Package config provides configuration loading and validation for the converter.
//
// Values are resolved once at startup in three layers: built-in defaults, an
// optional JSON file, then environment variables. The resulting Config is
// read-only for the life of the process.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the full process configuration.
type Config struct {
	Validation ValidationConfig `json:"validation"`
	Render     RenderConfig     `json:"xml_conversion"`
	Server     ServerConfig     `json:"server"`
	Log        LogConfig        `json:"log"`
}

// ValidationConfig holds the business-rule thresholds for incoming documents.
type ValidationConfig struct {
	RequiredStatus int       `json:"required_status"`
	MinPublishDate time.Time `json:"min_publish_date" validate:"required"`
}

// RenderConfig controls the shape and serialization of the generated XML.
type RenderConfig struct {
	RootElementName    string `json:"root_element_name" validate:"required,xmlname"`
	Indent             bool   `json:"indent_xml"`
	IndentChars        string `json:"indent_chars" validate:"xmlspace"`
	OmitXMLDeclaration bool   `json:"omit_xml_declaration"`
	Encoding           string `json:"encoding"` // utf-8, utf-16 or ascii; anything else means utf-8
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port         int           `json:"port" validate:"min=1,max=65535"`
	MaxBodyBytes int64         `json:"max_body_bytes" validate:"min=1"`
	ReadTimeout  time.Duration `json:"-" validate:"min=0"`
	WriteTimeout time.Duration `json:"-" validate:"min=0"`
	CORS         CORSConfig    `json:"cors"`
}

// CORSConfig lists what browsers may send to the API.
type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins" validate:"dive,required"`
	AllowedMethods []string `json:"allowed_methods" validate:"dive,oneof=GET POST PUT PATCH DELETE OPTIONS HEAD"`
	AllowedHeaders []string `json:"allowed_headers" validate:"dive,required"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `json:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" validate:"oneof=text json"`
}

// DefaultMinPublishDate is the earliest accepted publish date when none is configured.
var DefaultMinPublishDate = time.Date(2024, time.August, 24, 0, 0, 0, 0, time.UTC)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Validation: ValidationConfig{
			RequiredStatus: 3,
			MinPublishDate: DefaultMinPublishDate,
		},
		Render: RenderConfig{
			RootElementName:    "Root",
			Indent:             true,
			IndentChars:        "    ",
			OmitXMLDeclaration: false,
			Encoding:           "utf-8",
		},
		Server: ServerConfig{
			Port:         8080,
			MaxBodyBytes: 4 << 20,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000"},
				AllowedMethods: []string{"GET", "POST"},
				AllowedHeaders: []string{"Content-Type"},
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves the configuration: defaults, then the JSON file at path (if
// path is non-empty), then environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fromFile, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = *fromFile
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}
