package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnv overrides c with any values set in the environment.
func (c *Config) ApplyEnv() error {
	if err := envInt("VALIDATION_REQUIRED_STATUS", &c.Validation.RequiredStatus); err != nil {
		return err
	}
	if err := envTime("VALIDATION_MIN_PUBLISH_DATE", &c.Validation.MinPublishDate); err != nil {
		return err
	}

	envString("XML_ROOT_ELEMENT_NAME", &c.Render.RootElementName)
	if err := envBool("XML_INDENT", &c.Render.Indent); err != nil {
		return err
	}
	// Indentation may legitimately be whitespace only, so it is not trimmed.
	if v, ok := os.LookupEnv("XML_INDENT_CHARS"); ok {
		c.Render.IndentChars = v
	}
	if err := envBool("XML_OMIT_DECLARATION", &c.Render.OmitXMLDeclaration); err != nil {
		return err
	}
	envString("XML_ENCODING", &c.Render.Encoding)

	if err := envInt("PORT", &c.Server.Port); err != nil {
		return err
	}
	if err := envInt64("MAX_BODY_BYTES", &c.Server.MaxBodyBytes); err != nil {
		return err
	}
	if err := envDuration("SERVER_READ_TIMEOUT", &c.Server.ReadTimeout); err != nil {
		return err
	}
	if err := envDuration("SERVER_WRITE_TIMEOUT", &c.Server.WriteTimeout); err != nil {
		return err
	}
	envList("CORS_ALLOWED_ORIGINS", &c.Server.CORS.AllowedOrigins)
	envList("CORS_ALLOWED_METHODS", &c.Server.CORS.AllowedMethods)
	envList("CORS_ALLOWED_HEADERS", &c.Server.CORS.AllowedHeaders)

	envString("LOG_LEVEL", &c.Log.Level)
	envString("LOG_FORMAT", &c.Log.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)

	return nil
}

func envString(key string, dst *string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*dst = value
	}
}

func envInt(key string, dst *int) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", key, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", key, err)
	}
	*dst = b
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", key, err)
	}
	*dst = d
	return nil
}

// envTime accepts RFC 3339 timestamps or plain dates, which are taken as UTC midnight.
func envTime(key string, dst *time.Time) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		*dst = t
		return nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return fmt.Errorf("invalid %s: expected RFC 3339 timestamp or YYYY-MM-DD date, got %q", key, value)
	}
	*dst = t
	return nil
}

// envList parses a comma-separated list, dropping blank entries.
func envList(key string, dst *[]string) {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*dst = items
}
