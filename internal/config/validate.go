package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("xmlname", func(fl validator.FieldLevel) bool {
		return IsXMLName(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register xmlname validation: %v", err))
	}
	if err := v.RegisterValidation("xmlspace", func(fl validator.FieldLevel) bool {
		return IsXMLWhitespace(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register xmlspace validation: %v", err))
	}
	return v
}

// Validate checks that the configuration has usable values.
// Note: an unrecognized Render.Encoding is not an error; rendering falls back to utf-8.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// IsXMLName reports whether name can be used as an unprefixed XML element name.
func IsXMLName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

// IsXMLWhitespace reports whether s consists only of XML whitespace
// (space, tab, carriage return, line feed). The empty string qualifies.
func IsXMLWhitespace(s string) bool {
	return strings.Trim(s, " \t\r\n") == ""
}
