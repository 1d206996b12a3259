// Package rendering transcodes published-item documents into the fixed XML shape
// consumed downstream.
package rendering

import "fmt"

// RenderError represents a failure to produce XML from a document
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// CharError reports text that cannot appear in an XML 1.0 document, or that the
// output encoding cannot represent.
type CharError struct {
	Context string // element or attribute being written
	Rune    rune
}

func (e *CharError) Error() string {
	return fmt.Sprintf("character %U is not allowed in %s", e.Rune, e.Context)
}
