package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/item-converter/internal/conversion"
	"github.com/jonathan/item-converter/internal/jsontree"
	"github.com/jonathan/item-converter/internal/rendering"
	"github.com/jonathan/item-converter/internal/server/middleware"
)

// ErrNullDocument indicates the request carried no document, or a literal null
type ErrNullDocument struct{}

func (e *ErrNullDocument) Error() string {
	return "JSON document cannot be null"
}

// ErrInvalidJSON indicates the request body is not well-formed JSON
type ErrInvalidJSON struct {
	Cause error
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("Invalid JSON format: %v", e.Cause)
}

func (e *ErrInvalidJSON) Unwrap() error {
	return e.Cause
}

// ErrBodyTooLarge indicates the request body exceeded the configured limit
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"traceId"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		nullErr     *ErrNullDocument
		jsonErr     *ErrInvalidJSON
		tooLargeErr *ErrBodyTooLarge
		validErr    *conversion.ValidationFailedError
		syntaxErr   *jsontree.SyntaxError
	)
	switch {
	case errors.As(err, &nullErr), errors.As(err, &jsonErr), errors.As(err, &validErr),
		errors.As(err, &syntaxErr),
		errors.Is(err, jsontree.ErrEmptyDocument), errors.Is(err, conversion.ErrNilDocument):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage is the text shown to callers. Server-side faults are not
// described beyond a fixed summary.
func clientMessage(err error) string {
	var validErr *conversion.ValidationFailedError
	if errors.As(err, &validErr) {
		return validErr.Result.ErrorMessage
	}
	var renderErr *rendering.RenderError
	if errors.As(err, &renderErr) {
		return "An error occurred while converting JSON to XML"
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "An unexpected error occurred"
	}
	return err.Error()
}

// errorResponse writes err as an ErrorResponse with the matching status code.
// Validation failures name the rule that rejected the document in Details.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{
		Error:   clientMessage(err),
		TraceID: middleware.GetTraceID(r.Context()),
	}
	var validErr *conversion.ValidationFailedError
	if errors.As(err, &validErr) {
		resp.Details = []string{"rule: " + string(validErr.Result.Rule)}
	}
	s.jsonResponse(w, HTTPStatus(err), resp)
}
