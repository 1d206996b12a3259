package server

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jonathan/item-converter/internal/jsontree"
	"github.com/jonathan/item-converter/internal/metrics"
	"github.com/jonathan/item-converter/internal/schemas"
	"github.com/jonathan/item-converter/internal/server/middleware"
)

// LintResponse represents the response for /api/conversion/lint
type LintResponse struct {
	Valid  bool                 `json:"valid"`
	Errors []schemas.FieldError `json:"errors"`
}

// handleConvert validates the posted document and returns it as XML
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	_, root, err := s.readDocument(w, r)
	if err != nil {
		s.metrics.IncrementOutcome(metrics.OutcomeBadRequest)
		s.errorResponse(w, r, err)
		return
	}

	out, err := s.converter.ConvertBytes(root)
	if err != nil {
		if HTTPStatus(err) == http.StatusInternalServerError {
			s.logger.Error("conversion failed", slog.Any("error", err),
				slog.String("trace_id", middleware.GetTraceID(r.Context())))
		}
		s.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", s.converter.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		s.logger.Warn("failed to write response", slog.Any("error", err))
	}
}

// handleLint checks the posted document against the bundled JSON Schema
func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	body, _, err := s.readDocument(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	resp := LintResponse{Valid: true, Errors: []schemas.FieldError{}}
	if err := schemas.Lint(body); err != nil {
		var verr *schemas.ValidationError
		if !errors.As(err, &verr) {
			s.logger.Error("schema lint failed", slog.Any("error", err),
				slog.String("trace_id", middleware.GetTraceID(r.Context())))
			s.errorResponse(w, r, err)
			return
		}
		resp.Valid = false
		resp.Errors = verr.Errors
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// readDocument reads the request body, bounded by the configured limit, and
// parses it. A missing body and a literal null are both rejected.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) ([]byte, *jsontree.Value, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, &ErrBodyTooLarge{Limit: maxErr.Limit}
		}
		return nil, nil, &ErrInvalidJSON{Cause: err}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil, &ErrNullDocument{}
	}

	root, err := jsontree.Parse(body)
	if err != nil {
		return nil, nil, &ErrInvalidJSON{Cause: err}
	}
	if root.IsNull() {
		return nil, nil, &ErrNullDocument{}
	}

	return body, root, nil
}
