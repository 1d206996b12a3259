// Package conversion runs the validate-then-render pipeline for published items.
package conversion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonathan/item-converter/internal/jsontree"
	"github.com/jonathan/item-converter/internal/metrics"
	"github.com/jonathan/item-converter/internal/rendering"
	"github.com/jonathan/item-converter/internal/validation"
)

// ErrNilDocument is returned when Convert is called without a document.
var ErrNilDocument = jsontree.ErrNilDocument

// ValidationFailedError is returned by Convert when the document breaks a business rule.
type ValidationFailedError struct {
	Result validation.Result
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Result.ErrorMessage)
}

// Converter validates documents and renders the ones that pass.
// It is safe for concurrent use.
type Converter struct {
	validator  *validation.Validator
	transcoder *rendering.Transcoder
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// Option configures a Converter.
type Option func(c *Converter)

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithMetrics records outcomes and latency on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}

// New creates a Converter from its two stages.
func New(v *validation.Validator, t *rendering.Transcoder, opts ...Option) *Converter {
	c := &Converter{
		validator:  v,
		transcoder: t,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "converter"))
	return c
}

// Validate runs only the business rules.
func (c *Converter) Validate(root *jsontree.Value) (validation.Result, error) {
	result, err := c.validator.Validate(root)
	if err == nil && !result.Valid {
		c.metrics.IncrementValidationFailure(string(result.Rule))
	}
	return result, err
}

// Convert validates root and, if it passes, renders it as XML text.
// A failing document yields a *ValidationFailedError; rendering faults are
// *rendering.RenderError.
func (c *Converter) Convert(root *jsontree.Value) (string, error) {
	return convert(c, root, c.transcoder.Render)
}

// ConvertBytes is Convert with the output encoded in the configured encoding.
func (c *Converter) ConvertBytes(root *jsontree.Value) ([]byte, error) {
	return convert(c, root, c.transcoder.RenderBytes)
}

// Render renders root without validating it.
func (c *Converter) Render(root *jsontree.Value) (string, error) {
	return c.transcoder.Render(root)
}

// RenderBytes is Render with the output encoded in the configured encoding.
func (c *Converter) RenderBytes(root *jsontree.Value) ([]byte, error) {
	return c.transcoder.RenderBytes(root)
}

// ContentType is the MIME type of ConvertBytes output.
func (c *Converter) ContentType() string {
	return c.transcoder.Encoding().ContentType()
}

func convert[T string | []byte](c *Converter, root *jsontree.Value, render func(*jsontree.Value) (T, error)) (T, error) {
	var zero T
	if root == nil {
		return zero, ErrNilDocument
	}

	start := time.Now()
	defer func() { c.metrics.ObserveConversion(time.Since(start)) }()

	c.logger.Info("starting JSON to XML conversion")

	result, err := c.Validate(root)
	if err != nil {
		return zero, err
	}
	if !result.Valid {
		c.metrics.IncrementOutcome(metrics.OutcomeValidationFailed)
		c.logger.Warn("document rejected", slog.String("rule", string(result.Rule)),
			slog.String("reason", result.ErrorMessage))
		return zero, &ValidationFailedError{Result: result}
	}

	out, err := render(root)
	if err != nil {
		c.metrics.IncrementOutcome(metrics.OutcomeRenderFailed)
		c.logger.Error("unexpected error during conversion", slog.Any("error", err))
		var renderErr *rendering.RenderError
		if errors.As(err, &renderErr) {
			return zero, err
		}
		return zero, &rendering.RenderError{Message: "failed to convert JSON to XML", Cause: err}
	}

	c.metrics.IncrementOutcome(metrics.OutcomeSuccess)
	c.logger.Info("conversion completed", slog.Int("bytes", len(out)))
	return out, nil
}
