package validation

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonathan/item-converter/internal/config"
	"github.com/jonathan/item-converter/internal/jsontree"
)

const (
	fieldStatus      = "Status"
	fieldPublishDate = "PublishDate"
	fieldTestRun     = "TestRun"
)

// Validator applies the Status, PublishDate and TestRun rules, in that order.
// It is safe for concurrent use.
type Validator struct {
	requiredStatus int
	minPublishDate time.Time // always UTC
	location       *time.Location
	logger         *slog.Logger
}

// Option configures a Validator.
type Option func(v *Validator)

// WithLogger sets the logger used for rule diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithLocation sets the zone used to interpret timestamps that carry no offset.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		v.location = loc
	}
}

// New creates a Validator for the given thresholds.
func New(cfg config.ValidationConfig, opts ...Option) *Validator {
	v := &Validator{
		requiredStatus: cfg.RequiredStatus,
		minPublishDate: cfg.MinPublishDate.UTC(),
		location:       time.Local,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.location == nil {
		v.location = time.Local
	}
	v.logger = v.logger.With(slog.String("component", "validator"))
	return v
}

// Validate checks root against every rule and reports the first failure.
// A failing document is not an error; the only error is a nil root.
func (v *Validator) Validate(root *jsontree.Value) (Result, error) {
	if root == nil {
		return Result{}, jsontree.ErrNilDocument
	}

	v.logger.Debug("starting validation")

	checks := []func(*jsontree.Value) Result{
		v.validateStatus,
		v.validatePublishDate,
		v.validateTestRun,
	}
	for _, check := range checks {
		if result := check(root); !result.Valid {
			return result, nil
		}
	}

	v.logger.Debug("validation completed successfully")
	return Success(), nil
}

func (v *Validator) warn(rule Rule, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("rule", string(rule)))
	v.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}
