package validation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/item-converter/internal/jsontree"
)

// minDateDisplayLayout renders the minimum publish date in failure messages (MM/dd/yyyy).
const minDateDisplayLayout = "01/02/2006"

func (v *Validator) validateStatus(root *jsontree.Value) Result {
	status, ok := root.Lookup(fieldStatus)
	if !ok {
		v.warn(RuleStatus, "Status field is missing")
		return Failure(RuleStatus, fmt.Sprintf("%s field is required", fieldStatus))
	}

	n, ok := status.Number()
	if !ok {
		v.warn(RuleStatus, "Status is not a number", slog.String("type", status.Kind().String()))
		return Failure(RuleStatus, fmt.Sprintf("%s must be a number", fieldStatus))
	}

	if numberEquals(n.String(), v.requiredStatus) {
		return Success()
	}

	v.warn(RuleStatus, "Status validation failed",
		slog.String("value", n.String()),
		slog.Int("expected", v.requiredStatus))
	return Failure(RuleStatus, fmt.Sprintf("%s must be equal to %d", fieldStatus, v.requiredStatus))
}

func (v *Validator) validatePublishDate(root *jsontree.Value) Result {
	publishDate, ok := root.Lookup(fieldPublishDate)
	if !ok {
		v.warn(RulePublishDate, "PublishDate field is missing")
		return Failure(RulePublishDate, fmt.Sprintf("%s field is required", fieldPublishDate))
	}

	raw, ok := publishDate.Str()
	if !ok {
		v.warn(RulePublishDate, "PublishDate is not a string", slog.String("type", publishDate.Kind().String()))
		return Failure(RulePublishDate, fmt.Sprintf("%s must be a valid date string", fieldPublishDate))
	}

	if strings.TrimSpace(raw) == "" {
		v.warn(RulePublishDate, "PublishDate is empty or whitespace")
		return Failure(RulePublishDate, fmt.Sprintf("%s cannot be empty", fieldPublishDate))
	}

	parsed, err := ParseDate(raw, v.location)
	if err != nil {
		v.warn(RulePublishDate, "PublishDate format is invalid", slog.String("value", raw))
		return Failure(RulePublishDate, fmt.Sprintf("%s is not in a valid date format", fieldPublishDate))
	}

	// Inclusive: a document published exactly at the minimum passes.
	if !parsed.Before(v.minPublishDate) {
		return Success()
	}

	v.warn(RulePublishDate, "PublishDate is before minimum date",
		slog.Time("publish_date", parsed),
		slog.Time("min_publish_date", v.minPublishDate))
	return Failure(RulePublishDate, fmt.Sprintf("%s must be on or after %s",
		fieldPublishDate, v.minPublishDate.Format(minDateDisplayLayout)))
}

func (v *Validator) validateTestRun(root *jsontree.Value) Result {
	testRun, ok := root.Lookup(fieldTestRun)
	if !ok {
		v.warn(RuleTestRun, "TestRun field is missing")
		return Failure(RuleTestRun, fmt.Sprintf("%s field is required", fieldTestRun))
	}

	b, ok := testRun.Bool()
	if !ok {
		v.warn(RuleTestRun, "TestRun is not a boolean", slog.String("type", testRun.Kind().String()))
		return Failure(RuleTestRun, fmt.Sprintf("%s must be a boolean value", fieldTestRun))
	}

	if b {
		v.warn(RuleTestRun, "TestRun must be false, current value: true")
		return Failure(RuleTestRun, fmt.Sprintf("%s must be false", fieldTestRun))
	}

	return Success()
}
