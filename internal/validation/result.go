// Package validation checks published-item documents against the business rules
// that gate XML conversion.
package validation

// Rule names the business rule that produced a failure.
type Rule string

// Rules are evaluated in the order they are declared here.
const (
	RuleStatus      Rule = "status"
	RulePublishDate Rule = "publish_date"
	RuleTestRun     Rule = "test_run"
)

// Result is the verdict of one validation pass.
// ErrorMessage and Rule are set iff Valid is false.
type Result struct {
	Valid        bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Rule         Rule   `json:"rule,omitempty"`
}

// Success returns a passing Result.
func Success() Result {
	return Result{Valid: true}
}

// Failure returns a failing Result attributed to rule.
func Failure(rule Rule, message string) Result {
	return Result{Valid: false, ErrorMessage: message, Rule: rule}
}
