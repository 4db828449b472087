package domain

import "fmt"

// ErrorCategory classifies which part of the configuration a validation
// error refers to.
type ErrorCategory string

// Error category constants.
const (
	// CategoryConfiguration marks errors about the configuration as a whole.
	CategoryConfiguration ErrorCategory = "configuration"

	// CategoryEpic marks errors about a single epic; SubjectID is the epic number.
	CategoryEpic ErrorCategory = "epic"

	// CategoryAgent marks errors about a single agent; SubjectID is the agent identifier.
	CategoryAgent ErrorCategory = "agent"
)

// String returns the string representation of the ErrorCategory.
func (c ErrorCategory) String() string {
	return string(c)
}

// ValidationError describes one violated validation rule with enough context
// for the author to locate and fix it without re-running export.
type ValidationError struct {
	// Category is the part of the configuration the error refers to.
	Category ErrorCategory `json:"category"`

	// SubjectID is the epic number or agent identifier. Empty for
	// configuration-level errors.
	SubjectID string `json:"subject_id,omitempty"`

	// Field names the offending attribute.
	Field string `json:"field"`

	// Message is the human-readable description of the violation.
	Message string `json:"message"`
}

// String formats the error for display, e.g. "epic 2: name: too short".
func (e ValidationError) String() string {
	if e.SubjectID == "" {
		return fmt.Sprintf("%s: %s: %s", e.Category, e.Field, e.Message)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Category, e.SubjectID, e.Field, e.Message)
}

// ValidationResult is the complete outcome of one validation pass.
// Errors preserve rule-evaluation order and are never deduplicated, so the
// caller can display the full batch in one iteration.
type ValidationResult struct {
	// Valid is true when no rule was violated.
	Valid bool `json:"valid"`

	// Errors lists every violation in rule-evaluation order.
	Errors []ValidationError `json:"errors,omitempty"`
}
