package meeting

import "fmt"

// Error codes returned to API callers.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "MEETING_CONFLICT"
	CodeInvalidRecurrence = "INVALID_RECURRENCE_RULE"
	CodeInvalidTime       = "INVALID_TIME_INPUT"
	CodeLockTimeout       = "LOCK_TIMEOUT"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// MeetingConflictError reports an overlap with an existing meeting or, for a series,
// with an earlier occurrence of the same request (MeetingID is then empty).
type MeetingConflictError struct {
	MeetingID string
	Date      string
	Series    bool
}

func (e *MeetingConflictError) Error() string {
	if e.Series {
		return fmt.Sprintf("Recurring meeting conflicts with an existing meeting on %s", e.Date)
	}
	return fmt.Sprintf("Meeting slot not available for date: %s", e.Date)
}

type InvalidRecurrenceRuleError struct {
	Rule string
}

func (e *InvalidRecurrenceRuleError) Error() string {
	return fmt.Sprintf("Invalid recurring type: %q", e.Rule)
}

type InvalidTimeInputError struct {
	Input  string
	Reason string
}

func (e *InvalidTimeInputError) Error() string {
	return fmt.Sprintf("invalid time input %q: %s", e.Input, e.Reason)
}

type LockTimeoutError struct {
	TutorID string
}

func (e *LockTimeoutError) Error() string {
	return "schedule is busy, please retry shortly"
}
