package booking

import "fmt"

// ValidationError reports a missing or malformed user-supplied field. It is
// recoverable: the caller re-prompts and retries without losing the booking.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// TerminalStateError reports an attempted transition out of a finalized
// booking. The booking is left untouched.
type TerminalStateError struct {
	BookingID string
	Status    string
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("booking %s is already finalized (%s) and can no longer be changed", e.BookingID, e.Status)
}

// TransitionError reports a disallowed edge between two non-terminal states.
type TransitionError struct {
	BookingID string
	From      string
	To        string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking %s cannot move from %s to %s", e.BookingID, e.From, e.To)
}

// PersistenceError wraps a failed write of a finalized booking. The payment
// itself is not rolled back; callers surface this as "confirmed but not saved".
type PersistenceError struct {
	BookingID string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save booking %s: %v", e.BookingID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
