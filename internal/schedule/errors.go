package schedule

import (
	"errors"
	"fmt"
)

// Every failure the scheduling core can produce is one of the typed errors
// below. Callers decide user-facing messaging; the core never retries and
// never swallows.

// ValidationError means the input must be corrected before retrying.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError means an active appointment already occupies (date, slot).
// Callers should re-query availability, never substitute another slot.
type ConflictError struct {
	Date string
	Slot TimeSlot
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("slot %q on %s is already booked", e.Slot, e.Date)
}

// NotFoundError means the referenced appointment id does not exist.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("appointment %s not found", e.ID)
}

// StateError means the appointment exists but its status forbids the
// requested transition (e.g. cancelling an already cancelled appointment).
type StateError struct {
	ID     string
	Status Status
}

func (e StateError) Error() string {
	return fmt.Sprintf("appointment %s is %s", e.ID, e.Status)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

func IsState(err error) bool {
	var se StateError
	return errors.As(err, &se)
}
