package httperr

import (
	"github.com/gin-gonic/gin"

	"github.com/lazy8055/psych-care/internal/schedule"
)

// WriteSchedule maps the scheduling core's typed errors onto HTTP statuses.
// Returns false when err is not a scheduling error, leaving the caller to
// handle it.
func WriteSchedule(c *gin.Context, err error) bool {
	switch {
	case schedule.IsValidation(err):
		Unprocessable(c, "validation_failed", err.Error())
	case schedule.IsConflict(err):
		Conflict(c, "slot_conflict", err.Error())
	case schedule.IsNotFound(err):
		NotFound(c, "appointment_not_found", err.Error())
	case schedule.IsState(err):
		BadRequest(c, "invalid_state", err.Error())
	default:
		return false
	}
	return true
}
