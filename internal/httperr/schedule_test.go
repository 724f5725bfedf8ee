package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lazy8055/psych-care/internal/schedule"
)

func TestWriteSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        schedule.ValidationError{Field: "slot", Reason: "is required"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "validation_failed",
		},
		{
			name:       "conflict",
			err:        schedule.ConflictError{Date: "2026-09-01", Slot: "10:00 AM"},
			wantStatus: http.StatusConflict,
			wantCode:   "slot_conflict",
		},
		{
			name:       "not found",
			err:        schedule.NotFoundError{ID: "x"},
			wantStatus: http.StatusNotFound,
			wantCode:   "appointment_not_found",
		},
		{
			name:       "state",
			err:        schedule.StateError{ID: "x", Status: schedule.StatusCancelled},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_state",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			assert.True(t, WriteSchedule(c, tc.err))
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantCode)
		})
	}
}

func TestWriteScheduleUnknownError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	assert.False(t, WriteSchedule(c, errors.New("boom")))
	assert.Equal(t, http.StatusOK, rec.Code, "nothing written for unknown errors")
}
