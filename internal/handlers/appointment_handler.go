package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lazy8055/psych-care/internal/httperr"
	"github.com/lazy8055/psych-care/internal/httpresp"
	"github.com/lazy8055/psych-care/internal/middleware"
	"github.com/lazy8055/psych-care/internal/schedule"
	ucAppointment "github.com/lazy8055/psych-care/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucAppointment.CreateAppointment
	cancelUC      *ucAppointment.CancelAppointment
	dayScheduleUC *ucAppointment.GetDaySchedule
	listMonthUC   *ucAppointment.ListAppointmentsByMonth
	markersUC     *ucAppointment.GetMonthMarkers
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	dayScheduleUC *ucAppointment.GetDaySchedule,
	listMonthUC *ucAppointment.ListAppointmentsByMonth,
	markersUC *ucAppointment.GetMonthMarkers,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		cancelUC:      cancelUC,
		dayScheduleUC: dayScheduleUC,
		listMonthUC:   listMonthUC,
		markersUC:     markersUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Field-level validation happens in the scheduling core so that missing
// fields come back as 422 with the offending field named, not as a bind
// error.
type CreateAppointmentRequest struct {
	PatientID     string `json:"patientId"`
	PatientName   string `json:"patientName"`
	Date          string `json:"date"`
	Slot          string `json:"slot"`
	DurationLabel string `json:"durationLabel"`
	Category      string `json:"category"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	therapistID := c.MustGet(middleware.ContextUserID).(uint)
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), practiceID, therapistID, schedule.CreateInput{
		PatientID:     req.PatientID,
		PatientName:   req.PatientName,
		Date:          req.Date,
		Slot:          req.Slot,
		DurationLabel: req.DurationLabel,
		Category:      req.Category,
		Notes:         req.Notes,
	})
	if err != nil {
		if !httperr.WriteSchedule(c, err) {
			httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		}
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// DAY SCHEDULE
// ======================================================

func (h *AppointmentHandler) DaySchedule(c *gin.Context) {
	therapistID := c.MustGet(middleware.ContextUserID).(uint)
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "The date query parameter is required.")
		return
	}

	day, err := h.dayScheduleUC.Execute(c.Request.Context(), practiceID, therapistID, date)
	if err != nil {
		if !httperr.WriteSchedule(c, err) {
			httperr.Internal(c, "failed_to_load_schedule", "Could not load the day schedule.")
		}
		return
	}

	httpresp.OK(c, day)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	therapistID := c.MustGet(middleware.ContextUserID).(uint)
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)
	id := c.Param("id")

	ap, err := h.cancelUC.Execute(c.Request.Context(), practiceID, therapistID, id)
	if err != nil {
		if !httperr.WriteSchedule(c, err) {
			httperr.Internal(c, "failed_to_cancel_appointment", "Could not cancel the appointment.")
		}
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	therapistID := c.MustGet(middleware.ContextUserID).(uint)
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	aps, err := h.listMonthUC.Execute(c.Request.Context(), practiceID, therapistID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CALENDAR MARKERS
// ======================================================

func (h *AppointmentHandler) CalendarMarkers(c *gin.Context) {
	therapistID := c.MustGet(middleware.ContextUserID).(uint)
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	markers, err := h.markersUC.Execute(
		c.Request.Context(),
		practiceID,
		therapistID,
		year,
		month,
		c.Query("selected"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_load_calendar", "Could not load calendar markers.")
		return
	}

	httpresp.List(c, markers)
}

// ======================================================
// HELPERS
// ======================================================

func yearMonthParams(c *gin.Context) (int, time.Month, bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Year is out of range.")
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Month must be between 1 and 12.")
		return 0, 0, false
	}

	return year, time.Month(month), true
}
