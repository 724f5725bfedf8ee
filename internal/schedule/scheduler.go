package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/lazy8055/psych-care/internal/dates"
	"github.com/lazy8055/psych-care/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateInput struct {
	PatientID     string
	PatientName   string
	Date          string
	Slot          string
	DurationLabel string
	Category      string
	Notes         string
}

// DaySchedule pairs the booked and open slots of one date, both derived from
// the same store snapshot. FullyBooked is explicit so callers render a real
// "no slots left" state instead of defaulting to the first catalog entry.
type DaySchedule struct {
	Date        string               `json:"date"`
	Booked      []models.Appointment `json:"booked"`
	Available   []TimeSlot           `json:"available"`
	FullyBooked bool                 `json:"fullyBooked"`
}

// ======================================================
// FACADE
// ======================================================

// Scheduler composes the slot catalog, appointment store, availability
// derivation and calendar index behind the operations callers use.
type Scheduler struct {
	store Store
	index *CalendarIndex
}

func NewScheduler(store Store) *Scheduler {
	return &Scheduler{
		store: store,
		index: NewCalendarIndex(),
	}
}

// Create validates the input, inserts the appointment and refreshes the
// calendar index. ConflictError from the store is propagated verbatim.
func (s *Scheduler) Create(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PatientID:     in.PatientID,
		PatientName:   strings.TrimSpace(in.PatientName),
		Date:          in.Date,
		Slot:          in.Slot,
		DurationLabel: in.DurationLabel,
		Category:      strings.TrimSpace(in.Category),
		Status:        string(InitialStatus()),
		Notes:         in.Notes,
	}

	stored, err := s.store.Insert(ctx, ap)
	if err != nil {
		return nil, err
	}

	// The booking is committed; a failed marker rebuild must not undo it.
	// Markers are recomputed again on the next read anyway.
	_ = s.index.Rebuild(ctx, s.store)

	return stored, nil
}

// Cancel transitions an appointment to cancelled and refreshes the index.
// The slot becomes insertable again; the record is kept.
func (s *Scheduler) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
	ap, err := s.store.Cancel(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	_ = s.index.Rebuild(ctx, s.store)

	return ap, nil
}

// DaySchedule returns booked and available slots computed against a single
// consistent snapshot of the store.
func (s *Scheduler) DaySchedule(ctx context.Context, date string) (*DaySchedule, error) {
	if !dates.IsValid(date) {
		return nil, ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	var out *DaySchedule
	err := s.store.ViewDay(ctx, date, func(active []models.Appointment) error {
		available := availableFrom(active)
		out = &DaySchedule{
			Date:        date,
			Booked:      active,
			Available:   available,
			FullyBooked: len(available) == 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableSlots derives the open slots of a date, catalog order preserved.
func (s *Scheduler) AvailableSlots(ctx context.Context, date string) ([]TimeSlot, error) {
	if !dates.IsValid(date) {
		return nil, ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	active, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return availableFrom(active), nil
}

// Select focuses a date on the calendar index (exclusive selection).
func (s *Scheduler) Select(date string) {
	s.index.Select(date)
}

func (s *Scheduler) MarkerFor(date string) CalendarMarker {
	return s.index.MarkerFor(date)
}

// MonthMarkers rebuilds the index and returns the markers of one month.
func (s *Scheduler) MonthMarkers(ctx context.Context, year int, month time.Month) ([]CalendarMarker, error) {
	if err := s.index.Rebuild(ctx, s.store); err != nil {
		return nil, err
	}
	return s.index.MarkersForPrefix(dates.MonthPrefix(year, month)), nil
}

// RefreshCalendar recomputes the calendar index from the store. Needed after
// constructing a Scheduler over a store that already holds appointments.
func (s *Scheduler) RefreshCalendar(ctx context.Context) error {
	return s.index.Rebuild(ctx, s.store)
}

// ======================================================
// VALIDATION
// ======================================================

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.PatientName) == "" {
		return ValidationError{Field: "patientName", Reason: "is required"}
	}
	if in.Slot == "" {
		return ValidationError{Field: "slot", Reason: "is required"}
	}
	if !IsCatalogSlot(in.Slot) {
		return ValidationError{Field: "slot", Reason: "is not a bookable time slot"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return ValidationError{Field: "category", Reason: "is required"}
	}
	if !dates.IsValid(in.Date) {
		return ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return nil
}
