package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/lazy8055/psych-care/internal/models"
)

// Store holds appointment records and enforces the one hard invariant of the
// system: at most one non-cancelled appointment per (date, slot).
//
// Insert must be atomic with respect to its uniqueness check; two concurrent
// inserts for the same (date, slot) must not both succeed. Cancellation is a
// status transition, never a delete.
type Store interface {
	// Insert stores the appointment, assigning an id if absent, and returns
	// the stored record. Fails with ConflictError when an active appointment
	// already occupies (date, slot).
	Insert(ctx context.Context, ap *models.Appointment) (*models.Appointment, error)

	// Cancel transitions the appointment to cancelled at the given time.
	// Fails with NotFoundError for unknown ids and StateError when the
	// appointment is not in a cancellable status. The record is kept.
	Cancel(ctx context.Context, id string, now time.Time) (*models.Appointment, error)

	// ListByDate returns the active appointments for a date in slot order.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)

	// ListAll returns every stored appointment, cancelled included, ordered
	// by date then slot. Used to rebuild the calendar index.
	ListAll(ctx context.Context) ([]models.Appointment, error)

	// ViewDay runs fn against the active appointments of one date, observed
	// as a single consistent snapshot: no insert or cancel may interleave
	// between the reads fn's result is derived from.
	ViewDay(ctx context.Context, date string, fn func(active []models.Appointment) error) error
}

func sortBySlot(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		pi, _ := SlotPosition(aps[i].Slot)
		pj, _ := SlotPosition(aps[j].Slot)
		return pi < pj
	})
}

func sortByDateSlot(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date < aps[j].Date
		}
		pi, _ := SlotPosition(aps[i].Slot)
		pj, _ := SlotPosition(aps[j].Slot)
		return pi < pj
	})
}
