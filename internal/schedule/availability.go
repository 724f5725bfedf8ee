package schedule

import "github.com/lazy8055/psych-care/internal/models"

// availableFrom derives the open slots of a day: the catalog minus the slots
// held by active appointments, catalog order preserved. Pure and uncached:
// the store can mutate between calls, so availability is recomputed every
// time from the list it is handed.
func availableFrom(active []models.Appointment) []TimeSlot {
	taken := make(map[TimeSlot]bool, len(active))
	for _, ap := range active {
		if Status(ap.Status) != StatusConfirmed {
			continue
		}
		taken[TimeSlot(ap.Slot)] = true
	}

	open := make([]TimeSlot, 0, len(timeSlots))
	for _, slot := range timeSlots {
		if !taken[slot] {
			open = append(open, slot)
		}
	}
	return open
}
