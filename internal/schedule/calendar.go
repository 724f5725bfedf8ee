package schedule

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Marker colors match the app theme.
const (
	markerDotColor      = "#5C6BC0"
	markerSelectedColor = "#5C6BC030"
)

// CalendarMarker is the per-date annotation the calendar UI renders. It is a
// projection of the store, always recomputable and never authoritative. Only
// the selection flag is independent state, and that is transient UI focus.
type CalendarMarker struct {
	Date            string `json:"date"`
	HasAppointments bool   `json:"hasAppointments"`
	Selected        bool   `json:"selected"`
	Color           string `json:"color,omitempty"`
}

// CalendarIndex maintains the date -> marker projection. Rebuild must be
// invoked after every store mutation; there is no background refresh.
type CalendarIndex struct {
	mu       sync.Mutex
	booked   map[string]bool // dates with at least one active appointment
	selected string
}

func NewCalendarIndex() *CalendarIndex {
	return &CalendarIndex{booked: make(map[string]bool)}
}

// Rebuild recomputes the booked-date set from the store.
func (ix *CalendarIndex) Rebuild(ctx context.Context, store Store) error {
	all, err := store.ListAll(ctx)
	if err != nil {
		return err
	}

	booked := make(map[string]bool)
	for _, ap := range all {
		if Status(ap.Status) == StatusConfirmed {
			booked[ap.Date] = true
		}
	}

	ix.mu.Lock()
	ix.booked = booked
	ix.mu.Unlock()
	return nil
}

// Select focuses a date. Selection is exclusive: at most one date carries the
// flag, and selecting a new date clears the previous one.
func (ix *CalendarIndex) Select(date string) {
	ix.mu.Lock()
	ix.selected = date
	ix.mu.Unlock()
}

func (ix *CalendarIndex) SelectedDate() string {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.selected
}

func (ix *CalendarIndex) MarkerFor(date string) CalendarMarker {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.markerLocked(date)
}

// MarkersForPrefix returns markers for every booked date sharing the given
// "YYYY-MM-" prefix, plus the selected date when it falls in that month,
// sorted by date.
func (ix *CalendarIndex) MarkersForPrefix(prefix string) []CalendarMarker {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	seen := make(map[string]bool)
	out := make([]CalendarMarker, 0, len(ix.booked))
	for date := range ix.booked {
		if strings.HasPrefix(date, prefix) {
			out = append(out, ix.markerLocked(date))
			seen[date] = true
		}
	}
	if ix.selected != "" && strings.HasPrefix(ix.selected, prefix) && !seen[ix.selected] {
		out = append(out, ix.markerLocked(ix.selected))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// caller must hold ix.mu.
func (ix *CalendarIndex) markerLocked(date string) CalendarMarker {
	m := CalendarMarker{
		Date:            date,
		HasAppointments: ix.booked[date],
		Selected:        date == ix.selected,
	}
	switch {
	case m.Selected:
		m.Color = markerSelectedColor
	case m.HasAppointments:
		m.Color = markerDotColor
	}
	return m
}
