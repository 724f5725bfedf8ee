package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarSelectionIsExclusive(t *testing.T) {
	ix := NewCalendarIndex()

	ix.Select("2026-09-01")
	assert.True(t, ix.MarkerFor("2026-09-01").Selected)

	ix.Select("2026-09-02")
	assert.False(t, ix.MarkerFor("2026-09-01").Selected)
	assert.True(t, ix.MarkerFor("2026-09-02").Selected)
	assert.Equal(t, "2026-09-02", ix.SelectedDate())
}

func TestCalendarMarkerColors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	ix := NewCalendarIndex()

	_, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)
	require.NoError(t, ix.Rebuild(ctx, store))

	// Booked date carries the dot color.
	m := ix.MarkerFor("2026-09-01")
	assert.True(t, m.HasAppointments)
	assert.Equal(t, "#5C6BC0", m.Color)

	// Selection wins over the dot.
	ix.Select("2026-09-01")
	m = ix.MarkerFor("2026-09-01")
	assert.True(t, m.Selected)
	assert.Equal(t, "#5C6BC030", m.Color)

	// A plain date has no color at all.
	m = ix.MarkerFor("2026-09-09")
	assert.False(t, m.HasAppointments)
	assert.Empty(t, m.Color)
}

func TestCalendarMarkersForPrefixIncludesSelection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	ix := NewCalendarIndex()

	_, err := store.Insert(ctx, newAppointment("2026-09-10", "10:00 AM"))
	require.NoError(t, err)
	require.NoError(t, ix.Rebuild(ctx, store))

	// Selecting an empty date still surfaces it in the month view.
	ix.Select("2026-09-03")

	markers := ix.MarkersForPrefix("2026-09-")
	require.Len(t, markers, 2)
	assert.Equal(t, "2026-09-03", markers[0].Date)
	assert.True(t, markers[0].Selected)
	assert.False(t, markers[0].HasAppointments)
	assert.Equal(t, "2026-09-10", markers[1].Date)
	assert.True(t, markers[1].HasAppointments)

	// Selection in another month does not leak in.
	ix.Select("2026-10-03")
	markers = ix.MarkersForPrefix("2026-09-")
	require.Len(t, markers, 1)
	assert.Equal(t, "2026-09-10", markers[0].Date)
}

func TestCalendarRebuildDropsCancelledDates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	ix := NewCalendarIndex()

	ap, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)
	require.NoError(t, ix.Rebuild(ctx, store))
	require.True(t, ix.MarkerFor("2026-09-01").HasAppointments)

	_, err = store.Cancel(ctx, ap.ID, ap.CreatedAt)
	require.NoError(t, err)
	require.NoError(t, ix.Rebuild(ctx, store))

	assert.False(t, ix.MarkerFor("2026-09-01").HasAppointments)
}
