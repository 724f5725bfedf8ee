package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazy8055/psych-care/internal/models"
)

func newAppointment(date, slot string) *models.Appointment {
	return &models.Appointment{
		PatientID:     "p-1",
		PatientName:   "Ana Souza",
		Date:          date,
		Slot:          slot,
		DurationLabel: "50 minutes",
		Category:      "Therapy Session",
	}
}

func TestMemoryStoreInsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	stored, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)
	assert.Equal(t, string(StatusConfirmed), stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestMemoryStoreInsertConflict(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// Same slot on another date is fine.
	_, err = store.Insert(ctx, newAppointment("2026-09-02", "10:00 AM"))
	assert.NoError(t, err)

	// A rejected insert leaves the day untouched.
	active, err := store.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestMemoryStoreCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	stored, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	now := time.Now().UTC()
	cancelled, err := store.Cancel(ctx, stored.ID, now)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, now, *cancelled.CancelledAt)

	// The slot is bookable again; the cancelled record survives.
	rebooked, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)
	assert.NotEqual(t, stored.ID, rebooked.ID)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryStoreCancelUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Cancel(context.Background(), "missing", time.Now().UTC())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestMemoryStoreCancelTwice(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	stored, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = store.Cancel(ctx, stored.ID, time.Now().UTC())
	require.NoError(t, err)

	_, err = store.Cancel(ctx, stored.ID, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, IsState(err))
}

func TestMemoryStoreConcurrentInsertSameSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const racers = 32
	var wg sync.WaitGroup
	errs := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	// Exactly one insert wins; everyone else gets the conflict.
	var won, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, racers-1, conflicts)

	active, err := store.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestMemoryStoreViewDayExcludesConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Insert(ctx, newAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	inserted := make(chan struct{})
	err = store.ViewDay(ctx, "2026-09-01", func(active []models.Appointment) error {
		go func() {
			defer close(inserted)
			_, err := store.Insert(ctx, newAppointment("2026-09-01", "11:00 AM"))
			assert.NoError(t, err)
		}()

		// The insert must wait for the view to finish, not land inside it.
		select {
		case <-inserted:
			t.Error("insert interleaved with a day view")
		case <-time.After(50 * time.Millisecond):
		}

		assert.Len(t, active, 1)
		return nil
	})
	require.NoError(t, err)

	<-inserted
	active, err := store.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestMemoryStoreListByDateOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, slot := range []string{"03:00 PM", "09:30 AM", "11:00 AM"} {
		_, err := store.Insert(ctx, newAppointment("2026-09-01", slot))
		require.NoError(t, err)
	}

	active, err := store.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "09:30 AM", active[0].Slot)
	assert.Equal(t, "11:00 AM", active[1].Slot)
	assert.Equal(t, "03:00 PM", active[2].Slot)
}
