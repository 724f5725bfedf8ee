package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/lazy8055/psych-care/internal/db"
	"github.com/lazy8055/psych-care/internal/models"
	"github.com/lazy8055/psych-care/internal/schedule"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func testAppointment(date, slot string) *models.Appointment {
	return &models.Appointment{
		PatientID:     "p-1",
		PatientName:   "Ana Souza",
		Date:          date,
		Slot:          slot,
		DurationLabel: "50 minutes",
		Category:      "Therapy Session",
	}
}

func TestGormStoreInsert(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentGormStore(openTestDB(t), 1, 1)

	stored, err := store.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, uint(1), stored.PracticeID)
	assert.Equal(t, string(schedule.StatusConfirmed), stored.Status)
}

func TestGormStoreInsertConflict(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentGormStore(openTestDB(t), 1, 1)

	_, err := store.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.Error(t, err)
	assert.True(t, schedule.IsConflict(err))

	active, err := store.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestGormStorePracticeScoping(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	storeA := NewAppointmentGormStore(db, 1, 1)
	storeB := NewAppointmentGormStore(db, 2, 2)

	// Two practices can hold the same (date, slot) independently.
	_, err := storeA.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)
	_, err = storeB.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	activeA, err := storeA.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, activeA, 1)
	assert.Equal(t, uint(1), activeA[0].PracticeID)

	all, err := storeB.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, uint(2), all[0].PracticeID)
}

func TestGormStoreCancel(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentGormStore(openTestDB(t), 1, 1)

	stored, err := store.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	now := time.Now().UTC()
	cancelled, err := store.Cancel(ctx, stored.ID, now)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// Cancelled record survives, slot is free again.
	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = store.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	assert.NoError(t, err)
}

func TestGormStoreCancelErrors(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentGormStore(openTestDB(t), 1, 1)

	_, err := store.Cancel(ctx, "missing", time.Now().UTC())
	require.Error(t, err)
	assert.True(t, schedule.IsNotFound(err))

	stored, err := store.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = store.Cancel(ctx, stored.ID, time.Now().UTC())
	require.NoError(t, err)

	_, err = store.Cancel(ctx, stored.ID, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, schedule.IsState(err))

	// Another practice's appointment reads as not found, not as state.
	other := NewAppointmentGormStore(store.db, 2, 2)
	stored2, err := store.Insert(ctx, testAppointment("2026-09-02", "10:00 AM"))
	require.NoError(t, err)
	_, err = other.Cancel(ctx, stored2.ID, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, schedule.IsNotFound(err))
}

func TestGormStoreListByDateOrder(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentGormStore(openTestDB(t), 1, 1)

	for _, slot := range []string{"04:30 PM", "09:00 AM", "12:30 PM"} {
		_, err := store.Insert(ctx, testAppointment("2026-09-01", slot))
		require.NoError(t, err)
	}

	active, err := store.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "09:00 AM", active[0].Slot)
	assert.Equal(t, "12:30 PM", active[1].Slot)
	assert.Equal(t, "04:30 PM", active[2].Slot)
}

func TestGormStoreViewDay(t *testing.T) {
	ctx := context.Background()
	store := NewAppointmentGormStore(openTestDB(t), 1, 1)

	_, err := store.Insert(ctx, testAppointment("2026-09-01", "10:00 AM"))
	require.NoError(t, err)

	var seen []models.Appointment
	err = store.ViewDay(ctx, "2026-09-01", func(active []models.Appointment) error {
		seen = active
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "10:00 AM", seen[0].Slot)
}

func TestSchedulerOverGormStore(t *testing.T) {
	ctx := context.Background()
	sched := schedule.NewScheduler(NewAppointmentGormStore(openTestDB(t), 1, 1))

	ap, err := sched.Create(ctx, schedule.CreateInput{
		PatientID:   "p-1",
		PatientName: "Ana Souza",
		Date:        "2026-09-01",
		Slot:        "10:00 AM",
		Category:    "Therapy Session",
	})
	require.NoError(t, err)

	day, err := sched.DaySchedule(ctx, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, day.Booked, 1)
	assert.Len(t, day.Available, 17)
	assert.False(t, day.FullyBooked)

	_, err = sched.Cancel(ctx, ap.ID)
	require.NoError(t, err)

	available, err := sched.AvailableSlots(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, available, 18)
}
