package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/models"
	"github.com/lazy8055/psych-care/internal/schedule"
)

// AppointmentGormStore is the database-backed schedule.Store, scoped to one
// practice. The partial unique index on (practice_id, date, slot) where
// status='confirmed' makes Insert's check-then-write race-free even across
// processes; the in-transaction count exists to report the conflict before
// the index has to.
type AppointmentGormStore struct {
	db          *gorm.DB
	practiceID  uint
	therapistID uint
}

func NewAppointmentGormStore(db *gorm.DB, practiceID, therapistID uint) *AppointmentGormStore {
	return &AppointmentGormStore{
		db:          db,
		practiceID:  practiceID,
		therapistID: therapistID,
	}
}

// --------------------------------------------------
// Insert / conflict
// --------------------------------------------------

func (s *AppointmentGormStore) Insert(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Appointment, error) {

	ap.PracticeID = s.practiceID
	ap.TherapistID = s.therapistID
	if ap.Status == "" {
		ap.Status = string(schedule.InitialStatus())
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"practice_id = ? AND date = ? AND slot = ? AND status = ?",
				s.practiceID, ap.Date, ap.Slot, string(schedule.StatusConfirmed),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return schedule.ConflictError{Date: ap.Date, Slot: schedule.TimeSlot(ap.Slot)}
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent insert; same answer.
			return nil, schedule.ConflictError{Date: ap.Date, Slot: schedule.TimeSlot(ap.Slot)}
		}
		return nil, err
	}

	return ap, nil
}

// --------------------------------------------------
// Cancel
// --------------------------------------------------

func (s *AppointmentGormStore) Cancel(
	ctx context.Context,
	id string,
	now time.Time,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.
			Where("id = ? AND practice_id = ?", id, s.practiceID).
			First(&ap).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return schedule.NotFoundError{ID: id}
			}
			return err
		}

		if err := schedule.CanCancel(schedule.Status(ap.Status)); err != nil {
			return schedule.StateError{ID: id, Status: schedule.Status(ap.Status)}
		}

		ap.Status = string(schedule.StatusCancelled)
		ap.CancelledAt = &now

		if err := tx.Save(&ap).Error; err != nil {
			return err
		}

		out = &ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (s *AppointmentGormStore) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	return s.activeForDate(s.db.WithContext(ctx), date)
}

func (s *AppointmentGormStore) ListAll(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := s.db.WithContext(ctx).
		Where("practice_id = ?", s.practiceID).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	sortAppointments(aps)
	return aps, nil
}

// ViewDay reads the day inside one transaction so booked and derived
// availability cannot disagree under concurrent inserts.
func (s *AppointmentGormStore) ViewDay(
	ctx context.Context,
	date string,
	fn func(active []models.Appointment) error,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		active, err := s.activeForDate(tx, date)
		if err != nil {
			return err
		}
		return fn(active)
	})
}

func (s *AppointmentGormStore) activeForDate(
	tx *gorm.DB,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := tx.
		Where(
			"practice_id = ? AND date = ? AND status = ?",
			s.practiceID, date, string(schedule.StatusConfirmed),
		).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	// Slot order lives in the catalog, not the database.
	sortAppointments(aps)
	return aps, nil
}

func sortAppointments(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date < aps[j].Date
		}
		pi, _ := schedule.SlotPosition(aps[i].Slot)
		pj, _ := schedule.SlotPosition(aps[j].Slot)
		return pi < pj
	})
}

// Compile-time check
var _ schedule.Store = (*AppointmentGormStore)(nil)
