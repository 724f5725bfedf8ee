package appointment

import (
	"context"

	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/audit"
	"github.com/lazy8055/psych-care/internal/infra/repository"
	"github.com/lazy8055/psych-care/internal/models"
	"github.com/lazy8055/psych-care/internal/schedule"
)

type CancelAppointment struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	db *gorm.DB,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		db:    db,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	practiceID uint,
	therapistID uint,
	appointmentID string,
) (*models.Appointment, error) {

	sched := schedule.NewScheduler(
		repository.NewAppointmentGormStore(uc.db, practiceID, therapistID),
	)

	ap, err := sched.Cancel(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PracticeID: practiceID,
		UserID:     &therapistID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
