package appointment

import (
	"context"

	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/audit"
	"github.com/lazy8055/psych-care/internal/infra/repository"
	"github.com/lazy8055/psych-care/internal/models"
	"github.com/lazy8055/psych-care/internal/schedule"
)

type CreateAppointment struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	db *gorm.DB,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		db:    db,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	practiceID uint,
	therapistID uint,
	in schedule.CreateInput,
) (*models.Appointment, error) {

	sched := schedule.NewScheduler(
		repository.NewAppointmentGormStore(uc.db, practiceID, therapistID),
	)

	ap, err := sched.Create(ctx, in)
	if err != nil {
		if schedule.IsConflict(err) {
			uc.audit.Dispatch(audit.Event{
				PracticeID: practiceID,
				UserID:     &therapistID,
				Action:     "appointment_conflict",
				Entity:     "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"slot": in.Slot,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PracticeID: practiceID,
		UserID:     &therapistID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
