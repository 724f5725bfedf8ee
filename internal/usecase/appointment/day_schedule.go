package appointment

import (
	"context"

	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/infra/repository"
	"github.com/lazy8055/psych-care/internal/schedule"
)

type GetDaySchedule struct {
	db *gorm.DB
}

func NewGetDaySchedule(db *gorm.DB) *GetDaySchedule {
	return &GetDaySchedule{db: db}
}

// Execute returns booked appointments and open slots for one date, both
// computed against the same store snapshot.
func (uc *GetDaySchedule) Execute(
	ctx context.Context,
	practiceID uint,
	therapistID uint,
	date string,
) (*schedule.DaySchedule, error) {

	sched := schedule.NewScheduler(
		repository.NewAppointmentGormStore(uc.db, practiceID, therapistID),
	)

	return sched.DaySchedule(ctx, date)
}
