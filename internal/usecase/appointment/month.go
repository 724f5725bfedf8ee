package appointment

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/dates"
	"github.com/lazy8055/psych-care/internal/infra/repository"
	"github.com/lazy8055/psych-care/internal/models"
	"github.com/lazy8055/psych-care/internal/schedule"
)

type ListAppointmentsByMonth struct {
	db *gorm.DB
}

func NewListAppointmentsByMonth(db *gorm.DB) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{db: db}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	practiceID uint,
	therapistID uint,
	year int,
	month time.Month,
) ([]models.Appointment, error) {

	store := repository.NewAppointmentGormStore(uc.db, practiceID, therapistID)

	all, err := store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	prefix := dates.MonthPrefix(year, month)
	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if strings.HasPrefix(ap.Date, prefix) {
			out = append(out, ap)
		}
	}

	return out, nil
}

type GetMonthMarkers struct {
	db *gorm.DB
}

func NewGetMonthMarkers(db *gorm.DB) *GetMonthMarkers {
	return &GetMonthMarkers{db: db}
}

func (uc *GetMonthMarkers) Execute(
	ctx context.Context,
	practiceID uint,
	therapistID uint,
	year int,
	month time.Month,
	selected string,
) ([]schedule.CalendarMarker, error) {

	sched := schedule.NewScheduler(
		repository.NewAppointmentGormStore(uc.db, practiceID, therapistID),
	)

	if selected != "" {
		sched.Select(selected)
	}

	return sched.MonthMarkers(ctx, year, month)
}
