package appointment

import (
	"context"
	"time"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

type TimeSlotsResult struct {
	Date    string              `json:"date"`
	Slots   []schedule.TimeSlot `json:"slots"`
	Message string              `json:"message,omitempty"`
}

// GetTimeSlots lista os horários candidatos de uma data com a marcação de
// ocupado por igualdade exata de data+hora. A palavra final sobre
// conflito é sempre do validador na submissão.
type GetTimeSlots struct {
	repo booking.Repository
	tz   string
}

func NewGetTimeSlots(repo booking.Repository, tz string) *GetTimeSlots {
	return &GetTimeSlots{repo: repo, tz: tz}
}

func (uc *GetTimeSlots) Execute(
	ctx context.Context,
	dateStr string,
) (*TimeSlotsResult, error) {

	loc := timezone.Location(uc.tz)
	date, err := time.ParseInLocation(schedule.DateLayout, dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	cfg, err := uc.repo.GetScheduleConfig(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := uc.repo.OccupiedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	slots, message := schedule.DaySlots(date, cfg, occupied)

	return &TimeSlotsResult{
		Date:    dateStr,
		Slots:   slots,
		Message: message,
	}, nil
}
