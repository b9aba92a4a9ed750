package appointment

import (
	"context"
	"time"

	"github.com/gaablh4z/v7-sistema-completo/internal/cache"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

// GetCalendar monta a visão mensal de disponibilidade consumida pelo
// calendário de reservas. Somente leitura, sem efeitos colaterais; o
// resultado fica em cache por um período curto.
type GetCalendar struct {
	repo     booking.Repository
	calendar *cache.CalendarCache
	tz       string
}

func NewGetCalendar(
	repo booking.Repository,
	calendar *cache.CalendarCache,
	tz string,
) *GetCalendar {
	return &GetCalendar{
		repo:     repo,
		calendar: calendar,
		tz:       tz,
	}
}

func (uc *GetCalendar) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]schedule.CalendarDay, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	if days, ok := uc.calendar.Get(ctx, year, time.Month(month)); ok {
		return days, nil
	}

	cfg, err := uc.repo.GetScheduleConfig(ctx)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.tz)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	// inclui os dias de borda dos meses vizinhos exibidos na grade
	counts, err := uc.repo.CountActiveByDateRange(
		ctx,
		first.AddDate(0, 0, -7),
		last.AddDate(0, 0, 7),
	)
	if err != nil {
		return nil, err
	}

	today := timezone.NowIn(uc.tz)
	days := schedule.MonthView(year, time.Month(month), today, counts, cfg)

	uc.calendar.Set(ctx, year, time.Month(month), days)
	return days, nil
}
