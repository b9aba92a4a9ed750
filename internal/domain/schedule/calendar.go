package schedule

import "time"

const (
	// Janela de reserva: dias à frente de hoje em que ainda se pode agendar.
	BookingHorizonDays = 30

	// Limiares de ocupação do dia na visão mensal.
	OccupiedThreshold = 8
	LimitedThreshold  = 6
)

type DayStatus string

const (
	DayPast        DayStatus = "past"
	DayOtherMonth  DayStatus = "other-month"
	DayBeyondLimit DayStatus = "beyond-limit"
	DayHoliday     DayStatus = "holiday"
	DayUnavailable DayStatus = "unavailable"
	DayOccupied    DayStatus = "occupied"
	DayLimited     DayStatus = "limited"
	DayAvailable   DayStatus = "available"
)

type CalendarDay struct {
	Date              string    `json:"date"`
	Day               int       `json:"day"`
	Weekday           int       `json:"weekday"`
	Status            DayStatus `json:"status"`
	AppointmentsCount int       `json:"appointments_count"`
	IsToday           bool      `json:"is_today"`
	IsWeekend         bool      `json:"is_weekend"`
	IsCurrentMonth    bool      `json:"is_current_month"`
	BeyondLimit       bool      `json:"beyond_booking_limit"`
	WithinHorizon     bool      `json:"within_30_days"`
}

// MonthView monta a grade do mês exibida no calendário de reservas:
// todas as semanas completas (semana começando na segunda-feira), com os
// dias de borda dos meses vizinhos incluídos. counts traz o número de
// agendamentos ativos por data (chave no formato DateLayout).
//
// Cada dia recebe exatamente um status, avaliado nesta ordem de
// precedência: past > other-month > beyond-limit > holiday > unavailable
// > occupied > limited > available.
func MonthView(year int, month time.Month, today time.Time, counts map[string]int, cfg Config) []CalendarDay {
	loc := today.Location()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	horizon := today.AddDate(0, 0, BookingHorizonDays)

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// recuar até a segunda-feira da primeira semana exibida
	gridStart := first.AddDate(0, 0, -mondayOffset(first.Weekday()))

	last := first.AddDate(0, 1, -1)
	// avançar até o domingo da última semana exibida
	gridEnd := last.AddDate(0, 0, 6-mondayOffset(last.Weekday()))

	var days []CalendarDay
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		count := counts[d.Format(DateLayout)]
		inMonth := d.Month() == month && d.Year() == year
		beyond := d.After(horizon)

		days = append(days, CalendarDay{
			Date:              d.Format(DateLayout),
			Day:               d.Day(),
			Weekday:           int(d.Weekday()),
			Status:            dayStatus(d, today, horizon, inMonth, count, cfg),
			AppointmentsCount: count,
			IsToday:           d.Equal(today),
			IsWeekend:         d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
			IsCurrentMonth:    inMonth,
			BeyondLimit:       beyond,
			WithinHorizon:     !beyond && !d.Before(today),
		})
	}
	return days
}

func dayStatus(d, today, horizon time.Time, inMonth bool, count int, cfg Config) DayStatus {
	switch {
	case d.Before(today):
		return DayPast
	case !inMonth:
		return DayOtherMonth
	case d.After(horizon):
		return DayBeyondLimit
	}

	if _, found := cfg.HolidayFor(d); found {
		return DayHoliday
	}

	if d.Weekday() == time.Sunday {
		return DayUnavailable
	}
	if wd, ok := cfg.WorkingDayFor(d.Weekday()); !ok || !wd.IsOpen {
		return DayUnavailable
	}

	switch {
	case count >= OccupiedThreshold:
		return DayOccupied
	case count >= LimitedThreshold:
		return DayLimited
	default:
		return DayAvailable
	}
}

// mondayOffset devolve quantos dias o dia da semana está após a segunda.
func mondayOffset(w time.Weekday) int {
	return (int(w) + 6) % 7
}
