package schedule

import "time"

// WorkingDay é o expediente de um dia da semana, horários no formato "15:04".
// Quando IsOpen é falso os horários são ignorados.
type WorkingDay struct {
	Weekday   time.Weekday
	OpenTime  string
	CloseTime string
	IsOpen    bool
}

type Holiday struct {
	Date      time.Time
	Name      string
	Recurring bool
}

// Config reúne os dados de referência do calendário (expediente semanal e
// feriados), carregados uma vez por requisição. Toda a lógica de validação
// e disponibilidade opera apenas sobre este valor, sem tocar no banco.
type Config struct {
	Week     map[time.Weekday]WorkingDay
	Holidays []Holiday
}

// WorkingDayFor devolve o expediente do dia da semana, se configurado.
func (c Config) WorkingDayFor(weekday time.Weekday) (WorkingDay, bool) {
	wd, ok := c.Week[weekday]
	return wd, ok
}

// HolidayFor procura um feriado para a data: match exato, ou por mês+dia
// quando o feriado é recorrente.
func (c Config) HolidayFor(date time.Time) (Holiday, bool) {
	for _, h := range c.Holidays {
		if h.Recurring {
			if h.Date.Month() == date.Month() && h.Date.Day() == date.Day() {
				return h, true
			}
			continue
		}
		if sameDate(h.Date, date) {
			return h, true
		}
	}
	return Holiday{}, false
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
