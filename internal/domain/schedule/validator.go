package schedule

import (
	"fmt"
	"time"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// Máximo de agendamentos ativos por cliente em um mesmo dia.
const MaxPerCustomerPerDay = 2

// Validate decide se o candidato pode ser persistido, avaliando as cinco
// regras de negócio e recolhendo todas as violações (sem fail-fast):
//
//  1. data não pode estar no passado;
//  2. horário dentro do expediente do dia;
//  3. data não pode ser feriado;
//  4. sem sobreposição de janela com outro agendamento ativo do dia;
//  5. no máximo MaxPerCustomerPerDay agendamentos ativos do cliente no dia.
//
// existing deve conter os agendamentos do mesmo dia; o próprio candidato
// (mesmo ID) é ignorado nas regras 4 e 5. A função é pura: roda antes de
// TODA persistência, criação ou edição, e nunca é contornada.
func Validate(cand Candidate, existing []Booking, cfg Config, now time.Time) Violations {
	violations := Violations{}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	candDate := time.Date(cand.Date.Year(), cand.Date.Month(), cand.Date.Day(), 0, 0, 0, 0, now.Location())

	// 1. Data no passado
	if candDate.Before(today) {
		violations[FieldDate] = "Não é possível agendar para uma data passada."
	}

	// 2. Horário de funcionamento
	wd, ok := cfg.WorkingDayFor(cand.Date.Weekday())
	switch {
	case !ok:
		violations[FieldDate] = "Horário de funcionamento não configurado para este dia."
	case !wd.IsOpen:
		violations[FieldDate] = fmt.Sprintf("Estabelecimento fechado em %s.", weekdayNames[cand.Date.Weekday()])
	default:
		if cand.Time < wd.OpenTime || cand.Time >= wd.CloseTime {
			violations[FieldTime] = fmt.Sprintf(
				"Horário fora do funcionamento (%s às %s).",
				wd.OpenTime, wd.CloseTime,
			)
		}
	}

	// 3. Feriados
	if h, found := cfg.HolidayFor(cand.Date); found {
		violations[FieldDate] = fmt.Sprintf("Não é possível agendar no feriado: %s.", h.Name)
	}

	// 4. Sobreposição de janelas (meio-abertas; considerar duração)
	if conflict := findOverlap(cand, existing); conflict != nil {
		violations[FieldTime] = "Conflito de horário com outro agendamento."
	}

	// 5. Limite diário por cliente
	count := 0
	for _, b := range existing {
		if b.ID == cand.ID && cand.ID != 0 {
			continue
		}
		if b.CustomerID == cand.CustomerID && b.Status.IsActive() && sameDate(b.Date, cand.Date) {
			count++
		}
	}
	if count >= MaxPerCustomerPerDay {
		violations[FieldDate] = "Cliente já possui agendamentos suficientes para este dia."
	}

	return violations
}

// findOverlap devolve o primeiro agendamento ativo do dia cuja janela
// sobrepõe a do candidato. A ordem de avaliação segue a ordem do slice
// recebido; em caso de múltiplos conflitos o escolhido não é garantido.
func findOverlap(cand Candidate, existing []Booking) *Booking {
	candStart, candEnd, err := window(cand.Date, cand.Time, cand.DurationMin)
	if err != nil {
		return nil
	}

	for i := range existing {
		other := existing[i]
		if other.ID == cand.ID && cand.ID != 0 {
			continue
		}
		if !other.Status.IsActive() || !sameDate(other.Date, cand.Date) {
			continue
		}

		otherStart, otherEnd, err := window(other.Date, other.Time, other.DurationMin)
		if err != nil {
			continue
		}

		if overlaps(candStart, candEnd, otherStart, otherEnd) {
			return &other
		}
	}
	return nil
}
