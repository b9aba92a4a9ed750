package schedule

import (
	"fmt"
	"time"
)

const (
	// Duração assumida quando o agendamento ainda não tem serviços
	// vinculados (primeira validação) ou quando um serviço não informa
	// duração própria.
	DefaultDurationMin = 60

	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

// Candidate é a proposta de agendamento submetida ao validador.
// ID é zero para agendamentos novos; em edições o próprio registro é
// excluído das checagens de conflito e de limite diário.
type Candidate struct {
	ID          uint
	CustomerID  uint
	Date        time.Time
	Time        string
	DurationMin int
}

// Booking é a visão mínima de um agendamento já persistido, suficiente
// para as checagens de sobreposição e de limite por cliente.
type Booking struct {
	ID          uint
	CustomerID  uint
	Date        time.Time
	Time        string
	Status      Status
	DurationMin int
}

// TotalDuration soma as durações (em minutos) dos serviços vinculados,
// assumindo DefaultDurationMin para serviços sem duração informada.
// Sem nenhum serviço vinculado, devolve DefaultDurationMin.
func TotalDuration(serviceDurations []int) int {
	if len(serviceDurations) == 0 {
		return DefaultDurationMin
	}

	total := 0
	for _, d := range serviceDurations {
		if d <= 0 {
			d = DefaultDurationMin
		}
		total += d
	}
	return total
}

// window devolve o intervalo meio-aberto [início, fim) do agendamento.
func window(date time.Time, hm string, durationMin int) (time.Time, time.Time, error) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time %q: %w", hm, err)
	}

	if durationMin <= 0 {
		durationMin = DefaultDurationMin
	}

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
	return start, start.Add(time.Duration(durationMin) * time.Minute), nil
}

// overlaps testa sobreposição de intervalos meio-abertos: tocar na borda
// não conflita.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
