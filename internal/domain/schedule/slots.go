package schedule

import "time"

// Passo fixo entre horários candidatos oferecidos na reserva.
const SlotStrideMin = 30

const ClosedSundayMessage = "Estabelecimento fechado aos domingos"

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DaySlots gera os horários candidatos de uma data: do horário de abertura,
// em passos de SlotStrideMin, parando estritamente antes do fechamento.
// occupied marca horários ("15:04") já tomados por agendamento ativo no
// mesmo par data+hora exato.
//
// A checagem aqui é por igualdade exata de horário, não pela janela com
// duração usada pelo validador; o validador é a palavra final na submissão.
// Domingo devolve lista vazia com mensagem de fechado.
func DaySlots(date time.Time, cfg Config, occupied map[string]bool) ([]TimeSlot, string) {
	if date.Weekday() == time.Sunday {
		return []TimeSlot{}, ClosedSundayMessage
	}

	wd, ok := cfg.WorkingDayFor(date.Weekday())
	if !ok || !wd.IsOpen {
		return []TimeSlot{}, "Estabelecimento fechado neste dia"
	}

	open, err := time.Parse(TimeLayout, wd.OpenTime)
	if err != nil {
		return []TimeSlot{}, ""
	}
	close, err := time.Parse(TimeLayout, wd.CloseTime)
	if err != nil {
		return []TimeSlot{}, ""
	}

	var slots []TimeSlot
	for cur := open; cur.Before(close); cur = cur.Add(SlotStrideMin * time.Minute) {
		hm := cur.Format(TimeLayout)
		slots = append(slots, TimeSlot{
			Time:      hm,
			Available: !occupied[hm],
		})
	}
	return slots, ""
}
