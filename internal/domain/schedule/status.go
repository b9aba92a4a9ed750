package schedule

import "github.com/gaablh4z/v7-sistema-completo/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// IsActive diz se o agendamento ainda ocupa a agenda. Concluídos e
// cancelados nunca entram nas checagens de conflito e contagem.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// ActiveStatuses na ordem usada nas queries por status.
func ActiveStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusInProgress),
	}
}

// ===============================
// Transições
// ===============================

// CanConfirm: somente agendamentos pendentes são confirmados.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanStart: o atendimento só inicia depois de confirmado.
func CanStart(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: só conclui o que está em andamento.
func CanComplete(current Status) error {
	if current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: cancelamento só a partir de pendente ou confirmado.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
