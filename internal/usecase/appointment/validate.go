package appointment

import (
	"context"
	"time"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

// Nomes de exibição dos status, usados nas notificações.
var statusDisplay = map[schedule.Status]string{
	schedule.StatusPending:    "Pendente",
	schedule.StatusConfirmed:  "Confirmado",
	schedule.StatusInProgress: "Em Andamento",
	schedule.StatusCompleted:  "Concluído",
	schedule.StatusCancelled:  "Cancelado",
}

// validateAppointment roda o validador completo sobre o estado atual do
// agendamento. Todo caminho de escrita passa por aqui antes de persistir:
// criação, remarcação e mudança de status, sempre explicitamente.
func validateAppointment(
	ctx context.Context,
	repo booking.Repository,
	ap *models.Appointment,
	durationMin int,
	now time.Time,
) error {

	cfg, err := repo.GetScheduleConfig(ctx)
	if err != nil {
		return err
	}

	existing, err := repo.ListBookingsForDate(ctx, ap.Date)
	if err != nil {
		return err
	}

	cand := schedule.Candidate{
		ID:          ap.ID,
		CustomerID:  ap.UserID,
		Date:        ap.Date,
		Time:        ap.Time,
		DurationMin: durationMin,
	}

	if violations := schedule.Validate(cand, existing, cfg, now); !violations.Empty() {
		return violations
	}
	return nil
}

// storedDuration resolve a duração de um agendamento já persistido a
// partir dos serviços vinculados. Erros de consulta sobem; apenas a
// ausência de serviços cai no padrão de 60 minutos.
func storedDuration(
	ctx context.Context,
	repo booking.Repository,
	appointmentID uint,
) (int, error) {

	durations, err := repo.ServiceDurations(ctx, appointmentID)
	if err != nil {
		return 0, err
	}
	return schedule.TotalDuration(durations), nil
}
