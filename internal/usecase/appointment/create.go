package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/cache"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	infraRepo "github.com/gaablh4z/v7-sistema-completo/internal/infra/repository"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
	"github.com/gaablh4z/v7-sistema-completo/internal/notify"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID     uint
	VehicleID  uint
	ServiceIDs []uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     booking.Repository
	audit    *audit.Dispatcher
	notifier *notify.Dispatcher
	calendar *cache.CalendarCache
	tz       string
}

func NewCreateAppointment(
	repo booking.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier *notify.Dispatcher,
	calendar *cache.CalendarCache,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		notifier: notifier,
		calendar: calendar,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location(uc.tz)

	date, err := time.ParseInLocation(schedule.DateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	hm, err := time.Parse(schedule.TimeLayout, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// Veículo precisa pertencer ao cliente
	vehicle, err := uc.repo.GetVehicleForUser(ctx, in.VehicleID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("vehicle_not_found")
	}

	// Serviços escolhidos: ativos, sem repetição
	ids := dedupe(in.ServiceIDs)
	if len(ids) == 0 {
		return nil, httperr.ErrBusiness("no_services_selected")
	}

	services, err := uc.repo.ListActiveServices(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	durations := make([]int, 0, len(services))
	total := 0.0
	items := make([]models.AppointmentService, 0, len(services))
	for _, s := range services {
		durations = append(durations, s.DurationMin)
		total += s.Price
		items = append(items, models.AppointmentService{
			ServiceID: s.ID,
			Price:     s.Price, // preço congelado no momento da reserva
		})
	}

	ap := &models.Appointment{
		Reference: uuid.NewString(),
		UserID:    in.UserID,
		VehicleID: vehicle.ID,
		Date:      date,
		Time:      hm.Format(schedule.TimeLayout),
		Status:    string(schedule.InitialStatus()),
		TotalPrice: total,
		Notes:     in.Notes,
	}

	now := timezone.NowIn(uc.tz)
	if err := validateAppointment(ctx, uc.repo, ap, schedule.TotalDuration(durations), now); err != nil {
		return nil, err
	}

	// Posição na fila: dica de ordenação, não é sequência estrita
	count, err := uc.repo.CountActiveOnDate(ctx, date)
	if err != nil {
		return nil, err
	}
	ap.QueuePosition = int(count) + 1

	if err := uc.repo.CreateAppointment(ctx, ap, items); err != nil {
		if infraRepo.IsDuplicateKey(err) {
			// corrida perdida: outro cliente gravou o mesmo horário primeiro
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.calendar.Invalidate(ctx, date.Year(), date.Month())

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.Dispatch(notify.AppointmentStatusChanged{
		AppointmentID: ap.ID,
		UserID:        ap.UserID,
		OldStatus:     "",
		NewStatus:     ap.Status,
		Message:       "Novo agendamento recebido.",
	})

	return ap, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
