package appointment

import (
	"context"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/cache"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
	"github.com/gaablh4z/v7-sistema-completo/internal/notify"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

type CancelAppointmentInput struct {
	AppointmentID uint
	RequestedBy   uint
	IsAdmin       bool
}

// CancelAppointment cancela a partir de pendente/confirmado. Clientes só
// cancelam os próprios agendamentos; admins cancelam qualquer um.
type CancelAppointment struct {
	repo     booking.Repository
	audit    *audit.Dispatcher
	notifier *notify.Dispatcher
	calendar *cache.CalendarCache
	tz       string
}

func NewCancelAppointment(
	repo booking.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier *notify.Dispatcher,
	calendar *cache.CalendarCache,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		notifier: notifier,
		calendar: calendar,
		tz:       tz,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	var (
		ap  *models.Appointment
		err error
	)
	if in.IsAdmin {
		ap, err = uc.repo.GetAppointment(ctx, in.AppointmentID)
	} else {
		ap, err = uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.RequestedBy)
	}
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldStatus := ap.Status

	now := timezone.NowIn(uc.tz)
	if err := booking.Cancel(ap, now); err != nil {
		return nil, err
	}

	duration, err := storedDuration(ctx, uc.repo, ap.ID)
	if err != nil {
		return nil, err
	}
	if err := validateAppointment(ctx, uc.repo, ap, duration, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// o dia liberou um horário
	uc.calendar.Invalidate(ctx, ap.Date.Year(), ap.Date.Month())

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequestedBy,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.Dispatch(notify.AppointmentStatusChanged{
		AppointmentID: ap.ID,
		UserID:        ap.UserID,
		OldStatus:     oldStatus,
		NewStatus:     ap.Status,
		Message:       "Agendamento cancelado.",
	})

	return ap, nil
}
