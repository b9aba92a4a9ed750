package appointment

import (
	"context"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
	"github.com/gaablh4z/v7-sistema-completo/internal/notify"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

type CompleteAppointment struct {
	repo     booking.Repository
	audit    *audit.Dispatcher
	notifier *notify.Dispatcher
	tz       string
}

func NewCompleteAppointment(
	repo booking.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier *notify.Dispatcher,
	tz string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		notifier: notifier,
		tz:       tz,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldStatus := ap.Status

	now := timezone.NowIn(uc.tz)
	if err := booking.Complete(ap, now); err != nil {
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

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.Dispatch(notify.AppointmentStatusChanged{
		AppointmentID: ap.ID,
		UserID:        ap.UserID,
		OldStatus:     oldStatus,
		NewStatus:     ap.Status,
		Message:       "Seu veículo está pronto para retirada.",
	})

	return ap, nil
}
