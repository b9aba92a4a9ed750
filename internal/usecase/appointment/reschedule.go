package appointment

import (
	"context"
	"time"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/cache"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	infraRepo "github.com/gaablh4z/v7-sistema-completo/internal/infra/repository"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	UserID        uint

	Date  string
	Time  string
	Notes string
}

// RescheduleAppointment remarca um agendamento ainda pendente do próprio
// cliente. A revalidação completa roda com o próprio registro excluído
// das checagens de conflito e limite diário.
type RescheduleAppointment struct {
	repo     booking.Repository
	audit    *audit.Dispatcher
	calendar *cache.CalendarCache
	tz       string
}

func NewRescheduleAppointment(
	repo booking.Repository,
	auditDispatcher *audit.Dispatcher,
	calendar *cache.CalendarCache,
	tz string,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		calendar: calendar,
		tz:       tz,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Somente pendentes podem ser alterados pelo cliente
	if schedule.Status(ap.Status) != schedule.StatusPending {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	loc := timezone.Location(uc.tz)

	date, err := time.ParseInLocation(schedule.DateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	hm, err := time.Parse(schedule.TimeLayout, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	oldMonth := ap.Date

	ap.Date = date
	ap.Time = hm.Format(schedule.TimeLayout)
	if in.Notes != "" {
		ap.Notes = in.Notes
	}

	duration, err := storedDuration(ctx, uc.repo, ap.ID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := validateAppointment(ctx, uc.repo, ap, duration, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if infraRepo.IsDuplicateKey(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.calendar.Invalidate(ctx, oldMonth.Year(), oldMonth.Month())
	uc.calendar.Invalidate(ctx, date.Year(), date.Month())

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
