package appointment

import (
	"context"
	"time"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/dto"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

type ListAppointments struct {
	repo booking.Repository
	tz   string
}

func NewListAppointments(repo booking.Repository, tz string) *ListAppointments {
	return &ListAppointments{repo: repo, tz: tz}
}

// ForUser lista o histórico do cliente, com filtro opcional por status e
// contadores para o painel.
func (uc *ListAppointments) ForUser(
	ctx context.Context,
	userID uint,
	status string,
) ([]dto.AppointmentListDTO, dto.AppointmentStatsDTO, error) {

	aps, err := uc.repo.ListAppointmentsForUser(ctx, userID, status)
	if err != nil {
		return nil, dto.AppointmentStatsDTO{}, err
	}

	stats := dto.AppointmentStatsDTO{Total: int64(len(aps))}
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		switch schedule.Status(ap.Status) {
		case schedule.StatusPending:
			stats.Pending++
		case schedule.StatusCompleted:
			stats.Completed++
		}
		out = append(out, toListDTO(ap, false))
	}
	return out, stats, nil
}

// ForDate lista a agenda de um dia para o painel administrativo.
func (uc *ListAppointments) ForDate(
	ctx context.Context,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)
	date, err := time.ParseInLocation(schedule.DateLayout, dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	aps, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, toListDTO(ap, true))
	}
	return out, nil
}

func toListDTO(ap models.Appointment, withCustomer bool) dto.AppointmentListDTO {
	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Service.Name)
	}

	item := dto.AppointmentListDTO{
		ID:            ap.ID,
		Reference:     ap.Reference,
		Date:          ap.Date,
		Time:          ap.Time,
		Status:        ap.Status,
		StatusDisplay: statusDisplay[schedule.Status(ap.Status)],
		TotalPrice:    ap.TotalPrice,
		QueuePosition: ap.QueuePosition,
		VehiclePlate:  ap.Vehicle.Plate,
		VehicleModel:  ap.Vehicle.Model,
		ServiceNames:  names,
	}
	if withCustomer {
		item.CustomerName = ap.User.Name
	}
	return item
}
