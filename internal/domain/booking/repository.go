package booking

import (
	"context"
	"time"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetScheduleConfig(
		ctx context.Context,
	) (schedule.Config, error)

	// -------- Catalog --------
	ListActiveServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Vehicle --------
	GetVehicleForUser(
		ctx context.Context,
		vehicleID uint,
		userID uint,
	) (*models.Vehicle, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		services []models.AppointmentService,
	) error

	// ListBookingsForDate devolve os agendamentos do dia já com a duração
	// total de cada um resolvida a partir dos serviços vinculados.
	ListBookingsForDate(
		ctx context.Context,
		date time.Time,
	) ([]schedule.Booking, error)

	// -------- Appointment (lookup / state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
		status string,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	// ServiceDurations devolve as durações em minutos dos serviços já
	// vinculados ao agendamento; erro de consulta nunca é engolido.
	ServiceDurations(
		ctx context.Context,
		appointmentID uint,
	) ([]int, error)

	// -------- Availability --------
	CountActiveByDateRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (map[string]int, error)

	OccupiedTimes(
		ctx context.Context,
		date time.Time,
	) (map[string]bool, error)

	CountActiveOnDate(
		ctx context.Context,
		date time.Time,
	) (int64, error)

	// -------- Review --------
	CreateReview(
		ctx context.Context,
		review *models.AppointmentReview,
	) error
}
