package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// IsDuplicateKey identifica violação de unicidade (par data+hora já
// reservado por escrita concorrente). Requer TranslateError no gorm.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetScheduleConfig(
	ctx context.Context,
) (schedule.Config, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return schedule.Config{}, err
	}

	var holidays []models.Holiday
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&holidays).Error; err != nil {
		return schedule.Config{}, err
	}

	cfg := schedule.Config{
		Week: make(map[time.Weekday]schedule.WorkingDay, len(hours)),
	}
	for _, wh := range hours {
		cfg.Week[time.Weekday(wh.Weekday)] = schedule.WorkingDay{
			Weekday:   time.Weekday(wh.Weekday),
			OpenTime:  wh.OpenTime,
			CloseTime: wh.CloseTime,
			IsOpen:    wh.IsOpen,
		}
	}
	for _, h := range holidays {
		cfg.Holidays = append(cfg.Holidays, schedule.Holiday{
			Date:      h.Date,
			Name:      h.Name,
			Recurring: h.Recurring,
		})
	}

	return cfg, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Vehicle
// --------------------------------------------------

func (r *AppointmentGormRepository) GetVehicleForUser(
	ctx context.Context,
	vehicleID uint,
	userID uint,
) (*models.Vehicle, error) {

	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", vehicleID, userID).
		First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	services []models.AppointmentService,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for i := range services {
			services[i].AppointmentID = ap.ID
		}
		if len(services) > 0 {
			if err := tx.Create(&services).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AppointmentGormRepository) ListBookingsForDate(
	ctx context.Context,
	date time.Time,
) ([]schedule.Booking, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services.Service").
		Where("date = ?", dateOnly(date)).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	bookings := make([]schedule.Booking, 0, len(aps))
	for _, ap := range aps {
		durations := make([]int, 0, len(ap.Services))
		for _, s := range ap.Services {
			durations = append(durations, s.Service.DurationMin)
		}

		bookings = append(bookings, schedule.Booking{
			ID:          ap.ID,
			CustomerID:  ap.UserID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      schedule.Status(ap.Status),
			DurationMin: schedule.TotalDuration(durations),
		})
	}
	return bookings, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services.Service").
		Preload("User").
		Preload("Vehicle").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services.Service").
		Preload("Vehicle").
		Where("id = ? AND user_id = ?", id, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Services.Service").
		Where("user_id = ?", userID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Services.Service").
		Where("date = ?", dateOnly(date)).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ServiceDurations(
	ctx context.Context,
	appointmentID uint,
) ([]int, error) {

	var items []models.AppointmentService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("appointment_id = ?", appointmentID).
		Find(&items).Error; err != nil {
		return nil, err
	}

	durations := make([]int, 0, len(items))
	for _, item := range items {
		durations = append(durations, item.Service.DurationMin)
	}
	return durations, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) CountActiveByDateRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (map[string]int, error) {

	type row struct {
		Date  time.Time
		Total int
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("date, COUNT(*) AS total").
		Where(
			"date >= ? AND date <= ? AND status IN ?",
			dateOnly(start), dateOnly(end), schedule.ActiveStatuses(),
		).
		Group("date").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Date.Format(schedule.DateLayout)] = r.Total
	}
	return counts, nil
}

func (r *AppointmentGormRepository) OccupiedTimes(
	ctx context.Context,
	date time.Time,
) (map[string]bool, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status IN ?", dateOnly(date), schedule.ActiveStatuses()).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	occupied := make(map[string]bool, len(times))
	for _, t := range times {
		occupied[t] = true
	}
	return occupied, nil
}

func (r *AppointmentGormRepository) CountActiveOnDate(
	ctx context.Context,
	date time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status IN ?", dateOnly(date), schedule.ActiveStatuses()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateReview(
	ctx context.Context,
	review *models.AppointmentReview,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Compile-time check
var _ booking.Repository = (*AppointmentGormRepository)(nil)
