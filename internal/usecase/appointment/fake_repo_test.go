package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

// fakeRepo guarda tudo em memória para exercitar os usecases sem banco.
type fakeRepo struct {
	cfg schedule.Config

	services []models.Service
	vehicles map[uint]uint // vehicleID -> userID

	appointments map[uint]*models.Appointment
	bookings     []schedule.Booking
	durations    map[uint][]int

	nextID uint

	createErr error
	updateErr error
	reviewErr error

	created *models.Appointment
	updated *models.Appointment
	reviews []*models.AppointmentReview

	countActive int64
	counts      map[string]int
	occupied    map[string]bool
}

var _ booking.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	week := make(map[time.Weekday]schedule.WorkingDay)
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		week[wd] = schedule.WorkingDay{
			Weekday:   wd,
			OpenTime:  "08:00",
			CloseTime: "18:00",
			IsOpen:    true,
		}
	}
	week[time.Sunday] = schedule.WorkingDay{Weekday: time.Sunday, IsOpen: false}

	return &fakeRepo{
		cfg:          schedule.Config{Week: week},
		vehicles:     map[uint]uint{10: 1},
		appointments: map[uint]*models.Appointment{},
		durations:    map[uint][]int{},
		nextID:       100,
		services: []models.Service{
			{ID: 1, Name: "Lavagem completa", Price: 80, DurationMin: 60, Active: true},
			{ID: 2, Name: "Enceramento", Price: 120, DurationMin: 30, Active: true},
		},
	}
}

func (f *fakeRepo) GetScheduleConfig(ctx context.Context) (schedule.Config, error) {
	return f.cfg, nil
}

func (f *fakeRepo) ListActiveServices(ctx context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id && s.Active {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) GetVehicleForUser(ctx context.Context, vehicleID, userID uint) (*models.Vehicle, error) {
	if owner, ok := f.vehicles[vehicleID]; ok && owner == userID {
		return &models.Vehicle{ID: vehicleID, UserID: userID}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment, services []models.AppointmentService) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = ap
	f.created = ap

	durations := make([]int, 0, len(services))
	for _, item := range services {
		for _, s := range f.services {
			if s.ID == item.ServiceID {
				durations = append(durations, s.DurationMin)
			}
		}
	}
	f.durations[ap.ID] = durations
	return nil
}

func (f *fakeRepo) ListBookingsForDate(ctx context.Context, d time.Time) ([]schedule.Booking, error) {
	var out []schedule.Booking
	for _, b := range f.bookings {
		if b.Date.Year() == d.Year() && b.Date.Month() == d.Month() && b.Date.Day() == d.Day() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		return ap, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetAppointmentForUser(ctx context.Context, id, userID uint) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok && ap.UserID == userID {
		return ap, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.appointments[ap.ID] = ap
	f.updated = ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForUser(ctx context.Context, userID uint, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID != userID {
			continue
		}
		if status != "" && ap.Status != status {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDate(ctx context.Context, d time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date.Year() == d.Year() && ap.Date.Month() == d.Month() && ap.Date.Day() == d.Day() {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ServiceDurations(ctx context.Context, appointmentID uint) ([]int, error) {
	return f.durations[appointmentID], nil
}

func (f *fakeRepo) CountActiveByDateRange(ctx context.Context, start, end time.Time) (map[string]int, error) {
	if f.counts == nil {
		return map[string]int{}, nil
	}
	return f.counts, nil
}

func (f *fakeRepo) OccupiedTimes(ctx context.Context, d time.Time) (map[string]bool, error) {
	if f.occupied == nil {
		return map[string]bool{}, nil
	}
	return f.occupied, nil
}

func (f *fakeRepo) CountActiveOnDate(ctx context.Context, d time.Time) (int64, error) {
	return f.countActive, nil
}

func (f *fakeRepo) CreateReview(ctx context.Context, review *models.AppointmentReview) error {
	if f.reviewErr != nil {
		return f.reviewErr
	}
	review.ID = f.nextID
	f.nextID++
	f.reviews = append(f.reviews, review)
	return nil
}
