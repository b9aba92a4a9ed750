package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

// seedAppointment grava um agendamento futuro direto no repositório fake.
func seedAppointment(repo *fakeRepo, status schedule.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:     200,
		UserID: 1,
		Date:   futureWorkday(),
		Time:   "10:00",
		Status: string(status),
	}
	repo.appointments[ap.ID] = ap
	repo.durations[ap.ID] = []int{60}
	return ap
}

// --------- Reschedule ---------

func TestReschedule_OK(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusPending)

	// a agenda do dia contém o próprio registro; remarcar para um horário
	// que sobrepõe o antigo não conflita consigo mesmo
	repo.bookings = []schedule.Booking{
		{ID: ap.ID, CustomerID: 1, Date: ap.Date, Time: "10:00", Status: schedule.StatusPending, DurationMin: 60},
	}

	auditD, _, calendar := testDeps()
	uc := NewRescheduleAppointment(repo, auditD, calendar, testTZ)

	out, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		UserID:        1,
		Date:          ap.Date.Format(schedule.DateLayout),
		Time:          "10:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "10:30", out.Time)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "10:30", repo.updated.Time)
}

func TestReschedule_OnlyPending(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusConfirmed)

	auditD, _, calendar := testDeps()
	uc := NewRescheduleAppointment(repo, auditD, calendar, testTZ)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		UserID:        1,
		Date:          ap.Date.Format(schedule.DateLayout),
		Time:          "11:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestReschedule_OtherCustomerNotFound(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusPending)

	auditD, _, calendar := testDeps()
	uc := NewRescheduleAppointment(repo, auditD, calendar, testTZ)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		UserID:        99,
		Date:          ap.Date.Format(schedule.DateLayout),
		Time:          "11:00",
	})

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestReschedule_SlotTakenRace(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusPending)
	repo.updateErr = gorm.ErrDuplicatedKey

	auditD, _, calendar := testDeps()
	uc := NewRescheduleAppointment(repo, auditD, calendar, testTZ)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		UserID:        1,
		Date:          ap.Date.Format(schedule.DateLayout),
		Time:          "11:00",
	})

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

// --------- Transições de status ---------

func TestConfirm_OK(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusPending)

	auditD, notifier, _ := testDeps()
	uc := NewConfirmAppointment(repo, auditD, notifier, testTZ)

	out, err := uc.Execute(context.Background(), 5, ap.ID)

	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusConfirmed), out.Status)
}

func TestConfirm_InvalidState(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusCompleted)

	auditD, notifier, _ := testDeps()
	uc := NewConfirmAppointment(repo, auditD, notifier, testTZ)

	_, err := uc.Execute(context.Background(), 5, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestStart_SetsStartedAt(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusConfirmed)

	auditD, notifier, _ := testDeps()
	uc := NewStartAppointment(repo, auditD, notifier, testTZ)

	out, err := uc.Execute(context.Background(), 5, ap.ID)

	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusInProgress), out.Status)
	assert.NotNil(t, out.StartedAt)
}

func TestComplete_SetsCompletedAt(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusInProgress)

	auditD, notifier, _ := testDeps()
	uc := NewCompleteAppointment(repo, auditD, notifier, testTZ)

	out, err := uc.Execute(context.Background(), 5, ap.ID)

	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCompleted), out.Status)
	assert.NotNil(t, out.CompletedAt)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusPending)

	auditD, notifier, calendar := testDeps()
	uc := NewCancelAppointment(repo, auditD, notifier, calendar, testTZ)

	out, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: ap.ID,
		RequestedBy:   1,
	})

	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCancelled), out.Status)
	assert.NotNil(t, out.CancelledAt)
}

func TestCancel_OwnerCannotCancelOthers(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusPending)

	auditD, notifier, calendar := testDeps()
	uc := NewCancelAppointment(repo, auditD, notifier, calendar, testTZ)

	_, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: ap.ID,
		RequestedBy:   99,
	})

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancel_AdminCancelsAnyone(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusConfirmed)

	auditD, notifier, calendar := testDeps()
	uc := NewCancelAppointment(repo, auditD, notifier, calendar, testTZ)

	out, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: ap.ID,
		RequestedBy:   99,
		IsAdmin:       true,
	})

	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCancelled), out.Status)
}

func TestCancel_InvalidFromInProgress(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusInProgress)

	auditD, notifier, calendar := testDeps()
	uc := NewCancelAppointment(repo, auditD, notifier, calendar, testTZ)

	_, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: ap.ID,
		RequestedBy:   1,
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// --------- Avaliação ---------

func TestReview_OK(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusCompleted)

	auditD, _, _ := testDeps()
	uc := NewCreateReview(repo, auditD)

	review, err := uc.Execute(context.Background(), CreateReviewInput{
		AppointmentID: ap.ID,
		UserID:        1,
		Rating:        5,
		Comment:       "Excelente atendimento",
	})

	require.NoError(t, err)
	assert.Equal(t, ap.ID, review.AppointmentID)
	require.Len(t, repo.reviews, 1)
}

func TestReview_RatingBounds(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, schedule.StatusCompleted)

	auditD, _, _ := testDeps()
	uc := NewCreateReview(repo, auditD)

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.Execute(context.Background(), CreateReviewInput{
			AppointmentID: 200,
			UserID:        1,
			Rating:        rating,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"), "rating %d", rating)
	}
}

func TestReview_OnlyCompleted(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusConfirmed)

	auditD, _, _ := testDeps()
	uc := NewCreateReview(repo, auditD)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		AppointmentID: ap.ID,
		UserID:        1,
		Rating:        4,
	})

	assert.True(t, httperr.IsBusiness(err, "appointment_not_completed"))
}

func TestReview_Duplicate(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, schedule.StatusCompleted)
	repo.reviewErr = gorm.ErrDuplicatedKey

	auditD, _, _ := testDeps()
	uc := NewCreateReview(repo, auditD)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		AppointmentID: ap.ID,
		UserID:        1,
		Rating:        4,
	})

	assert.True(t, httperr.IsBusiness(err, "review_already_exists"))
}
