package booking

import (
	"time"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := schedule.CanConfirm(schedule.Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(schedule.StatusConfirmed)
	return nil
}

func Start(ap *models.Appointment, now time.Time) error {
	if err := schedule.CanStart(schedule.Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(schedule.StatusInProgress)
	ap.StartedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := schedule.CanComplete(schedule.Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(schedule.StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := schedule.CanCancel(schedule.Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(schedule.StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
