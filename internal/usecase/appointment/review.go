package appointment

import (
	"context"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	infraRepo "github.com/gaablh4z/v7-sistema-completo/internal/infra/repository"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

type CreateReviewInput struct {
	AppointmentID uint
	UserID        uint
	Rating        int
	Comment       string
}

// CreateReview registra a avaliação (1-5) do cliente após a conclusão.
// Uma avaliação por agendamento, garantida pelo índice único.
type CreateReview struct {
	repo  booking.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(repo booking.Repository, auditDispatcher *audit.Dispatcher) *CreateReview {
	return &CreateReview{repo: repo, audit: auditDispatcher}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.AppointmentReview, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	ap, err := uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if schedule.Status(ap.Status) != schedule.StatusCompleted {
		return nil, httperr.ErrBusiness("appointment_not_completed")
	}

	review := &models.AppointmentReview{
		AppointmentID: ap.ID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, review); err != nil {
		if infraRepo.IsDuplicateKey(err) {
			return nil, httperr.ErrBusiness("review_already_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "review_created",
		Entity:   "appointment_review",
		EntityID: &review.ID,
	})

	return review, nil
}
