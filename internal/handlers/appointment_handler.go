package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/booking"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/httpresp"
	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
	ucappointment "github.com/gaablh4z/v7-sistema-completo/internal/usecase/appointment"
)

type AppointmentHandler struct {
	repo booking.Repository

	createUC     *ucappointment.CreateAppointment
	rescheduleUC *ucappointment.RescheduleAppointment
	cancelUC     *ucappointment.CancelAppointment
	confirmUC    *ucappointment.ConfirmAppointment
	startUC      *ucappointment.StartAppointment
	completeUC   *ucappointment.CompleteAppointment
	listUC       *ucappointment.ListAppointments
	reviewUC     *ucappointment.CreateReview
}

func NewAppointmentHandler(
	repo booking.Repository,
	createUC *ucappointment.CreateAppointment,
	rescheduleUC *ucappointment.RescheduleAppointment,
	cancelUC *ucappointment.CancelAppointment,
	confirmUC *ucappointment.ConfirmAppointment,
	startUC *ucappointment.StartAppointment,
	completeUC *ucappointment.CompleteAppointment,
	listUC *ucappointment.ListAppointments,
	reviewUC *ucappointment.CreateReview,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:         repo,
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		confirmUC:    confirmUC,
		startUC:      startUC,
		completeUC:   completeUC,
		listUC:       listUC,
		reviewUC:     reviewUC,
	}
}

// ================================
// Cliente
// ================================

type CreateAppointmentRequest struct {
	VehicleID  uint   `json:"vehicle_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		UserID:     c.GetUint(middleware.ContextUserID),
		VehicleID:  req.VehicleID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	items, stats, err := h.listUC.ForUser(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"data":  items,
		"stats": stats,
		"total": len(items),
	})
}

func (h *AppointmentHandler) GetMine(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointmentForUser(c.Request.Context(), id, userID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucappointment.RescheduleAppointmentInput{
		AppointmentID: id,
		UserID:        c.GetUint(middleware.ContextUserID),
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ucappointment.CancelAppointmentInput{
		AppointmentID: id,
		RequestedBy:   c.GetUint(middleware.ContextUserID),
		IsAdmin:       c.GetString(middleware.ContextUserRole) == models.RoleAdmin,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Review(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	review, err := h.reviewUC.Execute(c.Request.Context(), ucappointment.CreateReviewInput{
		AppointmentID: id,
		UserID:        c.GetUint(middleware.ContextUserID),
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.Created(c, review)
}

// ================================
// Painel administrativo
// ================================

// ListByDate lista a agenda de um dia (?date=YYYY-MM-DD).
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (?date=YYYY-MM-DD).")
		return
	}

	items, err := h.listUC.ForDate(c.Request.Context(), dateStr)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirmUC.Execute)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.transition(c, h.startUC.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.completeUC.Execute)
}

// transition aplica uma mudança de status disparada pelo painel.
func (h *AppointmentHandler) transition(
	c *gin.Context,
	execute func(ctx context.Context, adminID, appointmentID uint) (*models.Appointment, error),
) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := execute(c.Request.Context(), c.GetUint(middleware.ContextUserID), id)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
