package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/cache"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/httpresp"
	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

type HolidayHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	calendar *cache.CalendarCache
}

func NewHolidayHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	calendar *cache.CalendarCache,
) *HolidayHandler {
	return &HolidayHandler{db: db, audit: auditDispatcher, calendar: calendar}
}

type HolidayRequest struct {
	Date      string `json:"date" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Recurring bool   `json:"recurring"`
}

func (h *HolidayHandler) List(c *gin.Context) {
	var holidays []models.Holiday
	if err := h.db.Order("date").Find(&holidays).Error; err != nil {
		httperr.Internal(c, "failed_to_list_holidays", "Erro ao listar feriados.")
		return
	}

	httpresp.List(c, holidays)
}

func (h *HolidayHandler) Create(c *gin.Context) {
	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := time.Parse(schedule.DateLayout, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	holiday := models.Holiday{
		Date:      date,
		Name:      req.Name,
		Recurring: req.Recurring,
	}

	if err := h.db.Create(&holiday).Error; err != nil {
		if errorsIsDuplicate(err) {
			httperr.Conflict(c, "holiday_already_exists", "Já existe um feriado nesta data.")
			return
		}
		httperr.Internal(c, "failed_to_create_holiday", "Erro ao cadastrar feriado.")
		return
	}

	h.calendar.Invalidate(c.Request.Context(), date.Year(), date.Month())
	h.record(c, "holiday_created", holiday.ID)

	httpresp.Created(c, holiday)
}

func (h *HolidayHandler) Delete(c *gin.Context) {
	var holiday models.Holiday
	if err := h.db.First(&holiday, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "holiday_not_found", "Feriado não encontrado.")
		} else {
			httperr.Internal(c, "internal_error", "Erro interno.")
		}
		return
	}

	if err := h.db.Delete(&holiday).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_holiday", "Erro ao remover feriado.")
		return
	}

	h.calendar.Invalidate(c.Request.Context(), holiday.Date.Year(), holiday.Date.Month())
	h.record(c, "holiday_deleted", holiday.ID)

	c.Status(http.StatusNoContent)
}

func (h *HolidayHandler) record(c *gin.Context, action string, id uint) {
	userID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "holiday",
		EntityID: &id,
	})
}
