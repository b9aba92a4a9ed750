package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/cache"
	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/httpresp"
	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

type WorkingHoursHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	calendar *cache.CalendarCache
}

func NewWorkingHoursHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	calendar *cache.CalendarCache,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: auditDispatcher, calendar: calendar}
}

type WorkingDayRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsOpen    *bool  `json:"is_open" binding:"required"`
}

type WorkingHoursRequest struct {
	Days []WorkingDayRequest `json:"days" binding:"required,dive"`
}

func (h *WorkingHoursHandler) List(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.Order("weekday").Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "Erro ao listar expediente.")
		return
	}

	httpresp.List(c, hours)
}

// Update grava o expediente da semana de uma vez (upsert por dia).
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rows := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		isOpen := d.IsOpen != nil && *d.IsOpen
		if isOpen {
			open, err := time.Parse(schedule.TimeLayout, d.OpenTime)
			if err != nil {
				httperr.BadRequest(c, "invalid_time", "Horário de abertura inválido.")
				return
			}
			clos, err := time.Parse(schedule.TimeLayout, d.CloseTime)
			if err != nil {
				httperr.BadRequest(c, "invalid_time", "Horário de fechamento inválido.")
				return
			}
			if !open.Before(clos) {
				httperr.BadRequest(c, "invalid_time_range",
					"A abertura precisa ser anterior ao fechamento.")
				return
			}
		}

		rows = append(rows, models.WorkingHours{
			Weekday:   d.Weekday,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsOpen:    isOpen,
		})
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{"open_time", "close_time", "is_open", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_update_working_hours", "Erro ao atualizar expediente.")
		return
	}

	h.invalidateCalendar(c)

	userID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "working_hours_updated",
		Entity: "working_hours",
	})

	httpresp.OK(c, rows)
}

// O expediente muda a grade inteira; descarta os meses em cache no entorno
// da janela de reserva.
func (h *WorkingHoursHandler) invalidateCalendar(c *gin.Context) {
	now := time.Now()
	for i := 0; i < 3; i++ {
		m := now.AddDate(0, i, 0)
		h.calendar.Invalidate(c.Request.Context(), m.Year(), m.Month())
	}
}
