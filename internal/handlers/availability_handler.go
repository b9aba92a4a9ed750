package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
	ucappointment "github.com/gaablh4z/v7-sistema-completo/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	calendarUC  *ucappointment.GetCalendar
	timeSlotsUC *ucappointment.GetTimeSlots
	tz          string
}

func NewAvailabilityHandler(
	calendarUC *ucappointment.GetCalendar,
	timeSlotsUC *ucappointment.GetTimeSlots,
	tz string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		calendarUC:  calendarUC,
		timeSlotsUC: timeSlotsUC,
		tz:          tz,
	}
}

// Calendar devolve a grade mensal (?year=&month=, mês corrente por padrão).
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	now := timezone.NowIn(h.tz)

	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))

	days, err := h.calendarUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":       year,
		"month":      month,
		"month_name": time.Month(month).String(),
		"days":       days,
	})
}

// TimeSlots devolve os horários de uma data (?date=YYYY-MM-DD).
func (h *AvailabilityHandler) TimeSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (?date=YYYY-MM-DD).")
		return
	}

	result, err := h.timeSlotsUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	c.JSON(200, result)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
