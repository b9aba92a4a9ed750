package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/httpresp"
	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

type VehicleHandler struct {
	db *gorm.DB
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{db: db}
}

type VehicleRequest struct {
	Brand    string `json:"brand" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Color    string `json:"color"`
	Plate    string `json:"plate" binding:"required"`
	Category string `json:"category"`
	Mileage  *int   `json:"mileage"`
}

func (h *VehicleHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var vehicles []models.Vehicle
	if err := h.db.
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Find(&vehicles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_vehicles", "Erro ao listar veículos.")
		return
	}

	httpresp.List(c, vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	category := req.Category
	if category == "" {
		category = "sedan"
	}
	if !models.IsValidVehicleCategory(category) {
		httperr.BadRequest(c, "invalid_category", "Categoria de veículo inválida.")
		return
	}

	vehicle := models.Vehicle{
		UserID:   userID,
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		Color:    req.Color,
		Plate:    strings.ToUpper(strings.TrimSpace(req.Plate)),
		Category: category,
		Mileage:  req.Mileage,
		Active:   true,
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		if errorsIsDuplicate(err) {
			httperr.Conflict(c, "plate_already_registered", "Já existe um veículo com esta placa.")
			return
		}
		httperr.Internal(c, "failed_to_create_vehicle", "Erro ao cadastrar veículo.")
		return
	}

	httpresp.Created(c, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	vehicle, ok := h.findOwned(c, userID)
	if !ok {
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Category != "" && !models.IsValidVehicleCategory(req.Category) {
		httperr.BadRequest(c, "invalid_category", "Categoria de veículo inválida.")
		return
	}

	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.Color = req.Color
	vehicle.Plate = strings.ToUpper(strings.TrimSpace(req.Plate))
	if req.Category != "" {
		vehicle.Category = req.Category
	}
	vehicle.Mileage = req.Mileage

	if err := h.db.Save(&vehicle).Error; err != nil {
		if errorsIsDuplicate(err) {
			httperr.Conflict(c, "plate_already_registered", "Já existe um veículo com esta placa.")
			return
		}
		httperr.Internal(c, "failed_to_update_vehicle", "Erro ao atualizar veículo.")
		return
	}

	httpresp.OK(c, vehicle)
}

// Delete desativa o veículo. Bloqueia quando existe agendamento ativo
// vinculado a ele.
func (h *VehicleHandler) Delete(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	vehicle, ok := h.findOwned(c, userID)
	if !ok {
		return
	}

	var count int64
	if err := h.db.Model(&models.Appointment{}).
		Where("vehicle_id = ? AND status IN ?", vehicle.ID, schedule.ActiveStatuses()).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_check_appointments", "Erro ao verificar agendamentos.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "vehicle_has_active_appointments",
			"Não é possível remover um veículo com agendamentos ativos.")
		return
	}

	if err := h.db.Model(&vehicle).Update("active", false).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_vehicle", "Erro ao remover veículo.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) findOwned(c *gin.Context, userID uint) (models.Vehicle, bool) {
	var vehicle models.Vehicle
	err := h.db.
		Where("id = ? AND user_id = ? AND active = ?", c.Param("id"), userID, true).
		First(&vehicle).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "vehicle_not_found", "Veículo não encontrado.")
		} else {
			httperr.Internal(c, "internal_error", "Erro interno.")
		}
		return vehicle, false
	}
	return vehicle, true
}

func errorsIsDuplicate(err error) bool {
	return err == gorm.ErrDuplicatedKey ||
		(err != nil && strings.Contains(err.Error(), "duplicate key"))
}
