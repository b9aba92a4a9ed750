package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/httpresp"
	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

type InventoryHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewInventoryHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *InventoryHandler {
	return &InventoryHandler{db: db, audit: auditDispatcher}
}

type InventoryItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Quantity    *int   `json:"quantity"`
	MinQuantity *int   `json:"min_quantity"`
}

type InventoryAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type inventoryItemDTO struct {
	models.InventoryItem
	LowStock bool `json:"low_stock"`
}

func (h *InventoryHandler) List(c *gin.Context) {
	query := h.db.Where("active = ?", true).Order("name")

	// ?low_stock=true restringe aos itens abaixo do mínimo
	if c.Query("low_stock") == "true" {
		query = query.Where("quantity <= min_quantity")
	}

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_inventory", "Erro ao listar estoque.")
		return
	}

	out := make([]inventoryItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, inventoryItemDTO{InventoryItem: item, LowStock: item.LowStock()})
	}

	httpresp.List(c, out)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	item := models.InventoryItem{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		Active:      true,
	}
	if item.Unit == "" {
		item.Unit = "un"
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		item.MinQuantity = *req.MinQuantity
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_item", "Erro ao cadastrar item.")
		return
	}

	h.record(c, "inventory_item_created", item.ID)
	httpresp.Created(c, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}

	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		item.MinQuantity = *req.MinQuantity
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Erro ao atualizar item.")
		return
	}

	h.record(c, "inventory_item_updated", item.ID)
	httpresp.OK(c, item)
}

// Adjust soma (ou subtrai) quantidade, sem deixar o saldo negativo.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}

	var req InventoryAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	next := item.Quantity + req.Delta
	if next < 0 {
		httperr.BadRequest(c, "insufficient_stock", "Estoque insuficiente para esta baixa.")
		return
	}

	if err := h.db.Model(&item).Update("quantity", next).Error; err != nil {
		httperr.Internal(c, "failed_to_adjust_item", "Erro ao ajustar estoque.")
		return
	}
	item.Quantity = next

	h.record(c, "inventory_item_adjusted", item.ID)
	httpresp.OK(c, inventoryItemDTO{InventoryItem: item, LowStock: item.LowStock()})
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.Model(&item).Update("active", false).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_item", "Erro ao remover item.")
		return
	}

	h.record(c, "inventory_item_deactivated", item.ID)
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) find(c *gin.Context) (models.InventoryItem, bool) {
	var item models.InventoryItem
	err := h.db.
		Where("id = ? AND active = ?", c.Param("id"), true).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "item_not_found", "Item não encontrado.")
		} else {
			httperr.Internal(c, "internal_error", "Erro interno.")
		}
		return item, false
	}
	return item, true
}

func (h *InventoryHandler) record(c *gin.Context, action string, id uint) {
	userID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "inventory_item",
		EntityID: &id,
	})
}
