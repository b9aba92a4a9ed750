package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/httpresp"
	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

const serviceUploadDir = "uploads/services"

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: auditDispatcher}
}

// ================================
// Catálogo público
// ================================

// List devolve o catálogo de serviços ativos. Aceita os filtros
// ?category=<id> e ?vehicle_category=<sedan|suv|...>, este último
// descartando serviços que não atendem o tipo de veículo.
func (h *ServiceHandler) List(c *gin.Context) {
	query := h.db.
		Preload("Category").
		Where("active = ?", true).
		Order("category_id, name")

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	if vc := c.Query("vehicle_category"); vc != "" {
		filtered := make([]models.Service, 0, len(services))
		for _, s := range services {
			if s.AvailableForVehicle(vc) {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.db.
		Where("active = ?", true).
		Order("name").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	httpresp.List(c, categories)
}

func (h *ServiceHandler) ListImages(c *gin.Context) {
	var images []models.ServiceImage
	if err := h.db.
		Where("service_id = ?", c.Param("id")).
		Order("\"primary\" DESC, created_at").
		Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_images", "Erro ao listar imagens.")
		return
	}

	httpresp.List(c, images)
}

// ================================
// Administração do catálogo
// ================================

type ServiceRequest struct {
	CategoryID        uint    `json:"category_id" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required"`
	DurationMin       int     `json:"duration_min"`
	Active            *bool   `json:"active"`
	AppliesSedan      *bool   `json:"applies_sedan"`
	AppliesSUV        *bool   `json:"applies_suv"`
	AppliesPickup     *bool   `json:"applies_pickup"`
	AppliesMotorcycle *bool   `json:"applies_motorcycle"`
}

type ServiceCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (h *ServiceHandler) CreateCategory(c *gin.Context) {
	var req ServiceCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	category := models.ServiceCategory{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := h.db.Create(&category).Error; err != nil {
		if errorsIsDuplicate(err) {
			httperr.Conflict(c, "category_already_exists", "Já existe uma categoria com este nome.")
			return
		}
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar categoria.")
		return
	}

	h.record(c, "service_category_created", "service_category", category.ID)
	httpresp.Created(c, category)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		DurationMin:       req.DurationMin,
		Active:            true,
		AppliesSedan:      true,
		AppliesSUV:        true,
		AppliesPickup:     true,
		AppliesMotorcycle: false,
	}
	applyServiceFlags(&service, &req)

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.record(c, "service_created", "service", service.ID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		} else {
			httperr.Internal(c, "internal_error", "Erro interno.")
		}
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service.CategoryID = req.CategoryID
	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMin = req.DurationMin
	applyServiceFlags(&service, &req)

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.record(c, "service_updated", "service", service.ID)
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		} else {
			httperr.Internal(c, "internal_error", "Erro interno.")
		}
		return
	}

	// Desativação em vez de remoção: itens de agendamento referenciam o serviço.
	if err := h.db.Model(&service).Update("active", false).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	h.record(c, "service_deactivated", "service", service.ID)
	c.Status(http.StatusNoContent)
}

// UploadImage grava a imagem em disco com nome aleatório e registra o
// caminho vinculado ao serviço.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		} else {
			httperr.Internal(c, "internal_error", "Erro interno.")
		}
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo 'image'.")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		httperr.BadRequest(c, "unsupported_image_type", "Formato de imagem não suportado.")
		return
	}

	if err := os.MkdirAll(serviceUploadDir, 0o755); err != nil {
		httperr.Internal(c, "failed_to_store_image", "Erro ao salvar imagem.")
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dst := filepath.Join(serviceUploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		httperr.Internal(c, "failed_to_store_image", "Erro ao salvar imagem.")
		return
	}

	image := models.ServiceImage{
		ServiceID: service.ID,
		Path:      dst,
		Caption:   c.PostForm("caption"),
		Primary:   c.PostForm("primary") == "true",
	}
	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_store_image", "Erro ao salvar imagem.")
		return
	}

	h.record(c, "service_image_uploaded", "service_image", image.ID)
	httpresp.Created(c, image)
}

func applyServiceFlags(service *models.Service, req *ServiceRequest) {
	if req.Active != nil {
		service.Active = *req.Active
	}
	if req.AppliesSedan != nil {
		service.AppliesSedan = *req.AppliesSedan
	}
	if req.AppliesSUV != nil {
		service.AppliesSUV = *req.AppliesSUV
	}
	if req.AppliesPickup != nil {
		service.AppliesPickup = *req.AppliesPickup
	}
	if req.AppliesMotorcycle != nil {
		service.AppliesMotorcycle = *req.AppliesMotorcycle
	}
}

func (h *ServiceHandler) record(c *gin.Context, action, entity string, entityID uint) {
	userID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
	})
}
