package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/httpresp"
	"github.com/ricascor080/Back-Barber/internal/models"
	"github.com/ricascor080/Back-Barber/internal/refcache"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db  *gorm.DB
	ref *refcache.Reference
}

func NewServiceHandler(db *gorm.DB, ref *refcache.Reference) *ServiceHandler {
	return &ServiceHandler{db: db, ref: ref}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Category    string  `json:"category" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Price       float64 `json:"price"`
}

func (r *ServiceRequest) validate() error {
	var fields []httperr.FieldError

	if !models.IsValidCategory(r.Category) {
		fields = append(fields, httperr.FieldError{
			Field: "category", Message: "Categoría desconocida (cuts, beard, treatment).",
		})
	}
	if r.DurationMin <= 0 {
		fields = append(fields, httperr.FieldError{
			Field: "duration_min", Message: "La duración debe ser mayor a cero.",
		})
	}
	if r.Price < 0 {
		fields = append(fields, httperr.FieldError{
			Field: "price", Message: "El precio no puede ser negativo.",
		})
	}

	if len(fields) > 0 {
		return httperr.ErrValidation(fields...)
	}
	return nil
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Service{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if c.Query("active") != "" {
		q = q.Where("active = ?", c.Query("active") == "true")
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	// Resumen cacheado junto al registro (paridad con el flyweight
	// del sistema original); datos de display, pueden estar stale
	cached, _ := h.ref.Service(c.Request.Context(), uint(id))

	c.JSON(http.StatusOK, gin.H{
		"service":        svc,
		"cached_details": cached,
	})
}

// ======================================================
// CREATE / UPDATE (solo admin)
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := req.validate(); err != nil {
		ve, _ := httperr.AsValidation(err)
		httperr.Validation(c, ve)
		return
	}

	// Activo por defecto al crear
	svc := models.Service{
		Category:    req.Category,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear servicio.")
		return
	}

	httpresp.Created(c, svc)
}

type ServiceUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      *bool    `json:"active"`
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	var req ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "El precio no puede ser negativo.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "La duración debe ser mayor a cero.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al actualizar servicio.")
		return
	}

	// El resumen cacheado queda obsoleto tras la edición
	h.ref.InvalidateService(c.Request.Context(), svc.ID)

	httpresp.OK(c, svc)
}
