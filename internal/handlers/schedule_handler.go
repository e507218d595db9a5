package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/httpresp"
	"github.com/ricascor080/Back-Barber/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Days      []int  `json:"days" binding:"required"`
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
}

// ======================================================
// VALIDATION
// ======================================================

func (r *ScheduleRequest) validate(db *gorm.DB, excludeID uint) error {
	var fields []httperr.FieldError

	if len(r.Days) == 0 {
		fields = append(fields, httperr.FieldError{
			Field: "days", Message: "Debe incluir al menos un día.",
		})
	}
	for _, d := range r.Days {
		if d < 0 || d > 6 {
			fields = append(fields, httperr.FieldError{
				Field: "days", Message: "Los días deben estar entre 0 (domingo) y 6 (sábado).",
			})
			break
		}
	}

	start, errStart := time.Parse("15:04", r.StartTime)
	if errStart != nil {
		fields = append(fields, httperr.FieldError{
			Field: "start_time", Message: "Formato esperado HH:MM.",
		})
	}
	end, errEnd := time.Parse("15:04", r.EndTime)
	if errEnd != nil {
		fields = append(fields, httperr.FieldError{
			Field: "end_time", Message: "Formato esperado HH:MM.",
		})
	}
	if errStart == nil && errEnd == nil && !start.Before(end) {
		fields = append(fields, httperr.FieldError{
			Field: "end_time", Message: "La hora de fin debe ser posterior a la de inicio.",
		})
	}

	if len(fields) > 0 {
		return httperr.ErrValidation(fields...)
	}

	// Solo usuarios con rol barbero pueden tener horario
	var barber models.User
	if err := db.First(&barber, r.BarberID).Error; err != nil {
		return httperr.ErrBusiness("barber_not_found")
	}
	if !barber.IsBarber() {
		return httperr.ErrBusiness("not_a_barber")
	}

	// Dos franjas del mismo barbero no pueden solaparse en un mismo día
	var existing []models.Schedule
	if err := db.Where("barber_id = ?", r.BarberID).Find(&existing).Error; err != nil {
		return err
	}

	window := domain.DayWindow{Days: r.Days, Start: r.StartTime, End: r.EndTime}
	for _, sc := range existing {
		if sc.ID == excludeID {
			continue
		}
		if window.Collides(domain.DayWindow{Days: sc.Days, Start: sc.StartTime, End: sc.EndTime}) {
			return httperr.ErrBusiness("schedule_overlap")
		}
	}

	return nil
}

// ======================================================
// CRUD
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Schedule{})

	if barberID := c.Query("barber_id"); barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var schedules []models.Schedule
	if err := q.Order("id ASC").Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Error al listar horarios.")
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := req.validate(h.db, 0); err != nil {
		writeScheduleError(c, err)
		return
	}

	sc := models.Schedule{
		BarberID:  req.BarberID,
		Days:      req.Days,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&sc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", "Error al crear horario.")
		return
	}

	httpresp.Created(c, sc)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var sc models.Schedule
	if err := h.db.First(&sc, id).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Horario no encontrado.")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := req.validate(h.db, sc.ID); err != nil {
		writeScheduleError(c, err)
		return
	}

	sc.BarberID = req.BarberID
	sc.Days = req.Days
	sc.StartTime = req.StartTime
	sc.EndTime = req.EndTime

	if err := h.db.Save(&sc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Error al actualizar horario.")
		return
	}

	httpresp.OK(c, sc)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Schedule{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Error al eliminar horario.")
		return
	}

	c.Status(http.StatusNoContent)
}

func writeScheduleError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}
	switch {
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
	case httperr.IsBusiness(err, "not_a_barber"):
		httperr.BadRequest(c, "not_a_barber", "Solo los barberos pueden tener un horario.")
	case httperr.IsBusiness(err, "schedule_overlap"):
		httperr.BadRequest(c, "schedule_overlap", "El horario se solapa con otra franja del barbero.")
	default:
		httperr.Internal(c, "schedule_error", "Error al validar horario.")
	}
}
