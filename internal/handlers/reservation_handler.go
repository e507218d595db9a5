package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/config"
	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/dto"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/httpresp"
	"github.com/ricascor080/Back-Barber/internal/middleware"
	"github.com/ricascor080/Back-Barber/internal/models"
	ucReservation "github.com/ricascor080/Back-Barber/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db           *gorm.DB
	cfg          *config.Config
	createUC     *ucReservation.CreateReservation
	setStatusUC  *ucReservation.SetStatus
	availability *ucReservation.Availability
}

func NewReservationHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucReservation.CreateReservation,
	setStatusUC *ucReservation.SetStatus,
	availability *ucReservation.Availability,
) *ReservationHandler {
	return &ReservationHandler{
		db:           db,
		cfg:          cfg,
		createUC:     createUC,
		setStatusUC:  setStatusUC,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ServiceID  uint   `json:"service_id" binding:"required"`
	BarberID   *uint  `json:"barber_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	PersonName string `json:"person_name"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := ucReservation.CreateReservationInput{
		ClientID:   clientID,
		ServiceID:  req.ServiceID,
		BarberID:   req.BarberID,
		PersonName: req.PersonName,
	}

	if req.Date != "" && req.Time != "" {
		start, err := parseDateTime(h.cfg.Timezone, req.Date, req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
			return
		}
		in.StartTime = &start
	}

	res, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// LIST (alcance por rol: admin todo, barbero lo suyo,
// cliente lo suyo)
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	q := h.db.
		Preload("Service").
		Preload("Barber").
		Preload("Client")

	switch role {
	case models.RoleAdmin:
	case models.RoleBarber:
		q = q.Where("barber_id = ?", userID)
	default:
		q = q.Where("client_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := q.Order("start_time ASC").Find(&reservations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Error al listar reservas.")
		return
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		item := dto.ReservationListDTO{
			ID:          r.ID,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			Status:      r.Status,
			Paid:        r.Paid,
			PersonName:  r.PersonName,
			ServiceName: r.Service.Name,
		}
		if r.Barber != nil {
			item.BarberName = r.Barber.Name
		}
		item.ClientPhone = r.Client.Phone
		out = append(out, item)
	}

	httpresp.List(c, out)
}

// ======================================================
// SET STATUS
// ======================================================

func (h *ReservationHandler) SetStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	res, err := h.setStatusUC.Execute(
		c.Request.Context(),
		actorID,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	dateStr := c.Query("date")
	timeStr := c.Query("time")
	serviceIDStr := c.Query("service_id")
	if dateStr == "" || timeStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha, hora y servicio son obligatorios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, serviceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	start, err := parseDateTime(h.cfg.Timezone, dateStr, timeStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	available, err := h.availability.IsSlotAvailable(
		c.Request.Context(),
		uint(barberID),
		start,
		svc.DurationMin,
	)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *ReservationHandler) ListOccupiedSlots(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseDate(h.cfg.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availability.ListOccupiedSlots(c.Request.Context(), uint(barberID), date)
	if err != nil {
		httperr.Internal(c, "occupied_slots_failed", "Error al calcular horarios ocupados.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// ERROR MAPPING (NotFound→404, Validation/Conflict→400)
// ======================================================

func writeReservationError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}
	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
	case httperr.IsBusiness(err, "reservation_not_found"):
		httperr.NotFound(c, "reservation_not_found", "Reserva no encontrada.")
	case httperr.IsBusiness(err, "service_inactive"):
		httperr.BadRequest(c, "service_inactive", "El servicio no está activo.")
	case httperr.IsBusiness(err, "not_a_barber"):
		httperr.BadRequest(c, "not_a_barber", "El usuario indicado no es barbero.")
	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.BadRequest(c, "slot_unavailable", "El horario no está disponible.")
	case httperr.IsBusiness(err, "invalid_transition"):
		httperr.BadRequest(c, "invalid_transition", "Transición de estado inválida.")
	case httperr.IsBusiness(err, "already_paid"):
		httperr.BadRequest(c, "already_paid", "La reserva ya tiene un pago registrado.")
	case httperr.IsBusiness(err, "invalid_payment_method"):
		httperr.BadRequest(c, "invalid_payment_method", "Método de pago desconocido.")
	default:
		httperr.Internal(c, "reservation_error", "Error al procesar la reserva.")
	}
}
