package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/httpresp"
	"github.com/ricascor080/Back-Barber/internal/middleware"
	"github.com/ricascor080/Back-Barber/internal/models"
	"github.com/ricascor080/Back-Barber/internal/refcache"
	ucPayment "github.com/ricascor080/Back-Barber/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	db       *gorm.DB
	recordUC *ucPayment.RecordPayment
	ref      *refcache.Reference
}

func NewPaymentHandler(db *gorm.DB, recordUC *ucPayment.RecordPayment, ref *refcache.Reference) *PaymentHandler {
	return &PaymentHandler{db: db, recordUC: recordUC, ref: ref}
}

// ======================================================
// REQUESTS
// ======================================================

type CardRequest struct {
	Number          string `json:"number"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	Nickname        string `json:"nickname"`
	Save            bool   `json:"save"`
}

type RecordPaymentRequest struct {
	ReservationID uint         `json:"reservation_id" binding:"required"`
	Method        string       `json:"method" binding:"required"`
	Card          *CardRequest `json:"card"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PaymentHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := ucPayment.RecordPaymentInput{
		ReservationID: req.ReservationID,
		Method:        req.Method,
	}
	if req.Card != nil {
		in.Card = &ucPayment.CardDetails{
			Number:          req.Card.Number,
			ExpirationMonth: req.Card.ExpirationMonth,
			ExpirationYear:  req.Card.ExpirationYear,
			Nickname:        req.Card.Nickname,
			Save:            req.Card.Save,
		}
	}

	result, err := h.recordUC.Execute(c.Request.Context(), actorID, in)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.Created(c, result)
}

// ======================================================
// LIST (cliente: solo pagos de sus reservas)
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	q := h.db.Preload("Reservation.Service")
	if role != models.RoleAdmin {
		q = q.Joins("JOIN reservations ON reservations.id = payments.reservation_id").
			Where("reservations.client_id = ?", userID)
	}

	var payments []models.Payment
	if err := q.Order("payments.created_at DESC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Error al listar pagos.")
		return
	}

	httpresp.List(c, payments)
}

// ======================================================
// GET (incluye el resumen cacheado)
// ======================================================

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var p models.Payment
	if err := h.db.Preload("Reservation.Service").First(&p, id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	resp := gin.H{"payment": p}
	if summary, err := h.ref.Payment(c.Request.Context(), p.ID); err == nil {
		resp["cached_details"] = summary
	}

	httpresp.OK(c, resp)
}
