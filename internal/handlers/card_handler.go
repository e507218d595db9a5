package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainpay "github.com/ricascor080/Back-Barber/internal/domain/payment"
	"github.com/ricascor080/Back-Barber/internal/dto"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/httpresp"
	"github.com/ricascor080/Back-Barber/internal/middleware"
	"github.com/ricascor080/Back-Barber/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type CardHandler struct {
	db *gorm.DB
}

func NewCardHandler(db *gorm.DB) *CardHandler {
	return &CardHandler{db: db}
}

type SaveCardRequest struct {
	Number          string `json:"number" binding:"required"`
	ExpirationMonth int    `json:"expiration_month" binding:"required"`
	ExpirationYear  int    `json:"expiration_year" binding:"required"`
	Nickname        string `json:"nickname"`
}

func cardView(card *models.UserCard) dto.CardDTO {
	return dto.CardDTO{
		ID:              card.ID,
		LastFour:        card.LastFour(),
		ExpirationMonth: card.ExpirationMonth,
		ExpirationYear:  card.ExpirationYear,
		Nickname:        card.Nickname,
		CreatedAt:       card.CreatedAt,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *CardHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var cards []models.UserCard
	if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&cards).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cards", "Error al listar tarjetas.")
		return
	}

	out := make([]dto.CardDTO, 0, len(cards))
	for i := range cards {
		out = append(out, cardView(&cards[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *CardHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SaveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if errs := domainpay.ValidateCardExpiration(req.ExpirationMonth, req.ExpirationYear, time.Now()); len(errs) > 0 {
		httperr.Validation(c, httperr.ValidationError{Fields: errs})
		return
	}

	card := models.UserCard{
		UserID:          userID,
		CardNumber:      req.Number,
		ExpirationMonth: req.ExpirationMonth,
		ExpirationYear:  req.ExpirationYear,
		Nickname:        req.Nickname,
	}

	if err := h.db.Create(&card).Error; err != nil {
		httperr.Internal(c, "failed_to_save_card", "Error al guardar la tarjeta.")
		return
	}

	httpresp.Created(c, cardView(&card))
}

// ======================================================
// DELETE (solo tarjetas propias)
// ======================================================

func (h *CardHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var card models.UserCard
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&card).Error; err != nil {
		httperr.NotFound(c, "card_not_found", "Tarjeta no encontrada.")
		return
	}

	if err := h.db.Delete(&card).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_card", "Error al eliminar la tarjeta.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
