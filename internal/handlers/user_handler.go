package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/httpresp"
	"github.com/ricascor080/Back-Barber/internal/middleware"
	"github.com/ricascor080/Back-Barber/internal/models"
	"github.com/ricascor080/Back-Barber/internal/refcache"
)

type UserHandler struct {
	db  *gorm.DB
	ref *refcache.Reference
}

func NewUserHandler(db *gorm.DB, ref *refcache.Reference) *UserHandler {
	return &UserHandler{db: db, ref: ref}
}

// ======================================================
// ME
// ======================================================

func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("OfferedServices").First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// LIST (filtro opcional por rol, p.ej. ?role=barber)
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al listar usuarios.")
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// GET BARBER (incluye el resumen cacheado)
// ======================================================

func (h *UserHandler) GetBarber(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Preload("OfferedServices").
		Where("role = ?", models.RoleBarber).
		First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	resp := gin.H{"barber": barber}
	if summary, err := h.ref.Barber(c.Request.Context(), barber.ID); err == nil {
		resp["cached_details"] = summary
	}

	httpresp.OK(c, resp)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`

	// Solo admin puede tocar estos
	Role         *string  `json:"role"`
	Active       *bool    `json:"active"`
	Salary       *float64 `json:"salary"`
	RewardPoints *int     `json:"reward_points"`
}

func (h *UserHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	if actorRole != models.RoleAdmin && user.ID != actorID {
		httperr.Forbidden(c, "forbidden", "No puedes modificar otros usuarios.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	// Los campos privilegiados se ignoran en silencio para no-admins,
	// igual que en el backend original
	if actorRole == models.RoleAdmin {
		if req.Role != nil {
			user.Role = *req.Role
		}
		if req.Active != nil {
			user.Active = *req.Active
		}
		if req.Salary != nil {
			user.Salary = req.Salary
		}
		if req.RewardPoints != nil {
			user.RewardPoints = *req.RewardPoints
		}
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Error al actualizar usuario.")
		return
	}

	if user.IsBarber() {
		h.ref.InvalidateBarber(c.Request.Context(), user.ID)
	}

	httpresp.OK(c, user)
}

// ======================================================
// CREATE (solo admin: barberos y otros admins)
// ======================================================

type AdminCreateUserRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Phone    string   `json:"phone"`
	Role     string   `json:"role" binding:"required"`
	Salary   *float64 `json:"salary"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	switch req.Role {
	case models.RoleAdmin, models.RoleBarber, models.RoleClient:
	default:
		httperr.BadRequest(c, "invalid_role", "Rol desconocido.")
		return
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         req.Role,
		Salary:       req.Salary,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Error al crear usuario.")
		return
	}

	httpresp.Created(c, user)
}
