package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"confportal/internal/domain"
	"confportal/internal/pkg/response"
	"confportal/internal/pkg/validator"
	"confportal/internal/repository"
)

type UpdateRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=120"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Designation *string `json:"designation,omitempty" validate:"omitempty,max=120"`
	Affiliation *string `json:"affiliation,omitempty" validate:"omitempty,max=200"`
	Country     *string `json:"country,omitempty" validate:"omitempty,max=80"`
}

type Handler struct {
	users *repository.UserRepository
}

func NewHandler(users *repository.UserRepository) *Handler {
	return &Handler{users: users}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
	rg.PUT("/profile", h.Update)
}

// Get godoc
// @Summary      Fetch the authenticated user's profile
// @Tags         Profile
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} domain.User
// @Router       /profile [get]
func (h *Handler) Get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	sanitize(user)
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fieldErrs := validator.Validate(&req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid profile fields", fieldErrs)
		return
	}

	updates := map[string]any{}
	setIf(updates, "full_name", req.FullName)
	setIf(updates, "phone", req.Phone)
	setIf(updates, "designation", req.Designation)
	setIf(updates, "affiliation", req.Affiliation)
	setIf(updates, "country", req.Country)

	if len(updates) == 0 {
		h.Get(c)
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), updates)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	sanitize(user)
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func sanitize(u *domain.User) {
	u.PasswordHash = ""
}

func setIf(updates map[string]any, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
