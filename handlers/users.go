package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"terrasense-service/config"
	"terrasense-service/database"
	"terrasense-service/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the user endpoints.
type UserHandler struct {
	userService *database.UserService
	cfg         *config.Config
}

func NewUserHandler(userService *database.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{userService: userService, cfg: cfg}
}

// ListUsers returns users matching the optional role and region filters.
func (h *UserHandler) ListUsers(c *gin.Context) {
	f := database.UserFilters{
		Role:   c.Query("role"),
		Region: c.Query("region"),
	}

	data, err := h.userService.ListUsers(c.Request.Context(), f)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondList(c, data, len(data))
}

// CreateUser registers a new user. Email is the unique key.
func (h *UserHandler) CreateUser(c *gin.Context) {
	u := &models.User{}
	if err := c.BindJSON(u); err != nil {
		log.Errorf("Failed to get the argument in /users call: %v", err)
		badRequest(c, "Could not read JSON input")
		return
	}
	if u.Email == "" {
		badRequest(c, "email is required")
		return
	}
	switch u.Role {
	case "", models.RoleFarmer, models.RoleResearcher, models.RolePolicymaker, models.RoleNGO, models.RoleAdmin:
	default:
		badRequest(c, "Invalid user role")
		return
	}

	if err := h.userService.CreateUser(c.Request.Context(), u); err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			badRequest(c, "Email already registered")
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	saved, err := h.userService.GetUser(c.Request.Context(), u.ID)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusCreated, saved)
}

// GetUserByEmail looks one user up by their unique email.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// UpdateContributions applies atomic increments to the contribution
// counters.
func (h *UserHandler) UpdateContributions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid user id")
		return
	}

	upd := &models.ContributionsUpdate{}
	if err := c.BindJSON(upd); err != nil {
		log.Errorf("Failed to get the argument in /users/%d/contributions call: %v", id, err)
		badRequest(c, "Could not read JSON input")
		return
	}

	user, err := h.userService.IncrementContributions(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// RoleStats returns the per-role user statistics.
func (h *UserHandler) RoleStats(c *gin.Context) {
	stats, err := h.userService.RoleStats(c.Request.Context())
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}
