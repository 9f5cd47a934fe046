package handlers

import (
	"net/http"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler handles user account requests
type UserHandler struct {
	service UserService
	log     *logrus.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(svc UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		log:     log,
	}
}

// userRequest is the user payload; the password is write-only
type userRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	State    *bool           `json:"state"`
	RoleID   *uint           `json:"id_rol"`
	Name     string          `json:"name"`
	Surname  string          `json:"surname"`
	RoleType models.RoleType `json:"role_type"`
}

func (r userRequest) toModel() *models.User {
	state := true
	if r.State != nil {
		state = *r.State
	}
	return &models.User{
		Username: r.Username,
		State:    state,
		RoleID:   r.RoleID,
		Name:     r.Name,
		Surname:  r.Surname,
		RoleType: r.RoleType,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	user := req.toModel()
	if err := h.service.CreateUser(c.Request.Context(), user, req.Password); err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser replaces the user's fields; the password changes only when sent
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req userRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	user := req.toModel()
	user.ID = id
	if err := h.service.UpdateUser(c.Request.Context(), user, req.Password); err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
