package handlers

import (
	"net/http"

	"github.com/Estefano-cmd/impulsoApi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service AuthService
	log     *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(svc AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		log:     log,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges a username and password for a signed token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, h.log, err, "User not found")
			return
		}
		h.log.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
