package handlers

import (
	"net/http"
	"strconv"

	"github.com/Estefano-cmd/impulsoApi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// respondError writes the response for a failed service call. Missing
// records become 404 with notFound as message, input errors become 400 and
// anything else is a 500 carrying the underlying message.
func respondError(c *gin.Context, log *logrus.Logger, err error, notFound string) {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	default:
		_ = c.Error(err)
		log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// bindJSON decodes the request body and writes a 400 on failure
func bindJSON(c *gin.Context, log *logrus.Logger, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		log.WithError(err).Warn("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}

// paramID parses a numeric path parameter and writes a 400 when it is not one
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
