package handler

import (
	"errors"
	"net/http"

	"workshop-invoicing-backend/internal/services/auth"
	"workshop-invoicing-backend/internal/services/invoicing"
	"workshop-invoicing-backend/internal/services/workshop"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors to status codes. Anything unrecognised is
// logged and reported as a generic 500.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, invoicing.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, invoicing.ErrNotFound),
		errors.Is(err, workshop.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// bindJSON decodes the request body into dst, aborting with 413 when the body
// exceeds maxBodyBytes and 400 when it is not valid JSON.
func bindJSON(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return false
		}
		badRequest(c, "invalid payload")
		return false
	}
	return true
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
