package handlers

import (
	"errors"
	"net/http"

	apperrors "notes-saas-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MessageResponse represents a success response without a data payload
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool     `json:"success" example:"false"`
	Message string   `json:"message" example:"error message"`
	Errors  []string `json:"errors,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondMessageData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondValidationErrors(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation Error",
		"errors":  errs,
	})
}

// respondServiceError maps a service error onto the HTTP status and envelope
// the API contract defines for it.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		var verr *apperrors.ValidationError
		errors.As(err, &verr)
		respondValidationErrors(c, []string{verr.Message})
	case apperrors.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondError(c, http.StatusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("unhandled service error")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
