package handlers

import (
	"errors"
	"net/http"

	apperrors "mediation-scheduler/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors to HTTP responses. Handlers pass a
// fallback message used when the error is not one of the known types.
func respondError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		body := gin.H{"error": validationErr.Error()}
		if len(validationErr.Fields) > 0 {
			body["fields"] = validationErr.Fields
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrOptionNotInPoll),
		errors.Is(err, apperrors.ErrDuplicateOptionID),
		errors.Is(err, apperrors.ErrNoVotesReceived):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsDelivery(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
