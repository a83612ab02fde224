package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/worldmind/worldmind/pkg/services"
)

// mapServiceError writes the HTTP error response for a service-layer error.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
		return
	}
	if errors.Is(err, services.ErrInvalidState) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
