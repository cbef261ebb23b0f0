package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/domain/models"
)

// statusOf maps a service error onto an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidArgument),
		errors.Is(err, models.ErrOutOfRange),
		errors.Is(err, models.ErrInsufficientHistory):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"success": false, "error": "internal error"})
		return
	}

	logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
