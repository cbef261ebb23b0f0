package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/service/refresh"
)

// RefreshService reloads the registry on demand.
type RefreshService interface {
	Authorize(key string) error
	TriggerAsync() bool
	Status() refresh.Status
}

// AdminHandler exposes the refresh trigger and registry status.
type AdminHandler struct {
	svc    RefreshService
	logger *zap.Logger
}

// NewAdminHandler constructs the admin HTTP handler.
func NewAdminHandler(svc RefreshService, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{svc: svc, logger: logger}
}

// Refresh starts a background reload. The request returns before the new
// dataset is in service; readers keep the previous snapshot until then.
func (h *AdminHandler) Refresh(c *gin.Context) {
	key := c.Query("api_key")
	if key == "" {
		key = c.GetHeader("X-API-Key")
	}

	if err := h.svc.Authorize(key); err != nil {
		h.logger.Warn("refresh rejected", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid API key"})
		return
	}

	if !h.svc.TriggerAsync() {
		c.JSON(http.StatusAccepted, gin.H{"status": "refresh_in_progress"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh_started"})
}

func (h *AdminHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Status())
}
