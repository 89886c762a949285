// internal/interfaces/http/handlers/notification.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/notification"
	"github.com/kingu-electrical/kingu-backend/internal/infrastructure/database/redis"
	"github.com/kingu-electrical/kingu-backend/internal/interfaces/http/middleware"
)

// NotificationHandler handles toast notification endpoints
type NotificationHandler struct {
	notificationService *notification.Service
	config              *config.Config
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(store *redis.Client, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notification.NewService(store),
		config:              cfg,
	}
}

// GetCurrent handles GET /notifications/current. There is at most one
// active toast per session; an expired or dismissed toast yields an
// empty response, not an error.
func (h *NotificationHandler) GetCurrent(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	toast, ok := h.notificationService.Current(c.Request.Context(), sessionID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"message": "No active notification",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification retrieved successfully",
		"data":    toast,
	})
}

// Dismiss handles DELETE /notifications/current
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.notificationService.Dismiss(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to dismiss notification",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification dismissed",
	})
}
