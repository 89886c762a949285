// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/analytics"
	"github.com/kingu-electrical/kingu-backend/internal/infrastructure/database/redis"
	"github.com/kingu-electrical/kingu-backend/internal/interfaces/http/middleware"
)

// AnalyticsHandler handles analytics endpoints
type AnalyticsHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(store *redis.Client, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analytics.NewService(store),
		config:           cfg,
	}
}

// TrackEventRequest is the payload for recording an analytics event
type TrackEventRequest struct {
	Event string                 `json:"event" binding:"required"`
	Page  string                 `json:"page"`
	Data  map[string]interface{} `json:"data"`
}

// TrackEvent handles POST /analytics/events. Tracking is best-effort:
// a storage failure is reported but never blocks the caller's flow.
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.analyticsService.Track(c.Request.Context(), sessionID, req.Event, req.Page, req.Data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record event",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Event recorded",
	})
}

// GetRecent handles GET /analytics/events
func (h *AnalyticsHandler) GetRecent(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	limit := int64(analytics.MaxEvents)
	if param := c.Query("limit"); param != "" {
		if n, err := strconv.ParseInt(param, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := h.analyticsService.Recent(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve events",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Events retrieved successfully",
		"data":    events,
		"count":   len(events),
	})
}
