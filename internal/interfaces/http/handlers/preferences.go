// internal/interfaces/http/handlers/preferences.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/preferences"
	"github.com/kingu-electrical/kingu-backend/internal/infrastructure/database/redis"
	"github.com/kingu-electrical/kingu-backend/internal/interfaces/http/middleware"
)

// PreferencesHandler handles per-session preference endpoints
type PreferencesHandler struct {
	preferencesService *preferences.Service
	config             *config.Config
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(store *redis.Client, cfg *config.Config) *PreferencesHandler {
	return &PreferencesHandler{
		preferencesService: preferences.NewService(store, cfg),
		config:             cfg,
	}
}

// GetPreferences handles GET /preferences
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	prefs := h.preferencesService.Get(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences retrieved successfully",
		"data":    prefs,
	})
}

// UpdatePreferences handles PUT /preferences
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req preferences.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.preferencesService.Update(c.Request.Context(), sessionID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update preferences",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences updated successfully",
		"data":    req,
	})
}

// ToggleDarkMode handles POST /preferences/dark-mode
func (h *PreferencesHandler) ToggleDarkMode(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	prefs, err := h.preferencesService.ToggleDarkMode(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to toggle dark mode",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dark mode toggled",
		"data":    prefs,
	})
}

// AddFavorite handles POST /preferences/favorites/:id
func (h *PreferencesHandler) AddFavorite(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	prefs, err := h.preferencesService.AddFavorite(c.Request.Context(), sessionID, uint(productID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add favorite",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite added",
		"data":    prefs,
	})
}

// RemoveFavorite handles DELETE /preferences/favorites/:id
func (h *PreferencesHandler) RemoveFavorite(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	prefs, err := h.preferencesService.RemoveFavorite(c.Request.Context(), sessionID, uint(productID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove favorite",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite removed",
		"data":    prefs,
	})
}
