// internal/interfaces/http/handlers/info.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/pkg/deeplink"
)

// InfoHandler serves the static business information the storefront
// renders on the home and contact screens.
type InfoHandler struct {
	config *config.Config
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(cfg *config.Config) *InfoHandler {
	return &InfoHandler{
		config: cfg,
	}
}

// GetBusinessInfo handles GET /info
func (h *InfoHandler) GetBusinessInfo(c *gin.Context) {
	business := h.config.Business

	c.JSON(http.StatusOK, gin.H{
		"message": "Business information retrieved successfully",
		"data": gin.H{
			"name":    h.config.App.Name,
			"version": h.config.App.Version,
			"contact": gin.H{
				"whatsapp":        business.WhatsAppNumber,
				"whatsapp_link":   deeplink.WhatsApp(business.WhatsAppNumber, ""),
				"phone_primary":   business.WhatsAppNumber,
				"phone_secondary": business.SecondaryNumber,
				"emergency":       business.EmergencyNumber,
				"emergency_link":  deeplink.Tel(business.EmergencyNumber),
				"email":           business.PrimaryEmail,
				"email_link":      deeplink.Mailto(business.PrimaryEmail, "", ""),
			},
			"currency":      business.Currency,
			"service_areas": business.ServiceAreas,
		},
	})
}
