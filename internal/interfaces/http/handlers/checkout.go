// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/analytics"
	"github.com/kingu-electrical/kingu-backend/internal/domain/cart"
	"github.com/kingu-electrical/kingu-backend/internal/domain/checkout"
	"github.com/kingu-electrical/kingu-backend/internal/domain/notification"
	"github.com/kingu-electrical/kingu-backend/internal/infrastructure/database/redis"
	"github.com/kingu-electrical/kingu-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(store *redis.Client, cfg *config.Config) *CheckoutHandler {
	notifier := notification.NewService(store)
	cartService := cart.NewService(store, notifier, cfg)
	tracker := analytics.NewService(store)

	return &CheckoutHandler{
		checkoutService: checkout.NewService(cartService, tracker, notifier, cfg),
		config:          cfg,
	}
}

// ComposeOrder handles POST /checkout/whatsapp. The response carries
// the composed order message and the deep link that opens it in
// WhatsApp; nothing is stored server-side.
func (h *CheckoutHandler) ComposeOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	handoff, err := h.checkoutService.ComposeOrder(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Your cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compose order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order composed successfully",
		"data":    handoff,
	})
}
