// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/cart"
	"github.com/kingu-electrical/kingu-backend/internal/domain/catalog"
	"github.com/kingu-electrical/kingu-backend/internal/domain/notification"
	"github.com/kingu-electrical/kingu-backend/internal/infrastructure/database/redis"
	"github.com/kingu-electrical/kingu-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService    *cart.Service
	catalogService *catalog.CatalogService
	config         *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, store *redis.Client, cfg *config.Config) *CartHandler {
	notifier := notification.NewService(store)
	return &CartHandler{
		cartService:    cart.NewService(store, notifier, cfg),
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	snapshot := h.cartService.Get(c.Request.Context(), sessionID)
	view := cart.Project(snapshot, h.config.Business.Currency)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    view,
	})
}

// AddToCartRequest is the payload for adding a product to the cart
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	snapshot, err := h.cartService.Add(c.Request.Context(), sessionID, &product.Product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cart.Project(snapshot, h.config.Business.Currency),
	})
}

// UpdateCartItemRequest is the payload for changing a line quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snapshot, err := h.cartService.SetQuantity(c.Request.Context(), sessionID, uint(productID), req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cart.Project(snapshot, h.config.Business.Currency),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	snapshot, err := h.cartService.Remove(c.Request.Context(), sessionID, uint(productID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cart.Project(snapshot, h.config.Business.Currency),
	})
}

// ClearCart handles DELETE /cart. The confirm query parameter carries
// the user's explicit confirmation; without it nothing is cleared.
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	confirmed := c.Query("confirm") == "true"

	err := h.cartService.Clear(c.Request.Context(), sessionID, confirmed)
	if err != nil {
		if errors.Is(err, cart.ErrConfirmationRequired) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Confirmation required to clear cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	count := h.cartService.Count(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}
