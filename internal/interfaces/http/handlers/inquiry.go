// internal/interfaces/http/handlers/inquiry.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/analytics"
	"github.com/kingu-electrical/kingu-backend/internal/domain/inquiry"
	"github.com/kingu-electrical/kingu-backend/internal/domain/notification"
	"github.com/kingu-electrical/kingu-backend/internal/infrastructure/database/redis"
	"github.com/kingu-electrical/kingu-backend/internal/interfaces/http/middleware"
)

// InquiryHandler handles contact, booking and inquiry endpoints
type InquiryHandler struct {
	inquiryService *inquiry.Service
	config         *config.Config
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(store *redis.Client, cfg *config.Config) *InquiryHandler {
	tracker := analytics.NewService(store)
	notifier := notification.NewService(store)

	return &InquiryHandler{
		inquiryService: inquiry.NewService(tracker, notifier, cfg),
		config:         cfg,
	}
}

// SubmitContact handles POST /inquiries/contact
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req inquiry.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	handoff, err := h.inquiryService.SubmitContact(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your message has been sent! We will contact you shortly.",
		"data":    handoff,
	})
}

// SubmitBooking handles POST /inquiries/booking
func (h *InquiryHandler) SubmitBooking(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req inquiry.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	handoff, err := h.inquiryService.SubmitBooking(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking request sent! We will confirm via WhatsApp.",
		"data":    handoff,
	})
}

// ProductInquiryRequest is the payload for a single-product inquiry
type ProductInquiryRequest struct {
	ProductName string `json:"product_name" binding:"required"`
}

// InquireProduct handles POST /inquiries/product
func (h *InquiryHandler) InquireProduct(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req ProductInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	handoff, err := h.inquiryService.InquireProduct(c.Request.Context(), sessionID, req.ProductName)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry composed successfully",
		"data":    handoff,
	})
}

// EmergencyCall handles POST /inquiries/emergency-call
func (h *InquiryHandler) EmergencyCall(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	handoff := h.inquiryService.EmergencyCall(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Emergency call link composed",
		"data":    handoff,
	})
}

// EmailInquiryRequest is the payload for an email inquiry
type EmailInquiryRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailInquiry handles POST /inquiries/email
func (h *InquiryHandler) EmailInquiry(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req EmailInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	handoff := h.inquiryService.EmailInquiry(c.Request.Context(), sessionID, req.Subject, req.Body)

	c.JSON(http.StatusOK, gin.H{
		"message": "Email link composed",
		"data":    handoff,
	})
}

// renderError maps validation errors to 400 with the user-visible
// message; everything else is a 500.
func (h *InquiryHandler) renderError(c *gin.Context, err error) {
	var verr *inquiry.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to process inquiry",
	})
}
