// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/infrastructure/database/redis"
	"github.com/kingu-electrical/kingu-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes. Every route group shares the same
// session cookie context; none require authentication.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, store *redis.Client, cfg *config.Config) {
	setupCatalogRoutes(rg, db, cfg)
	setupCartRoutes(rg, db, store, cfg)
	setupCheckoutRoutes(rg, store, cfg)
	setupInquiryRoutes(rg, store, cfg)
	setupNotificationRoutes(rg, store, cfg)
	setupAnalyticsRoutes(rg, store, cfg)
	setupPreferencesRoutes(rg, store, cfg)
	setupInfoRoutes(rg, cfg)
}

func setupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/categories", catalogHandler.GetCategories)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	services := rg.Group("/services")
	{
		services.GET("", catalogHandler.GetServices)
		services.GET("/packages", catalogHandler.GetPackages)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, store *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, store, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, store *redis.Client, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(store, cfg)

	checkout := rg.Group("/checkout")
	{
		checkout.POST("/whatsapp", checkoutHandler.ComposeOrder)
	}
}

func setupInquiryRoutes(rg *gin.RouterGroup, store *redis.Client, cfg *config.Config) {
	inquiryHandler := handlers.NewInquiryHandler(store, cfg)

	inquiries := rg.Group("/inquiries")
	{
		inquiries.POST("/contact", inquiryHandler.SubmitContact)
		inquiries.POST("/booking", inquiryHandler.SubmitBooking)
		inquiries.POST("/product", inquiryHandler.InquireProduct)
		inquiries.POST("/emergency-call", inquiryHandler.EmergencyCall)
		inquiries.POST("/email", inquiryHandler.EmailInquiry)
	}
}

func setupNotificationRoutes(rg *gin.RouterGroup, store *redis.Client, cfg *config.Config) {
	notificationHandler := handlers.NewNotificationHandler(store, cfg)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("/current", notificationHandler.GetCurrent)
		notifications.DELETE("/current", notificationHandler.Dismiss)
	}
}

func setupAnalyticsRoutes(rg *gin.RouterGroup, store *redis.Client, cfg *config.Config) {
	analyticsHandler := handlers.NewAnalyticsHandler(store, cfg)

	analytics := rg.Group("/analytics")
	{
		analytics.POST("/events", analyticsHandler.TrackEvent)
		analytics.GET("/events", analyticsHandler.GetRecent)
	}
}

func setupPreferencesRoutes(rg *gin.RouterGroup, store *redis.Client, cfg *config.Config) {
	preferencesHandler := handlers.NewPreferencesHandler(store, cfg)

	preferences := rg.Group("/preferences")
	{
		preferences.GET("", preferencesHandler.GetPreferences)
		preferences.PUT("", preferencesHandler.UpdatePreferences)
		preferences.POST("/dark-mode", preferencesHandler.ToggleDarkMode)
		preferences.POST("/favorites/:id", preferencesHandler.AddFavorite)
		preferences.DELETE("/favorites/:id", preferencesHandler.RemoveFavorite)
	}
}

func setupInfoRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	infoHandler := handlers.NewInfoHandler(cfg)

	rg.GET("/info", infoHandler.GetBusinessInfo)
}
