// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/catalog"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalogService *catalog.CatalogService
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	filter := catalog.ProductFilter{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
		Query:    c.Query("q"),
	}

	products, err := h.catalogService.ListProducts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
		"count":   len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalogService.GetProduct(uint(productID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /products/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetServices handles GET /services
func (h *CatalogHandler) GetServices(c *gin.Context) {
	services, err := h.catalogService.ListServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve services",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Services retrieved successfully",
		"data":    services,
	})
}

// GetPackages handles GET /services/packages
func (h *CatalogHandler) GetPackages(c *gin.Context) {
	packages, err := h.catalogService.ListPackages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve service packages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service packages retrieved successfully",
		"data":    packages,
	})
}
