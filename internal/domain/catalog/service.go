// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"gorm.io/gorm"
)

// CatalogService handles catalog reads. All write access happens at
// seed time; the running service only lists and fetches.
type CatalogService struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *CatalogService {
	return &CatalogService{
		db:     db,
		config: cfg,
	}
}

// ProductFilter narrows a product listing
type ProductFilter struct {
	Category string
	Featured bool
	Query    string
}

// ProductResponse is a product with its features expanded for display
type ProductResponse struct {
	Product
	FeatureTags []string `json:"features,omitempty"`
}

// CategorySummary represents a product category with its item count
type CategorySummary struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ListProducts returns active products matching the filter, in catalog order
func (s *CatalogService) ListProducts(filter ProductFilter) ([]ProductResponse, error) {
	s.simulateLoad()

	query := s.db.Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Query != "" {
		term := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var products []Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ProductResponse{Product: p, FeatureTags: p.FeatureList()}
	}

	return responses, nil
}

// GetProduct returns a single active product by ID
func (s *CatalogService) GetProduct(id uint) (*ProductResponse, error) {
	var product Product
	result := s.db.Where("id = ? AND is_active = ?", id, true).First(&product)
	if result.Error != nil {
		return nil, fmt.Errorf("product not found")
	}

	return &ProductResponse{Product: product, FeatureTags: product.FeatureList()}, nil
}

// ListCategories returns the distinct product categories with counts
func (s *CatalogService) ListCategories() ([]CategorySummary, error) {
	var categories []CategorySummary
	err := s.db.Model(&Product{}).
		Select("category, COUNT(*) as count").
		Where("is_active = ?", true).
		Group("category").
		Order("category").
		Scan(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// ServiceResponse is a service offering with its features expanded
type ServiceResponse struct {
	Service
	FeatureTags []string `json:"features,omitempty"`
}

// ListServices returns the active service offerings in display order
func (s *CatalogService) ListServices() ([]ServiceResponse, error) {
	s.simulateLoad()

	var services []Service
	err := s.db.Where("is_active = ?", true).Order("sort_order, id").Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	responses := make([]ServiceResponse, len(services))
	for i, svc := range services {
		responses[i] = ServiceResponse{Service: svc, FeatureTags: svc.FeatureList()}
	}

	return responses, nil
}

// PackageResponse is a service package with its features expanded
type PackageResponse struct {
	ServicePackage
	FeatureTags []string `json:"features,omitempty"`
}

// ListPackages returns the service packages in display order
func (s *CatalogService) ListPackages() ([]PackageResponse, error) {
	var packages []ServicePackage
	err := s.db.Order("sort_order, id").Find(&packages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	responses := make([]PackageResponse, len(packages))
	for i, pkg := range packages {
		responses[i] = PackageResponse{ServicePackage: pkg, FeatureTags: pkg.FeatureList()}
	}

	return responses, nil
}

// simulateLoad applies the configured catalog delay. The storefront
// shows a loading state before seeded data appears; the delay is purely
// cosmetic and carries no retry or cancellation semantics.
func (s *CatalogService) simulateLoad() {
	if delay := s.config.Business.CatalogLoadDelay; delay > 0 {
		time.Sleep(delay)
	}
}
