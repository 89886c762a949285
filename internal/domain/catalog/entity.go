// internal/domain/catalog/entity.go
package catalog

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog entry. The catalog is seeded at startup
// and read-only at runtime; ordering happens over WhatsApp, so there is
// no live inventory behind Stock.
//
// DisplayPrice is the verbatim storefront string ("TZS 8,500,000").
// Amount is its numeric value, parsed exactly once at seed time;
// consumers must never re-derive it from the string.
type Product struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null;size:255" json:"name"`
	Slug         string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Category     string         `gorm:"not null;index;size:100" json:"category"`
	Description  string         `gorm:"type:text" json:"description"`
	DisplayPrice string         `gorm:"not null;size:100" json:"price"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Image        string         `gorm:"size:500" json:"image"`
	Rating       float64        `gorm:"default:0" json:"rating"` // 0.0 - 5.0
	Stock        int            `gorm:"default:0" json:"stock"`
	Features     string         `gorm:"size:500" json:"-"` // Comma-separated
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	IsFeatured   bool           `gorm:"default:false" json:"is_featured"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// FeatureList returns the product features as a slice
func (p *Product) FeatureList() []string {
	return splitFeatures(p.Features)
}

// Service represents one of the company's service offerings
type Service struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Icon        string         `gorm:"size:100" json:"icon"`
	Description string         `gorm:"type:text" json:"description"`
	Features    string         `gorm:"size:500" json:"-"` // Comma-separated
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// FeatureList returns the service features as a slice
func (s *Service) FeatureList() []string {
	return splitFeatures(s.Features)
}

// ServicePackage represents a priced service bundle shown on the
// services screen ("Basic Maintenance", "Professional Installation", ...).
// Amount is 0 for packages with no fixed price ("Custom Pricing").
type ServicePackage struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null;size:255" json:"title"`
	DisplayPrice string         `gorm:"not null;size:100" json:"price"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Features     string         `gorm:"size:500" json:"-"` // Comma-separated
	Popular      bool           `gorm:"default:false" json:"popular"`
	SortOrder    int            `gorm:"default:0" json:"sort_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// FeatureList returns the package features as a slice
func (p *ServicePackage) FeatureList() []string {
	return splitFeatures(p.Features)
}

// TableName overrides
func (Product) TableName() string        { return "products" }
func (Service) TableName() string        { return "services" }
func (ServicePackage) TableName() string { return "service_packages" }

func splitFeatures(features string) []string {
	if features == "" {
		return nil
	}
	parts := strings.Split(features, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
