// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/kingu-electrical/kingu-backend/internal/domain/catalog"
	"github.com/kingu-electrical/kingu-backend/internal/pkg/currency"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.Product{},
		&catalog.Service{},
		&catalog.ServicePackage{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(is_featured, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)",
		"CREATE INDEX IF NOT EXISTS idx_services_sort_order ON services(sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_service_packages_sort_order ON service_packages(sort_order)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedCatalog loads the storefront catalog. Seeding is idempotent: rows
// that already exist (by slug or title) are left untouched, so display
// prices edited in the database survive restarts.
func (m *Migration) SeedCatalog() error {
	log.Println("🌱 Seeding catalog data...")

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := m.seedServices(); err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	if err := m.seedServicePackages(); err != nil {
		return fmt.Errorf("failed to seed service packages: %w", err)
	}

	log.Println("✅ Catalog seeded successfully")
	return nil
}

func (m *Migration) seedProducts() error {
	log.Println("🛍️ Seeding products...")

	products := []catalog.Product{
		{
			Name:         "Diesel Generator 50kVA",
			Category:     "generators",
			DisplayPrice: "TZS 8,500,000",
			Image:        "https://images.unsplash.com/photo-1581094794329-c8112a89af12?w=400&h=300&fit=crop",
			Description:  "Complete diesel generator set with automatic start, soundproof canopy, and control panel.",
			Features:     "50kVA Power, Soundproof Canopy, Automatic Start, 1 Year Warranty",
			Stock:        5,
			Rating:       4.5,
			IsFeatured:   true,
		},
		{
			Name:         "Solar Panel 300W",
			Category:     "solar",
			DisplayPrice: "TZS 250,000",
			Image:        "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=400&h=300&fit=crop",
			Description:  "High-efficiency monocrystalline solar panel with 25-year performance warranty.",
			Features:     "300W Output, Monocrystalline, 25-Year Warranty, Weather Resistant",
			Stock:        25,
			Rating:       4.7,
			IsFeatured:   true,
		},
		{
			Name:         "Generator Alternator",
			Category:     "spares",
			DisplayPrice: "TZS 450,000",
			Image:        "https://images.unsplash.com/photo-1563986768609-322da13575f3?w=400&h=300&fit=crop",
			Description:  "Genuine alternator for diesel generators, compatible with multiple models.",
			Features:     "Genuine Part, 1 Year Warranty, Next-Day Delivery, Compatible",
			Stock:        12,
			Rating:       4.3,
		},
		{
			Name:         "Electrical Tool Kit",
			Category:     "tools",
			DisplayPrice: "TZS 350,000",
			Image:        "https://images.unsplash.com/photo-1581094794329-c8112a89af12?w=400&h=300&fit=crop",
			Description:  "Complete electrical tool set for professional installations and repairs.",
			Features:     "30+ Tools, Professional Grade, Carry Case, 1 Year Warranty",
			Stock:        8,
			Rating:       4.4,
		},
		{
			Name:         "ATS Control Panel",
			Category:     "panels",
			DisplayPrice: "TZS 1,200,000",
			Image:        "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=400&h=300&fit=crop",
			Description:  "Automatic Transfer Switch panel for seamless mains/generator switching.",
			Features:     "Automatic Switching, DSE Controller, Installation Available, 1 Year Warranty",
			Stock:        6,
			Rating:       4.6,
			IsFeatured:   true,
		},
	}

	for _, p := range products {
		p.Slug = slugify(p.Name)
		// The numeric amount is derived exactly once, here
		p.Amount = currency.Parse(p.DisplayPrice)
		p.IsActive = true

		var existing catalog.Product
		result := m.db.Where("slug = ?", p.Slug).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&p).Error; err != nil {
				return err
			}
			log.Printf("✅ Created product: %s", p.Name)
		} else {
			log.Printf("⏭️ Product already exists: %s", p.Name)
		}
	}

	return nil
}

func (m *Migration) seedServices() error {
	log.Println("🔧 Seeding services...")

	services := []catalog.Service{
		{
			Title:       "Generator Services",
			Icon:        "fas fa-cogs",
			Description: "Complete generator solutions including installation, maintenance, repair, testing and commissioning of diesel generators up to 1000kVA.",
			Features:    "Generator installation & commissioning, Regular maintenance & servicing, Emergency repairs, Load testing & certification",
		},
		{
			Title:       "Solar Systems",
			Icon:        "fas fa-solar-panel",
			Description: "Design, installation and maintenance of solar power systems for residential, commercial and industrial applications.",
			Features:    "Solar panel installation, Battery backup systems, Grid-tied systems, Maintenance & monitoring",
		},
		{
			Title:       "PLC & Automation",
			Icon:        "fas fa-microchip",
			Description: "Advanced PLC programming, InteliLite & DSE configuration, and industrial automation solutions.",
			Features:    "PLC programming, SCADA systems, Process automation, Control panel design",
		},
		{
			Title:       "ATS Systems",
			Icon:        "fas fa-exchange-alt",
			Description: "Design, installation, and maintenance of Automatic Transfer Switch systems for seamless power switching.",
			Features:    "ATS panel design, Installation & testing, Maintenance contracts, Emergency repairs",
		},
		{
			Title:       "Electrical Installations",
			Icon:        "fas fa-bolt",
			Description: "Complete electrical installation works for residential, commercial and industrial projects.",
			Features:    "Wiring & cabling, Distribution boards, Lighting systems, Power outlets",
		},
		{
			Title:       "CCTV & Security",
			Icon:        "fas fa-video",
			Description: "CCTV installation, RMS Modbus mapping, rectifier systems, VFD and AVR systems.",
			Features:    "CCTV installation, Access control, Security alarms, Monitoring systems",
		},
	}

	for i, svc := range services {
		svc.SortOrder = i + 1
		svc.IsActive = true

		var existing catalog.Service
		result := m.db.Where("title = ?", svc.Title).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&svc).Error; err != nil {
				return err
			}
			log.Printf("✅ Created service: %s", svc.Title)
		} else {
			log.Printf("⏭️ Service already exists: %s", svc.Title)
		}
	}

	return nil
}

func (m *Migration) seedServicePackages() error {
	log.Println("📦 Seeding service packages...")

	packages := []catalog.ServicePackage{
		{
			Title:        "Basic Maintenance",
			DisplayPrice: "From TZS 150,000",
			Features:     "Generator service check, Electrical safety inspection, Basic troubleshooting, 3-month warranty",
		},
		{
			Title:        "Professional Installation",
			DisplayPrice: "From TZS 500,000",
			Features:     "Complete generator installation, ATS system setup, Free site inspection, 1-year warranty, 24/7 emergency support",
			Popular:      true,
		},
		{
			Title:        "Enterprise Solution",
			DisplayPrice: "Custom Pricing",
			Features:     "Full electrical system design, PLC programming, Solar power integration, Annual maintenance contract, Priority 24/7 support",
		},
	}

	for i, pkg := range packages {
		pkg.SortOrder = i + 1
		// "Custom Pricing" has no digits and parses to zero
		pkg.Amount = currency.Parse(pkg.DisplayPrice)

		var existing catalog.ServicePackage
		result := m.db.Where("title = ?", pkg.Title).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&pkg).Error; err != nil {
				return err
			}
			log.Printf("✅ Created package: %s", pkg.Title)
		} else {
			log.Printf("⏭️ Package already exists: %s", pkg.Title)
		}
	}

	return nil
}

// GetTableInfo logs row counts for the catalog tables
func (m *Migration) GetTableInfo() error {
	tables := []string{"products", "services", "service_packages"}

	log.Println("📊 Catalog table information:")
	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("❌ Error getting count for table %s: %v", table, err)
			continue
		}
		log.Printf("📋 Table %s: %d records", table, count)
	}

	return nil
}

// DropAllTables drops all catalog tables (development use only)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ Dropping all database tables...")

	models := []interface{}{
		&catalog.ServicePackage{},
		&catalog.Service{},
		&catalog.Product{},
	}

	for _, model := range models {
		if err := m.db.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", model, err)
		}
	}

	log.Println("✅ All tables dropped")
	return nil
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
