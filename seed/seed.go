package seed

import (
	"encoding/json"
	"log"

	"github.com/cybertek-labs/storefront-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"Laptops", "Audio", "Wearables", "Tablets",
	"Gaming", "Displays", "Accessories", "Cameras",
}

type seedProduct struct {
	Name        string
	Category    string
	Price       float64
	Image       string
	Description string
	Specs       []string
	Stock       int
}

var demoProducts = []seedProduct{
	{
		Name:        "CyberBook Pro X1",
		Category:    "Laptops",
		Price:       1299.99,
		Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=500&fit=crop",
		Description: "Ultra-thin laptop with 16GB RAM, 512GB SSD, and stunning 4K display",
		Specs:       []string{"Intel i7 Processor", "16GB RAM", "512GB SSD", "14-inch 4K Display"},
		Stock:       15,
	},
	{
		Name:        "Quantum Wireless Headphones",
		Category:    "Audio",
		Price:       249.99,
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
		Description: "Premium noise-cancelling headphones with 40-hour battery life",
		Specs:       []string{"Active Noise Cancellation", "40-Hour Battery", "Bluetooth 5.3", "Premium Sound"},
		Stock:       28,
	},
	{
		Name:        "NeoWatch Ultra",
		Category:    "Wearables",
		Price:       399.99,
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
		Description: "Advanced smartwatch with health tracking and AMOLED display",
		Specs:       []string{"AMOLED Display", "Heart Rate Monitor", "GPS Tracking", "Water Resistant"},
		Stock:       22,
	},
	{
		Name:        "TechPad Mini",
		Category:    "Tablets",
		Price:       599.99,
		Image:       "https://images.unsplash.com/photo-1561154464-82e9adf32764?w=500&h=500&fit=crop",
		Description: "Compact tablet perfect for work and entertainment on the go",
		Specs:       []string{"10.5-inch Display", "128GB Storage", "12MP Camera", "All-Day Battery"},
		Stock:       18,
	},
	{
		Name:        "ProGaming Mouse RGB",
		Category:    "Gaming",
		Price:       79.99,
		Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500&h=500&fit=crop",
		Description: "High-precision gaming mouse with customizable RGB lighting",
		Specs:       []string{"16000 DPI", "RGB Lighting", "Programmable Buttons", "Ergonomic Design"},
		Stock:       45,
	},
	{
		Name:        "UltraView 4K Monitor",
		Category:    "Displays",
		Price:       449.99,
		Image:       "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=500&h=500&fit=crop",
		Description: "27-inch 4K HDR monitor with stunning color accuracy",
		Specs:       []string{"27-inch 4K", "HDR Support", "144Hz Refresh", "USB-C Connectivity"},
		Stock:       12,
	},
	{
		Name:        "PowerBank Infinite",
		Category:    "Accessories",
		Price:       89.99,
		Image:       "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=500&h=500&fit=crop",
		Description: "30000mAh portable charger with fast charging technology",
		Specs:       []string{"30000mAh Capacity", "Fast Charging", "Multiple Ports", "LED Display"},
		Stock:       35,
	},
	{
		Name:        "CyberCam 4K Pro",
		Category:    "Cameras",
		Price:       899.99,
		Image:       "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?w=500&h=500&fit=crop",
		Description: "Professional 4K webcam for streaming and video calls",
		Specs:       []string{"4K Resolution", "Auto-Focus", "Low-Light Performance", "Wide Angle Lens"},
		Stock:       20,
	},
}

// Run seeds the store on first run: default categories, the demo catalog,
// and a default admin account. Populated tables are left alone, so this is a
// one-time bootstrap, not a runtime fallback.
func Run(db *gorm.DB) error {
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultCategories {
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}
	nameToID := make(map[string]uint, len(categories))
	for _, cat := range categories {
		nameToID[cat.Name] = cat.ID
	}

	for _, p := range demoProducts {
		catID, ok := nameToID[p.Category]
		if !ok {
			// Create the missing category on the way.
			cat := models.Category{Name: p.Category}
			if err := db.Create(&cat).Error; err != nil {
				return err
			}
			catID = cat.ID
			nameToID[cat.Name] = cat.ID
		}

		specs, err := json.Marshal(p.Specs)
		if err != nil {
			return err
		}

		product := models.Product{
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Image:       p.Image,
			CategoryID:  catID,
			Stock:       p.Stock,
			Specs:       string(specs),
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     "admin",
		Email:        "admin@cybertek.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user created: username='admin', password='admin123'")
	return nil
}
