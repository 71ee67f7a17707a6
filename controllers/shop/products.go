package shopController

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cybertek-labs/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductFilter carries the raw query parameters for a catalog listing.
// Bounds stay strings here: malformed numbers disable that filter instead of
// failing the request.
type ProductFilter struct {
	Category string
	Query    string
	MinPrice string
	MaxPrice string
}

// FilterProducts returns the products matching every supplied criterion,
// newest first. A category name that matches nothing yields an empty result,
// not an error.
func FilterProducts(db *gorm.DB, f ProductFilter) ([]models.Product, error) {
	query := db.Model(&models.Product{}).Preload("Category")

	if f.Category != "" {
		var cat models.Category
		if err := db.Where("name = ?", f.Category).First(&cat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.Product{}, nil
			}
			return nil, err
		}
		query = query.Where("category_id = ?", cat.ID)
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		// LOWER/LIKE instead of ILIKE so the query is portable across drivers.
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if f.MinPrice != "" {
		if mn, err := strconv.ParseFloat(f.MinPrice, 64); err == nil {
			query = query.Where("price >= ?", mn)
		}
	}
	if f.MaxPrice != "" {
		if mx, err := strconv.ParseFloat(f.MaxPrice, 64); err == nil {
			query = query.Where("price <= ?", mx)
		}
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := ProductFilter{
			Category: c.Query("category"),
			Query:    c.Query("q"),
			MinPrice: c.Query("min_price"),
			MaxPrice: c.Query("max_price"),
		}

		products, err := FilterProducts(db, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          product.ID,
			"name":        product.Name,
			"price":       product.Price,
			"image":       product.Image,
			"description": product.Description,
			"category":    product.Category.Name,
			"specs":       models.ParseSpecs(product.Specs),
			"stock":       product.Stock,
		})
	}
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
