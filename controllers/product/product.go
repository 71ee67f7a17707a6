package productcontroller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cybertek-labs/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductInput takes the numeric fields as strings so the handlers own the
// "must parse as numeric" validation instead of failing inside JSON binding.
type ProductInput struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	CategoryID  string `json:"category_id"`
	Image       string `json:"image"`
	Stock       string `json:"stock"`
	Specs       string `json:"specs"`
	Description string `json:"description"`
}

func parseProductInput(c *gin.Context) (models.Product, bool) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return models.Product{}, false
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Price) == "" || input.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price, and category are required"})
		return models.Product{}, false
	}

	price, errPrice := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)
	stockStr := strings.TrimSpace(input.Stock)
	if stockStr == "" {
		stockStr = "0"
	}
	stock, errStock := strconv.Atoi(stockStr)
	if errPrice != nil || errStock != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price or stock value"})
		return models.Product{}, false
	}

	categoryID, err := strconv.ParseUint(input.CategoryID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return models.Product{}, false
	}

	return models.Product{
		Name:        name,
		Price:       price,
		CategoryID:  uint(categoryID),
		Image:       input.Image,
		Stock:       stock,
		Specs:       models.FormatSpecs(input.Specs),
		Description: input.Description,
	}, true
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := parseProductInput(c)
		if !ok {
			return
		}

		var cat models.Category
		if err := db.First(&cat, product.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		product.CreatedAt = time.Now()
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		updated, ok := parseProductInput(c)
		if !ok {
			return
		}

		var cat models.Category
		if err := db.First(&cat, updated.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		product.Name = updated.Name
		product.Price = updated.Price
		product.CategoryID = updated.CategoryID
		product.Image = updated.Image
		product.Stock = updated.Stock
		product.Specs = updated.Specs
		product.Description = updated.Description

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /admin/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
