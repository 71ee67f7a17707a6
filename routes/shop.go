package routes

import (
	shopController "github.com/cybertek-labs/storefront-api/controllers/shop"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public catalog endpoints. No middleware:
// browsing never requires a session.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", shopController.GetProducts(db))
	r.GET("/products/:id", shopController.GetProductByID(db))
	r.GET("/categories", shopController.GetAllCategories(db))
}
