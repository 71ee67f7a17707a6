package routes

import (
	cartControllers "github.com/cybertek-labs/storefront-api/controllers/cart"
	"github.com/cybertek-labs/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the "/cart" endpoints. A session token is enough;
// visitors do not need an account to build a cart.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/items/:product_id", cartControllers.AddCartItem(db))
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCartHandler(db))
	}
}
