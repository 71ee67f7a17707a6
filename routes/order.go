package routes

import (
	orderControllers "github.com/cybertek-labs/storefront-api/controllers/order"
	"github.com/cybertek-labs/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout and order history. Both require a
// signed-in user.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/")
	orders.Use(middleware.ValidateToken, middleware.RequireAuth)
	{
		orders.POST("/checkout", orderControllers.CheckoutHandler(db))
		orders.GET("/orders", orderControllers.GetUserOrdersHandler(db))
	}
}
