package routes

import (
	adminController "github.com/cybertek-labs/storefront-api/controllers/admin"
	orderControllers "github.com/cybertek-labs/storefront-api/controllers/order"
	productcontroller "github.com/cybertek-labs/storefront-api/controllers/product"
	"github.com/cybertek-labs/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminGroup.GET("/stats", adminController.GetStats(db))

		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", adminController.GetAllUsers(db))
			userAdmin.POST("", adminController.CreateUser(db))
			userAdmin.PUT("/:id", adminController.UpdateUser(db))
			userAdmin.DELETE("/:id", adminController.DeleteUser(db))
			userAdmin.POST("/:id/toggle-admin", adminController.ToggleAdmin(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export", productcontroller.ExportProductsToExcel(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
			orderAdmin.GET("/export", orderControllers.ExportOrdersToExcel(db))
		}
	}
}
