package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes plus the token-protected account endpoints
	SetupAuthRoutes(r, db)

	// Public storefront: catalog browsing and filtering
	SetupShopRoutes(r, db)

	// Session cart (anonymous sessions welcome)
	SetupCartRoutes(r, db)

	// Checkout and order history (signed-in users)
	SetupOrderRoutes(r, db)

	// Admin back office
	SetupAdminRoutes(r, db)
}
