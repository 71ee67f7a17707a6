package routes

import (
	"github.com/cybertek-labs/storefront-api/auth"
	"github.com/cybertek-labs/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession())
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
	}

	account := r.Group("/auth")
	account.Use(middleware.ValidateToken, middleware.RequireAuth)
	{
		account.POST("/logout", auth.Logout(db))
		account.POST("/change-password", auth.ChangePassword(db))
		account.GET("/profile", auth.Profile(db))
	}
}
