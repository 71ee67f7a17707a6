package adminController

import (
	"net/http"

	"github.com/cybertek-labs/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Stats aggregates the back-office dashboard metrics. Revenue sums the stored
// order totals, so it reflects the prices orders were actually placed at.
type Stats struct {
	Users            int64   `json:"users"`
	Products         int64   `json:"products"`
	Categories       int64   `json:"categories"`
	Orders           int64   `json:"orders"`
	OrdersPending    int64   `json:"orders_pending"`
	OrdersProcessing int64   `json:"orders_processing"`
	OrdersCompleted  int64   `json:"orders_completed"`
	OrdersCancelled  int64   `json:"orders_cancelled"`
	Revenue          float64 `json:"revenue"`
}

// CollectStats gathers the dashboard counts and completed-order revenue.
func CollectStats(db *gorm.DB) (Stats, error) {
	var s Stats

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &s.Users},
		{&models.Product{}, &s.Products},
		{&models.Category{}, &s.Categories},
		{&models.Order{}, &s.Orders},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return Stats{}, err
		}
	}

	byStatus := []struct {
		status models.OrderStatus
		dest   *int64
	}{
		{models.OrderStatusPending, &s.OrdersPending},
		{models.OrderStatusProcessing, &s.OrdersProcessing},
		{models.OrderStatusCompleted, &s.OrdersCompleted},
		{models.OrderStatusCancelled, &s.OrdersCancelled},
	}
	for _, c := range byStatus {
		if err := db.Model(&models.Order{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return Stats{}, err
		}
	}

	err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(total), 0)").
		Scan(&s.Revenue).Error
	if err != nil {
		return Stats{}, err
	}

	return s, nil
}

// GET /admin/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := CollectStats(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
