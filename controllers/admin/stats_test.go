package adminController

import (
	"testing"

	"github.com/cybertek-labs/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdminUser(t, db)

	cat := models.Category{Name: "Gadgets"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Widget", Price: 10, CategoryID: cat.ID}).Error)

	orders := []models.Order{
		{UserID: admin.ID, Total: 100, Status: models.OrderStatusCompleted},
		{UserID: admin.ID, Total: 50, Status: models.OrderStatusCompleted},
		{UserID: admin.ID, Total: 999, Status: models.OrderStatusPending},
		{UserID: admin.ID, Total: 999, Status: models.OrderStatusCancelled},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	stats, err := CollectStats(db)
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.Users)
	assert.EqualValues(t, 1, stats.Products)
	assert.EqualValues(t, 1, stats.Categories)
	assert.EqualValues(t, 4, stats.Orders)
	assert.EqualValues(t, 1, stats.OrdersPending)
	assert.EqualValues(t, 0, stats.OrdersProcessing)
	assert.EqualValues(t, 2, stats.OrdersCompleted)
	assert.EqualValues(t, 1, stats.OrdersCancelled)

	// Revenue counts Completed orders only, from their stored totals.
	assert.Equal(t, 150.0, stats.Revenue)
}

func TestCollectStatsEmptyStore(t *testing.T) {
	db := newTestDB(t)

	stats, err := CollectStats(db)
	require.NoError(t, err)
	assert.Zero(t, stats.Orders)
	assert.Equal(t, 0.0, stats.Revenue)
}
