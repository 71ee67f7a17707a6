package cartControllers

import (
	"fmt"
	"testing"

	"github.com/cybertek-labs/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	cat := models.Category{Name: "Gadgets-" + name}
	require.NoError(t, db.Create(&cat).Error)
	product := models.Product{Name: name, Price: price, CategoryID: cat.ID, Image: "/img/" + name}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddItemIncrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Widget", 10)

	for i := 0; i < 3; i++ {
		require.NoError(t, AddItem(db, "sess_a", product.ID))
	}

	items, err := GetItems(db, "sess_a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "Widget", items[0].ProductName)
	assert.Equal(t, 10.0, items[0].Price)
}

func TestAddItemUnknownProductIsNoOp(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, AddItem(db, "sess_a", 9999))

	items, err := GetItems(db, "sess_a")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Widget", 10)

	require.NoError(t, AddItem(db, "sess_a", product.ID))

	// Later catalog price changes must not touch the cart line.
	require.NoError(t, db.Model(&product).Update("price", 99.0).Error)

	items, err := GetItems(db, "sess_a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 10.0, items[0].Price)
	assert.Equal(t, 10.0, CartTotal(items))
}

func TestSetItemQuantity(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Widget", 10)
	require.NoError(t, AddItem(db, "sess_a", product.ID))

	require.NoError(t, SetItemQuantity(db, "sess_a", product.ID, 5))
	items, err := GetItems(db, "sess_a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestSetItemQuantityZeroOrNegativeRemoves(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Widget", 10)

	for _, qty := range []int{0, -2} {
		require.NoError(t, AddItem(db, "sess_a", product.ID))
		require.NoError(t, SetItemQuantity(db, "sess_a", product.ID, qty))

		items, err := GetItems(db, "sess_a")
		require.NoError(t, err)
		assert.Empty(t, items, "quantity %d should remove the line", qty)
	}
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Widget", 10)
	require.NoError(t, AddItem(db, "sess_a", product.ID))

	require.NoError(t, RemoveItem(db, "sess_a", product.ID))
	// Removing again (or from a session with no cart) is a no-op.
	require.NoError(t, RemoveItem(db, "sess_a", product.ID))
	require.NoError(t, RemoveItem(db, "sess_missing", product.ID))

	items, err := GetItems(db, "sess_a")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	a := seedProduct(t, db, "A", 10)
	b := seedProduct(t, db, "B", 5)
	require.NoError(t, AddItem(db, "sess_a", a.ID))
	require.NoError(t, AddItem(db, "sess_a", b.ID))

	require.NoError(t, ClearCart(db, "sess_a"))

	items, err := GetItems(db, "sess_a")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartsAreSessionScoped(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Widget", 10)

	require.NoError(t, AddItem(db, "sess_a", product.ID))

	items, err := GetItems(db, "sess_b")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartTotal(t *testing.T) {
	items := []models.CartItem{
		{Price: 10, Quantity: 2},
		{Price: 5, Quantity: 1},
	}
	assert.Equal(t, 25.0, CartTotal(items))
	assert.Equal(t, 0.0, CartTotal(nil))
}
