package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cybertek-labs/storefront-api/models"
	"github.com/gin-gonic/gin"
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
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/categories", CreateCategory(db))
	r.PUT("/admin/categories/:id", UpdateCategory(db))
	r.DELETE("/admin/categories/:id", DeleteCategory(db))
	r.POST("/admin/products", CreateProduct(db))
	r.PUT("/admin/products/:id", UpdateProduct(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCategoryRequiresUniqueName(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/categories", CategoryInput{Name: "Laptops"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/categories", CategoryInput{Name: "Laptops"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/categories", CategoryInput{Name: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCategoryCascadesItsProductsOnly(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	doomed := models.Category{Name: "Doomed"}
	kept := models.Category{Name: "Kept"}
	require.NoError(t, db.Create(&doomed).Error)
	require.NoError(t, db.Create(&kept).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Product{
			Name: fmt.Sprintf("doomed-%d", i), Price: 10, CategoryID: doomed.ID,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Product{Name: "survivor", Price: 10, CategoryID: kept.ID}).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", doomed.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var remaining []models.Product
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "survivor", remaining[0].Name)
}

func TestCreateProductValidation(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	cat := models.Category{Name: "Gadgets"}
	require.NoError(t, db.Create(&cat).Error)
	catID := fmt.Sprint(cat.ID)

	// Missing required fields
	w := doJSON(t, r, http.MethodPost, "/admin/products", ProductInput{Name: "Widget"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric price
	w = doJSON(t, r, http.MethodPost, "/admin/products", ProductInput{
		Name: "Widget", Price: "abc", CategoryID: catID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric stock
	w = doJSON(t, r, http.MethodPost, "/admin/products", ProductInput{
		Name: "Widget", Price: "9.99", Stock: "lots", CategoryID: catID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown category
	w = doJSON(t, r, http.MethodPost, "/admin/products", ProductInput{
		Name: "Widget", Price: "9.99", CategoryID: "9999",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Valid; specs normalized into the stored form
	w = doJSON(t, r, http.MethodPost, "/admin/products", ProductInput{
		Name: "Widget", Price: "9.99", Stock: "5", CategoryID: catID, Specs: "A, B, C",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Product
	require.NoError(t, db.Where("name = ?", "Widget").First(&stored).Error)
	assert.Equal(t, 9.99, stored.Price)
	assert.Equal(t, 5, stored.Stock)
	assert.Equal(t, []string{"A", "B", "C"}, models.ParseSpecs(stored.Specs))
}

func TestUpdateProductNotFound(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPut, "/admin/products/42", ProductInput{
		Name: "Widget", Price: "9.99", CategoryID: "1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
