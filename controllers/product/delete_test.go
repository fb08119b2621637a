package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Description: "d",
		Price:       10,
		Category:    "misc",
		Images:      []models.ProductImage{{Path: "products/" + name + ".jpg"}},
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func referenceProduct(t *testing.T, db *gorm.DB, productID uint) {
	t.Helper()
	order := models.Order{
		OrderNumber:     fmt.Sprintf("ORD-20250101-%08X", productID),
		UserID:          1,
		TotalAmount:     10,
		AdvancePaid:     100,
		RemainingAmount: -90,
		Status:          models.OrderStatusPending,
		ShippingAddress: "a",
		Phone:           "p",
		Items:           []models.OrderItem{{ProductID: productID, Quantity: 1, Price: 10}},
	}
	require.NoError(t, db.Create(&order).Error)
}

func TestDeleteProductRemovesGalleryRows(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "hoodie")

	require.NoError(t, DeleteProductByID(db, product.ID))

	var products, images int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&images).Error)
	assert.Zero(t, products)
	assert.Zero(t, images)
}

func TestDeleteProductBlockedByOrderReference(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "hoodie")
	referenceProduct(t, db, product.ID)

	err := DeleteProductByID(db, product.ID)
	assert.ErrorIs(t, err, ErrProductReferenced)

	// Nothing was touched: product and gallery rows survive.
	var products, images int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&images).Error)
	assert.Equal(t, int64(1), products)
	assert.Equal(t, int64(1), images)
}

func TestDeleteProductMissing(t *testing.T) {
	db := newTestDB(t)
	err := DeleteProductByID(db, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBulkDeleteReportsDeletedAndSkipped(t *testing.T) {
	db := newTestDB(t)
	free1 := seedProduct(t, db, "hoodie")
	free2 := seedProduct(t, db, "cap")
	blocked := seedProduct(t, db, "shirt")
	referenceProduct(t, db, blocked.ID)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bulk-delete", BulkDeleteProducts(db))

	body, _ := json.Marshal(gin.H{"ids": []uint{free1.ID, free2.ID, blocked.ID}})
	req := httptest.NewRequest(http.MethodPost, "/bulk-delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Deleted    int    `json:"deleted"`
		Skipped    int    `json:"skipped"`
		SkippedIDs []uint `json:"skipped_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Deleted)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, []uint{blocked.ID}, resp.SkippedIDs)

	// The referenced product is still there.
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", blocked.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
