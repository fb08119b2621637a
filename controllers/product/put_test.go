package productcontroller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

func putProductForm(t *testing.T, db *gorm.DB, productID uint, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/admin/products/:id", UpdateProduct(db))

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/admin/products/%d", productID),
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateProductMalformedPriceWritesNothing(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "hoodie")

	w := putProductForm(t, db, product.ID, url.Values{
		"name":  {"Renamed"},
		"price": {"not-a-number"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid price")

	// The whole edit fails together: the valid name must not land either.
	var persisted models.Product
	require.NoError(t, db.First(&persisted, product.ID).Error)
	assert.Equal(t, "hoodie", persisted.Name)
	assert.Equal(t, 10.0, persisted.Price)
}

func TestUpdateProductNegativePriceRejected(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "hoodie")

	w := putProductForm(t, db, product.ID, url.Values{"price": {"-5"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var persisted models.Product
	require.NoError(t, db.First(&persisted, product.ID).Error)
	assert.Equal(t, 10.0, persisted.Price)
}

func TestUpdateProductMalformedStockWritesNothing(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "hoodie")

	w := putProductForm(t, db, product.ID, url.Values{
		"name":  {"Renamed"},
		"stock": {"plenty"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid stock")

	var persisted models.Product
	require.NoError(t, db.First(&persisted, product.ID).Error)
	assert.Equal(t, "hoodie", persisted.Name)
}

func TestUpdateProductEmptyFieldsLeaveValues(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "hoodie")

	w := putProductForm(t, db, product.ID, url.Values{"name": {"Renamed"}})
	assert.Equal(t, http.StatusOK, w.Code)

	var persisted models.Product
	require.NoError(t, db.First(&persisted, product.ID).Error)
	assert.Equal(t, "Renamed", persisted.Name)
	assert.Equal(t, 10.0, persisted.Price)
	assert.Equal(t, "misc", persisted.Category)
}
