package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

func seedOrder(t *testing.T, db *gorm.DB, userID uint) models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber:     "ORD-20250101-DEADBEEF",
		UserID:          userID,
		TotalAmount:     130,
		AdvancePaid:     100,
		RemainingAmount: 30,
		Status:          models.OrderStatusPending,
		ShippingAddress: "1 Main St",
		Phone:           "555-0100",
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func getOrderRouter(db *gorm.DB, user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/:orderID", func(c *gin.Context) {
		c.Set("user", user)
	}, GetOrder(db))
	return r
}

func TestGetOrderNonNumericIDNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	seedOrder(t, db, user.ID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/latest", nil)
	getOrderRouter(db, user).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestGetOrderOwnerFetches(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	getOrderRouter(db, user).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.OrderNumber)
}

func TestUpdateOrderStatusNonNumericIDNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	seedOrder(t, db, user.ID)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/admin/orders/:orderID/status", UpdateOrderStatus(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/latest/status",
		strings.NewReader("status=shipped"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var persisted models.Order
	require.NoError(t, db.First(&persisted, 1).Error)
	assert.Equal(t, models.OrderStatusPending, persisted.Status)
}

func TestUpdateOrderStatusWritesValidStatus(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/admin/orders/:orderID/status", UpdateOrderStatus(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/1/status",
		strings.NewReader("status=shipped"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var persisted models.Order
	require.NoError(t, db.First(&persisted, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, persisted.Status)
}
