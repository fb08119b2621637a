package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/middleware"
	"github.com/sank4512/plutocollection.in/models"
	"github.com/sank4512/plutocollection.in/storage"
)

type UpdateOrderStatusRequest struct {
	Status string `form:"status" json:"status" binding:"required"`
}

// GetOrder shows one order to its owner or to an admin.
// GET /orders/:orderID
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != user.ID && !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied", "redirect": "/"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// MyOrders lists the authenticated user's order history, newest first.
// GET /orders
func MyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.Where("user_id = ?", user.ID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetAllOrders lists every order for the back office.
// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus writes a new status, validated against the closed status
// set. Transition order is not enforced.
// PUT /admin/orders/:orderID/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DeleteOrderByID removes an order with its lines: items first, parent row
// second, one transaction. The payment screenshot leaves disk best-effort
// after the commit so a file problem never blocks the database deletion.
func DeleteOrderByID(db *gorm.DB, id uint) error {
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return err
	}

	storage.Remove(order.PaymentScreenshot)
	return nil
}

// DELETE /admin/orders/:orderID
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		switch err := DeleteOrderByID(db, uint(id)); {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		}
	}
}

type BulkDeleteOrdersInput struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// BulkDeleteOrders cleans up a batch of orders. Missing ids are skipped; one
// failure never aborts the rest.
// POST /admin/orders/cleanup
func BulkDeleteOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BulkDeleteOrdersInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		deleted := 0
		var skipped []uint
		for _, id := range input.IDs {
			if err := DeleteOrderByID(db, id); err != nil {
				skipped = append(skipped, id)
				continue
			}
			deleted++
		}

		c.JSON(http.StatusOK, gin.H{
			"deleted":     deleted,
			"skipped":     len(skipped),
			"skipped_ids": skipped,
		})
	}
}
