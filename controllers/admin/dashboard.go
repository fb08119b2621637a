package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

// Dashboard summarizes the shop for the back office landing page: entity
// counts plus the five most recent orders.
// GET /admin/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			totalProducts int64
			totalOrders   int64
			totalUsers    int64
		)
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			log.Println("❌ Failed to count products:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			log.Println("❌ Failed to count orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			log.Println("❌ Failed to count users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var recentOrders []models.Order
		if err := db.Order("created_at DESC").Limit(5).Find(&recentOrders).Error; err != nil {
			log.Println("❌ Failed to fetch recent orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products": totalProducts,
			"total_orders":   totalOrders,
			"total_users":    totalUsers,
			"recent_orders":  recentOrders,
		})
	}
}
