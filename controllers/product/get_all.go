package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

var sortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"stock":      true,
}

// GetProducts lists the catalog with optional search, category and price
// range filters.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		subcategory := c.Query("subcategory")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{}).Preload("Images")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name LIKE ? OR description LIKE ?", likePattern, likePattern)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if subcategory != "" {
			query = query.Where("subcategory = ?", subcategory)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
