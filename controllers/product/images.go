package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
	"github.com/sank4512/plutocollection.in/storage"
)

// DeleteProductImage removes one gallery image. The image must belong to the
// product named in the path; an id swapped in from another product's gallery
// is rejected instead of silently deleted.
// DELETE /admin/products/:id/images/:image_id
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		imageID, err := strconv.ParseUint(c.Param("image_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
			return
		}

		var image models.ProductImage
		if err := db.First(&image, imageID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query image"})
			return
		}
		if image.ProductID != uint(productID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image does not belong to this product"})
			return
		}

		// Disk first, best-effort; then the row.
		storage.Remove(image.Path)
		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image record"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
	}
}

// CleanupProductImages drops a product's whole gallery: every file
// best-effort, every row in one statement.
// DELETE /admin/products/:id/images
func CleanupProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query product"})
			return
		}

		for _, img := range product.Images {
			storage.Remove(img.Path)
		}
		if err := db.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image records"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Gallery cleaned up", "removed": len(product.Images)})
	}
}
