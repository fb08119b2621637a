package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
	"github.com/sank4512/plutocollection.in/storage"
)

// ErrProductReferenced blocks deletion of a product that existing order
// lines still point at.
var ErrProductReferenced = errors.New("product is referenced by existing orders")

// DeleteProductByID removes a product and its gallery. The store enforces no
// referential integrity from order items, so the check is explicit here: one
// referencing OrderItem refuses the whole deletion. Gallery files are removed
// from disk best-effort after the rows are gone.
func DeleteProductByID(db *gorm.DB, id uint) error {
	var product models.Product
	if err := db.Preload("Images").First(&product, id).Error; err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrProductReferenced
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		return err
	}

	for _, img := range product.Images {
		storage.Remove(img.Path)
	}
	return nil
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		switch err := DeleteProductByID(db, uint(id)); {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, ErrProductReferenced):
			c.JSON(http.StatusConflict, gin.H{"error": "Product is referenced by existing orders and cannot be deleted"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
	}
}

type BulkDeleteInput struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// BulkDeleteProducts deletes a batch of products, applying the per-item
// referential check. A blocked or missing item is skipped, never aborting the
// rest of the batch; the response reports both counts.
func BulkDeleteProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BulkDeleteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		deleted := 0
		var skipped []uint
		for _, id := range input.IDs {
			if err := DeleteProductByID(db, id); err != nil {
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
