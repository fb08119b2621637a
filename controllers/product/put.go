package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

// UpdateProduct edits an existing product by ID. Accepts the same multipart
// fields as CreateProduct; empty fields leave the stored value alone, and any
// uploaded images are appended to the gallery. A malformed numeric field
// fails the whole request; nothing is written.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("category"); v != "" {
			product.Category = v
		}
		if v := c.PostForm("subcategory"); v != "" {
			product.Subcategory = v
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
		if v := c.PostForm("colors"); v != "" {
			product.Colors = models.JoinOptionList(models.ParseOptionList(v))
		}
		if v := c.PostForm("sizes"); v != "" {
			product.Sizes = models.JoinOptionList(models.ParseOptionList(v))
		}
		if v := c.PostForm("image_url"); v != "" {
			product.ImageURL = v
		}

		var newImages []models.ProductImage
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, path := range saveGalleryUploads(c, form.File["images"]) {
				newImages = append(newImages, models.ProductImage{ProductID: product.ID, Path: path})
			}
		}
		if product.ImageURL == "" && len(newImages) > 0 {
			product.ImageURL = "/uploads/" + newImages[0].Path
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if len(newImages) > 0 {
				if err := tx.Create(&newImages).Error; err != nil {
					return err
				}
			}
			return tx.Omit("Images").Save(&product).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
