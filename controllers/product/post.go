package productcontroller

import (
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
	"github.com/sank4512/plutocollection.in/storage"
)

const imageSubdir = "products"

// saveGalleryUploads stores every file from the repeatable "images" field and
// returns the recorded relative paths. A file that fails to store is skipped
// with a log line rather than aborting the request.
func saveGalleryUploads(c *gin.Context, files []*multipart.FileHeader) []string {
	var paths []string
	for _, file := range files {
		path, err := storage.SaveUpload(c, file, imageSubdir)
		if err != nil {
			log.Printf("⚠️ Failed to store product image %s: %v", file.Filename, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// CreateProduct creates a product from multipart form data, including the
// comma-delimited variant lists and zero or more gallery images.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		category := c.PostForm("category")
		if name == "" || description == "" || priceStr == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, description, price, and category are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		stock := 0
		if stockStr := c.PostForm("stock"); stockStr != "" {
			if stock, err = strconv.Atoi(stockStr); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		colors := models.ParseOptionList(c.PostForm("colors"))
		sizes := models.ParseOptionList(c.PostForm("sizes"))

		// Gallery uploads, stored before the transaction. An orphaned file
		// on rollback is tolerated; it is never referenced.
		var imagePaths []string
		if form, err := c.MultipartForm(); err == nil && form != nil {
			imagePaths = saveGalleryUploads(c, form.File["images"])
		}

		imageURL := c.PostForm("image_url")
		if imageURL == "" && len(imagePaths) > 0 {
			imageURL = "/uploads/" + imagePaths[0]
		}

		product := models.Product{
			Name:        name,
			Description: description,
			Price:       price,
			Category:    category,
			Subcategory: c.PostForm("subcategory"),
			Stock:       stock,
			Colors:      models.JoinOptionList(colors),
			Sizes:       models.JoinOptionList(sizes),
			ImageURL:    imageURL,
		}
		for _, path := range imagePaths {
			product.Images = append(product.Images, models.ProductImage{Path: path})
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&product).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
