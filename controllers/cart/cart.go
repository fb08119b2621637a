package cartControllers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/middleware"
	"github.com/sank4512/plutocollection.in/models"
	"github.com/sank4512/plutocollection.in/session"
)

// Line is one cart row priced at the product's current price.
type Line struct {
	ProductID     uint    `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	ImageURL      string  `json:"image_url"`
	SelectedColor string  `json:"selected_color"`
	SelectedSize  string  `json:"selected_size"`
	Subtotal      float64 `json:"subtotal"`
}

// Totals resolves every cart entry against the catalog and sums the lines.
// Prices are the catalog's current ones, not add-time snapshots. An entry
// whose product has since been deleted stays in the cart but contributes
// nothing and does not appear in the breakdown.
func Totals(db *gorm.DB, cart models.Cart) ([]Line, float64, error) {
	lines := make([]Line, 0, len(cart))
	var total float64

	for key, entry := range cart {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, 0, err
		}
		subtotal := product.Price * float64(entry.Quantity)
		lines = append(lines, Line{
			ProductID:     product.ID,
			Name:          product.Name,
			Price:         product.Price,
			Quantity:      entry.Quantity,
			ImageURL:      product.ImageURL,
			SelectedColor: entry.Color,
			SelectedSize:  entry.Size,
			Subtotal:      subtotal,
		})
		total += subtotal
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines, total, nil
}

// GET /cart
func GetCart(store session.CartStore, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := store.Cart(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		lines, total, err := Totals(db, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cart totals"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
	}
}

// AddToCart puts a product into the session cart.
// POST /cart/add/:product_id with form fields quantity, color, size and the
// optional next=checkout redirect request.
func AddToCart(store session.CartStore, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found", "redirect": "/"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		quantity := 1
		if qtyStr := c.PostForm("quantity"); qtyStr != "" {
			quantity, err = strconv.Atoi(qtyStr)
			if err != nil || quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		color := c.PostForm("color")
		size := c.PostForm("size")

		// A product that declares variants needs a selection. This is an
		// informational bounce back to the product page, not a hard error.
		productPage := fmt.Sprintf("/products/%d", product.ID)
		if len(product.ColorList()) > 0 && color == "" {
			c.JSON(http.StatusOK, gin.H{"message": "Please select a color", "redirect": productPage})
			return
		}
		if len(product.SizeList()) > 0 && size == "" {
			c.JSON(http.StatusOK, gin.H{"message": "Please select a size", "redirect": productPage})
			return
		}

		sid := middleware.SessionID(c)
		cart, err := store.Cart(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.Add(product.ID, quantity, color, size)
		if err := store.SaveCart(c.Request.Context(), sid, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		redirect := "/cart"
		if next := c.DefaultPostForm("next", c.Query("next")); next == "checkout" {
			redirect = "/checkout"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  product.Name + " added to cart!",
			"quantity": cart.Quantity(product.ID),
			"redirect": redirect,
		})
	}
}

// QuickAdd is the one-click path for variant-less products: quantity 1, no
// selections. Products with variants bounce to their page for a proper add.
// POST /cart/quick-add/:product_id
func QuickAdd(store session.CartStore, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found", "redirect": "/"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		if product.HasVariants() {
			c.JSON(http.StatusOK, gin.H{
				"message":  "Please choose your options first",
				"redirect": fmt.Sprintf("/products/%d", product.ID),
			})
			return
		}

		sid := middleware.SessionID(c)
		cart, err := store.Cart(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.Add(product.ID, 1, "", "")
		if err := store.SaveCart(c.Request.Context(), sid, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		redirect := "/cart"
		if c.Query("next") == "checkout" {
			redirect = "/checkout"
		}
		c.JSON(http.StatusOK, gin.H{"message": product.Name + " added to cart!", "redirect": redirect})
	}
}

// RemoveFromCart deletes a product's entry. Removing something that is not
// there is fine; the cart view is the answer either way.
// DELETE /cart/:product_id
func RemoveFromCart(store session.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		sid := middleware.SessionID(c)
		cart, err := store.Cart(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.Remove(uint(productID))
		if err := store.SaveCart(c.Request.Context(), sid, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "redirect": "/cart"})
	}
}

// DELETE /cart
func ClearCart(store session.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.ClearCart(c.Request.Context(), middleware.SessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
