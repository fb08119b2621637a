package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartControllers "github.com/sank4512/plutocollection.in/controllers/cart"
	"github.com/sank4512/plutocollection.in/middleware"
	"github.com/sank4512/plutocollection.in/models"
	"github.com/sank4512/plutocollection.in/session"
	"github.com/sank4512/plutocollection.in/storage"
)

// MinimumAdvance is the smallest advance payment accepted at checkout, in
// currency units. Anything lower is clamped up to it.
const MinimumAdvance = 100.0

// ErrEmptyCart rejects checkout when no cart entry resolves to a product
// still in the catalog.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutInput carries the checkout form. PaymentScreenshot is the stored
// relative path, saved by the handler before finalization.
type CheckoutInput struct {
	Address           string
	Phone             string
	UTRNumber         string
	AdvancePaid       float64
	PaymentScreenshot string
}

// GenerateOrderNumber builds the human-readable unique order reference:
// ORD-<8-digit date>-<8 uppercase hex>. Collisions are treated as
// negligible; there is no retry loop.
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD-" + time.Now().Format("20060102") + "-" + suffix
}

// FinalizeOrder turns a cart snapshot into one Order plus its OrderItems in
// a single transaction. Totals are recomputed from current catalog prices
// and each line snapshots the unit price it was sold at. Entries whose
// product left the catalog are skipped, matching the cart view. The advance
// is clamped to MinimumAdvance; it is deliberately not capped at the total,
// so remaining can go negative. Either everything commits or nothing does.
func FinalizeOrder(db *gorm.DB, userID uint, cart models.Cart, input CheckoutInput) (*models.Order, error) {
	var (
		items []models.OrderItem
		total float64
	)
	for key, entry := range cart {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		total += product.Price * float64(entry.Quantity)
		items = append(items, models.OrderItem{
			ProductID:     product.ID,
			Quantity:      entry.Quantity,
			Price:         product.Price,
			SelectedColor: entry.Color,
			SelectedSize:  entry.Size,
		})
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	advance := input.AdvancePaid
	if advance < MinimumAdvance {
		advance = MinimumAdvance
	}

	order := models.Order{
		OrderNumber:       GenerateOrderNumber(),
		UserID:            userID,
		TotalAmount:       total,
		AdvancePaid:       advance,
		RemainingAmount:   total - advance,
		Status:            models.OrderStatusPending,
		ShippingAddress:   input.Address,
		Phone:             input.Phone,
		UTRNumber:         input.UTRNumber,
		PaymentScreenshot: input.PaymentScreenshot,
		Items:             items,
		CreatedAt:         time.Now(),
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return nil, err
	}
	return &order, nil
}

// Checkout finalizes the session cart for the authenticated user.
// POST /checkout with form fields address, phone, utr_number, advance_paid
// and optional payment_screenshot file.
func Checkout(store session.CartStore, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to checkout", "redirect": "/auth/login"})
			return
		}

		sid := middleware.SessionID(c)
		cart, err := store.Cart(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if cart.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty", "redirect": "/cart"})
			return
		}

		address := c.PostForm("address")
		phone := c.PostForm("phone")
		if address == "" || phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "address and phone are required"})
			return
		}

		advance := MinimumAdvance
		if advStr := c.PostForm("advance_paid"); advStr != "" {
			advance, err = strconv.ParseFloat(advStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid advance_paid"})
				return
			}
		}

		// The screenshot lands on disk before the transaction. If the order
		// fails afterwards the file is orphaned, which is acceptable; it is
		// never referenced.
		screenshotPath := ""
		if file, err := c.FormFile("payment_screenshot"); err == nil && file != nil {
			if screenshotPath, err = storage.SaveUpload(c, file, "payments"); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment screenshot"})
				return
			}
		}

		order, err := FinalizeOrder(db, user.ID, cart, CheckoutInput{
			Address:           address,
			Phone:             phone,
			UTRNumber:         c.PostForm("utr_number"),
			AdvancePaid:       advance,
			PaymentScreenshot: screenshotPath,
		})
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty", "redirect": "/cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// The order is committed; only now does the cart go away.
		if err := store.ClearCart(c.Request.Context(), sid); err != nil {
			// The next add starts a fresh cart anyway.
			c.Error(err)
		}

		BroadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Order placed successfully! Order number: " + order.OrderNumber,
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
			"advance_paid": order.AdvancePaid,
			"remaining":    order.RemainingAmount,
			"redirect":     "/orders/" + strconv.FormatUint(uint64(order.ID), 10),
		})
	}
}

// Preview mirrors compute-totals for the checkout page.
// GET /checkout
func Preview(store session.CartStore, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := store.Cart(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if cart.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty", "redirect": "/cart"})
			return
		}

		lines, total, err := cartControllers.Totals(db, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cart totals"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": lines, "total": total, "minimum_advance": MinimumAdvance})
	}
}
