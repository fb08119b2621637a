package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/sank4512/plutocollection.in/controllers/cart"
	orderControllers "github.com/sank4512/plutocollection.in/controllers/order"
	productControllers "github.com/sank4512/plutocollection.in/controllers/product"
	"github.com/sank4512/plutocollection.in/session"
)

// SetupStoreRoutes registers the public storefront: catalog browsing and the
// session cart. No login is needed to browse or build a cart.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, store session.CartStore) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(store, db))
		cartGroup.POST("/add/:product_id", cartControllers.AddToCart(store, db))
		cartGroup.POST("/quick-add/:product_id", cartControllers.QuickAdd(store, db))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(store))
		cartGroup.DELETE("", cartControllers.ClearCart(store))
	}

	// Checkout preview shows totals before login; placing the order is on
	// the authenticated routes.
	r.GET("/checkout", orderControllers.Preview(store, db))
}
