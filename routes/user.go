package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/sank4512/plutocollection.in/controllers/order"
	userControllers "github.com/sank4512/plutocollection.in/controllers/user"
	"github.com/sank4512/plutocollection.in/middleware"
	"github.com/sank4512/plutocollection.in/session"
)

// SetupUserRoutes registers the JWT-protected endpoints: profile, checkout
// and order history.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, store session.CartStore) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.RequireAuth(db))
	{
		userGroup.GET("/user", userControllers.Me(db))

		userGroup.POST("/checkout", orderControllers.Checkout(store, db))

		userGroup.GET("/orders", orderControllers.MyOrders(db))
		userGroup.GET("/orders/:orderID", orderControllers.GetOrder(db))
	}
}
