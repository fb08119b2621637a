package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/middleware"
	"github.com/sank4512/plutocollection.in/session"
)

// SetupRoutes is the single entry-point that wires up the Auth, Store, User
// and Admin route groups. The redis client may be nil (rate limiting then
// disables itself).
func SetupRoutes(r *gin.Engine, db *gorm.DB, store session.CartStore, redisClient *redis.Client) {
	// Every request carries a cart session id.
	r.Use(middleware.CartSession())

	// 1️⃣ Public auth routes (rate-limited)
	SetupAuthRoutes(r, db, redisClient)

	// 2️⃣ Storefront: catalog, cart, checkout
	SetupStoreRoutes(r, db, store)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db, store)

	// 4️⃣ Admin routes (JWT + admin flag)
	SetupAdminRoutes(r, db)
}
