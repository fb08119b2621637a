package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	userControllers "github.com/sank4512/plutocollection.in/controllers/user"
	"github.com/sank4512/plutocollection.in/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimiter(redisClient), userControllers.Register(db))
		authGroup.POST("/login", middleware.RateLimiter(redisClient), userControllers.Login(db))
	}
}
