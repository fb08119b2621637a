package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5
)

// RateLimiter throttles a route per client IP through Redis. With no Redis
// client (session store fell back to memory) requests pass through.
func RateLimiter(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis trouble should not lock users out of login.
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, rateLimitPeriod)
		}
		if count > rateLimitCount {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
