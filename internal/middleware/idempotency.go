package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards mutating POSTs (payroll runs, project creation) against
// double submits. A short-lived redis lock per Idempotency-Key rejects the
// second request while the first is still in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("idemp:%s:%s:lock", c.FullPath(), idempKey)

		// Expiry keeps a crashed request from holding the lock forever.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "This request is already being processed",
			})
			return
		}

		c.Next()

		// A failed request releases the lock so the caller can retry with
		// the same key; a successful one holds it until the TTL lapses.
		if c.Writer.Status() >= http.StatusBadRequest {
			rdb.Del(c.Request.Context(), lockKey)
		}
	}
}
