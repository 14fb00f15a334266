package payroll

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	// A double-submitted payroll run would write two ledger rows, so the
	// run endpoint sits behind the idempotency guard when redis is up.
	if redisClient != nil {
		r.POST("/payroll/:employee_no", middleware.Idempotency(redisClient), handler.Run)
	} else {
		r.POST("/payroll/:employee_no", handler.Run)
	}
	r.GET("/payroll_history", handler.Ledger)
}
