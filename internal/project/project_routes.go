package project

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

	r.GET("/pm_dashboard", handler.Dashboard)
	r.GET("/project/:project_no", handler.Detail)
	r.GET("/create_project", handler.CreateForm)

	// Retried form posts must not mint a second project, so the create
	// endpoint sits behind the idempotency guard when redis is up.
	if redisClient != nil {
		r.POST("/create_project", middleware.Idempotency(redisClient), handler.Create)
	} else {
		r.POST("/create_project", handler.Create)
	}

	r.POST("/complete_project/:project_no", handler.Complete)
	r.POST("/add_milestone/:project_no", handler.AddMilestone)
	r.POST("/add_team_member/:project_no", handler.AddTeamMember)
}
