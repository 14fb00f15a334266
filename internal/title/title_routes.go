package title

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	titles := r.Group("/titles")
	{
		titles.GET("", handler.GetAll)
		titles.POST("", handler.Create)
		titles.PUT("/:name", handler.Update)
	}
}
