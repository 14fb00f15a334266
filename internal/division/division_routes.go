package division

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	divisions := r.Group("/divisions")
	{
		divisions.GET("", handler.GetAll)
		divisions.POST("", handler.Create)
		divisions.PUT("/:name", handler.Update)
	}
}
