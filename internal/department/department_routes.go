package department

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	{
		departments.GET("", handler.GetAll)
		departments.POST("", handler.Create)
		departments.PUT("/:name", handler.Update)
	}
}
