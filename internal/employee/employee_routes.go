package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes keeps the screen paths of the original HR tool.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/", handler.Roster)
	r.GET("/hr_dashboard", handler.Roster)
	r.GET("/add_employee", handler.AddEmployeeForm)
	r.POST("/add_employee", handler.Create)
	r.GET("/edit_employee/:employee_no", handler.GetByNo)
	r.POST("/edit_employee/:employee_no", handler.Update)
	r.POST("/fire_employee/:employee_no", handler.Deactivate)
}
