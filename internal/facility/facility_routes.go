package facility

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/buildings", handler.GetBuildings)
	r.POST("/buildings", handler.CreateBuilding)
	r.GET("/rooms", handler.GetRooms)
	r.POST("/rooms", handler.CreateRoom)
	r.POST("/assign_employee_room", handler.AssignEmployeeRoom)
	r.POST("/assign_department_room", handler.AssignDepartmentRoom)
}
