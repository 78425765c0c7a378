package routes

import (
	"fleetops_driver_service/internal/controllers"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(api *gin.RouterGroup, dc *controllers.DriverController) {
	drivers := api.Group("/drivers")
	{
		drivers.POST("", dc.CreateDriver)
		drivers.GET("/list", dc.ListDrivers)
		drivers.GET("/:id", dc.GetDriver)
		drivers.PUT("/:id", dc.UpdateDriver)
		drivers.DELETE("/:id", dc.DeleteDriver)
	}
}
