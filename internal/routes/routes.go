package routes

import (
	"io"

	"github.com/gin-gonic/gin"

	"fleetops_driver_service/internal/controllers"
	"fleetops_driver_service/internal/middleware"
	"fleetops_driver_service/internal/validation"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Drivers     *controllers.DriverController
	Health      *controllers.HealthController
	CORSOrigins []string
	AccessLog   io.Writer // nil disables the access log
}

func SetupRouter(d Deps) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(d.CORSOrigins))
	if d.AccessLog != nil {
		r.Use(middleware.AccessLog(d.AccessLog))
	}

	if d.Health != nil {
		r.GET("/healthz", d.Health.Health)
	}

	api := r.Group("/api")
	DriverRoutes(api, d.Drivers)

	return r
}
