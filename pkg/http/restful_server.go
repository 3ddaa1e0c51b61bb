package http

import (
	"energialab.xyz/energy-monitor-service/pkg/energy"
	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the caller identity resolved by the external
// identity provider in front of this service.
const HeaderUserID = "X-User-ID"

type RestfulServer struct {
	Server *gin.Engine
	Energy *energy.Energy
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	environments := rs.Server.Group("/environments")
	{
		environments.POST("", rs.CreateEnvironment)
		environments.GET("", rs.ListEnvironments)
		environments.POST("/:environment_id/devices", rs.CreateDevice)
		environments.GET("/:environment_id/devices", rs.ListDevices)
	}

	measurements := rs.Server.Group("/measurements")
	{
		measurements.GET("/statistics", rs.GetStatistics)
		measurements.GET("/consumption", rs.GetConsumption)
		measurements.GET("/hourly", rs.GetHourlySeries)
	}

	quality := rs.Server.Group("/power-quality")
	{
		quality.GET("/analyze", rs.AnalyzePowerQuality)
		quality.GET("", rs.ListPowerQualityHistory)
	}
}
