package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API v1 routes. The health endpoint is
// registered before the middleware so liveness checks don't need an API key.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	api.GET("/system/health", h.healthCheck)

	api.Use(middleware...)

	cameras := api.Group("/cameras")
	{
		cameras.GET("", h.listCameras)
		cameras.GET("/all", h.listAllCameras)
		cameras.POST("/locate", h.locate)
		cameras.POST("/relocate", h.relocate)
		cameras.GET("/:id", h.getCamera)
		cameras.POST("/:id/privacy", h.togglePrivacy)
	}

	requests := api.Group("/requests")
	{
		requests.POST("", h.submitRequest)
		requests.GET("", h.listRequests)
		requests.GET("/stats", h.getRequestStats)
		requests.GET("/:id", h.getRequest)
		requests.POST("/:id/approve", h.approveRequest)
		requests.POST("/:id/reject", h.rejectRequest)
		requests.POST("/:id/analyze", h.analyzeRequest)
	}

	videos := api.Group("/videos")
	{
		videos.GET("/:id", h.getVideo)
		videos.DELETE("/:id", h.deleteVideo)
	}

	api.POST("/overlay/map", h.mapOverlay)

	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getIncidentStats)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	api.POST("/location/check", h.checkLocation)

	alerts := api.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.listAlerts)
	}
}
