package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Позиции охранников
	guards := protected.Group("/guards")
	{
		guards.POST("/locations", h.reportLocation)
		guards.GET("/:id/location", h.getLocation)
		guards.GET("/:id/zones", h.guardZones)
		guards.DELETE("/:id", h.signOff)
	}

	// Подбор охранников
	protected.POST("/dispatch/candidates", h.findCandidates)

	// Управление зонами (CRUD)
	geofences := protected.Group("/geofences")
	{
		geofences.POST("", h.createGeofence)
		geofences.GET("", h.listGeofences)
		geofences.POST("/cleanup", h.cleanupGeofences)
		geofences.GET("/:id", h.getGeofence)
		geofences.PUT("/:id", h.updateGeofence)
		geofences.DELETE("/:id", h.deleteGeofence)
		geofences.GET("/:id/overlaps", h.geofenceOverlaps)
		geofences.GET("/:id/guards/:guard_id", h.checkContainment)
	}

	protected.GET("/system/stats", h.getStats)
}
