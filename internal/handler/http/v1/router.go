package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all API v1 routes on the given group. Everything
// except the health check sits behind the API key middleware.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	hotspots := protected.Group("/hotspots")
	{
		hotspots.POST("", h.createHotspot)
		hotspots.POST("/detailed", h.createDetailedHotspot)
		hotspots.GET("", h.listHotspots)
		hotspots.GET("/active", h.listActiveHotspots)
		hotspots.GET("/status/:status", h.listHotspotsByStatus)
		hotspots.GET("/region/:regionId", h.listHotspotsByRegion)
		hotspots.GET("/proximity", h.listHotspotsByProximity)
		hotspots.GET("/intensity", h.listHotspotsByMinIntensity)
		hotspots.GET("/detected-after", h.listHotspotsDetectedAfter)
		hotspots.GET("/:id", h.getHotspot)
		hotspots.PATCH("/:id/status", h.updateHotspotStatus)
		hotspots.PATCH("/:id", h.updateHotspotDetails)
		hotspots.DELETE("/:id", h.deleteHotspot)
	}

	regions := protected.Group("/regions")
	{
		regions.POST("", h.createRegion)
		regions.GET("", h.listRegions)
		regions.GET("/search", h.searchRegions)
		regions.GET("/type/:type", h.listRegionsByType)
		regions.GET("/risk", h.listRegionsByMinRisk)
		regions.GET("/by-active-hotspots", h.listRegionsByActiveHotspots)
		regions.GET("/without-active-hotspots", h.listRegionsWithoutActiveHotspots)
		regions.GET("/:id", h.getRegion)
		regions.PUT("/:id", h.updateRegion)
		regions.POST("/:id/recalculate-risk", h.recalculateRegionRisk)
		regions.DELETE("/:id", h.deleteRegion)
	}

	actions := protected.Group("/actions")
	{
		actions.POST("/ground", h.startGroundCombat)
		actions.POST("/aerial", h.startAerialCombat)
		actions.POST("/monitoring", h.startMonitoring)
		actions.POST("/custom", h.startCustomAction)
		actions.GET("", h.listActions)
		actions.GET("/in-progress", h.listActionsInProgress)
		actions.GET("/hotspot/:hotspotId", h.listActionsByHotspot)
		actions.GET("/region/:regionId", h.listActionsByRegion)
		actions.GET("/region/:regionId/count", h.countActionsInProgressByRegion)
		actions.GET("/type", h.listActionsByType)
		actions.GET("/concluded", h.listActionsConcludedBetween)
		actions.GET("/started-after", h.listActionsStartedAfter)
		actions.GET("/:id", h.getAction)
		actions.POST("/:id/conclude", h.concludeAction)
		actions.PATCH("/:id", h.updateAction)
		actions.DELETE("/:id", h.deleteAction)
	}
}
