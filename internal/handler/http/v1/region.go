package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tmarques/wildfire_tracking_system/internal/service"
)

// @Summary Register a region
// @Description Register a monitored region. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param region body CreateRegionRequest true "Region registration request"
// @Success 201 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions [post]
func (h *Handler) createRegion(c *gin.Context) {
	var input CreateRegionRequest
	log := h.logger.WithField("method", "createRegion")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := h.regionService.Register(c.Request.Context(), DTOToRegionModel(input))
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToRegionResponse(region))
}

// @Summary List regions
// @Description Get all monitored regions. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RegionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	log := h.logger.WithField("method", "listRegions")

	regions, err := h.regionService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary Search regions by name
// @Description Get regions whose name contains the given fragment, case-insensitive. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param name query string true "Name fragment"
// @Success 200 {array} RegionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/search [get]
func (h *Handler) searchRegions(c *gin.Context) {
	log := h.logger.WithField("method", "searchRegions")

	regions, err := h.regionService.SearchByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary List regions by type
// @Description Get regions of the given type, case-insensitive exact match. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Region type"
// @Success 200 {array} RegionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/type/{type} [get]
func (h *Handler) listRegionsByType(c *gin.Context) {
	log := h.logger.WithField("method", "listRegionsByType")

	regions, err := h.regionService.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary List regions at or above a risk level
// @Description Get regions with risk level at or above the threshold, riskiest first. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param min query int true "Risk level threshold (1-5)"
// @Success 200 {array} RegionResponse
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/risk [get]
func (h *Handler) listRegionsByMinRisk(c *gin.Context) {
	log := h.logger.WithField("method", "listRegionsByMinRisk")

	min, err := strconv.Atoi(c.Query("min"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk level threshold"})
		return
	}

	regions, err := h.regionService.ListByMinRiskLevel(c.Request.Context(), min)
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary List regions by active hotspot count
// @Description Get regions with at least one active hotspot, sorted descending by their active hotspot count. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RegionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/by-active-hotspots [get]
func (h *Handler) listRegionsByActiveHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listRegionsByActiveHotspots")

	regions, err := h.regionService.ListOrderedByActiveHotspots(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary List regions without active hotspots
// @Description Get regions owning no active hotspot, including regions with no hotspots at all. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RegionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/without-active-hotspots [get]
func (h *Handler) listRegionsWithoutActiveHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listRegionsWithoutActiveHotspots")

	regions, err := h.regionService.ListWithoutActiveHotspots(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary Get region by ID
// @Description Get a single region by its ID. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id} [get]
func (h *Handler) getRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "getRegion").WithField("id", id)

	region, err := h.regionService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelToRegionResponse(region))
}

// @Summary Update a region
// @Description Replace the name, type, area and description of a region. The risk level is not touched. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Param region body UpdateRegionRequest true "Region update request"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid region ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id} [put]
func (h *Handler) updateRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "updateRegion").WithField("id", id)

	var input UpdateRegionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := h.regionService.Update(c.Request.Context(), id, service.RegionUpdate{
		Name:        input.Name,
		Type:        input.Type,
		AreaM2:      input.AreaM2,
		Description: input.Description,
	})
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelToRegionResponse(region))
}

// @Summary Recalculate region risk
// @Description Recompute the region risk level from its current count of active hotspots. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id}/recalculate-risk [post]
func (h *Handler) recalculateRegionRisk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "recalculateRegionRisk").WithField("id", id)

	region, err := h.regionService.RecalculateRisk(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	c.JSON(http.StatusOK, ModelToRegionResponse(region))
}

// @Summary Delete a region
// @Description Delete a region together with its hotspots and their combat actions. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id} [delete]
func (h *Handler) deleteRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "deleteRegion").WithField("id", id)

	removed, err := h.regionService.Remove(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "region not found")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "region not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
