package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tmarques/wildfire_tracking_system/internal/models"
)

// @Summary Register a hotspot
// @Description Register a newly detected fire hotspot. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hotspot body CreateHotspotRequest true "Hotspot registration request"
// @Success 201 {object} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots [post]
func (h *Handler) createHotspot(c *gin.Context) {
	var input CreateHotspotRequest
	log := h.logger.WithField("method", "createHotspot")

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

	hotspot, err := h.hotspotService.Register(c.Request.Context(), input.Latitude, input.Longitude, input.RegionID)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToHotspotResponse(hotspot))
}

// @Summary Register a hotspot with measurements
// @Description Register a fire hotspot with intensity, estimated area and description. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hotspot body CreateDetailedHotspotRequest true "Detailed hotspot registration request"
// @Success 201 {object} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/detailed [post]
func (h *Handler) createDetailedHotspot(c *gin.Context) {
	var input CreateDetailedHotspotRequest
	log := h.logger.WithField("method", "createDetailedHotspot")

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

	hotspot, err := h.hotspotService.RegisterDetailed(c.Request.Context(), input.Latitude, input.Longitude, input.Intensity, input.EstimatedAreaM2, input.Description, input.RegionID)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToHotspotResponse(hotspot))
}

// @Summary List hotspots
// @Description Get all registered hotspots. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} HotspotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspots")

	hotspots, err := h.hotspotService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary List active hotspots
// @Description Get hotspots that are neither resolved nor false alarms. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} HotspotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/active [get]
func (h *Handler) listActiveHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveHotspots")

	hotspots, err := h.hotspotService.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary List hotspots by status
// @Description Get hotspots filtered by lifecycle status. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status path string true "Hotspot status" Enums(NEW, CONFIRMED, UNDER_EVALUATION, IN_COMBAT, MONITORING, CONTROLLED, RESOLVED, FALSE_ALARM)
// @Success 200 {array} HotspotResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/status/{status} [get]
func (h *Handler) listHotspotsByStatus(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspotsByStatus")

	status, err := models.ParseHotspotStatus(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotspots, err := h.hotspotService.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary List hotspots by region
// @Description Get hotspots attached to a region. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param regionId path string true "Region ID"
// @Success 200 {array} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/region/{regionId} [get]
func (h *Handler) listHotspotsByRegion(c *gin.Context) {
	regionID, err := uuid.Parse(c.Param("regionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "listHotspotsByRegion").WithField("region_id", regionID)

	hotspots, err := h.hotspotService.ListByRegion(c.Request.Context(), regionID)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary List hotspots near a point
// @Description Get hotspots inside a bounding box of the given radius (in degrees) around a point. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param radius query number true "Radius in degrees"
// @Success 200 {array} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/proximity [get]
func (h *Handler) listHotspotsByProximity(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspotsByProximity")

	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}
	radius, err := strconv.ParseFloat(c.Query("radius"), 64)
	if err != nil || radius < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	hotspots, err := h.hotspotService.ListByProximity(c.Request.Context(), latitude, longitude, radius)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary List hotspots above an intensity
// @Description Get hotspots with intensity strictly greater than the threshold, most intense first. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param min query number true "Intensity threshold"
// @Success 200 {array} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/intensity [get]
func (h *Handler) listHotspotsByMinIntensity(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspotsByMinIntensity")

	min, err := strconv.ParseFloat(c.Query("min"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intensity threshold"})
		return
	}

	hotspots, err := h.hotspotService.ListByMinIntensity(c.Request.Context(), min)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary List hotspots detected after a timestamp
// @Description Get hotspots detected strictly after the given RFC 3339 timestamp. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param since query string true "RFC 3339 timestamp"
// @Success 200 {array} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid timestamp"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/detected-after [get]
func (h *Handler) listHotspotsDetectedAfter(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspotsDetectedAfter")

	since, err := time.Parse(time.RFC3339, c.Query("since"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since timestamp"})
		return
	}

	hotspots, err := h.hotspotService.ListDetectedAfter(c.Request.Context(), since)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary Get hotspot by ID
// @Description Get a single hotspot by its ID. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hotspot ID"
// @Success 200 {object} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid hotspot ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/{id} [get]
func (h *Handler) getHotspot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotspot ID"})
		return
	}
	log := h.logger.WithField("method", "getHotspot").WithField("id", id)

	hotspot, err := h.hotspotService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelToHotspotResponse(hotspot))
}

// @Summary Update hotspot status
// @Description Transition a hotspot to a new lifecycle status. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hotspot ID"
// @Param status body UpdateHotspotStatusRequest true "Status update request"
// @Success 200 {object} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid hotspot ID, request body or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/{id}/status [patch]
func (h *Handler) updateHotspotStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotspot ID"})
		return
	}
	log := h.logger.WithField("method", "updateHotspotStatus").WithField("id", id)

	var input UpdateHotspotStatusRequest
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

	status, err := models.ParseHotspotStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotspot, err := h.hotspotService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelToHotspotResponse(hotspot))
}

// @Summary Update hotspot details
// @Description Partially update the intensity, estimated area and description of a hotspot. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hotspot ID"
// @Param details body UpdateHotspotDetailsRequest true "Details update request"
// @Success 200 {object} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid hotspot ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/{id} [patch]
func (h *Handler) updateHotspotDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotspot ID"})
		return
	}
	log := h.logger.WithField("method", "updateHotspotDetails").WithField("id", id)

	var input UpdateHotspotDetailsRequest
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

	hotspot, err := h.hotspotService.UpdateDetails(c.Request.Context(), id, input.Intensity, input.EstimatedAreaM2, input.Description)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusOK, ModelToHotspotResponse(hotspot))
}

// @Summary Delete a hotspot
// @Description Delete a hotspot by its ID. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hotspot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid hotspot ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/{id} [delete]
func (h *Handler) deleteHotspot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotspot ID"})
		return
	}
	log := h.logger.WithField("method", "deleteHotspot").WithField("id", id)

	removed, err := h.hotspotService.Remove(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "hotspot not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
