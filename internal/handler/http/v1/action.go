package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tmarques/wildfire_tracking_system/internal/models"
)

// @Summary Start a ground combat action
// @Description Start a ground combat action on a hotspot and move it to IN_COMBAT. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param action body StartActionRequest true "Action start request"
// @Success 201 {object} ActionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/ground [post]
func (h *Handler) startGroundCombat(c *gin.Context) {
	h.startAction(c, "startGroundCombat", h.actionService.StartGroundCombat)
}

// @Summary Start an aerial combat action
// @Description Start an aerial combat action on a hotspot and move it to IN_COMBAT. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param action body StartActionRequest true "Action start request"
// @Success 201 {object} ActionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/aerial [post]
func (h *Handler) startAerialCombat(c *gin.Context) {
	h.startAction(c, "startAerialCombat", h.actionService.StartAerialCombat)
}

// @Summary Start a monitoring action
// @Description Start a monitoring action on a hotspot and move it to MONITORING. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param action body StartActionRequest true "Action start request"
// @Success 201 {object} ActionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/monitoring [post]
func (h *Handler) startMonitoring(c *gin.Context) {
	h.startAction(c, "startMonitoring", h.actionService.StartMonitoring)
}

func (h *Handler) startAction(c *gin.Context, method string, start func(ctx context.Context, hotspotID uuid.UUID, description, responsible string) (*models.CombatAction, error)) {
	var input StartActionRequest
	log := h.logger.WithField("method", method)

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

	action, err := start(c.Request.Context(), input.HotspotID, input.Description, input.Responsible)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToActionResponse(action))
}

// @Summary Start a custom combat action
// @Description Start a combat action with a caller-defined type, resource list and target hotspot status. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param action body StartCustomActionRequest true "Custom action start request"
// @Success 201 {object} ActionResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hotspot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/custom [post]
func (h *Handler) startCustomAction(c *gin.Context) {
	var input StartCustomActionRequest
	log := h.logger.WithField("method", "startCustomAction")

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

	status, err := models.ParseHotspotStatus(input.NewStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := h.actionService.StartCustom(c.Request.Context(), input.HotspotID, input.ActionType, input.Description, input.Responsible, input.ResourcesUsed, status)
	if err != nil {
		respondServiceError(c, log, err, "hotspot not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToActionResponse(action))
}

// @Summary List combat actions
// @Description Get all combat actions, most recent first. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ActionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions [get]
func (h *Handler) listActions(c *gin.Context) {
	log := h.logger.WithField("method", "listActions")

	actions, err := h.actionService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToActionResponses(actions))
}

// @Summary List in-progress combat actions
// @Description Get combat actions that have not been concluded yet. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ActionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/in-progress [get]
func (h *Handler) listActionsInProgress(c *gin.Context) {
	log := h.logger.WithField("method", "listActionsInProgress")

	actions, err := h.actionService.ListInProgress(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToActionResponses(actions))
}

// @Summary List combat actions by hotspot
// @Description Get the combat action history of a hotspot. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hotspotId path string true "Hotspot ID"
// @Success 200 {array} ActionResponse
// @Failure 400 {object} map[string]string "Invalid hotspot ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/hotspot/{hotspotId} [get]
func (h *Handler) listActionsByHotspot(c *gin.Context) {
	hotspotID, err := uuid.Parse(c.Param("hotspotId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotspot ID"})
		return
	}
	log := h.logger.WithField("method", "listActionsByHotspot").WithField("hotspot_id", hotspotID)

	actions, err := h.actionService.ListByHotspot(c.Request.Context(), hotspotID)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToActionResponses(actions))
}

// @Summary List combat actions by region
// @Description Get combat actions targeting hotspots owned by a region. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param regionId path string true "Region ID"
// @Success 200 {array} ActionResponse
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/region/{regionId} [get]
func (h *Handler) listActionsByRegion(c *gin.Context) {
	regionID, err := uuid.Parse(c.Param("regionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "listActionsByRegion").WithField("region_id", regionID)

	actions, err := h.actionService.ListByRegion(c.Request.Context(), regionID)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToActionResponses(actions))
}

// @Summary Count in-progress actions in a region
// @Description Get the number of in-progress combat actions targeting hotspots owned by a region. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param regionId path string true "Region ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/region/{regionId}/count [get]
func (h *Handler) countActionsInProgressByRegion(c *gin.Context) {
	regionID, err := uuid.Parse(c.Param("regionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "countActionsInProgressByRegion").WithField("region_id", regionID)

	count, err := h.actionService.CountInProgressByRegion(c.Request.Context(), regionID)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_progress": count})
}

// @Summary List combat actions by type
// @Description Get combat actions whose type contains the given fragment, case-insensitive. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "Action type fragment"
// @Success 200 {array} ActionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/type [get]
func (h *Handler) listActionsByType(c *gin.Context) {
	log := h.logger.WithField("method", "listActionsByType")

	actions, err := h.actionService.ListByType(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToActionResponses(actions))
}

// @Summary List combat actions concluded in a period
// @Description Get combat actions concluded between two RFC 3339 timestamps, bounds inclusive. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param from query string true "Period start, RFC 3339"
// @Param to query string true "Period end, RFC 3339"
// @Success 200 {array} ActionResponse
// @Failure 400 {object} map[string]string "Invalid period bounds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/concluded [get]
func (h *Handler) listActionsConcludedBetween(c *gin.Context) {
	log := h.logger.WithField("method", "listActionsConcludedBetween")

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
		return
	}

	actions, err := h.actionService.ListConcludedBetween(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToActionResponses(actions))
}

// @Summary List combat actions started after a timestamp
// @Description Get combat actions started strictly after the given RFC 3339 timestamp. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param since query string true "RFC 3339 timestamp"
// @Success 200 {array} ActionResponse
// @Failure 400 {object} map[string]string "Invalid timestamp"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/started-after [get]
func (h *Handler) listActionsStartedAfter(c *gin.Context) {
	log := h.logger.WithField("method", "listActionsStartedAfter")

	since, err := time.Parse(time.RFC3339, c.Query("since"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since timestamp"})
		return
	}

	actions, err := h.actionService.ListStartedAfter(c.Request.Context(), since)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToActionResponses(actions))
}

// @Summary Get combat action by ID
// @Description Get a single combat action by its ID. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} map[string]string "Invalid action ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Action not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/{id} [get]
func (h *Handler) getAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action ID"})
		return
	}
	log := h.logger.WithField("method", "getAction").WithField("id", id)

	action, err := h.actionService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelToActionResponse(action))
}

// @Summary Conclude a combat action
// @Description Conclude an in-progress combat action with an outcome and move its hotspot to the given status. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Param conclusion body ConcludeActionRequest true "Conclusion request"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} map[string]string "Invalid action ID, request body or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Action not found or already concluded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/{id}/conclude [post]
func (h *Handler) concludeAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action ID"})
		return
	}
	log := h.logger.WithField("method", "concludeAction").WithField("id", id)

	var input ConcludeActionRequest
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

	status, err := models.ParseHotspotStatus(input.NewStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := h.actionService.Conclude(c.Request.Context(), id, input.Outcome, status)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelToActionResponse(action))
}

// @Summary Update an in-progress combat action
// @Description Partially update the description and resource list of an in-progress combat action. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Param action body UpdateActionRequest true "Action update request"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} map[string]string "Invalid action ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Action not found or already concluded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/{id} [patch]
func (h *Handler) updateAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action ID"})
		return
	}
	log := h.logger.WithField("method", "updateAction").WithField("id", id)

	var input UpdateActionRequest
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

	action, err := h.actionService.UpdateInProgress(c.Request.Context(), id, input.Description, input.ResourcesUsed)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	c.JSON(http.StatusOK, ModelToActionResponse(action))
}

// @Summary Delete a combat action
// @Description Delete a combat action by its ID. The hotspot status is not touched. Requires API key.
// @Tags Actions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid action ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Action not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /actions/{id} [delete]
func (h *Handler) deleteAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action ID"})
		return
	}
	log := h.logger.WithField("method", "deleteAction").WithField("id", id)

	removed, err := h.actionService.Remove(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "combat action not found")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "combat action not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
