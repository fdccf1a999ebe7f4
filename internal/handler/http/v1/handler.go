package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/tmarques/wildfire_tracking_system/internal/config"
	"github.com/tmarques/wildfire_tracking_system/internal/service"
)

type Handler struct {
	hotspotService service.HotspotService
	regionService  service.RegionService
	actionService  service.ActionService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(hotspotService service.HotspotService, regionService service.RegionService, actionService service.ActionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		hotspotService: hotspotService,
		regionService:  regionService,
		actionService:  actionService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// respondServiceError maps service sentinels onto HTTP statuses. A concluded
// action reads as "no in-progress action with this id", hence 404 for both.
func respondServiceError(c *gin.Context, log *logrus.Entry, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, service.ErrActionConcluded):
		c.JSON(http.StatusNotFound, gin.H{"error": "combat action already concluded"})
	case errors.Is(err, service.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
