package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tmarques/wildfire_tracking_system/internal/models"
	"github.com/tmarques/wildfire_tracking_system/internal/webhook"
)

// HotspotRepository is the storage contract for hotspots.
type HotspotRepository interface {
	Create(ctx context.Context, hotspot *models.Hotspot) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hotspot, error)
	List(ctx context.Context) ([]*models.Hotspot, error)
	ListByStatus(ctx context.Context, status models.HotspotStatus) ([]*models.Hotspot, error)
	ListActive(ctx context.Context) ([]*models.Hotspot, error)
	ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.Hotspot, error)
	ListDetectedAfter(ctx context.Context, after time.Time) ([]*models.Hotspot, error)
	ListByProximity(ctx context.Context, latitude, longitude, radiusDegrees float64) ([]*models.Hotspot, error)
	ListByMinIntensity(ctx context.Context, minIntensity float64) ([]*models.Hotspot, error)
	CountActiveByRegion(ctx context.Context, regionID uuid.UUID) (int64, error)
	Update(ctx context.Context, hotspot *models.Hotspot) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRegion(ctx context.Context, regionID uuid.UUID) error

	GetFromCache(ctx context.Context, id uuid.UUID) (*models.Hotspot, error)
	SetCache(ctx context.Context, hotspot *models.Hotspot) error
	InvalidateCache(ctx context.Context, id uuid.UUID) error
}

// HotspotService is the business-logic contract for hotspot management.
type HotspotService interface {
	Register(ctx context.Context, latitude, longitude float64, regionID *uuid.UUID) (*models.Hotspot, error)
	RegisterDetailed(ctx context.Context, latitude, longitude float64, intensity, estimatedAreaM2 *float64, description string, regionID *uuid.UUID) (*models.Hotspot, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Hotspot, error)
	List(ctx context.Context) ([]*models.Hotspot, error)
	ListByStatus(ctx context.Context, status models.HotspotStatus) ([]*models.Hotspot, error)
	ListActive(ctx context.Context) ([]*models.Hotspot, error)
	ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.Hotspot, error)
	ListDetectedAfter(ctx context.Context, after time.Time) ([]*models.Hotspot, error)
	ListByProximity(ctx context.Context, latitude, longitude, radiusDegrees float64) ([]*models.Hotspot, error)
	ListByMinIntensity(ctx context.Context, minIntensity float64) ([]*models.Hotspot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.HotspotStatus) (*models.Hotspot, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, intensity, estimatedAreaM2 *float64, description *string) (*models.Hotspot, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type hotspotService struct {
	repo       HotspotRepository
	regionRepo RegionRepository
	txm        TxManager
	logger     *logrus.Logger
	publisher  webhook.AlertPublisher
}

func NewHotspotService(repo HotspotRepository, regionRepo RegionRepository, txm TxManager, logger *logrus.Logger, publisher webhook.AlertPublisher) HotspotService {
	return &hotspotService{
		repo:       repo,
		regionRepo: regionRepo,
		txm:        txm,
		logger:     logger,
		publisher:  publisher,
	}
}

// Register creates a hotspot with status NEW, optionally attached to a
// region. An unknown region id does not fail the registration; the hotspot
// is simply left unattached.
func (s *hotspotService) Register(ctx context.Context, latitude, longitude float64, regionID *uuid.UUID) (*models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hotspot",
		"method":  "Register",
	})

	if !validCoordinates(latitude, longitude) {
		return nil, ErrInvalidCoordinates
	}

	hotspot := models.NewHotspot(latitude, longitude)

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		s.attachRegion(ctx, log, hotspot, regionID)
		return s.repo.Create(ctx, hotspot)
	})
	if err != nil {
		log.WithError(err).Error("Failed to register hotspot")
		return nil, fmt.Errorf("service: could not register hotspot: %w", err)
	}

	log.WithField("hotspot_id", hotspot.ID).Info("Hotspot registered")
	return hotspot, nil
}

// RegisterDetailed creates a hotspot with the optional fields filled in.
// When the hotspot is attached to a region, the region's risk level is
// recalculated in the same transaction.
func (s *hotspotService) RegisterDetailed(ctx context.Context, latitude, longitude float64, intensity, estimatedAreaM2 *float64, description string, regionID *uuid.UUID) (*models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hotspot",
		"method":  "RegisterDetailed",
	})

	if !validCoordinates(latitude, longitude) {
		return nil, ErrInvalidCoordinates
	}
	if intensity != nil && *intensity < 0 {
		return nil, fmt.Errorf("service: intensity must be non-negative")
	}
	if estimatedAreaM2 != nil && *estimatedAreaM2 < 0 {
		return nil, fmt.Errorf("service: estimated area must be non-negative")
	}

	hotspot := models.NewDetailedHotspot(latitude, longitude, intensity, estimatedAreaM2, description)

	var riskLevel int
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		s.attachRegion(ctx, log, hotspot, regionID)
		if err := s.repo.Create(ctx, hotspot); err != nil {
			return err
		}
		if hotspot.RegionID == nil {
			return nil
		}
		level, err := s.recalculateRegionRisk(ctx, *hotspot.RegionID)
		if err != nil {
			return err
		}
		riskLevel = level
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to register detailed hotspot")
		return nil, fmt.Errorf("service: could not register hotspot: %w", err)
	}

	if hotspot.RegionID != nil {
		s.publishRiskChanged(ctx, log, *hotspot.RegionID, riskLevel)
	}

	log.WithField("hotspot_id", hotspot.ID).Info("Hotspot registered with details")
	return hotspot, nil
}

// Get returns a hotspot by id, served from cache when possible.
func (s *hotspotService) Get(ctx context.Context, id uuid.UUID) (*models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "hotspot",
		"method":     "Get",
		"hotspot_id": id,
	})

	cached, err := s.repo.GetFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Hotspot cache lookup failed, falling back to store")
	}
	if cached != nil {
		return cached, nil
	}

	hotspot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get hotspot: %w", err)
	}

	if err := s.repo.SetCache(ctx, hotspot); err != nil {
		log.WithError(err).Warn("Failed to cache hotspot")
	}
	return hotspot, nil
}

func (s *hotspotService) List(ctx context.Context) ([]*models.Hotspot, error) {
	hotspots, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hotspots: %w", err)
	}
	return hotspots, nil
}

func (s *hotspotService) ListByStatus(ctx context.Context, status models.HotspotStatus) ([]*models.Hotspot, error) {
	hotspots, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hotspots by status: %w", err)
	}
	return hotspots, nil
}

func (s *hotspotService) ListActive(ctx context.Context) ([]*models.Hotspot, error) {
	hotspots, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active hotspots: %w", err)
	}
	return hotspots, nil
}

func (s *hotspotService) ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.Hotspot, error) {
	hotspots, err := s.repo.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hotspots by region: %w", err)
	}
	return hotspots, nil
}

func (s *hotspotService) ListDetectedAfter(ctx context.Context, after time.Time) ([]*models.Hotspot, error) {
	hotspots, err := s.repo.ListDetectedAfter(ctx, after)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hotspots by detection time: %w", err)
	}
	return hotspots, nil
}

// ListByProximity returns hotspots inside an axis-aligned bounding box of
// radiusDegrees around the given point, bounds inclusive. This is a degree-
// space approximation, not great-circle distance; it grows imprecise near
// the poles and the date line.
func (s *hotspotService) ListByProximity(ctx context.Context, latitude, longitude, radiusDegrees float64) ([]*models.Hotspot, error) {
	if !validCoordinates(latitude, longitude) {
		return nil, ErrInvalidCoordinates
	}
	hotspots, err := s.repo.ListByProximity(ctx, latitude, longitude, radiusDegrees)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hotspots by proximity: %w", err)
	}
	return hotspots, nil
}

// ListByMinIntensity returns hotspots with intensity strictly greater than
// minIntensity, most intense first.
func (s *hotspotService) ListByMinIntensity(ctx context.Context, minIntensity float64) ([]*models.Hotspot, error) {
	hotspots, err := s.repo.ListByMinIntensity(ctx, minIntensity)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hotspots by intensity: %w", err)
	}
	return hotspots, nil
}

// UpdateStatus sets the hotspot status and, when the hotspot belongs to a
// region, recalculates that region's risk level in the same transaction.
func (s *hotspotService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.HotspotStatus) (*models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "hotspot",
		"method":     "UpdateStatus",
		"hotspot_id": id,
		"new_status": newStatus,
	})

	var hotspot *models.Hotspot
	var riskLevel int
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		hotspot, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		hotspot.UpdateStatus(newStatus)
		if err := s.repo.Update(ctx, hotspot); err != nil {
			return err
		}

		if hotspot.RegionID == nil {
			return nil
		}
		riskLevel, err = s.recalculateRegionRisk(ctx, *hotspot.RegionID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update status of an unknown hotspot")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to update hotspot status")
		return nil, fmt.Errorf("service: could not update hotspot status: %w", err)
	}

	s.invalidateCache(ctx, log, id)
	s.publishStatusChanged(ctx, log, hotspot)
	if hotspot.RegionID != nil {
		s.publishRiskChanged(ctx, log, *hotspot.RegionID, riskLevel)
	}

	log.Info("Hotspot status updated")
	return hotspot, nil
}

// UpdateDetails applies a partial update of intensity, estimated area and
// description. Only non-nil fields are touched; the update timestamp is
// always refreshed.
func (s *hotspotService) UpdateDetails(ctx context.Context, id uuid.UUID, intensity, estimatedAreaM2 *float64, description *string) (*models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "hotspot",
		"method":     "UpdateDetails",
		"hotspot_id": id,
	})

	var hotspot *models.Hotspot
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		hotspot, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if intensity != nil {
			hotspot.Intensity = intensity
		}
		if estimatedAreaM2 != nil {
			hotspot.EstimatedAreaM2 = estimatedAreaM2
		}
		if description != nil {
			hotspot.Description = *description
		}
		hotspot.UpdatedAt = time.Now()

		return s.repo.Update(ctx, hotspot)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update details of an unknown hotspot")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to update hotspot details")
		return nil, fmt.Errorf("service: could not update hotspot details: %w", err)
	}

	s.invalidateCache(ctx, log, id)
	log.Info("Hotspot details updated")
	return hotspot, nil
}

// Remove deletes the hotspot. When it belonged to a region, the region's
// risk level is recalculated afterwards in the same transaction. An unknown
// id yields (false, nil), not an error.
func (s *hotspotService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "hotspot",
		"method":     "Remove",
		"hotspot_id": id,
	})

	var regionID *uuid.UUID
	var riskLevel int
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		hotspot, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		regionID = hotspot.RegionID

		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}

		if regionID == nil {
			return nil
		}
		riskLevel, err = s.recalculateRegionRisk(ctx, *regionID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to remove an unknown hotspot")
			return false, nil
		}
		log.WithError(err).Error("Failed to remove hotspot")
		return false, fmt.Errorf("service: could not remove hotspot: %w", err)
	}

	s.invalidateCache(ctx, log, id)
	if regionID != nil {
		s.publishRiskChanged(ctx, log, *regionID, riskLevel)
	}

	log.Info("Hotspot removed")
	return true, nil
}

// attachRegion points the hotspot at the region when it exists. An unknown
// region id is logged and ignored.
func (s *hotspotService) attachRegion(ctx context.Context, log *logrus.Entry, hotspot *models.Hotspot, regionID *uuid.UUID) {
	if regionID == nil {
		return
	}
	if _, err := s.regionRepo.GetByID(ctx, *regionID); err != nil {
		log.WithField("region_id", *regionID).Warn("Region not found, registering hotspot unattached")
		return
	}
	hotspot.RegionID = regionID
}

// recalculateRegionRisk recomputes the region's risk level from its current
// active hotspot count and persists it. Must run inside a transaction.
func (s *hotspotService) recalculateRegionRisk(ctx context.Context, regionID uuid.UUID) (int, error) {
	count, err := s.repo.CountActiveByRegion(ctx, regionID)
	if err != nil {
		return 0, err
	}
	level := models.RiskLevelForActiveCount(count)
	if err := s.regionRepo.UpdateRiskLevel(ctx, regionID, level); err != nil {
		return 0, err
	}
	return level, nil
}

func (s *hotspotService) invalidateCache(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate hotspot cache")
	}
}

func (s *hotspotService) publishStatusChanged(ctx context.Context, log *logrus.Entry, hotspot *models.Hotspot) {
	event := webhook.AlertEvent{
		Event:     webhook.EventHotspotStatusChanged,
		HotspotID: &hotspot.ID,
		RegionID:  hotspot.RegionID,
		Status:    string(hotspot.Status),
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish status change alert")
	}
}

func (s *hotspotService) publishRiskChanged(ctx context.Context, log *logrus.Entry, regionID uuid.UUID, riskLevel int) {
	event := webhook.AlertEvent{
		Event:     webhook.EventRegionRiskChanged,
		RegionID:  &regionID,
		RiskLevel: riskLevel,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish risk change alert")
	}
}
