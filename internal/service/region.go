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

// RegionRepository is the storage contract for monitored regions.
type RegionRepository interface {
	Create(ctx context.Context, region *models.Region) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error)
	List(ctx context.Context) ([]*models.Region, error)
	SearchByName(ctx context.Context, name string) ([]*models.Region, error)
	ListByType(ctx context.Context, regionType string) ([]*models.Region, error)
	ListByMinRiskLevel(ctx context.Context, minRiskLevel int) ([]*models.Region, error)
	ListOrderedByActiveHotspots(ctx context.Context) ([]*models.Region, error)
	ListWithoutActiveHotspots(ctx context.Context) ([]*models.Region, error)
	Update(ctx context.Context, region *models.Region) error
	UpdateRiskLevel(ctx context.Context, id uuid.UUID, riskLevel int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegionUpdate carries the fields replaced by RegionService.Update. The risk
// level and hotspot associations are deliberately not part of it.
type RegionUpdate struct {
	Name        string
	Type        string
	AreaM2      float64
	Description string
}

// RegionService is the business-logic contract for region management.
type RegionService interface {
	Register(ctx context.Context, region *models.Region) (*models.Region, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Region, error)
	List(ctx context.Context) ([]*models.Region, error)
	SearchByName(ctx context.Context, name string) ([]*models.Region, error)
	ListByType(ctx context.Context, regionType string) ([]*models.Region, error)
	ListByMinRiskLevel(ctx context.Context, minRiskLevel int) ([]*models.Region, error)
	ListOrderedByActiveHotspots(ctx context.Context) ([]*models.Region, error)
	ListWithoutActiveHotspots(ctx context.Context) ([]*models.Region, error)
	Update(ctx context.Context, id uuid.UUID, update RegionUpdate) (*models.Region, error)
	RecalculateRisk(ctx context.Context, id uuid.UUID) (*models.Region, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type regionService struct {
	repo        RegionRepository
	hotspotRepo HotspotRepository
	actionRepo  ActionRepository
	txm         TxManager
	logger      *logrus.Logger
	publisher   webhook.AlertPublisher
}

func NewRegionService(repo RegionRepository, hotspotRepo HotspotRepository, actionRepo ActionRepository, txm TxManager, logger *logrus.Logger, publisher webhook.AlertPublisher) RegionService {
	return &regionService{
		repo:        repo,
		hotspotRepo: hotspotRepo,
		actionRepo:  actionRepo,
		txm:         txm,
		logger:      logger,
		publisher:   publisher,
	}
}

// Register persists a new region. A zero risk level defaults to 1.
func (s *regionService) Register(ctx context.Context, region *models.Region) (*models.Region, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "region",
		"method":  "Register",
		"name":    region.Name,
	})

	if region.RiskLevel == 0 {
		region.RiskLevel = models.MinRiskLevel
	}
	if region.RiskLevel < models.MinRiskLevel || region.RiskLevel > models.MaxRiskLevel {
		return nil, fmt.Errorf("service: risk level must be between %d and %d", models.MinRiskLevel, models.MaxRiskLevel)
	}

	if err := s.repo.Create(ctx, region); err != nil {
		log.WithError(err).Error("Failed to register region")
		return nil, fmt.Errorf("service: could not register region: %w", err)
	}

	log.WithField("region_id", region.ID).Info("Region registered")
	return region, nil
}

func (s *regionService) Get(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	region, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get region: %w", err)
	}
	return region, nil
}

func (s *regionService) List(ctx context.Context) ([]*models.Region, error) {
	regions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list regions: %w", err)
	}
	return regions, nil
}

func (s *regionService) SearchByName(ctx context.Context, name string) ([]*models.Region, error) {
	regions, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: could not search regions by name: %w", err)
	}
	return regions, nil
}

func (s *regionService) ListByType(ctx context.Context, regionType string) ([]*models.Region, error) {
	regions, err := s.repo.ListByType(ctx, regionType)
	if err != nil {
		return nil, fmt.Errorf("service: could not list regions by type: %w", err)
	}
	return regions, nil
}

func (s *regionService) ListByMinRiskLevel(ctx context.Context, minRiskLevel int) ([]*models.Region, error) {
	regions, err := s.repo.ListByMinRiskLevel(ctx, minRiskLevel)
	if err != nil {
		return nil, fmt.Errorf("service: could not list regions by risk level: %w", err)
	}
	return regions, nil
}

// ListOrderedByActiveHotspots returns regions sorted descending by their
// count of active hotspots. Regions with no active hotspots are omitted;
// ListWithoutActiveHotspots is the complementary listing.
func (s *regionService) ListOrderedByActiveHotspots(ctx context.Context) ([]*models.Region, error) {
	regions, err := s.repo.ListOrderedByActiveHotspots(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list regions by active hotspots: %w", err)
	}
	return regions, nil
}

// ListWithoutActiveHotspots returns regions owning no active hotspot,
// including regions with no hotspots at all.
func (s *regionService) ListWithoutActiveHotspots(ctx context.Context) ([]*models.Region, error) {
	regions, err := s.repo.ListWithoutActiveHotspots(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list regions without active hotspots: %w", err)
	}
	return regions, nil
}

// Update replaces name, type, area and description. It never touches the
// risk level or the hotspot associations.
func (s *regionService) Update(ctx context.Context, id uuid.UUID, update RegionUpdate) (*models.Region, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "Update",
		"region_id": id,
	})

	var region *models.Region
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		region, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		region.Name = update.Name
		region.Type = update.Type
		region.AreaM2 = update.AreaM2
		region.Description = update.Description

		return s.repo.Update(ctx, region)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update an unknown region")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to update region")
		return nil, fmt.Errorf("service: could not update region: %w", err)
	}

	log.Info("Region updated")
	return region, nil
}

// RecalculateRisk recomputes the region's risk level on demand from the
// current count of active hotspots.
func (s *regionService) RecalculateRisk(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "RecalculateRisk",
		"region_id": id,
	})

	var region *models.Region
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		region, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		count, err := s.hotspotRepo.CountActiveByRegion(ctx, id)
		if err != nil {
			return err
		}
		region.RiskLevel = models.RiskLevelForActiveCount(count)
		return s.repo.UpdateRiskLevel(ctx, id, region.RiskLevel)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to recalculate risk of an unknown region")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to recalculate region risk")
		return nil, fmt.Errorf("service: could not recalculate region risk: %w", err)
	}

	s.publishRiskChanged(ctx, log, region)
	log.WithField("risk_level", region.RiskLevel).Info("Region risk recalculated")
	return region, nil
}

// Remove deletes the region and cascades to its hotspots and their actions
// in a single transaction. No orphaned hotspot may keep referencing the
// deleted region. An unknown id yields (false, nil).
func (s *regionService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "Remove",
		"region_id": id,
	})

	var owned []*models.Hotspot
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}

		var err error
		owned, err = s.hotspotRepo.ListByRegion(ctx, id)
		if err != nil {
			return err
		}

		// Actions reference hotspots, so they go first.
		if err := s.actionRepo.DeleteByRegion(ctx, id); err != nil {
			return err
		}
		if err := s.hotspotRepo.DeleteByRegion(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to remove an unknown region")
			return false, nil
		}
		log.WithError(err).Error("Failed to remove region")
		return false, fmt.Errorf("service: could not remove region: %w", err)
	}

	for _, h := range owned {
		if err := s.hotspotRepo.InvalidateCache(ctx, h.ID); err != nil {
			log.WithError(err).WithField("hotspot_id", h.ID).Warn("Failed to invalidate hotspot cache")
		}
	}

	log.WithField("cascaded_hotspots", len(owned)).Info("Region removed")
	return true, nil
}

func (s *regionService) publishRiskChanged(ctx context.Context, log *logrus.Entry, region *models.Region) {
	event := webhook.AlertEvent{
		Event:     webhook.EventRegionRiskChanged,
		RegionID:  &region.ID,
		RiskLevel: region.RiskLevel,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish risk change alert")
	}
}
