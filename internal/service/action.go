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

// ActionRepository is the storage contract for combat actions.
type ActionRepository interface {
	Create(ctx context.Context, action *models.CombatAction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CombatAction, error)
	List(ctx context.Context) ([]*models.CombatAction, error)
	ListByHotspot(ctx context.Context, hotspotID uuid.UUID) ([]*models.CombatAction, error)
	ListInProgress(ctx context.Context) ([]*models.CombatAction, error)
	ListByTypeContaining(ctx context.Context, actionType string) ([]*models.CombatAction, error)
	ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.CombatAction, error)
	ListConcludedBetween(ctx context.Context, from, to time.Time) ([]*models.CombatAction, error)
	ListStartedAfter(ctx context.Context, after time.Time) ([]*models.CombatAction, error)
	CountInProgressByRegion(ctx context.Context, regionID uuid.UUID) (int64, error)
	Update(ctx context.Context, action *models.CombatAction) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRegion(ctx context.Context, regionID uuid.UUID) error
}

// ActionService is the business-logic contract for the combat action ledger.
// Starting an action always pairs with a hotspot status transition, and the
// two changes commit together.
type ActionService interface {
	StartGroundCombat(ctx context.Context, hotspotID uuid.UUID, description, responsible string) (*models.CombatAction, error)
	StartAerialCombat(ctx context.Context, hotspotID uuid.UUID, description, responsible string) (*models.CombatAction, error)
	StartMonitoring(ctx context.Context, hotspotID uuid.UUID, description, responsible string) (*models.CombatAction, error)
	StartCustom(ctx context.Context, hotspotID uuid.UUID, actionType, description, responsible, resourcesUsed string, newHotspotStatus models.HotspotStatus) (*models.CombatAction, error)
	Conclude(ctx context.Context, actionID uuid.UUID, outcome string, newHotspotStatus models.HotspotStatus) (*models.CombatAction, error)
	UpdateInProgress(ctx context.Context, id uuid.UUID, description, resourcesUsed *string) (*models.CombatAction, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*models.CombatAction, error)
	List(ctx context.Context) ([]*models.CombatAction, error)
	ListByHotspot(ctx context.Context, hotspotID uuid.UUID) ([]*models.CombatAction, error)
	ListInProgress(ctx context.Context) ([]*models.CombatAction, error)
	ListByType(ctx context.Context, actionType string) ([]*models.CombatAction, error)
	ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.CombatAction, error)
	ListConcludedBetween(ctx context.Context, from, to time.Time) ([]*models.CombatAction, error)
	ListStartedAfter(ctx context.Context, after time.Time) ([]*models.CombatAction, error)
	CountInProgressByRegion(ctx context.Context, regionID uuid.UUID) (int64, error)
}

type actionService struct {
	repo        ActionRepository
	hotspotRepo HotspotRepository
	txm         TxManager
	logger      *logrus.Logger
	publisher   webhook.AlertPublisher
}

func NewActionService(repo ActionRepository, hotspotRepo HotspotRepository, txm TxManager, logger *logrus.Logger, publisher webhook.AlertPublisher) ActionService {
	return &actionService{
		repo:        repo,
		hotspotRepo: hotspotRepo,
		txm:         txm,
		logger:      logger,
		publisher:   publisher,
	}
}

// StartGroundCombat starts a ground combat action and moves the hotspot to
// IN_COMBAT.
func (s *actionService) StartGroundCombat(ctx context.Context, hotspotID uuid.UUID, description, responsible string) (*models.CombatAction, error) {
	return s.start(ctx, hotspotID, models.StatusInCombat, func() *models.CombatAction {
		return models.NewGroundCombatAction(hotspotID, description, responsible)
	})
}

// StartAerialCombat starts an aerial combat action and moves the hotspot to
// IN_COMBAT.
func (s *actionService) StartAerialCombat(ctx context.Context, hotspotID uuid.UUID, description, responsible string) (*models.CombatAction, error) {
	return s.start(ctx, hotspotID, models.StatusInCombat, func() *models.CombatAction {
		return models.NewAerialCombatAction(hotspotID, description, responsible)
	})
}

// StartMonitoring starts a monitoring action and moves the hotspot to
// MONITORING.
func (s *actionService) StartMonitoring(ctx context.Context, hotspotID uuid.UUID, description, responsible string) (*models.CombatAction, error) {
	return s.start(ctx, hotspotID, models.StatusMonitoring, func() *models.CombatAction {
		return models.NewMonitoringAction(hotspotID, description, responsible)
	})
}

// StartCustom starts an action with a caller-defined type and resource list,
// moving the hotspot to the caller-specified status.
func (s *actionService) StartCustom(ctx context.Context, hotspotID uuid.UUID, actionType, description, responsible, resourcesUsed string, newHotspotStatus models.HotspotStatus) (*models.CombatAction, error) {
	return s.start(ctx, hotspotID, newHotspotStatus, func() *models.CombatAction {
		return models.NewCustomAction(hotspotID, actionType, description, responsible, resourcesUsed)
	})
}

// start transitions the hotspot and records the action in one transaction:
// a status change without its action, or the reverse, is never observable.
func (s *actionService) start(ctx context.Context, hotspotID uuid.UUID, newStatus models.HotspotStatus, build func() *models.CombatAction) (*models.CombatAction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "action",
		"method":     "start",
		"hotspot_id": hotspotID,
	})

	var action *models.CombatAction
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		hotspot, err := s.hotspotRepo.GetByID(ctx, hotspotID)
		if err != nil {
			return err
		}

		hotspot.UpdateStatus(newStatus)
		if err := s.hotspotRepo.Update(ctx, hotspot); err != nil {
			return err
		}

		action = build()
		return s.repo.Create(ctx, action)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to start an action on an unknown hotspot")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to start combat action")
		return nil, fmt.Errorf("service: could not start combat action: %w", err)
	}

	s.invalidateHotspotCache(ctx, log, hotspotID)
	s.publishActionEvent(ctx, log, webhook.EventActionStarted, action, newStatus)

	log.WithFields(logrus.Fields{"action_id": action.ID, "action_type": action.ActionType}).Info("Combat action started")
	return action, nil
}

// Conclude ends an in-progress action exactly once: the end timestamp and
// outcome are recorded and the hotspot moves to newHotspotStatus, all in one
// transaction. Concluding again returns ErrActionConcluded without touching
// the stored end timestamp or outcome.
func (s *actionService) Conclude(ctx context.Context, actionID uuid.UUID, outcome string, newHotspotStatus models.HotspotStatus) (*models.CombatAction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "action",
		"method":    "Conclude",
		"action_id": actionID,
	})

	var action *models.CombatAction
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		action, err = s.repo.GetByID(ctx, actionID)
		if err != nil {
			return err
		}
		if !action.InProgress() {
			return ErrActionConcluded
		}

		action.Conclude(outcome)
		if err := s.repo.Update(ctx, action); err != nil {
			return err
		}

		hotspot, err := s.hotspotRepo.GetByID(ctx, action.HotspotID)
		if err != nil {
			return err
		}
		hotspot.UpdateStatus(newHotspotStatus)
		return s.hotspotRepo.Update(ctx, hotspot)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrActionConcluded) {
			log.WithError(err).Warn("Conclude rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to conclude combat action")
		return nil, fmt.Errorf("service: could not conclude combat action: %w", err)
	}

	s.invalidateHotspotCache(ctx, log, action.HotspotID)
	s.publishActionEvent(ctx, log, webhook.EventActionConcluded, action, newHotspotStatus)

	log.Info("Combat action concluded")
	return action, nil
}

// UpdateInProgress applies a partial update of description and resources.
// In-progress is a precondition: a concluded action is rejected with
// ErrActionConcluded. Only non-empty supplied fields are applied.
func (s *actionService) UpdateInProgress(ctx context.Context, id uuid.UUID, description, resourcesUsed *string) (*models.CombatAction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "action",
		"method":    "UpdateInProgress",
		"action_id": id,
	})

	var action *models.CombatAction
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		action, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !action.InProgress() {
			return ErrActionConcluded
		}

		if description != nil && *description != "" {
			action.Description = *description
		}
		if resourcesUsed != nil && *resourcesUsed != "" {
			action.ResourcesUsed = *resourcesUsed
		}

		return s.repo.Update(ctx, action)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrActionConcluded) {
			log.WithError(err).Warn("In-progress update rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to update combat action")
		return nil, fmt.Errorf("service: could not update combat action: %w", err)
	}

	log.Info("Combat action updated")
	return action, nil
}

// Remove deletes the action regardless of its state. It has no side effect
// on the hotspot's status. An unknown id yields (false, nil).
func (s *actionService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "action",
		"method":    "Remove",
		"action_id": id,
	})

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to remove an unknown action")
			return false, nil
		}
		log.WithError(err).Error("Failed to remove combat action")
		return false, fmt.Errorf("service: could not remove combat action: %w", err)
	}

	log.Info("Combat action removed")
	return true, nil
}

func (s *actionService) Get(ctx context.Context, id uuid.UUID) (*models.CombatAction, error) {
	action, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get combat action: %w", err)
	}
	return action, nil
}

func (s *actionService) List(ctx context.Context) ([]*models.CombatAction, error) {
	actions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list combat actions: %w", err)
	}
	return actions, nil
}

func (s *actionService) ListByHotspot(ctx context.Context, hotspotID uuid.UUID) ([]*models.CombatAction, error) {
	actions, err := s.repo.ListByHotspot(ctx, hotspotID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list actions by hotspot: %w", err)
	}
	return actions, nil
}

func (s *actionService) ListInProgress(ctx context.Context) ([]*models.CombatAction, error) {
	actions, err := s.repo.ListInProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list in-progress actions: %w", err)
	}
	return actions, nil
}

// ListByType matches the action type by case-insensitive substring.
func (s *actionService) ListByType(ctx context.Context, actionType string) ([]*models.CombatAction, error) {
	actions, err := s.repo.ListByTypeContaining(ctx, actionType)
	if err != nil {
		return nil, fmt.Errorf("service: could not list actions by type: %w", err)
	}
	return actions, nil
}

func (s *actionService) ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*models.CombatAction, error) {
	actions, err := s.repo.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list actions by region: %w", err)
	}
	return actions, nil
}

// ListConcludedBetween returns actions whose end timestamp falls within
// [from, to], bounds inclusive.
func (s *actionService) ListConcludedBetween(ctx context.Context, from, to time.Time) ([]*models.CombatAction, error) {
	actions, err := s.repo.ListConcludedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("service: could not list concluded actions: %w", err)
	}
	return actions, nil
}

func (s *actionService) ListStartedAfter(ctx context.Context, after time.Time) ([]*models.CombatAction, error) {
	actions, err := s.repo.ListStartedAfter(ctx, after)
	if err != nil {
		return nil, fmt.Errorf("service: could not list actions by start time: %w", err)
	}
	return actions, nil
}

func (s *actionService) CountInProgressByRegion(ctx context.Context, regionID uuid.UUID) (int64, error) {
	count, err := s.repo.CountInProgressByRegion(ctx, regionID)
	if err != nil {
		return 0, fmt.Errorf("service: could not count in-progress actions: %w", err)
	}
	return count, nil
}

func (s *actionService) invalidateHotspotCache(ctx context.Context, log *logrus.Entry, hotspotID uuid.UUID) {
	if err := s.hotspotRepo.InvalidateCache(ctx, hotspotID); err != nil {
		log.WithError(err).Warn("Failed to invalidate hotspot cache")
	}
}

func (s *actionService) publishActionEvent(ctx context.Context, log *logrus.Entry, eventName string, action *models.CombatAction, status models.HotspotStatus) {
	event := webhook.AlertEvent{
		Event:      eventName,
		HotspotID:  &action.HotspotID,
		ActionID:   &action.ID,
		ActionType: action.ActionType,
		Status:     string(status),
		Timestamp:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish action alert")
	}
}
