package models

import (
	"time"

	"github.com/google/uuid"
)

// Action type labels and default resource templates for the standard kinds.
// These are operational data and kept in the original Portuguese.
const (
	ActionTypeGround     = "Combate terrestre"
	ActionTypeAerial     = "Combate aéreo"
	ActionTypeMonitoring = "Monitoramento"

	groundResources     = "Brigada terrestre, caminhões-pipa, abafadores"
	aerialResources     = "Aeronaves, lançamento de água/retardante"
	monitoringResources = "Monitoramento por satélite, drones, equipe de vigilância"
)

// CombatAction is a timestamped intervention targeting a single hotspot.
// EndedAt is nil exactly while the action is in progress; Outcome is set only
// on conclusion.
type CombatAction struct {
	ID            uuid.UUID  `json:"id"`
	HotspotID     uuid.UUID  `json:"hotspot_id"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	ActionType    string     `json:"action_type"`
	Description   string     `json:"description,omitempty"`
	ResourcesUsed string     `json:"resources_used,omitempty"`
	Outcome       string     `json:"outcome,omitempty"`
	Responsible   string     `json:"responsible,omitempty"`
}

// NewGroundCombatAction creates an in-progress ground combat action with the
// default ground resource template.
func NewGroundCombatAction(hotspotID uuid.UUID, description, responsible string) *CombatAction {
	return newAction(hotspotID, ActionTypeGround, description, responsible, groundResources)
}

// NewAerialCombatAction creates an in-progress aerial combat action with the
// default aerial resource template.
func NewAerialCombatAction(hotspotID uuid.UUID, description, responsible string) *CombatAction {
	return newAction(hotspotID, ActionTypeAerial, description, responsible, aerialResources)
}

// NewMonitoringAction creates an in-progress monitoring action with the
// default monitoring resource template.
func NewMonitoringAction(hotspotID uuid.UUID, description, responsible string) *CombatAction {
	return newAction(hotspotID, ActionTypeMonitoring, description, responsible, monitoringResources)
}

// NewCustomAction creates an in-progress action with a caller-defined type
// and resource list.
func NewCustomAction(hotspotID uuid.UUID, actionType, description, responsible, resourcesUsed string) *CombatAction {
	return newAction(hotspotID, actionType, description, responsible, resourcesUsed)
}

func newAction(hotspotID uuid.UUID, actionType, description, responsible, resources string) *CombatAction {
	return &CombatAction{
		HotspotID:     hotspotID,
		StartedAt:     time.Now(),
		ActionType:    actionType,
		Description:   description,
		ResourcesUsed: resources,
		Responsible:   responsible,
	}
}

// Conclude ends the action now and records its outcome.
func (a *CombatAction) Conclude(outcome string) {
	now := time.Now()
	a.EndedAt = &now
	a.Outcome = outcome
}

// InProgress reports whether the action has not been concluded yet.
func (a *CombatAction) InProgress() bool {
	return a.EndedAt == nil
}

// DurationHours returns the action duration as fractional hours, or nil while
// the action is still in progress.
func (a *CombatAction) DurationHours() *float64 {
	if a.EndedAt == nil {
		return nil
	}
	hours := a.EndedAt.Sub(a.StartedAt).Seconds() / 3600.0
	return &hours
}
