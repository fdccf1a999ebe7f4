package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateHotspotRequest carries the minimal detection report.
// @Description Hotspot registration request
type CreateHotspotRequest struct {
	Latitude  float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64    `json:"longitude" validate:"min=-180,max=180"`
	RegionID  *uuid.UUID `json:"region_id,omitempty"`
}

// CreateDetailedHotspotRequest carries a detection report with measurements.
// @Description Detailed hotspot registration request
type CreateDetailedHotspotRequest struct {
	Latitude        float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude       float64    `json:"longitude" validate:"min=-180,max=180"`
	Intensity       *float64   `json:"intensity,omitempty" validate:"omitempty,gte=0"`
	EstimatedAreaM2 *float64   `json:"estimated_area_m2,omitempty" validate:"omitempty,gte=0"`
	Description     string     `json:"description,omitempty" validate:"max=1000"`
	RegionID        *uuid.UUID `json:"region_id,omitempty"`
}

// UpdateHotspotStatusRequest carries a status transition.
// @Description Hotspot status update request
type UpdateHotspotStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateHotspotDetailsRequest carries a partial update; absent fields are
// left untouched.
// @Description Hotspot details update request
type UpdateHotspotDetailsRequest struct {
	Intensity       *float64 `json:"intensity,omitempty" validate:"omitempty,gte=0"`
	EstimatedAreaM2 *float64 `json:"estimated_area_m2,omitempty" validate:"omitempty,gte=0"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// HotspotResponse is the hotspot representation returned by the API.
// @Description Hotspot representation
type HotspotResponse struct {
	ID              uuid.UUID  `json:"id"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	DetectedAt      time.Time  `json:"detected_at"`
	Intensity       *float64   `json:"intensity,omitempty"`
	EstimatedAreaM2 *float64   `json:"estimated_area_m2,omitempty"`
	Status          string     `json:"status"`
	Description     string     `json:"description,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
	RegionID        *uuid.UUID `json:"region_id,omitempty"`
}

// CreateRegionRequest registers a monitored region.
// @Description Region registration request
type CreateRegionRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Type        string  `json:"type" validate:"required,min=2,max=255"`
	AreaM2      float64 `json:"area_m2" validate:"gte=0"`
	Description string  `json:"description,omitempty" validate:"max=1000"`
	RiskLevel   int     `json:"risk_level,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// UpdateRegionRequest replaces the descriptive region fields. The risk level
// is managed by the system and cannot be set here.
// @Description Region update request
type UpdateRegionRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Type        string  `json:"type" validate:"required,min=2,max=255"`
	AreaM2      float64 `json:"area_m2" validate:"gte=0"`
	Description string  `json:"description,omitempty" validate:"max=1000"`
}

// RegionResponse is the region representation returned by the API.
// @Description Region representation
type RegionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	AreaM2      float64   `json:"area_m2"`
	Description string    `json:"description,omitempty"`
	RiskLevel   int       `json:"risk_level"`
}

// StartActionRequest starts a predefined combat action on a hotspot.
// @Description Combat action start request
type StartActionRequest struct {
	HotspotID   uuid.UUID `json:"hotspot_id" validate:"required"`
	Description string    `json:"description,omitempty" validate:"max=1000"`
	Responsible string    `json:"responsible" validate:"required,min=2,max=255"`
}

// StartCustomActionRequest starts a combat action with a caller-defined type,
// resource list and target hotspot status.
// @Description Custom combat action start request
type StartCustomActionRequest struct {
	HotspotID     uuid.UUID `json:"hotspot_id" validate:"required"`
	ActionType    string    `json:"action_type" validate:"required,min=2,max=255"`
	Description   string    `json:"description,omitempty" validate:"max=1000"`
	Responsible   string    `json:"responsible" validate:"required,min=2,max=255"`
	ResourcesUsed string    `json:"resources_used,omitempty" validate:"max=1000"`
	NewStatus     string    `json:"new_status" validate:"required"`
}

// ConcludeActionRequest ends an in-progress action.
// @Description Combat action conclusion request
type ConcludeActionRequest struct {
	Outcome   string `json:"outcome" validate:"required,max=1000"`
	NewStatus string `json:"new_status" validate:"required"`
}

// UpdateActionRequest carries a partial update of an in-progress action.
// @Description Combat action update request
type UpdateActionRequest struct {
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	ResourcesUsed *string `json:"resources_used,omitempty" validate:"omitempty,max=1000"`
}

// ActionResponse is the combat action representation returned by the API.
// @Description Combat action representation
type ActionResponse struct {
	ID            uuid.UUID  `json:"id"`
	HotspotID     uuid.UUID  `json:"hotspot_id"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	ActionType    string     `json:"action_type"`
	Description   string     `json:"description,omitempty"`
	ResourcesUsed string     `json:"resources_used,omitempty"`
	Outcome       string     `json:"outcome,omitempty"`
	Responsible   string     `json:"responsible,omitempty"`
	DurationHours *float64   `json:"duration_hours,omitempty"`
}
