package models

import (
	"time"

	"github.com/google/uuid"
)

// Hotspot is a detected fire point. RegionID is nil for unattached hotspots.
type Hotspot struct {
	ID              uuid.UUID     `json:"id"`
	Latitude        float64       `json:"latitude"`
	Longitude       float64       `json:"longitude"`
	DetectedAt      time.Time     `json:"detected_at"`
	Intensity       *float64      `json:"intensity,omitempty"`
	EstimatedAreaM2 *float64      `json:"estimated_area_m2,omitempty"`
	Status          HotspotStatus `json:"status"`
	Description     string        `json:"description,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at"`
	RegionID        *uuid.UUID    `json:"region_id,omitempty"`
}

// NewHotspot creates a hotspot with only coordinates. Detection and update
// timestamps are set to now and the status starts as NEW.
func NewHotspot(latitude, longitude float64) *Hotspot {
	now := time.Now()
	return &Hotspot{
		Latitude:   latitude,
		Longitude:  longitude,
		DetectedAt: now,
		Status:     StatusNew,
		UpdatedAt:  now,
	}
}

// NewDetailedHotspot creates a hotspot with the optional intensity, estimated
// area and description filled in.
func NewDetailedHotspot(latitude, longitude float64, intensity, estimatedAreaM2 *float64, description string) *Hotspot {
	h := NewHotspot(latitude, longitude)
	h.Intensity = intensity
	h.EstimatedAreaM2 = estimatedAreaM2
	h.Description = description
	return h
}

// UpdateStatus sets the status and refreshes the update timestamp.
func (h *Hotspot) UpdateStatus(newStatus HotspotStatus) {
	h.Status = newStatus
	h.UpdatedAt = time.Now()
}

// IsActive reports whether the hotspot still needs attention, i.e. it is
// neither resolved nor a false alarm.
func (h *Hotspot) IsActive() bool {
	return h.Status != StatusResolved && h.Status != StatusFalseAlarm
}
