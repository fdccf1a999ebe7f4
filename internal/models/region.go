package models

import (
	"github.com/google/uuid"
)

// Risk level bounds. Level 1 is the lowest risk, 5 the highest.
const (
	MinRiskLevel = 1
	MaxRiskLevel = 5
)

// Region is a monitored geographic area. Its risk level is derived from the
// number of active hotspots it owns, never adjusted incrementally.
type Region struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"` // e.g. "Floresta", "Savana", "Área Úmida"
	AreaM2      float64   `json:"area_m2"`
	Description string    `json:"description,omitempty"`
	RiskLevel   int       `json:"risk_level"`
}

// RiskLevelForActiveCount maps the count of active hotspots in a region onto
// a risk level:
//
//	0 hotspots  -> 1
//	1-2         -> 2
//	3-4         -> 3
//	5-9         -> 4
//	10 or more  -> 5
//
// Only the active count matters; intensity and total count do not.
func RiskLevelForActiveCount(activeCount int64) int {
	switch {
	case activeCount == 0:
		return 1
	case activeCount < 3:
		return 2
	case activeCount < 5:
		return 3
	case activeCount < 10:
		return 4
	default:
		return 5
	}
}
