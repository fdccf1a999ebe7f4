package models

import "fmt"

// HotspotStatus is the lifecycle status of a detected hotspot. Transitions
// are deliberately unconstrained: any status may be set from any other via
// the update operation.
type HotspotStatus string

const (
	// StatusNew marks a freshly detected hotspot, not yet confirmed or evaluated.
	StatusNew HotspotStatus = "NEW"
	// StatusConfirmed marks a confirmed hotspot awaiting a combat action.
	StatusConfirmed HotspotStatus = "CONFIRMED"
	// StatusUnderEvaluation marks a hotspot being triaged.
	StatusUnderEvaluation HotspotStatus = "UNDER_EVALUATION"
	// StatusInCombat marks a hotspot under active combat.
	StatusInCombat HotspotStatus = "IN_COMBAT"
	// StatusMonitoring marks a hotspot under observation, typically after an
	// initial response or for small fires.
	StatusMonitoring HotspotStatus = "MONITORING"
	// StatusControlled marks a contained hotspot still under watch.
	StatusControlled HotspotStatus = "CONTROLLED"
	// StatusResolved marks an extinguished hotspot. Terminal.
	StatusResolved HotspotStatus = "RESOLVED"
	// StatusFalseAlarm marks a detection classified as a false alarm. Terminal.
	StatusFalseAlarm HotspotStatus = "FALSE_ALARM"
)

// AllStatuses lists every valid hotspot status.
var AllStatuses = []HotspotStatus{
	StatusNew,
	StatusConfirmed,
	StatusUnderEvaluation,
	StatusInCombat,
	StatusMonitoring,
	StatusControlled,
	StatusResolved,
	StatusFalseAlarm,
}

// ParseHotspotStatus converts a string into a HotspotStatus.
func ParseHotspotStatus(s string) (HotspotStatus, error) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown hotspot status %q", s)
}
