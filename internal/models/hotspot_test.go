package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotspot_Defaults(t *testing.T) {
	before := time.Now()
	h := NewHotspot(-3.4653, -62.2159)

	assert.Equal(t, StatusNew, h.Status)
	assert.Equal(t, -3.4653, h.Latitude)
	assert.Equal(t, -62.2159, h.Longitude)
	assert.Nil(t, h.Intensity)
	assert.Nil(t, h.EstimatedAreaM2)
	assert.Nil(t, h.RegionID)
	assert.False(t, h.DetectedAt.Before(before))
	assert.Equal(t, h.DetectedAt, h.UpdatedAt)
}

func TestNewDetailedHotspot_OptionalFields(t *testing.T) {
	intensity := 75.3
	area := 15000.0
	h := NewDetailedHotspot(-3.4653, -62.2159, &intensity, &area, "dense forest fire")

	assert.Equal(t, StatusNew, h.Status)
	require.NotNil(t, h.Intensity)
	assert.Equal(t, 75.3, *h.Intensity)
	require.NotNil(t, h.EstimatedAreaM2)
	assert.Equal(t, 15000.0, *h.EstimatedAreaM2)
	assert.Equal(t, "dense forest fire", h.Description)
}

func TestHotspot_UpdateStatus_RefreshesTimestamp(t *testing.T) {
	h := NewHotspot(0, 0)
	h.UpdatedAt = time.Now().Add(-time.Hour)

	h.UpdateStatus(StatusConfirmed)

	assert.Equal(t, StatusConfirmed, h.Status)
	assert.WithinDuration(t, time.Now(), h.UpdatedAt, time.Second)
}

func TestHotspot_IsActive_AllStatuses(t *testing.T) {
	inactive := map[HotspotStatus]bool{
		StatusResolved:   true,
		StatusFalseAlarm: true,
	}

	for _, status := range AllStatuses {
		h := NewHotspot(0, 0)
		h.Status = status
		assert.Equal(t, !inactive[status], h.IsActive(), "status %s", status)
	}
}

func TestParseHotspotStatus(t *testing.T) {
	status, err := ParseHotspotStatus("IN_COMBAT")
	require.NoError(t, err)
	assert.Equal(t, StatusInCombat, status)

	_, err = ParseHotspotStatus("ON_FIRE")
	assert.Error(t, err)
}
