package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionFactories_DefaultResources(t *testing.T) {
	hotspotID := uuid.New()

	ground := NewGroundCombatAction(hotspotID, "IBAMA brigade dispatched", "Equipe PREVFOGO")
	assert.Equal(t, ActionTypeGround, ground.ActionType)
	assert.Equal(t, "Brigada terrestre, caminhões-pipa, abafadores", ground.ResourcesUsed)

	aerial := NewAerialCombatAction(hotspotID, "", "")
	assert.Equal(t, ActionTypeAerial, aerial.ActionType)
	assert.Equal(t, "Aeronaves, lançamento de água/retardante", aerial.ResourcesUsed)

	monitoring := NewMonitoringAction(hotspotID, "", "Defesa Civil")
	assert.Equal(t, ActionTypeMonitoring, monitoring.ActionType)
	assert.Equal(t, "Monitoramento por satélite, drones, equipe de vigilância", monitoring.ResourcesUsed)

	custom := NewCustomAction(hotspotID, "Aceiro", "firebreak line", "Brigada local", "tratores, motoniveladoras")
	assert.Equal(t, "Aceiro", custom.ActionType)
	assert.Equal(t, "tratores, motoniveladoras", custom.ResourcesUsed)

	for _, a := range []*CombatAction{ground, aerial, monitoring, custom} {
		assert.Equal(t, hotspotID, a.HotspotID)
		assert.Nil(t, a.EndedAt)
		assert.True(t, a.InProgress())
		assert.Empty(t, a.Outcome)
	}
}

func TestCombatAction_Conclude(t *testing.T) {
	a := NewGroundCombatAction(uuid.New(), "", "")
	require.True(t, a.InProgress())

	a.Conclude("extinguished")

	require.NotNil(t, a.EndedAt)
	assert.False(t, a.InProgress())
	assert.Equal(t, "extinguished", a.Outcome)
	assert.WithinDuration(t, time.Now(), *a.EndedAt, time.Second)
}

func TestCombatAction_DurationHours_InProgress(t *testing.T) {
	a := NewMonitoringAction(uuid.New(), "", "")
	assert.Nil(t, a.DurationHours())
}

func TestCombatAction_DurationHours_Spans(t *testing.T) {
	cases := []struct {
		name     string
		span     time.Duration
		expected float64
	}{
		{"half_hour", 30 * time.Minute, 0.5},
		{"ninety_minutes", 90 * time.Minute, 1.5},
		{"exactly_one_hour", time.Hour, 1.0},
		{"three_days", 72 * time.Hour, 72.0},
		{"forty_five_seconds", 45 * time.Second, 45.0 / 3600.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)
			end := start.Add(tc.span)
			a := &CombatAction{StartedAt: start, EndedAt: &end}

			got := a.DurationHours()
			require.NotNil(t, got)
			assert.InDelta(t, tc.expected, *got, 1e-9)
		})
	}
}
