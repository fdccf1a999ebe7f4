package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelForActiveCount_Thresholds(t *testing.T) {
	cases := []struct {
		count    int64
		expected int
	}{
		{0, 1},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{7, 4},
		{9, 4},
		{10, 5},
		{25, 5},
		{1000, 5},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("count_%d", tc.count), func(t *testing.T) {
			assert.Equal(t, tc.expected, RiskLevelForActiveCount(tc.count))
		})
	}
}

func TestRiskLevelForActiveCount_StaysWithinBounds(t *testing.T) {
	for count := int64(0); count <= 100; count++ {
		level := RiskLevelForActiveCount(count)
		assert.GreaterOrEqual(t, level, MinRiskLevel)
		assert.LessOrEqual(t, level, MaxRiskLevel)
	}
}

func TestRiskLevelForActiveCount_IsMonotonic(t *testing.T) {
	prev := RiskLevelForActiveCount(0)
	for count := int64(1); count <= 100; count++ {
		level := RiskLevelForActiveCount(count)
		assert.GreaterOrEqual(t, level, prev, "risk level must not decrease as the active count grows")
		prev = level
	}
}
