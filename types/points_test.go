package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePointsImpactOnly(t *testing.T) {
	points := ComputePoints(0.5, 0, 0, 0, false)
	assert.Equal(t, 50, points.ImpactPoints)
	assert.Equal(t, 0, points.BehaviorPoints)
	assert.Equal(t, 50, points.TotalPoints)
	require.Len(t, points.Breakdown, 1)
	assert.Contains(t, points.Breakdown[0], "0.50 kg CO2e avoided")
}

func TestComputePointsBehaviorComponents(t *testing.T) {
	points := ComputePoints(0, 2, 4, 3, true)
	// 2 goals * 10 + 20 close + 15 streak = 55, capped at the 50 floor
	assert.Equal(t, 0, points.ImpactPoints)
	assert.Equal(t, 50, points.BehaviorPoints)
	assert.Equal(t, 50, points.TotalPoints)

	joined := strings.Join(points.Breakdown, "\n")
	assert.Contains(t, joined, "+20 for completing 2 of 4 goals")
	assert.Contains(t, joined, "+20 for closing out the day")
	assert.Contains(t, joined, "+15 for a 3-day streak")
	assert.Contains(t, joined, "capped at 50")
}

func TestComputePointsGoalCountCappedAtThree(t *testing.T) {
	many := ComputePoints(2, 10, 10, 0, false)
	three := ComputePoints(2, 3, 10, 0, false)
	assert.Equal(t, three.BehaviorPoints, many.BehaviorPoints)
}

func TestComputePointsStreakCappedAtFifty(t *testing.T) {
	long := ComputePoints(2, 0, 0, 100, false)
	ten := ComputePoints(2, 0, 0, 10, false)
	assert.Equal(t, ten.BehaviorPoints, long.BehaviorPoints)
	assert.Equal(t, 50, long.BehaviorPoints)
}

func TestComputePointsBehaviorCapTracksImpact(t *testing.T) {
	// High avoidance lifts the cap above the 50 floor
	points := ComputePoints(0.45, 3, 3, 10, true)
	assert.Equal(t, 45, points.ImpactPoints)
	// 30 goals + 20 close + 50 streak = 100, capped at 45*2 = 90
	assert.Equal(t, 90, points.BehaviorPoints)
	assert.Equal(t, 135, points.TotalPoints)
}

func TestComputePointsCapInvariant(t *testing.T) {
	avoidedValues := []float64{0, 0.1, 0.3, 1, 5}
	for _, avoided := range avoidedValues {
		for goals := 0; goals <= 6; goals++ {
			for streak := 0; streak <= 30; streak += 5 {
				for _, closed := range []bool{false, true} {
					points := ComputePoints(avoided, goals, 6, streak, closed)

					cap := points.ImpactPoints * 2
					if cap < 50 {
						cap = 50
					}
					assert.LessOrEqual(t, points.BehaviorPoints, cap)
					assert.GreaterOrEqual(t, points.BehaviorPoints, 0)
					assert.Equal(t, points.ImpactPoints+points.BehaviorPoints+points.BonusPoints, points.TotalPoints)
				}
			}
		}
	}
}

func TestComputePointsZeroDay(t *testing.T) {
	points := ComputePoints(0, 0, 0, 0, false)
	assert.Equal(t, 0, points.TotalPoints)
	assert.Empty(t, points.Breakdown)
}
