package types

import (
	"fmt"
	"math"
)

// GreenPoints is the result of the points engine for one day, with every
// contribution listed in Breakdown so the "why did I get N points" surface
// can show its work.
type GreenPoints struct {
	ImpactPoints   int      `json:"impactPoints"`
	BehaviorPoints int      `json:"behaviorPoints"`
	BonusPoints    int      `json:"bonusPoints"`
	TotalPoints    int      `json:"totalPoints"`
	Breakdown      []string `json:"breakdown"`
}

// ComputePoints converts a day's avoided emissions and behavior (goals,
// streak, daily-close ritual) into capped green points.
//
// Behavior points are capped at max(impactPoints*2, 50): the ratio stops
// pure box-ticking from outscoring real impact, while the floor of 50 keeps
// behavior credit meaningful on zero-avoidance days. These constants are
// load-bearing; see the points tests before changing any of them.
func ComputePoints(totalAvoidedCo2e float64, goalsCompleted, totalGoals, streakDays int, dailyCloseDone bool) GreenPoints {
	var breakdown []string

	impactPoints := int(math.Round(totalAvoidedCo2e * 100))
	if impactPoints > 0 {
		breakdown = append(breakdown, fmt.Sprintf("+%d impact points for %.2f kg CO2e avoided", impactPoints, totalAvoidedCo2e))
	}

	behaviorPoints := 0

	countedGoals := goalsCompleted
	if countedGoals > 3 {
		countedGoals = 3
	}
	if countedGoals > 0 {
		goalPoints := countedGoals * 10
		behaviorPoints += goalPoints
		breakdown = append(breakdown, fmt.Sprintf("+%d for completing %d of %d goals (max 3 counted)", goalPoints, goalsCompleted, totalGoals))
	}

	if dailyCloseDone {
		behaviorPoints += 20
		breakdown = append(breakdown, "+20 for closing out the day")
	}

	if streakDays > 0 {
		streakPoints := streakDays * 5
		if streakPoints > 50 {
			streakPoints = 50
		}
		behaviorPoints += streakPoints
		breakdown = append(breakdown, fmt.Sprintf("+%d for a %d-day streak (capped at 50)", streakPoints, streakDays))
	}

	behaviorCap := impactPoints * 2
	if behaviorCap < 50 {
		behaviorCap = 50
	}
	if behaviorPoints > behaviorCap {
		breakdown = append(breakdown, fmt.Sprintf("behavior points capped at %d (was %d)", behaviorCap, behaviorPoints))
		behaviorPoints = behaviorCap
	}

	bonusPoints := 0 // reserved

	return GreenPoints{
		ImpactPoints:   impactPoints,
		BehaviorPoints: behaviorPoints,
		BonusPoints:    bonusPoints,
		TotalPoints:    impactPoints + behaviorPoints + bonusPoints,
		Breakdown:      breakdown,
	}
}
