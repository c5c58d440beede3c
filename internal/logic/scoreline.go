package logic

import (
	"math"

	"github.com/pitchside/predictor-api/internal/models"
)

// scoreline estimates the final score independently of the probability
// stages. Each side's expected goals average its per-match scoring rate with
// the opponent's per-match conceding rate, and the home side gets a flat
// bonus. The per-match divisor is a constant, so a team with no recorded
// goals yields the 0-0 floor rather than a division by zero.
func (p *predictor) scoreline(home, away models.TeamProfile) (homeGoals, awayGoals int) {
	s := p.params.Scoreline

	expHome := blendRate(home.GoalsScored, away.GoalsConceded, s.ReferenceMatches) + s.HomeGoalBonus
	expAway := blendRate(away.GoalsScored, home.GoalsConceded, s.ReferenceMatches)

	return roundGoals(expHome, s.MaxGoals), roundGoals(expAway, s.MaxGoals)
}

// blendRate averages an attacking aggregate with the opposing conceding
// aggregate on a per-match basis. Negative aggregates are treated as zero.
func blendRate(scored, opponentConceded, referenceMatches float64) float64 {
	attack := math.Max(scored, 0)
	leak := math.Max(opponentConceded, 0)
	return (attack + leak) / (2 * referenceMatches)
}

// roundGoals rounds an expected-goals value to the nearest whole goal and
// clamps it to [0, maxGoals] for display.
func roundGoals(expected float64, maxGoals int) int {
	g := int(math.Round(expected))
	if g < 0 {
		g = 0
	}
	if g > maxGoals {
		g = maxGoals
	}
	return g
}
