package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWeights indicates the configured factor weights do not form a
// valid distribution. A misconfigured weight set silently produces invalid
// probability mass, so this is checked once at startup and treated as fatal.
var ErrInvalidWeights = errors.New("factor weights must sum to 1.0")

// weightSumTolerance is the allowed floating-point drift on the weight sum.
const weightSumTolerance = 1e-9

// Weights holds the relative importance of each prediction factor.
// The seven weights must sum to exactly 1.0.
type Weights struct {
	Form           float64 `toml:"form" json:"form"`
	HomeAdvantage  float64 `toml:"home_advantage" json:"home_advantage"`
	Injuries       float64 `toml:"injuries" json:"injuries"`
	LeaguePosition float64 `toml:"league_position" json:"league_position"`
	HeadToHead     float64 `toml:"head_to_head" json:"head_to_head"`
	Attack         float64 `toml:"attack" json:"attack"`
	Defense        float64 `toml:"defense" json:"defense"`
}

// Sum returns the total of all seven weights.
func (w Weights) Sum() float64 {
	return w.Form + w.HomeAdvantage + w.Injuries + w.LeaguePosition +
		w.HeadToHead + w.Attack + w.Defense
}

// Normalization holds the fixed reference scales that map raw inputs onto
// [0,1] before weighting.
type Normalization struct {
	// FormScale is the form-point total that saturates the form factor.
	// Five wins in the last five matches yields 15 points.
	FormScale float64 `toml:"form_scale" json:"form_scale"`
	// TableSize is the number of teams in the league table. Position p
	// normalizes to (TableSize+1-p)/TableSize, so 1st maps to 1.0 and
	// 20th to 0.05.
	TableSize int `toml:"table_size" json:"table_size"`
	// GoalsCeiling is the season-aggregate goal count that saturates the
	// attack and defense factors.
	GoalsCeiling float64 `toml:"goals_ceiling" json:"goals_ceiling"`
	// InjuryCeiling is the unavailable-player count that saturates the
	// injury factor.
	InjuryCeiling float64 `toml:"injury_ceiling" json:"injury_ceiling"`
}

// Probability holds the shape constants for the score-to-probability
// transform.
type Probability struct {
	// SigmoidSteepness scales the differential before the sigmoid. With the
	// default weights the differential spans roughly [-0.69, 0.99], so a
	// steepness of 4 spreads that range over (0.06, 0.98).
	SigmoidSteepness float64 `toml:"sigmoid_steepness" json:"sigmoid_steepness"`
	// DrawBase is the raw draw mass at a perfectly level differential.
	DrawBase float64 `toml:"draw_base" json:"draw_base"`
	// DrawSpread controls how quickly the draw mass decays as the
	// differential moves away from zero.
	DrawSpread float64 `toml:"draw_spread" json:"draw_spread"`
	// HomeAdvantageBias scales the flat home-advantage term. 1.0 applies the
	// full configured weight; 0 removes home advantage entirely.
	HomeAdvantageBias float64 `toml:"home_advantage_bias" json:"home_advantage_bias"`
}

// Scoreline holds the expected-goals constants for the scoreline estimate.
type Scoreline struct {
	// ReferenceMatches converts season-aggregate goals into a per-match
	// rate. The divisor is constant, so teams with no recorded goals can
	// never cause a division by zero.
	ReferenceMatches float64 `toml:"reference_matches" json:"reference_matches"`
	// HomeGoalBonus is added to the home side's expected goals.
	HomeGoalBonus float64 `toml:"home_goal_bonus" json:"home_goal_bonus"`
	// MaxGoals caps a predicted goal count for display.
	MaxGoals int `toml:"max_goals" json:"max_goals"`
}

// Confidence holds the probability-margin boundaries for the qualitative
// confidence label.
type Confidence struct {
	// HighMargin is the minimum lead of the top outcome probability over
	// the runner-up for a "High" label.
	HighMargin float64 `toml:"high_margin" json:"high_margin"`
	// MediumMargin is the minimum lead for a "Medium" label. Anything
	// below is "Low".
	MediumMargin float64 `toml:"medium_margin" json:"medium_margin"`
}

// ModelParams is the complete, closed parameter set of the prediction model.
// It is loaded once at startup, validated, and never mutated afterwards.
type ModelParams struct {
	Weights       Weights       `toml:"weights" json:"weights"`
	Normalization Normalization `toml:"normalization" json:"normalization"`
	Probability   Probability   `toml:"probability" json:"probability"`
	Scoreline     Scoreline     `toml:"scoreline" json:"scoreline"`
	Confidence    Confidence    `toml:"confidence" json:"confidence"`
}

// DefaultModelParams returns the pinned default parameter set.
func DefaultModelParams() ModelParams {
	return ModelParams{
		Weights: Weights{
			Form:           0.25,
			HomeAdvantage:  0.15,
			Injuries:       0.15,
			LeaguePosition: 0.15,
			HeadToHead:     0.10,
			Attack:         0.10,
			Defense:        0.10,
		},
		Normalization: Normalization{
			FormScale:     15,
			TableSize:     20,
			GoalsCeiling:  100,
			InjuryCeiling: 10,
		},
		Probability: Probability{
			SigmoidSteepness:  4.0,
			DrawBase:          0.30,
			DrawSpread:        0.50,
			HomeAdvantageBias: 1.0,
		},
		Scoreline: Scoreline{
			ReferenceMatches: 19,
			HomeGoalBonus:    0.25,
			MaxGoals:         5,
		},
		Confidence: Confidence{
			HighMargin:   0.30,
			MediumMargin: 0.15,
		},
	}
}

// Validate checks the parameter set for internal consistency. It returns
// ErrInvalidWeights (wrapped) when the weights do not sum to 1.0; any other
// violation returns a descriptive error. Callers must treat a failure as
// fatal before serving predictions.
func (p ModelParams) Validate() error {
	if sum := p.Weights.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: got %.12f", ErrInvalidWeights, sum)
	}
	for name, w := range map[string]float64{
		"form":            p.Weights.Form,
		"home_advantage":  p.Weights.HomeAdvantage,
		"injuries":        p.Weights.Injuries,
		"league_position": p.Weights.LeaguePosition,
		"head_to_head":    p.Weights.HeadToHead,
		"attack":          p.Weights.Attack,
		"defense":         p.Weights.Defense,
	} {
		if w < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %f", name, w)
		}
	}

	if p.Normalization.FormScale <= 0 {
		return fmt.Errorf("form_scale must be positive, got %f", p.Normalization.FormScale)
	}
	if p.Normalization.TableSize < 2 {
		return fmt.Errorf("table_size must be at least 2, got %d", p.Normalization.TableSize)
	}
	if p.Normalization.GoalsCeiling <= 0 {
		return fmt.Errorf("goals_ceiling must be positive, got %f", p.Normalization.GoalsCeiling)
	}
	if p.Normalization.InjuryCeiling <= 0 {
		return fmt.Errorf("injury_ceiling must be positive, got %f", p.Normalization.InjuryCeiling)
	}

	if p.Probability.SigmoidSteepness <= 0 {
		return fmt.Errorf("sigmoid_steepness must be positive, got %f", p.Probability.SigmoidSteepness)
	}
	if p.Probability.DrawBase < 0 || p.Probability.DrawBase >= 1 {
		return fmt.Errorf("draw_base must be in [0,1), got %f", p.Probability.DrawBase)
	}
	if p.Probability.DrawSpread <= 0 {
		return fmt.Errorf("draw_spread must be positive, got %f", p.Probability.DrawSpread)
	}
	if p.Probability.HomeAdvantageBias < 0 {
		return fmt.Errorf("home_advantage_bias must be non-negative, got %f", p.Probability.HomeAdvantageBias)
	}

	if p.Scoreline.ReferenceMatches <= 0 {
		return fmt.Errorf("reference_matches must be positive, got %f", p.Scoreline.ReferenceMatches)
	}
	if p.Scoreline.HomeGoalBonus < 0 {
		return fmt.Errorf("home_goal_bonus must be non-negative, got %f", p.Scoreline.HomeGoalBonus)
	}
	if p.Scoreline.MaxGoals < 0 {
		return fmt.Errorf("max_goals must be non-negative, got %d", p.Scoreline.MaxGoals)
	}

	if p.Confidence.MediumMargin < 0 || p.Confidence.HighMargin > 1 ||
		p.Confidence.MediumMargin >= p.Confidence.HighMargin {
		return fmt.Errorf("confidence margins must satisfy 0 <= medium < high <= 1, got medium=%f high=%f",
			p.Confidence.MediumMargin, p.Confidence.HighMargin)
	}

	return nil
}
