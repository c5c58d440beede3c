package models

// Confidence labels, ordered Low < Medium < High by probability margin.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// Most-likely outcome labels.
const (
	OutcomeHomeWin = "home_win"
	OutcomeDraw    = "draw"
	OutcomeAwayWin = "away_win"
)

// Factor names as they appear in contribution breakdowns, in display order.
const (
	FactorForm           = "form"
	FactorHomeAdvantage  = "home_advantage"
	FactorInjuries       = "injuries"
	FactorLeaguePosition = "league_position"
	FactorHeadToHead     = "head_to_head"
	FactorAttack         = "attack"
	FactorDefense        = "defense"
)

// FactorNames lists all prediction factors in display order.
func FactorNames() []string {
	return []string{
		FactorForm,
		FactorHomeAdvantage,
		FactorInjuries,
		FactorLeaguePosition,
		FactorHeadToHead,
		FactorAttack,
		FactorDefense,
	}
}

// FactorContribution records one factor's signed share of the differential
// score, for display alongside the prediction.
type FactorContribution struct {
	Factor       string  `json:"factor"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// MatchPrediction is the complete output of a single prediction: a three-way
// probability distribution summing to 1.0, a predicted scoreline, the
// most-likely outcome, and a qualitative confidence label.
type MatchPrediction struct {
	HomeWinProb float64 `json:"home_win_prob"`
	DrawProb    float64 `json:"draw_prob"`
	AwayWinProb float64 `json:"away_win_prob"`

	HomeGoals int `json:"home_goals"`
	AwayGoals int `json:"away_goals"`

	Outcome    string `json:"outcome"`
	Confidence string `json:"confidence"`

	// Differential is the combined weighted score the probabilities were
	// derived from. Positive favors the home side.
	Differential float64 `json:"differential"`

	Factors []FactorContribution `json:"factors"`
}
