package models

import "time"

// ModelVersion identifies the pinned parameter set served by this build.
const ModelVersion = "1.0.0"

// FormInput is a side's last-five record as collected from the user.
// Win/draw/loss counts are converted to form points (win 3, draw 1) before
// prediction.
type FormInput struct {
	Wins   int `json:"wins" validate:"min=0,max=5"`
	Draws  int `json:"draws" validate:"min=0,max=5"`
	Losses int `json:"losses" validate:"min=0,max=5"`
}

// Matches returns the number of matches the record covers.
func (f FormInput) Matches() int {
	return f.Wins + f.Draws + f.Losses
}

// TeamInput is one side of a prediction request. Goal counts are
// season-to-date aggregates; injuries and suspensions are counts of
// unavailable key players and are summed into a single impact score.
type TeamInput struct {
	Name           string    `json:"name" validate:"max=64"`
	Form           FormInput `json:"form"`
	LeaguePosition int       `json:"league_position" validate:"min=1,max=20"`
	GoalsScored    float64   `json:"goals_scored" validate:"min=0,max=150"`
	GoalsConceded  float64   `json:"goals_conceded" validate:"min=0,max=150"`
	KeyInjuries    int       `json:"key_injuries" validate:"min=0,max=11"`
	Suspensions    int       `json:"suspensions" validate:"min=0,max=11"`
}

// Profile converts the raw input into the engine's TeamProfile, deriving
// form points, summing unavailable players, and sanitizing the display name.
func (t TeamInput) Profile(isHome bool) TeamProfile {
	name := SanitizeTeamName(t.Name)
	if name == "" {
		if isHome {
			name = "Home"
		} else {
			name = "Away"
		}
	}

	return TeamProfile{
		Name:            name,
		RecentFormScore: FormPoints(t.Form.Wins, t.Form.Draws),
		LeaguePosition:  t.LeaguePosition,
		GoalsScored:     t.GoalsScored,
		GoalsConceded:   t.GoalsConceded,
		InjuryImpact:    float64(t.KeyInjuries + t.Suspensions),
		IsHome:          isHome,
	}
}

// HeadToHeadInput is the recent meeting record between the two sides, from
// the home side's perspective. All zeroes means no history.
type HeadToHeadInput struct {
	HomeWins int `json:"home_wins" validate:"min=0,max=20"`
	Draws    int `json:"draws" validate:"min=0,max=20"`
	AwayWins int `json:"away_wins" validate:"min=0,max=20"`
}

// Record converts the input into the engine's HeadToHead type.
func (h HeadToHeadInput) Record() HeadToHead {
	return HeadToHead{HomeWins: h.HomeWins, Draws: h.Draws, AwayWins: h.AwayWins}
}

// MatchPredictionRequest is the body of POST /api/v1/predictions/match.
type MatchPredictionRequest struct {
	HomeTeam   TeamInput       `json:"home_team" validate:"required"`
	AwayTeam   TeamInput       `json:"away_team" validate:"required"`
	HeadToHead HeadToHeadInput `json:"head_to_head"`
}

// MatchPredictionResponse wraps a MatchPrediction with request identity and
// timing. The ID and timestamp are assigned by the API layer; the prediction
// itself is fully deterministic.
type MatchPredictionResponse struct {
	PredictionID string `json:"prediction_id"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	MatchPrediction
	GeneratedAt time.Time `json:"generated_at"`
}

// ModelInfo describes the served model: its factor list and the full
// parameter set, so clients can display the weight table.
type ModelInfo struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Factors []string `json:"factors"`
	ModelParams
}
