package logic

import (
	"github.com/pitchside/predictor-api/internal/models"
)

// MatchPredictor produces a match prediction from two team profiles and
// their head-to-head record. Implementations are pure: no I/O, no clock, no
// randomness, and safe for concurrent use.
//
// The first profile is always the home side. The IsHome flags on the
// profiles are display metadata; the positional contract governs.
type MatchPredictor interface {
	Predict(home, away models.TeamProfile, h2h models.HeadToHead) models.MatchPrediction
	Params() models.ModelParams
}
