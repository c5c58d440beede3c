package logic

import (
	"math"

	"github.com/pitchside/predictor-api/internal/models"
)

// sigmoidSaturation bounds the sigmoid argument. Beyond it the curve is
// within 1e-9 of its asymptote, so we return the limit directly instead of
// exponentiating huge values.
const sigmoidSaturation = 20.0

type predictor struct {
	params models.ModelParams
}

// NewPredictor validates the parameter set and returns a stateless predictor
// bound to it. A weight table that does not sum to 1.0 is rejected here,
// before any prediction can be served.
func NewPredictor(params models.ModelParams) (MatchPredictor, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &predictor{params: params}, nil
}

func (p *predictor) Params() models.ModelParams {
	return p.params
}

// Predict runs the three prediction stages: factor normalization into a
// weighted differential, the differential-to-probability transform, and the
// independent scoreline estimate. Out-of-range inputs are clamped, never
// rejected; the computation has no error path.
func (p *predictor) Predict(home, away models.TeamProfile, h2h models.HeadToHead) models.MatchPrediction {
	factors := p.contributions(home, away, h2h)

	var d float64
	for _, f := range factors {
		d += f.Contribution
	}

	pHome, pDraw, pAway := p.probabilities(d)
	homeGoals, awayGoals := p.scoreline(home, away)

	return models.MatchPrediction{
		HomeWinProb:  pHome,
		DrawProb:     pDraw,
		AwayWinProb:  pAway,
		HomeGoals:    homeGoals,
		AwayGoals:    awayGoals,
		Outcome:      outcome(pHome, pDraw, pAway),
		Confidence:   p.confidence(pHome, pDraw, pAway),
		Differential: d,
		Factors:      factors,
	}
}

// contributions computes the signed weighted share of every factor. Each
// entry is weight * (home term - away term) on the factor's normalized
// scale, with injuries and defense reversed (more is worse) and home
// advantage applied once as a flat bias toward the home side.
func (p *predictor) contributions(home, away models.TeamProfile, h2h models.HeadToHead) []models.FactorContribution {
	w := p.params.Weights
	n := p.params.Normalization

	return []models.FactorContribution{
		{
			Factor:       models.FactorForm,
			Weight:       w.Form,
			Contribution: w.Form * (normForm(home, n) - normForm(away, n)),
		},
		{
			Factor:       models.FactorHomeAdvantage,
			Weight:       w.HomeAdvantage,
			Contribution: w.HomeAdvantage * p.params.Probability.HomeAdvantageBias,
		},
		{
			Factor:       models.FactorInjuries,
			Weight:       w.Injuries,
			Contribution: w.Injuries * (normInjuries(away, n) - normInjuries(home, n)),
		},
		{
			Factor:       models.FactorLeaguePosition,
			Weight:       w.LeaguePosition,
			Contribution: w.LeaguePosition * (normPosition(home, n) - normPosition(away, n)),
		},
		{
			Factor:       models.FactorHeadToHead,
			Weight:       w.HeadToHead,
			Contribution: w.HeadToHead * headToHeadEdge(h2h),
		},
		{
			Factor:       models.FactorAttack,
			Weight:       w.Attack,
			Contribution: w.Attack * (normGoals(home.GoalsScored, n) - normGoals(away.GoalsScored, n)),
		},
		{
			Factor:       models.FactorDefense,
			Weight:       w.Defense,
			Contribution: w.Defense * (normGoals(away.GoalsConceded, n) - normGoals(home.GoalsConceded, n)),
		},
	}
}

// probabilities maps the differential onto a valid three-way distribution.
// The home and away curves are mirrored sigmoids, the draw curve is a
// Gaussian bump peaking at zero, and the final renormalization makes the
// three sum to exactly 1.0.
func (p *predictor) probabilities(d float64) (pHome, pDraw, pAway float64) {
	k := p.params.Probability.SigmoidSteepness

	// sigmoid(-x) = 1 - sigmoid(x); evaluating both directly keeps the
	// home and away paths bitwise symmetric under a side swap.
	homeRaw := sigmoid(k * d)
	awayRaw := sigmoid(-(k * d))

	spread := d / p.params.Probability.DrawSpread
	drawRaw := p.params.Probability.DrawBase * math.Exp(-(spread * spread))

	sum := homeRaw + awayRaw + drawRaw
	return homeRaw / sum, drawRaw / sum, awayRaw / sum
}

// confidence buckets the margin between the top two probabilities.
func (p *predictor) confidence(pHome, pDraw, pAway float64) string {
	top, second := topTwo(pHome, pDraw, pAway)

	margin := top - second
	switch {
	case margin >= p.params.Confidence.HighMargin:
		return models.ConfidenceHigh
	case margin >= p.params.Confidence.MediumMargin:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// outcome picks the most likely result. Exact ties resolve in home, draw,
// away order.
func outcome(pHome, pDraw, pAway float64) string {
	best, label := pHome, models.OutcomeHomeWin
	if pDraw > best {
		best, label = pDraw, models.OutcomeDraw
	}
	if pAway > best {
		label = models.OutcomeAwayWin
	}
	return label
}

func topTwo(a, b, c float64) (top, second float64) {
	top, second = a, b
	if second > top {
		top, second = second, top
	}
	if c > top {
		top, second = c, top
	} else if c > second {
		second = c
	}
	return top, second
}

func normForm(t models.TeamProfile, n models.Normalization) float64 {
	return clamp01(t.RecentFormScore / n.FormScale)
}

func normPosition(t models.TeamProfile, n models.Normalization) float64 {
	size := float64(n.TableSize)
	pos := clamp(float64(t.LeaguePosition), 1, size)
	return (size + 1 - pos) / size
}

func normGoals(goals float64, n models.Normalization) float64 {
	return clamp01(goals / n.GoalsCeiling)
}

func normInjuries(t models.TeamProfile, n models.Normalization) float64 {
	return clamp01(t.InjuryImpact / n.InjuryCeiling)
}

// headToHeadEdge is the signed historical edge in [-1, 1]: +1 when the home
// side won every recorded meeting, -1 when the away side did, 0 for an even
// or absent record.
func headToHeadEdge(h2h models.HeadToHead) float64 {
	total := h2h.Total()
	if total <= 0 {
		return 0
	}
	return float64(h2h.HomeWins-h2h.AwayWins) / float64(total)
}

func sigmoid(x float64) float64 {
	if x >= sigmoidSaturation {
		return 1
	}
	if x <= -sigmoidSaturation {
		return 0
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}
