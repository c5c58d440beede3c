package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pitchside/predictor-api/internal/config"
	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/models"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a single fixture from flags",
	Long: `Predict computes win/draw/loss probabilities, a likely scoreline and a
confidence label for one fixture. All inputs default to zero; a team with
no data is treated as average-less, not as an error.`,
	RunE: runPredict,
}

var (
	homeName        string
	homeWins        int
	homeDraws       int
	homeLosses      int
	homePosition    int
	homeGoals       float64
	homeConceded    float64
	homeInjuries    int
	homeSuspensions int

	awayName        string
	awayWins        int
	awayDraws       int
	awayLosses      int
	awayPosition    int
	awayGoals       float64
	awayConceded    float64
	awayInjuries    int
	awaySuspensions int

	h2hHomeWins int
	h2hDraws    int
	h2hAwayWins int

	outputJSON bool
)

func init() {
	f := predictCmd.Flags()

	f.StringVar(&homeName, "home-name", "Home", "home team name")
	f.IntVar(&homeWins, "home-wins", 0, "home wins in the last five matches")
	f.IntVar(&homeDraws, "home-draws", 0, "home draws in the last five matches")
	f.IntVar(&homeLosses, "home-losses", 0, "home losses in the last five matches")
	f.IntVar(&homePosition, "home-position", 10, "home league position (1 is top)")
	f.Float64Var(&homeGoals, "home-goals", 0, "home goals scored this season")
	f.Float64Var(&homeConceded, "home-conceded", 0, "home goals conceded this season")
	f.IntVar(&homeInjuries, "home-injuries", 0, "home key players injured")
	f.IntVar(&homeSuspensions, "home-suspensions", 0, "home key players suspended")

	f.StringVar(&awayName, "away-name", "Away", "away team name")
	f.IntVar(&awayWins, "away-wins", 0, "away wins in the last five matches")
	f.IntVar(&awayDraws, "away-draws", 0, "away draws in the last five matches")
	f.IntVar(&awayLosses, "away-losses", 0, "away losses in the last five matches")
	f.IntVar(&awayPosition, "away-position", 10, "away league position (1 is top)")
	f.Float64Var(&awayGoals, "away-goals", 0, "away goals scored this season")
	f.Float64Var(&awayConceded, "away-conceded", 0, "away goals conceded this season")
	f.IntVar(&awayInjuries, "away-injuries", 0, "away key players injured")
	f.IntVar(&awaySuspensions, "away-suspensions", 0, "away key players suspended")

	f.IntVar(&h2hHomeWins, "h2h-home", 0, "recent head-to-head wins for the home side")
	f.IntVar(&h2hDraws, "h2h-draws", 0, "recent head-to-head draws")
	f.IntVar(&h2hAwayWins, "h2h-away", 0, "recent head-to-head wins for the away side")

	f.BoolVar(&outputJSON, "json", false, "emit the prediction as JSON")
}

// loadParams resolves the model parameter set for CLI commands, honoring the
// persistent --params flag.
func loadParams(cmd *cobra.Command) (models.ModelParams, error) {
	path, err := cmd.Root().PersistentFlags().GetString("params")
	if err != nil {
		return models.ModelParams{}, err
	}
	return config.LoadModelParams(path)
}

func runPredict(cmd *cobra.Command, args []string) error {
	params, err := loadParams(cmd)
	if err != nil {
		return err
	}
	predictor, err := logic.NewPredictor(params)
	if err != nil {
		return err
	}

	req := models.MatchPredictionRequest{
		HomeTeam: models.TeamInput{
			Name:           homeName,
			Form:           models.FormInput{Wins: homeWins, Draws: homeDraws, Losses: homeLosses},
			LeaguePosition: homePosition,
			GoalsScored:    homeGoals,
			GoalsConceded:  homeConceded,
			KeyInjuries:    homeInjuries,
			Suspensions:    homeSuspensions,
		},
		AwayTeam: models.TeamInput{
			Name:           awayName,
			Form:           models.FormInput{Wins: awayWins, Draws: awayDraws, Losses: awayLosses},
			LeaguePosition: awayPosition,
			GoalsScored:    awayGoals,
			GoalsConceded:  awayConceded,
			KeyInjuries:    awayInjuries,
			Suspensions:    awaySuspensions,
		},
		HeadToHead: models.HeadToHeadInput{HomeWins: h2hHomeWins, Draws: h2hDraws, AwayWins: h2hAwayWins},
	}
	if n := req.HomeTeam.Form.Matches(); n > 5 {
		return fmt.Errorf("home form covers %d matches, at most 5 allowed", n)
	}
	if n := req.AwayTeam.Form.Matches(); n > 5 {
		return fmt.Errorf("away form covers %d matches, at most 5 allowed", n)
	}

	home := req.HomeTeam.Profile(true)
	away := req.AwayTeam.Profile(false)
	prediction := predictor.Predict(home, away, req.HeadToHead.Record())

	if outputJSON {
		out := struct {
			HomeTeam string `json:"home_team"`
			AwayTeam string `json:"away_team"`
			models.MatchPrediction
		}{home.Name, away.Name, prediction}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printPrediction(os.Stdout, home.Name, away.Name, prediction)
	return nil
}

var (
	headerColor  = color.New(color.Bold)
	homeColor    = color.New(color.FgGreen)
	drawColor    = color.New(color.FgYellow)
	awayColor    = color.New(color.FgRed)
	subtleColor  = color.New(color.Faint)
	verdictColor = color.New(color.FgCyan, color.Bold)
)

func printPrediction(w *os.File, homeTeam, awayTeam string, p models.MatchPrediction) {
	fmt.Fprintf(w, "\n  %s\n\n", headerColor.Sprintf("%s vs %s", homeTeam, awayTeam))

	// Pad before coloring so the escape codes do not skew the columns.
	fmt.Fprintf(w, "  %s %6.1f%%  %s\n", homeColor.Sprintf("%-14s", homeTeam), p.HomeWinProb*100, probBar(p.HomeWinProb))
	fmt.Fprintf(w, "  %s %6.1f%%  %s\n", drawColor.Sprintf("%-14s", "Draw"), p.DrawProb*100, probBar(p.DrawProb))
	fmt.Fprintf(w, "  %s %6.1f%%  %s\n\n", awayColor.Sprintf("%-14s", awayTeam), p.AwayWinProb*100, probBar(p.AwayWinProb))

	fmt.Fprintf(w, "  Scoreline   %s\n", verdictColor.Sprintf("%d-%d", p.HomeGoals, p.AwayGoals))
	fmt.Fprintf(w, "  Outcome     %s\n", verdictColor.Sprint(outcomeLabel(p.Outcome, homeTeam, awayTeam)))
	fmt.Fprintf(w, "  Confidence  %s\n\n", verdictColor.Sprint(p.Confidence))

	fmt.Fprintf(w, "  %s\n", subtleColor.Sprint("Factor breakdown"))
	for _, fc := range p.Factors {
		fmt.Fprintf(w, "    %-16s %+.4f\n", fc.Factor, fc.Contribution)
	}
	fmt.Fprintf(w, "    %-16s %+.4f\n\n", "total", p.Differential)
}

func probBar(p float64) string {
	const width = 30
	n := int(math.Round(p * width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("#", n)
}

func outcomeLabel(outcome, homeTeam, awayTeam string) string {
	switch outcome {
	case models.OutcomeHomeWin:
		return homeTeam + " win"
	case models.OutcomeAwayWin:
		return awayTeam + " win"
	default:
		return "Draw"
	}
}
