package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pitchside/predictor-api/internal/models"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the active model parameters",
	Long: `Weights prints the factor weight table and the shape constants of the
active model, after validation. Pass --params to inspect an override file
before deploying it.`,
	RunE: runWeights,
}

func runWeights(cmd *cobra.Command, args []string) error {
	params, err := loadParams(cmd)
	if err != nil {
		return err
	}

	w := os.Stdout

	fmt.Fprintf(w, "\n  %s\n\n", headerColor.Sprint("Factor weights"))
	for _, row := range []struct {
		name  string
		value float64
	}{
		{models.FactorForm, params.Weights.Form},
		{models.FactorHomeAdvantage, params.Weights.HomeAdvantage},
		{models.FactorInjuries, params.Weights.Injuries},
		{models.FactorLeaguePosition, params.Weights.LeaguePosition},
		{models.FactorHeadToHead, params.Weights.HeadToHead},
		{models.FactorAttack, params.Weights.Attack},
		{models.FactorDefense, params.Weights.Defense},
	} {
		fmt.Fprintf(w, "    %-16s %.2f\n", row.name, row.value)
	}
	fmt.Fprintf(w, "    %-16s %.2f\n\n", "sum", params.Weights.Sum())

	fmt.Fprintf(w, "  %s\n", subtleColor.Sprint("Normalization"))
	fmt.Fprintf(w, "    form_scale        %.0f\n", params.Normalization.FormScale)
	fmt.Fprintf(w, "    table_size        %d\n", params.Normalization.TableSize)
	fmt.Fprintf(w, "    goals_ceiling     %.0f\n", params.Normalization.GoalsCeiling)
	fmt.Fprintf(w, "    injury_ceiling    %.0f\n\n", params.Normalization.InjuryCeiling)

	fmt.Fprintf(w, "  %s\n", subtleColor.Sprint("Probability"))
	fmt.Fprintf(w, "    sigmoid_steepness    %.2f\n", params.Probability.SigmoidSteepness)
	fmt.Fprintf(w, "    draw_base            %.2f\n", params.Probability.DrawBase)
	fmt.Fprintf(w, "    draw_spread          %.2f\n", params.Probability.DrawSpread)
	fmt.Fprintf(w, "    home_advantage_bias  %.2f\n\n", params.Probability.HomeAdvantageBias)

	fmt.Fprintf(w, "  %s\n", subtleColor.Sprint("Scoreline"))
	fmt.Fprintf(w, "    reference_matches  %.0f\n", params.Scoreline.ReferenceMatches)
	fmt.Fprintf(w, "    home_goal_bonus    %.2f\n", params.Scoreline.HomeGoalBonus)
	fmt.Fprintf(w, "    max_goals          %d\n\n", params.Scoreline.MaxGoals)

	fmt.Fprintf(w, "  %s\n", subtleColor.Sprint("Confidence"))
	fmt.Fprintf(w, "    high_margin    %.2f\n", params.Confidence.HighMargin)
	fmt.Fprintf(w, "    medium_margin  %.2f\n\n", params.Confidence.MediumMargin)

	return nil
}
