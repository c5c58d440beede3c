package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/pitchside/predictor-api/internal/models"
)

var (
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	nameStyle    = lipgloss.NewStyle().Width(16)
	verdictStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	factorStyle  = lipgloss.NewStyle().Faint(true)
)

func renderResult(home, away string, p models.MatchPrediction) string {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 30
	prog.ShowPercentage = false

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s %5.1f%%\n",
		nameStyle.Render(home), prog.ViewAs(p.HomeWinProb), p.HomeWinProb*100))
	b.WriteString(fmt.Sprintf("%s %s %5.1f%%\n",
		nameStyle.Render("Draw"), prog.ViewAs(p.DrawProb), p.DrawProb*100))
	b.WriteString(fmt.Sprintf("%s %s %5.1f%%\n\n",
		nameStyle.Render(away), prog.ViewAs(p.AwayWinProb), p.AwayWinProb*100))

	b.WriteString(fmt.Sprintf("Scoreline   %s\n", verdictStyle.Render(fmt.Sprintf("%d-%d", p.HomeGoals, p.AwayGoals))))
	b.WriteString(fmt.Sprintf("Outcome     %s\n", verdictStyle.Render(outcomeText(p.Outcome, home, away))))
	b.WriteString(fmt.Sprintf("Confidence  %s\n\n", verdictStyle.Render(p.Confidence)))

	for _, fc := range p.Factors {
		b.WriteString(factorStyle.Render(fmt.Sprintf("%-16s %+.4f", fc.Factor, fc.Contribution)))
		b.WriteString("\n")
	}
	b.WriteString(factorStyle.Render(fmt.Sprintf("%-16s %+.4f", "total", p.Differential)))

	return panelStyle.Render(b.String())
}

func outcomeText(outcome, home, away string) string {
	switch outcome {
	case models.OutcomeHomeWin:
		return home + " win"
	case models.OutcomeAwayWin:
		return away + " win"
	default:
		return "Draw"
	}
}
