// Renders the model's probability curves to an SVG for the docs. The sweep
// holds every input level except the home side's recent form, which runs
// from winless to perfect, so the chart shows how the three outcome
// probabilities respond to a single factor.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/models"
)

const sweepSteps = 60

func main() {
	params := models.DefaultModelParams()
	predictor, err := logic.NewPredictor(params)
	if err != nil {
		log.Fatal(err)
	}

	away := models.TeamProfile{
		Name:            "Away",
		RecentFormScore: 7,
		LeaguePosition:  10,
		GoalsScored:     25,
		GoalsConceded:   25,
	}

	var home, draw, awayWin []float64
	for i := 0; i <= sweepSteps; i++ {
		form := params.Normalization.FormScale * float64(i) / sweepSteps
		hp := models.TeamProfile{
			Name:            "Home",
			RecentFormScore: form,
			LeaguePosition:  10,
			GoalsScored:     25,
			GoalsConceded:   25,
			IsHome:          true,
		}
		p := predictor.Predict(hp, away, models.HeadToHead{})
		home = append(home, p.HomeWinProb)
		draw = append(draw, p.DrawProb)
		awayWin = append(awayWin, p.AwayWinProb)
	}

	svg := generateCurveSVG("Outcome probability vs home form", [][]float64{home, draw, awayWin},
		[]string{"home win", "draw", "away win"},
		[]string{"#2ecc71", "#f1c40f", "#e74c3c"})
	saveChart("probability_curves.svg", svg)
}

func saveChart(filename string, svg string) {
	if err := os.MkdirAll("docs/img", 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("docs/img/"+filename, []byte(svg), 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Chart generated: docs/img/%s\n", filename)
}

func generateCurveSVG(title string, series [][]float64, names []string, colors []string) string {
	width := 600
	height := 400
	padding := 50
	plotW := width - 2*padding
	plotH := height - 2*padding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height, width, height))

	// Background
	sb.WriteString(`<rect width="100%" height="100%" fill="#1a1a1a" />`)

	// Title
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="30" fill="white" font-family="Arial" font-size="20" text-anchor="middle">%s</text>`, width/2, title))

	// Gridlines at every 25%
	for q := 0; q <= 4; q++ {
		y := height - padding - q*plotH/4
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333" stroke-width="1" />`, padding, y, width-padding, y))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#888" font-family="Arial" font-size="10" text-anchor="end">%d%%</text>`, padding-6, y+4, q*25))
	}

	for s, values := range series {
		points := make([]string, 0, len(values))
		for i, v := range values {
			x := padding + i*plotW/(len(values)-1)
			y := height - padding - int(v*float64(plotH))
			points = append(points, fmt.Sprintf("%d,%d", x, y))
		}
		sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="2" />`, strings.Join(points, " "), colors[s]))

		// Legend
		lx := padding + 10
		ly := padding + 20*s
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="3" fill="%s" />`, lx, ly, colors[s]))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="white" font-family="Arial" font-size="12">%s</text>`, lx+18, ly+5, names[s]))
	}

	// Axes
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="white" stroke-width="2" />`, padding, height-padding, width-padding, height-padding))
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="white" stroke-width="2" />`, padding, padding, padding, height-padding))

	// X-axis labels
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="white" font-family="Arial" font-size="12" text-anchor="middle">home form 0 to %.0f points, away fixed at 7</text>`, width/2, height-padding+30, models.DefaultModelParams().Normalization.FormScale))

	sb.WriteString(`</svg>`)
	return sb.String()
}
