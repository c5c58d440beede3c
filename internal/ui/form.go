// Package ui renders the interactive prediction form for the predictor CLI.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/models"
)

// Field indexes. The home block, away block and head-to-head block are laid
// out in this order; the away block mirrors the home block field for field.
const (
	fieldHomeName = iota
	fieldHomeWins
	fieldHomeDraws
	fieldHomeLosses
	fieldHomePosition
	fieldHomeGoals
	fieldHomeConceded
	fieldHomeInjuries
	fieldHomeSuspensions

	fieldAwayName
	fieldAwayWins
	fieldAwayDraws
	fieldAwayLosses
	fieldAwayPosition
	fieldAwayGoals
	fieldAwayConceded
	fieldAwayInjuries
	fieldAwaySuspensions

	fieldH2HHomeWins
	fieldH2HDraws
	fieldH2HAwayWins

	fieldCount
)

var sideLabels = []string{
	"Team",
	"Wins (last 5)",
	"Draws (last 5)",
	"Losses (last 5)",
	"League position",
	"Goals scored",
	"Goals conceded",
	"Key injuries",
	"Suspensions",
}

var h2hLabels = []string{"Home wins", "Draws", "Away wins"}

// Example fixture the form starts from, so the first enter press already
// shows a meaningful prediction.
var exampleValues = []string{
	"Arsenal", "3", "1", "1", "4", "28", "15", "1", "0",
	"Liverpool", "2", "2", "1", "2", "31", "12", "2", "1",
	"2", "2", "1",
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	columnStyle  = lipgloss.NewStyle().PaddingRight(4)
)

type formModel struct {
	predictor logic.MatchPredictor
	inputs    []textinput.Model
	focus     int

	result   *models.MatchPrediction
	homeName string
	awayName string
	errMsg   string
}

// NewFormModel returns a Bubble Tea model holding the prediction form.
func NewFormModel(predictor logic.MatchPredictor) tea.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.SetValue(exampleValues[i])
		if i == fieldHomeName || i == fieldAwayName {
			ti.CharLimit = 64
			ti.Width = 18
		} else {
			ti.CharLimit = 6
			ti.Width = 6
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &formModel{
		predictor: predictor,
		inputs:    inputs,
	}
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.predict()
			return m, nil
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
	}
	return m, m.updateInputs(msg)
}

func (m *formModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *formModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// predict parses the form into engine inputs and stores the result. Parse
// errors land in errMsg and leave the previous result visible.
func (m *formModel) predict() {
	home, err := m.parseSide(fieldHomeName, "home")
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	away, err := m.parseSide(fieldAwayName, "away")
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	h2h, err := m.parseH2H()
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	hp := home.Profile(true)
	ap := away.Profile(false)
	prediction := m.predictor.Predict(hp, ap, h2h.Record())

	m.errMsg = ""
	m.homeName = hp.Name
	m.awayName = ap.Name
	m.result = &prediction
}

// parseSide reads the nine inputs of one side block starting at base.
func (m *formModel) parseSide(base int, side string) (models.TeamInput, error) {
	ints := make([]int, 0, 6)
	for _, off := range []int{1, 2, 3, 4, 7, 8} {
		v, err := m.intField(base+off, side)
		if err != nil {
			return models.TeamInput{}, err
		}
		ints = append(ints, v)
	}
	scored, err := m.floatField(base+5, side)
	if err != nil {
		return models.TeamInput{}, err
	}
	conceded, err := m.floatField(base+6, side)
	if err != nil {
		return models.TeamInput{}, err
	}

	in := models.TeamInput{
		Name:           m.inputs[base].Value(),
		Form:           models.FormInput{Wins: ints[0], Draws: ints[1], Losses: ints[2]},
		LeaguePosition: ints[3],
		GoalsScored:    scored,
		GoalsConceded:  conceded,
		KeyInjuries:    ints[4],
		Suspensions:    ints[5],
	}
	if n := in.Form.Matches(); n > 5 {
		return models.TeamInput{}, fmt.Errorf("%s form covers %d matches, at most 5 allowed", side, n)
	}
	return in, nil
}

func (m *formModel) parseH2H() (models.HeadToHeadInput, error) {
	var vals [3]int
	for i := 0; i < 3; i++ {
		v, err := m.intField(fieldH2HHomeWins+i, "head-to-head")
		if err != nil {
			return models.HeadToHeadInput{}, err
		}
		vals[i] = v
	}
	return models.HeadToHeadInput{HomeWins: vals[0], Draws: vals[1], AwayWins: vals[2]}, nil
}

func (m *formModel) intField(i int, side string) (int, error) {
	raw := strings.TrimSpace(m.inputs[i].Value())
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %q is not a whole number", side, fieldLabel(i), raw)
	}
	return v, nil
}

func (m *formModel) floatField(i int, side string) (float64, error) {
	raw := strings.TrimSpace(m.inputs[i].Value())
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %q is not a number", side, fieldLabel(i), raw)
	}
	return v, nil
}

func fieldLabel(i int) string {
	switch {
	case i < fieldAwayName:
		return strings.ToLower(sideLabels[i])
	case i < fieldH2HHomeWins:
		return strings.ToLower(sideLabels[i-fieldAwayName])
	default:
		return strings.ToLower(h2hLabels[i-fieldH2HHomeWins])
	}
}

func (m *formModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Match Predictor"))
	b.WriteString("\n\n")

	homeCol := m.renderSide("Home", fieldHomeName)
	awayCol := m.renderSide("Away", fieldAwayName)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columnStyle.Render(homeCol), awayCol))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Head to head (recent meetings)"))
	b.WriteString("\n")
	for i, label := range h2hLabels {
		b.WriteString(m.renderField(label, fieldH2HHomeWins+i))
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}
	if m.result != nil {
		b.WriteString(renderResult(m.homeName, m.awayName, *m.result))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field  enter: predict  esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *formModel) renderSide(title string, base int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	for i, label := range sideLabels {
		b.WriteString(m.renderField(label, base+i))
	}
	return b.String()
}

func (m *formModel) renderField(label string, i int) string {
	styled := labelStyle
	if i == m.focus {
		styled = focusedStyle
	}
	return fmt.Sprintf("%s %s\n", styled.Render(fmt.Sprintf("%-16s", label)), m.inputs[i].View())
}
