package ui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/models"
)

func newTestForm(t *testing.T) *formModel {
	t.Helper()

	pred, err := logic.NewPredictor(models.DefaultModelParams())
	if err != nil {
		t.Fatalf("building predictor: %v", err)
	}
	return NewFormModel(pred).(*formModel)
}

func TestFormPredictsExampleFixture(t *testing.T) {
	m := newTestForm(t)

	m.predict()

	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if m.result == nil {
		t.Fatal("no result stored")
	}
	if m.homeName != "Arsenal" || m.awayName != "Liverpool" {
		t.Errorf("names = %q vs %q", m.homeName, m.awayName)
	}

	sum := m.result.HomeWinProb + m.result.DrawProb + m.result.AwayWinProb
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1.0", sum)
	}
}

func TestFormReportsBadNumber(t *testing.T) {
	m := newTestForm(t)
	m.inputs[fieldHomeWins].SetValue("three")

	m.predict()

	if m.errMsg == "" {
		t.Fatal("expected a parse error")
	}
	if m.result != nil {
		t.Error("result should stay empty after a parse error")
	}
}

func TestFormRejectsOverfullForm(t *testing.T) {
	m := newTestForm(t)
	m.inputs[fieldAwayWins].SetValue("3")
	m.inputs[fieldAwayDraws].SetValue("3")

	m.predict()

	if !strings.Contains(m.errMsg, "at most 5") {
		t.Errorf("errMsg = %q, want form-total rejection", m.errMsg)
	}
}

func TestFormBlankNumbersReadAsZero(t *testing.T) {
	m := newTestForm(t)
	for i := fieldHomeWins; i < fieldCount; i++ {
		m.inputs[i].SetValue("")
	}

	m.predict()

	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if m.result == nil {
		t.Fatal("no result stored")
	}
	if m.result.HomeGoals != 0 || m.result.AwayGoals != 0 {
		t.Errorf("scoreline = %d-%d, want 0-0 for empty sides", m.result.HomeGoals, m.result.AwayGoals)
	}
}

func TestFormFocusNavigation(t *testing.T) {
	m := newTestForm(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(*formModel)
	if m.focus != fieldHomeWins {
		t.Errorf("focus = %d after tab, want %d", m.focus, fieldHomeWins)
	}

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = back.(*formModel)
	if m.focus != fieldHomeName {
		t.Errorf("focus = %d after shift+tab, want %d", m.focus, fieldHomeName)
	}

	back, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = back.(*formModel)
	if m.focus != fieldH2HAwayWins {
		t.Errorf("focus = %d, want wraparound to %d", m.focus, fieldH2HAwayWins)
	}
}
