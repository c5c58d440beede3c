package models

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultModelParamsValidate(t *testing.T) {
	if err := DefaultModelParams().Validate(); err != nil {
		t.Fatalf("Validate() on defaults = %v, want nil", err)
	}
}

func TestWeightsSum(t *testing.T) {
	w := DefaultModelParams().Weights
	if sum := w.Sum(); math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Sum() = %.12f, want 1.0", sum)
	}
}

func TestValidateRejectsInvalidWeights(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ModelParams)
	}{
		{"sum above one", func(p *ModelParams) { p.Weights.Form = 0.40 }},
		{"sum below one", func(p *ModelParams) { p.Weights.Defense = 0.05 }},
		{"all zero", func(p *ModelParams) { p.Weights = Weights{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultModelParams()
			tt.mutate(&params)

			err := params.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidWeights) {
				t.Errorf("Validate() = %v, want ErrInvalidWeights", err)
			}
		})
	}
}

func TestValidateRejectsBadShapeConstants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ModelParams)
	}{
		{"negative weight", func(p *ModelParams) {
			p.Weights.Attack = -0.10
			p.Weights.Form = 0.45 // keeps the sum at 1.0
		}},
		{"zero form scale", func(p *ModelParams) { p.Normalization.FormScale = 0 }},
		{"one team table", func(p *ModelParams) { p.Normalization.TableSize = 1 }},
		{"zero goals ceiling", func(p *ModelParams) { p.Normalization.GoalsCeiling = 0 }},
		{"zero injury ceiling", func(p *ModelParams) { p.Normalization.InjuryCeiling = 0 }},
		{"zero steepness", func(p *ModelParams) { p.Probability.SigmoidSteepness = 0 }},
		{"draw base at one", func(p *ModelParams) { p.Probability.DrawBase = 1.0 }},
		{"negative draw base", func(p *ModelParams) { p.Probability.DrawBase = -0.1 }},
		{"zero draw spread", func(p *ModelParams) { p.Probability.DrawSpread = 0 }},
		{"negative bias", func(p *ModelParams) { p.Probability.HomeAdvantageBias = -1 }},
		{"zero reference matches", func(p *ModelParams) { p.Scoreline.ReferenceMatches = 0 }},
		{"negative goal bonus", func(p *ModelParams) { p.Scoreline.HomeGoalBonus = -0.5 }},
		{"negative max goals", func(p *ModelParams) { p.Scoreline.MaxGoals = -1 }},
		{"inverted margins", func(p *ModelParams) {
			p.Confidence.MediumMargin = 0.40
		}},
		{"equal margins", func(p *ModelParams) {
			p.Confidence.MediumMargin = p.Confidence.HighMargin
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultModelParams()
			tt.mutate(&params)

			if err := params.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidateAllowsZeroBias(t *testing.T) {
	params := DefaultModelParams()
	params.Probability.HomeAdvantageBias = 0

	if err := params.Validate(); err != nil {
		t.Errorf("Validate() with zero bias = %v, want nil", err)
	}
}
