package handlers

import (
	"context"

	"github.com/pitchside/predictor-api/internal/models"
)

// Mocks

type MockPredictor struct {
	PredictFunc func(home, away models.TeamProfile, h2h models.HeadToHead) models.MatchPrediction
	ParamsFunc  func() models.ModelParams
}

func (m *MockPredictor) Predict(home, away models.TeamProfile, h2h models.HeadToHead) models.MatchPrediction {
	if m.PredictFunc != nil {
		return m.PredictFunc(home, away, h2h)
	}
	return models.MatchPrediction{}
}

func (m *MockPredictor) Params() models.ModelParams {
	if m.ParamsFunc != nil {
		return m.ParamsFunc()
	}
	return models.DefaultModelParams()
}

type MockLimiter struct {
	AllowFunc func(ctx context.Context, key string) (bool, error)
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key)
	}
	return true, nil
}

// MockPingLimiter adds a remote backend probe on top of MockLimiter so the
// readiness path can be exercised.
type MockPingLimiter struct {
	MockLimiter
	PingFunc func(ctx context.Context) error
}

func (m *MockPingLimiter) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
