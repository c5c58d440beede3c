package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pitchside/predictor-api/internal/models"
)

func writeParamsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model_params.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing params file: %v", err)
	}
	return path
}

func TestLoadModelParamsDefaults(t *testing.T) {
	params, err := LoadModelParams("")
	if err != nil {
		t.Fatalf("LoadModelParams(\"\") error = %v", err)
	}
	if params != models.DefaultModelParams() {
		t.Errorf("got %+v, want pinned defaults", params)
	}
}

func TestLoadModelParamsOverlay(t *testing.T) {
	path := writeParamsFile(t, `
[probability]
sigmoid_steepness = 6.0
home_advantage_bias = 0.0

[scoreline]
max_goals = 9
`)

	params, err := LoadModelParams(path)
	if err != nil {
		t.Fatalf("LoadModelParams() error = %v", err)
	}

	if params.Probability.SigmoidSteepness != 6.0 {
		t.Errorf("SigmoidSteepness = %v, want 6.0", params.Probability.SigmoidSteepness)
	}
	if params.Probability.HomeAdvantageBias != 0 {
		t.Errorf("HomeAdvantageBias = %v, want 0", params.Probability.HomeAdvantageBias)
	}
	if params.Scoreline.MaxGoals != 9 {
		t.Errorf("MaxGoals = %d, want 9", params.Scoreline.MaxGoals)
	}

	// Sections the overlay does not touch keep their defaults.
	if params.Weights != models.DefaultModelParams().Weights {
		t.Errorf("Weights = %+v, want defaults", params.Weights)
	}
}

func TestLoadModelParamsRejectsBadWeights(t *testing.T) {
	path := writeParamsFile(t, `
[weights]
form = 0.50
home_advantage = 0.15
injuries = 0.15
league_position = 0.15
head_to_head = 0.10
attack = 0.10
defense = 0.10
`)

	_, err := LoadModelParams(path)
	if err == nil {
		t.Fatal("LoadModelParams() accepted weights summing to 1.25")
	}
	if !errors.Is(err, models.ErrInvalidWeights) {
		t.Errorf("error = %v, want ErrInvalidWeights", err)
	}
}

func TestLoadModelParamsMissingFile(t *testing.T) {
	if _, err := LoadModelParams(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadModelParams() on a missing file = nil, want error")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// Blank out anything the surrounding environment may carry.
	for _, key := range []string{"PORT", "ENV", "ALLOWED_ORIGINS", "RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.RateLimitPerSecond != 10 || cfg.RateLimitBurst != 20 {
		t.Errorf("rate limits = %d/%d, want 10/20", cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("AllowedOrigins is empty, want at least the default origin")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("RATE_LIMIT_PER_SECOND", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 9091 {
		t.Errorf("Port = %d, want 9091", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v, want two trimmed origins", cfg.AllowedOrigins)
	}
	if cfg.RateLimitPerSecond != 3 {
		t.Errorf("RateLimitPerSecond = %d, want 3", cfg.RateLimitPerSecond)
	}
	if cfg.ShutdownTimeout.Seconds() != 30 {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
}
