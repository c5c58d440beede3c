package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/pitchside/predictor-api/internal/models"
)

// LoadModelParams builds the model parameter set: pinned defaults, overlaid
// with the TOML file at path when one is given, then validated. An empty
// path yields the defaults. A validation failure here must stop the process;
// a misconfigured weight table would silently produce invalid probability
// mass on every prediction.
func LoadModelParams(path string) (models.ModelParams, error) {
	params := models.DefaultModelParams()

	if path != "" {
		if _, err := toml.DecodeFile(path, &params); err != nil {
			return models.ModelParams{}, fmt.Errorf("reading model params %s: %w", path, err)
		}
	}

	if err := params.Validate(); err != nil {
		return models.ModelParams{}, fmt.Errorf("invalid model params: %w", err)
	}

	return params, nil
}
