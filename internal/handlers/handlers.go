package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/ratelimit"
)

// MaxBodySize limits the size of request bodies to 64KB. Prediction
// requests are a few hundred bytes; anything larger is noise.
const MaxBodySize = 65536

type Config struct {
	Predictor logic.MatchPredictor
	Limiter   ratelimit.Limiter
	Logger    *zap.Logger

	// CORS
	AllowedOrigins []string
}

type Handler struct {
	predictor      logic.MatchPredictor
	limiter        ratelimit.Limiter
	logger         *zap.SugaredLogger
	validator      *validator.Validate
	allowedOrigins []string
}

func New(cfg Config) *Handler {
	return &Handler{
		predictor:      cfg.Predictor,
		limiter:        cfg.Limiter,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
		allowedOrigins: cfg.AllowedOrigins,
	}
}
