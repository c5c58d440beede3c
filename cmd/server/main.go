// Command server runs the prediction HTTP API. It loads configuration and
// model parameters, wires the engine, rate limiter and handlers, and serves
// until interrupted.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	_ "github.com/pitchside/predictor-api/docs"
	"github.com/pitchside/predictor-api/internal/config"
	"github.com/pitchside/predictor-api/internal/handlers"
	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/ratelimit"
)

// @title Pitchside Predictor API
// @version 1.0
// @description Deterministic match outcome predictions from team form, table position, squad availability and head-to-head record.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Model parameters are validated here, before the server binds. A weight
	// set that does not sum to 1.0 must never serve a prediction.
	params, err := config.LoadModelParams(cfg.ModelParamsPath)
	if err != nil {
		sugar.Fatalw("Invalid model parameters", "error", err, "path", cfg.ModelParamsPath)
	}

	predictor, err := logic.NewPredictor(params)
	if err != nil {
		sugar.Fatalw("Building predictor", "error", err)
	}

	limiter, closeLimiter, err := newLimiter(cfg, sugar)
	if err != nil {
		sugar.Fatalw("Building rate limiter", "error", err)
	}
	defer closeLimiter()

	h := handlers.New(handlers.Config{
		Predictor:      predictor,
		Limiter:        limiter,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(),
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("Server listening",
			"port", cfg.Port,
			"env", cfg.Env,
			"params_path", cfg.ModelParamsPath,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Infow("Shutting down", "timeout", cfg.ShutdownTimeout)
		shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("Server error", "error", err)
	}
	sugar.Infow("Server stopped")
}

func newLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

// newLimiter picks the rate-limit backend: Redis when REDIS_URL is set,
// otherwise in-process buckets. A non-positive rate disables limiting.
func newLimiter(cfg *config.Config, sugar *zap.SugaredLogger) (ratelimit.Limiter, func(), error) {
	if cfg.RateLimitPerSecond <= 0 {
		sugar.Warnw("Rate limiting disabled")
		return nil, func() {}, nil
	}

	if cfg.RedisURL == "" {
		return ratelimit.NewLocal(cfg.RateLimitPerSecond, cfg.RateLimitBurst), func() {}, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// The limiter fails open, so an unreachable Redis degrades rather
		// than blocks startup.
		sugar.Warnw("Redis unreachable at startup", "error", err)
	}

	sugar.Infow("Rate limiting via Redis", "addr", opt.Addr)
	return ratelimit.NewRedis(client, cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		func() { client.Close() }, nil
}
