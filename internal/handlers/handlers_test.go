package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pitchside/predictor-api/internal/logic"
	"github.com/pitchside/predictor-api/internal/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	pred, err := logic.NewPredictor(models.DefaultModelParams())
	if err != nil {
		t.Fatalf("building predictor: %v", err)
	}

	return New(Config{
		Predictor:      pred,
		Logger:         zap.NewNop(),
		AllowedOrigins: []string{"*"},
	})
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
	if body["version"] != models.ModelVersion {
		t.Errorf("version = %v, want %s", body["version"], models.ModelVersion)
	}
}

func TestReady_TableDriven(t *testing.T) {
	pred, err := logic.NewPredictor(models.DefaultModelParams())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name           string
		handler        *Handler
		expectedStatus int
	}{
		{
			name: "engine only",
			handler: &Handler{
				predictor: pred,
				logger:    zap.NewNop().Sugar(),
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "healthy remote limiter",
			handler: &Handler{
				predictor: pred,
				limiter:   &MockPingLimiter{},
				logger:    zap.NewNop().Sugar(),
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unreachable remote limiter",
			handler: &Handler{
				predictor: pred,
				limiter: &MockPingLimiter{
					PingFunc: func(ctx context.Context) error { return errors.New("connection refused") },
				},
				logger: zap.NewNop().Sugar(),
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "local limiter needs no probe",
			handler: &Handler{
				predictor: pred,
				limiter:   &MockLimiter{},
				logger:    zap.NewNop().Sugar(),
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/ready", nil)
			w := httptest.NewRecorder()

			tt.handler.Ready(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{"health", "GET", "/health", "", http.StatusOK},
		{"ready", "GET", "/ready", "", http.StatusOK},
		{"metrics", "GET", "/metrics", "", http.StatusOK},
		{"model info", "GET", "/api/v1/model", "", http.StatusOK},
		{"predict", "POST", "/api/v1/predictions/match", validRequestBody, http.StatusOK},
		{"predict wrong method", "GET", "/api/v1/predictions/match", "", http.StatusMethodNotAllowed},
		{"unknown route", "GET", "/api/v1/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			var err error
			if tt.body != "" {
				req, err = http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			} else {
				req, err = http.NewRequest(tt.method, srv.URL+tt.path, nil)
			}
			if err != nil {
				t.Fatal(err)
			}

			resp, err := srv.Client().Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, resp.StatusCode)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		limiter        *MockLimiter
		expectedStatus int
	}{
		{
			name:           "allowed",
			limiter:        &MockLimiter{},
			expectedStatus: http.StatusOK,
		},
		{
			name: "denied",
			limiter: &MockLimiter{
				AllowFunc: func(ctx context.Context, key string) (bool, error) { return false, nil },
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name: "backend error fails open",
			limiter: &MockLimiter{
				AllowFunc: func(ctx context.Context, key string) (bool, error) {
					return false, errors.New("backend down")
				},
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{
				limiter: tt.limiter,
				logger:  zap.NewNop().Sugar(),
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/v1/model", nil)
			w := httptest.NewRecorder()

			h.RateLimit(next).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus == http.StatusTooManyRequests && w.Header().Get("Retry-After") == "" {
				t.Error("429 response missing Retry-After header")
			}
		})
	}
}

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"direct", "203.0.113.7:1234", nil, "203.0.113.7"},
		{"forwarded single", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.4"}, "198.51.100.4"},
		{"forwarded chain", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.2"}, "198.51.100.4"},
		{"real ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "192.0.2.9"}, "192.0.2.9"},
		{"no port", "203.0.113.7", nil, "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := extractClientIP(req); got != tt.want {
				t.Errorf("extractClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetModelInfo(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/model", nil)
	w := httptest.NewRecorder()

	h.GetModelInfo(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var info models.ModelInfo
	if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
		t.Fatalf("decoding body: %v", err)
	}

	if info.Version != models.ModelVersion {
		t.Errorf("version = %q, want %q", info.Version, models.ModelVersion)
	}
	if len(info.Factors) != 7 {
		t.Errorf("got %d factors, want 7", len(info.Factors))
	}
	if info.Weights != models.DefaultModelParams().Weights {
		t.Errorf("weights = %+v, want defaults", info.Weights)
	}
}
