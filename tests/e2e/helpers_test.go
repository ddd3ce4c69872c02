//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres"
	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres/curriculum"
	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres/sample"
	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/synphony-backend/internal/app"
	"github.com/heartmarshall/synphony-backend/internal/config"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
	"github.com/heartmarshall/synphony-backend/internal/transport/middleware"
	"github.com/heartmarshall/synphony-backend/internal/transport/rest"
)

const animalSettings = `{
  "letters": "a b c d e f g h i j k l m n o p q r s t u v w x y z",
  "moreWords": "catty sat rate bob fob big wig fig rig",
  "stages": [
    {"letters": "a c e r s t y", "sightWords": "feline rodent"},
    {"letters": "b f o", "sightWords": "one two"},
    {"letters": "g i w", "sightWords": "fruit nut"}
  ],
  "levels": [
    {"maxWordsPerSentence": 3, "maxWordsPerPage": 6, "maxWordsPerBook": 90},
    {"maxWordsPerSentence": 5, "maxWordsPerPage": 10, "maxWordsPerBook": 100}
  ]
}`

const animalSample = "catty catty, sat sat sat sat sat sat sat sat, bob bob bob, fob fob, wig, " +
	"fig fig fig fig fig fig, rig, catty, sat bob fob fig, sat fig, sat"

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Service *readers.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// setupTestServer wires the full HTTP stack against a migrated test
// database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
		},
		RateLimit: config.RateLimitConfig{Enabled: false},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Readers: config.ReadersConfig{
			PossibleWordsEnabled: true,
			NormalizeNFC:         true,
			MaxAllowedWords:      10000,
			QueryCacheSize:       64,
			MaxSyllables:         24,
		},
	}

	svc := readers.NewService(logger,
		curriculum.New(pool),
		sample.New(pool),
		postgres.NewTxManager(pool),
		app.ReadersServiceConfig(cfg.Readers),
	)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := app.NewRouter(cfg, logger, app.RouterDeps{
		Health:   rest.NewHealthHandler(pool, svc, "e2e"),
		API:      rest.NewReadersHandler(svc, logger, cfg.Server.MaxBodyBytes),
		Registry: prometheus.NewRegistry(),
		Limiter:  limiter,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Service: svc}
}

// do sends a request with an optional JSON or raw body and decodes a JSON
// response into out when out is not nil.
func (ts *testServer) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// newCurriculum stores the animal settings and sample under a unique name.
func newCurriculum(t *testing.T, ts *testServer) string {
	t.Helper()
	name := "animals-" + uuid.New().String()[:8]

	status := ts.do(t, http.MethodPut, "/api/v1/curricula/"+name+"/settings", animalSettings, nil)
	require.Equal(t, http.StatusOK, status)

	status = ts.do(t, http.MethodPost, "/api/v1/curricula/"+name+"/samples", map[string]any{
		"file_name": "animals.txt",
		"kind":      "sample",
		"content":   animalSample,
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	return name
}
