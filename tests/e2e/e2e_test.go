//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/testhelper"
	"github.com/glucosegurus/glucosegurus-backend/internal/app"
	"github.com/glucosegurus/glucosegurus-backend/internal/auth"
	"github.com/glucosegurus/glucosegurus-backend/internal/config"
)

// testServer wraps the full HTTP stack for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	// Driver is the storage driver behind the server.
	Driver string
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-test-secret-key-minimum-32-chars!",
			JWTIssuer:      "glucosegurus-e2e",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}
}

// forEachDriver runs fn against the in-memory backend and against
// PostgreSQL in a container.
func forEachDriver(t *testing.T, fn func(t *testing.T, ts *testServer)) {
	t.Helper()

	t.Run(config.DriverMemory, func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
		st, err := app.OpenStorage(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, logger)
		require.NoError(t, err)
		fn(t, startServer(t, st, logger))
	})

	t.Run(config.DriverPostgres, func(t *testing.T) {
		if testing.Short() {
			t.Skip("postgres container skipped in short mode")
		}
		logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
		pool := testhelper.SetupTestDB(t)
		fn(t, startServer(t, app.NewPostgresStorage(pool, logger), logger))
	})
}

func startServer(t *testing.T, st *app.Storage, logger *slog.Logger) *testServer {
	t.Helper()

	cfg := testConfig()
	handler, limiter := app.NewHandler(cfg, st, logger)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		limiter.Stop()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Driver: st.Driver,
		jwt:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// tokenFor issues a bearer token for an account id.
func (ts *testServer) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

type response struct {
	Status   int
	Location string
	Body     []byte
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), "body: %s", r.Body)
}

func (r response) errorMessage(t *testing.T) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	r.decode(t, &body)
	return body.Error
}

// doRaw sends body as-is. An empty token sends no Authorization header.
func (ts *testServer) doRaw(t *testing.T, method, path, token, body string) response {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)

	return response{Status: resp.StatusCode, Location: resp.Header.Get("Location"), Body: out.Bytes()}
}

// do sends a JSON request. An empty token sends no Authorization header.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)

	return response{Status: resp.StatusCode, Location: resp.Header.Get("Location"), Body: out.Bytes()}
}
