package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glucosegurus/glucosegurus-backend/internal/auth"
	"github.com/glucosegurus/glucosegurus-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-with-enough-length-123",
			JWTIssuer:      "glucosegurus",
			AccessTokenTTL: time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 0, CleanupInterval: time.Minute},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), config.DatabaseConfig{Driver: "sqlite"}, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestOpenStorage_Memory(t *testing.T) {
	st, err := OpenStorage(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, discardLogger())
	require.NoError(t, err)
	defer st.Close()

	assert.Equal(t, config.DriverMemory, st.Driver)
	assert.NoError(t, st.Pinger.Ping(context.Background()))
	assert.NotNil(t, st.Services.Steps)
}

func TestNewHandler_AuthenticatesWithIssuedToken(t *testing.T) {
	cfg := testConfig()
	logger := discardLogger()

	st, err := OpenStorage(context.Background(), cfg.Database, logger)
	require.NoError(t, err)
	defer st.Close()

	handler, limiter := NewHandler(cfg, st, logger)
	defer limiter.Stop()

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := tokens.GenerateAccessToken("account-1")
	require.NoError(t, err)

	body := `{"firstName":"John","lastName":"Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/parentGuardians", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"userId":"account-1"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/parentGuardians/"))
}

func TestNewHandler_RejectsForeignSignature(t *testing.T) {
	cfg := testConfig()
	logger := discardLogger()

	st, err := OpenStorage(context.Background(), cfg.Database, logger)
	require.NoError(t, err)

	handler, limiter := NewHandler(cfg, st, logger)
	defer limiter.Stop()

	other := auth.NewJWTManager("another-secret-with-enough-length", cfg.Auth.JWTIssuer, time.Hour)
	token, err := other.GenerateAccessToken("account-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/parentGuardians", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewHandler_BannerIsPublic(t *testing.T) {
	cfg := testConfig()
	logger := discardLogger()

	st, err := OpenStorage(context.Background(), cfg.Database, logger)
	require.NoError(t, err)

	handler, limiter := NewHandler(cfg, st, logger)
	defer limiter.Stop()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"storage":"memory"`)
}
