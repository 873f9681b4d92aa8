package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/glucosegurus/glucosegurus-backend/internal/auth"
	"github.com/glucosegurus/glucosegurus-backend/internal/config"
	"github.com/glucosegurus/glucosegurus-backend/internal/transport/middleware"
	"github.com/glucosegurus/glucosegurus-backend/internal/transport/rest"
)

// NewRouter builds the REST routes for the services in st.
func NewRouter(st *Storage, logger *slog.Logger) *http.ServeMux {
	s := st.Services
	return rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(st.Pinger, BuildVersion(), st.Driver),
		Guardians:   rest.NewGuardianHandler(s.Guardians, logger),
		Patients:    rest.NewPatientHandler(s.Patients, logger),
		Notes:       rest.NewNoteHandler(s.Notes, logger),
		Doctors:     rest.NewDoctorHandler(s.Doctors, logger),
		Trajects:    rest.NewTrajectHandler(s.Trajects, logger),
		CareMoments: rest.NewCareMomentHandler(s.CareMoments, logger),
		Steps:       rest.NewStepHandler(s.Steps, logger),
	})
}

// NewHandler wraps the router in the middleware chain. Recovery is
// outermost so panics anywhere below it become 500 responses. The caller
// must Stop the returned rate limiter.
func NewHandler(cfg *config.Config, st *Storage, logger *slog.Logger) (http.Handler, *middleware.RateLimiter) {
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
		middleware.Auth(tokens),
	)
	return chain(NewRouter(st, logger)), limiter
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := OpenStorage(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	handler, limiter := NewHandler(cfg, st, logger)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("storage", st.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
