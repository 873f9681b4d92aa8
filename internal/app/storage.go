package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/memory"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/caremoment"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/doctor"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/note"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/parentguardian"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/patient"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/traject"
	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres/trajectcaremoment"
	"github.com/glucosegurus/glucosegurus-backend/internal/config"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/catalog"
	guardiansvc "github.com/glucosegurus/glucosegurus-backend/internal/service/guardian"
	notesvc "github.com/glucosegurus/glucosegurus-backend/internal/service/note"
	patientsvc "github.com/glucosegurus/glucosegurus-backend/internal/service/patient"
)

// Services holds every domain service the API exposes.
type Services struct {
	Guardians   *guardiansvc.Service
	Patients    *patientsvc.Service
	Notes       *notesvc.Service
	Doctors     *catalog.Resource[domain.Doctor]
	Trajects    *catalog.Resource[domain.Traject]
	CareMoments *catalog.Resource[domain.CareMoment]
	Steps       *catalog.Steps
}

// Storage is an opened persistence backend.
type Storage struct {
	// Driver is config.DriverPostgres or config.DriverMemory.
	Driver   string
	Services Services
	Pinger   pinger
	close    func()
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage opens the backend selected by cfg.Driver and builds the
// services on top of it.
func OpenStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return openMemory(logger), nil
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// memoryPinger reports the in-memory backend as always reachable.
type memoryPinger struct{}

func (memoryPinger) Ping(context.Context) error { return nil }

func openMemory(logger *slog.Logger) *Storage {
	r := memory.New()
	return &Storage{
		Driver: config.DriverMemory,
		Pinger: memoryPinger{},
		Services: Services{
			Guardians:   guardiansvc.NewService(logger, r.Guardians),
			Patients:    patientsvc.NewService(logger, r.Patients, r.Guardians, r.Trajects, r.Doctors),
			Notes:       notesvc.NewService(logger, r.Notes, r.Guardians, r.Patients),
			Doctors:     catalog.NewDoctors(logger, r.Doctors),
			Trajects:    catalog.NewTrajects(logger, r.Trajects),
			CareMoments: catalog.NewCareMoments(logger, r.CareMoments),
			Steps:       catalog.NewSteps(logger, r.TrajectCareMoments, r.Trajects, r.CareMoments),
		},
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	st := NewPostgresStorage(pool, logger)
	st.close = pool.Close
	return st, nil
}

// NewPostgresStorage builds the services on an open pool. Every repository
// shares the pool. Closing the returned Storage leaves the pool open.
func NewPostgresStorage(pool *pgxpool.Pool, logger *slog.Logger) *Storage {
	var (
		guardians   = parentguardian.New(pool)
		patients    = patient.New(pool)
		trajects    = traject.New(pool)
		doctors     = doctor.New(pool)
		careMoments = caremoment.New(pool)
	)

	return &Storage{
		Driver: config.DriverPostgres,
		Pinger: pool,
		Services: Services{
			Guardians:   guardiansvc.NewService(logger, guardians),
			Patients:    patientsvc.NewService(logger, patients, guardians, trajects, doctors),
			Notes:       notesvc.NewService(logger, note.New(pool), guardians, patients),
			Doctors:     catalog.NewDoctors(logger, doctors),
			Trajects:    catalog.NewTrajects(logger, trajects),
			CareMoments: catalog.NewCareMoments(logger, careMoments),
			Steps:       catalog.NewSteps(logger, trajectcaremoment.New(pool), trajects, careMoments),
		},
	}
}
