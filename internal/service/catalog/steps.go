package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

type stepRepo interface {
	access.Repository[domain.TrajectCareMoment, domain.TrajectCareMomentKey]
	ListByTraject(ctx context.Context, trajectID uuid.UUID) ([]domain.TrajectCareMoment, error)
}

// Steps manages the care moments placed in trajects.
type Steps struct {
	steps       stepRepo
	trajects    access.Getter[domain.Traject, uuid.UUID]
	careMoments access.Getter[domain.CareMoment, uuid.UUID]
	log         *slog.Logger
}

// NewSteps creates the TrajectCareMoment service.
func NewSteps(
	log *slog.Logger,
	steps stepRepo,
	trajects access.Getter[domain.Traject, uuid.UUID],
	careMoments access.Getter[domain.CareMoment, uuid.UUID],
) *Steps {
	return &Steps{
		steps:       steps,
		trajects:    trajects,
		careMoments: careMoments,
		log:         log.With("service", "catalog", "entity", domain.EntityTrajectCareMoment),
	}
}

// StepInput is the editable part of a step. The key comes from the route.
type StepInput struct {
	Name        *string `json:"name,omitempty"`
	Step        int     `json:"step"`
	IsCompleted bool    `json:"isCompleted"`
}

func (in StepInput) applyTo(s *domain.TrajectCareMoment) {
	s.Name = nil
	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" {
			s.Name = &name
		}
	}
	s.Step = in.Step
	s.IsCompleted = in.IsCompleted
}

// List returns every step of every traject.
func (s *Steps) List(ctx context.Context) ([]domain.TrajectCareMoment, error) {
	if _, err := access.CurrentUser(ctx); err != nil {
		return nil, err
	}

	list, err := s.steps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list traject care moments: %w", err)
	}
	return list, nil
}

// ListByTraject returns the steps of an existing traject ordered by step.
func (s *Steps) ListByTraject(ctx context.Context, trajectID uuid.UUID) ([]domain.TrajectCareMoment, error) {
	if _, err := access.CurrentUser(ctx); err != nil {
		return nil, err
	}
	if err := access.Exists(ctx, s.trajects, domain.EntityTraject, trajectID); err != nil {
		return nil, err
	}

	list, err := s.steps.ListByTraject(ctx, trajectID)
	if err != nil {
		return nil, fmt.Errorf("list traject care moments: %w", err)
	}
	return list, nil
}

// Get returns one step.
func (s *Steps) Get(ctx context.Context, key domain.TrajectCareMomentKey) (*domain.TrajectCareMoment, error) {
	if _, err := access.CurrentUser(ctx); err != nil {
		return nil, err
	}
	return access.MustExist(ctx, s.steps, domain.EntityTrajectCareMoment, key)
}

// Create places a care moment into a traject. Both must exist.
func (s *Steps) Create(ctx context.Context, key domain.TrajectCareMomentKey, in StepInput) (*domain.TrajectCareMoment, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	step := &domain.TrajectCareMoment{TrajectID: key.TrajectID, CareMomentID: key.CareMomentID}
	in.applyTo(step)
	if err := step.Validate(); err != nil {
		return nil, err
	}
	if err := access.Exists(ctx, s.trajects, domain.EntityTraject, key.TrajectID); err != nil {
		return nil, err
	}
	if err := access.Exists(ctx, s.careMoments, domain.EntityCareMoment, key.CareMomentID); err != nil {
		return nil, err
	}

	if err := s.steps.Create(ctx, step); err != nil {
		return nil, fmt.Errorf("create traject care moment: %w", err)
	}

	s.log.InfoContext(ctx, "traject care moment created",
		slog.String("user_id", userID),
		slog.String("traject_id", key.TrajectID.String()),
		slog.String("care_moment_id", key.CareMomentID.String()),
		slog.Int("step", step.Step),
	)
	return step, nil
}

// Update replaces the name, step and completion of an existing step.
func (s *Steps) Update(ctx context.Context, key domain.TrajectCareMomentKey, in StepInput) (*domain.TrajectCareMoment, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	step, err := access.MustExist(ctx, s.steps, domain.EntityTrajectCareMoment, key)
	if err != nil {
		return nil, err
	}
	in.applyTo(step)
	if err := step.Validate(); err != nil {
		return nil, err
	}
	if err := s.steps.Update(ctx, step); err != nil {
		return nil, fmt.Errorf("update traject care moment: %w", err)
	}

	s.log.InfoContext(ctx, "traject care moment updated",
		slog.String("user_id", userID),
		slog.String("traject_id", key.TrajectID.String()),
		slog.String("care_moment_id", key.CareMomentID.String()),
	)
	return step, nil
}

// Delete removes a care moment from a traject.
func (s *Steps) Delete(ctx context.Context, key domain.TrajectCareMomentKey) error {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := access.Exists(ctx, s.steps, domain.EntityTrajectCareMoment, key); err != nil {
		return err
	}
	if err := s.steps.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete traject care moment: %w", err)
	}

	s.log.InfoContext(ctx, "traject care moment deleted",
		slog.String("user_id", userID),
		slog.String("traject_id", key.TrajectID.String()),
		slog.String("care_moment_id", key.CareMomentID.String()),
	)
	return nil
}
