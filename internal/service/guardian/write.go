package guardian

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

// Create registers a guardian for the caller. An account may own at most
// domain.MaxParentGuardiansPerUser guardians.
func (s *Service) Create(ctx context.Context, in Input) (*domain.ParentGuardian, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	g := &domain.ParentGuardian{ID: uuid.New(), UserID: userID}
	in.applyTo(g)
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// Count and insert are not atomic; two concurrent creates may both pass.
	count, err := s.guardians.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count parent guardians: %w", err)
	}
	if count >= domain.MaxParentGuardiansPerUser {
		return nil, domain.NewRuleViolation(domain.MsgGuardianLimitReached)
	}

	if err := s.guardians.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create parent guardian: %w", err)
	}

	s.log.InfoContext(ctx, "parent guardian created",
		slog.String("user_id", userID),
		slog.String("parent_guardian_id", g.ID.String()),
	)
	return g, nil
}

// Update replaces the names of one of the caller's guardians.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*domain.ParentGuardian, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	g, err := access.OwnedGuardian(ctx, s.guardians, userID, id)
	if err != nil {
		return nil, err
	}

	in.applyTo(g)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := s.guardians.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("update parent guardian: %w", err)
	}

	s.log.InfoContext(ctx, "parent guardian updated",
		slog.String("user_id", userID),
		slog.String("parent_guardian_id", g.ID.String()),
	)
	return g, nil
}

// Delete removes one of the caller's guardians.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, id); err != nil {
		return err
	}
	if err := s.guardians.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete parent guardian: %w", err)
	}

	s.log.InfoContext(ctx, "parent guardian deleted",
		slog.String("user_id", userID),
		slog.String("parent_guardian_id", id.String()),
	)
	return nil
}
