package guardian

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

// List returns the guardians owned by the caller.
func (s *Service) List(ctx context.Context) ([]domain.ParentGuardian, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.guardians.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list parent guardians: %w", err)
	}
	return list, nil
}

// Get returns one of the caller's guardians.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ParentGuardian, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return access.OwnedGuardian(ctx, s.guardians, userID, id)
}
