package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

// ListByParentGuardian returns the patients of one of the caller's guardians.
func (s *Service) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Patient, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, parentGuardianID); err != nil {
		return nil, err
	}

	list, err := s.patients.ListByParentGuardian(ctx, parentGuardianID)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return list, nil
}

// Get returns one patient of one of the caller's guardians.
func (s *Service) Get(ctx context.Context, parentGuardianID, patientID uuid.UUID) (*domain.Patient, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, parentGuardianID); err != nil {
		return nil, err
	}
	return access.GuardianPatient(ctx, s.patients, parentGuardianID, patientID)
}
