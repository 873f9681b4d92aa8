package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

// List returns the notes of every guardian the caller owns.
func (s *Service) List(ctx context.Context) ([]domain.Note, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return list, nil
}

// Get returns one of the caller's notes.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.ownedNote(ctx, userID, id)
}

// ListByPatient returns the notes about a patient of one of the caller's guardians.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Note, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	p, err := access.MustExist(ctx, s.patients, domain.EntityPatient, patientID)
	if err != nil {
		return nil, err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, p.ParentGuardianID); err != nil {
		return nil, err
	}

	list, err := s.notes.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list notes by patient: %w", err)
	}
	return list, nil
}

// ListByParentGuardian returns the notes of one of the caller's guardians.
func (s *Service) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Note, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, parentGuardianID); err != nil {
		return nil, err
	}

	list, err := s.notes.ListByParentGuardian(ctx, parentGuardianID)
	if err != nil {
		return nil, fmt.Errorf("list notes by parent guardian: %w", err)
	}
	return list, nil
}
