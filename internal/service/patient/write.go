package patient

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

// Create adds a patient to one of the caller's guardians.
func (s *Service) Create(ctx context.Context, parentGuardianID uuid.UUID, in Input) (*domain.Patient, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, parentGuardianID); err != nil {
		return nil, err
	}

	p := &domain.Patient{ID: uuid.New(), ParentGuardianID: parentGuardianID}
	in.applyTo(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, p); err != nil {
		return nil, err
	}

	if err := s.patients.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	s.log.InfoContext(ctx, "patient created",
		slog.String("user_id", userID),
		slog.String("parent_guardian_id", parentGuardianID.String()),
		slog.String("patient_id", p.ID.String()),
	)
	return p, nil
}

// Update replaces a patient of one of the caller's guardians. The patient
// stays with the guardian of the route.
func (s *Service) Update(ctx context.Context, parentGuardianID, patientID uuid.UUID, in Input) (*domain.Patient, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, parentGuardianID); err != nil {
		return nil, err
	}
	p, err := access.GuardianPatient(ctx, s.patients, parentGuardianID, patientID)
	if err != nil {
		return nil, err
	}

	in.applyTo(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, p); err != nil {
		return nil, err
	}

	if err := s.patients.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	s.log.InfoContext(ctx, "patient updated",
		slog.String("user_id", userID),
		slog.String("patient_id", p.ID.String()),
	)
	return p, nil
}

// Delete removes a patient of one of the caller's guardians.
func (s *Service) Delete(ctx context.Context, parentGuardianID, patientID uuid.UUID) error {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, parentGuardianID); err != nil {
		return err
	}
	if _, err := access.GuardianPatient(ctx, s.patients, parentGuardianID, patientID); err != nil {
		return err
	}

	if err := s.patients.Delete(ctx, patientID); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}

	s.log.InfoContext(ctx, "patient deleted",
		slog.String("user_id", userID),
		slog.String("patient_id", patientID.String()),
	)
	return nil
}
