package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

// Create stores a note written by one of the caller's guardians.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Note, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	n := &domain.Note{ID: uuid.New()}
	s.applyTo(in, n)
	if err := s.checkWritable(ctx, userID, n); err != nil {
		return nil, err
	}

	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID),
		slog.String("note_id", n.ID.String()),
		slog.String("patient_id", n.PatientID.String()),
	)
	return n, nil
}

// Update replaces one of the caller's notes. The replacement runs the same
// chain as Create, so a note can only move between the caller's guardians
// and their own patients.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*domain.Note, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.ownedNote(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	s.applyTo(in, n)
	if err := s.checkWritable(ctx, userID, n); err != nil {
		return nil, err
	}

	if err := s.notes.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID),
		slog.String("note_id", n.ID.String()),
	)
	return n, nil
}

// Delete removes one of the caller's notes.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if _, err := s.ownedNote(ctx, userID, id); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID),
		slog.String("note_id", id.String()),
	)
	return nil
}
