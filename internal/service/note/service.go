// Package note implements the Note use cases.
package note

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

type noteRepo interface {
	access.Repository[domain.Note, uuid.UUID]
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Note, error)
	ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
}

// Service provides note operations.
type Service struct {
	notes     noteRepo
	guardians access.Getter[domain.ParentGuardian, uuid.UUID]
	patients  access.Getter[domain.Patient, uuid.UUID]
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new Note service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	guardians access.Getter[domain.ParentGuardian, uuid.UUID],
	patients access.Getter[domain.Patient, uuid.UUID],
) *Service {
	return &Service{
		notes:     notes,
		guardians: guardians,
		patients:  patients,
		now:       time.Now,
		log:       log.With("service", "note"),
	}
}

// Input is the client-editable part of a Note. A zero Date means now.
type Input struct {
	Date             time.Time `json:"date"`
	Text             string    `json:"text"`
	UserMood         int       `json:"userMood"`
	ParentGuardianID uuid.UUID `json:"parentGuardianId"`
	PatientID        uuid.UUID `json:"patientId"`
}

func (s *Service) applyTo(in Input, n *domain.Note) {
	n.Date = in.Date
	if n.Date.IsZero() {
		n.Date = s.now()
	}
	n.Date = n.Date.UTC()
	n.Text = strings.TrimSpace(in.Text)
	n.UserMood = in.UserMood
	n.ParentGuardianID = in.ParentGuardianID
	n.PatientID = in.PatientID
}

// checkWritable runs the chain for a note about to be stored: the guardian
// must be the caller's, then the fields must be valid, then the patient must
// be in that guardian's care.
func (s *Service) checkWritable(ctx context.Context, userID string, n *domain.Note) error {
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, n.ParentGuardianID); err != nil {
		return err
	}
	if err := n.Validate(); err != nil {
		return err
	}
	_, err := access.GuardianPatient(ctx, s.patients, n.ParentGuardianID, n.PatientID)
	return err
}

// ownedNote loads a note and checks its guardian is the caller's.
func (s *Service) ownedNote(ctx context.Context, userID string, id uuid.UUID) (*domain.Note, error) {
	n, err := access.MustExist(ctx, s.notes, domain.EntityNote, id)
	if err != nil {
		return nil, err
	}
	if _, err := access.OwnedGuardian(ctx, s.guardians, userID, n.ParentGuardianID); err != nil {
		return nil, err
	}
	return n, nil
}
