// Package patient implements the Patient use cases. Patients are reached
// through a guardian owned by the caller.
package patient

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

type patientRepo interface {
	access.Repository[domain.Patient, uuid.UUID]
	ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Patient, error)
}

// Service provides patient operations.
type Service struct {
	patients  patientRepo
	guardians access.Getter[domain.ParentGuardian, uuid.UUID]
	trajects  access.Getter[domain.Traject, uuid.UUID]
	doctors   access.Getter[domain.Doctor, uuid.UUID]
	log       *slog.Logger
}

// NewService creates a new Patient service.
func NewService(
	log *slog.Logger,
	patients patientRepo,
	guardians access.Getter[domain.ParentGuardian, uuid.UUID],
	trajects access.Getter[domain.Traject, uuid.UUID],
	doctors access.Getter[domain.Doctor, uuid.UUID],
) *Service {
	return &Service{
		patients:  patients,
		guardians: guardians,
		trajects:  trajects,
		doctors:   doctors,
		log:       log.With("service", "patient"),
	}
}

// Input is the client-editable part of a Patient. The guardian comes from
// the route.
type Input struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Avatar    int        `json:"avatar"`
	TrajectID uuid.UUID  `json:"trajectId"`
	DoctorID  *uuid.UUID `json:"doctorId,omitempty"`
}

func (in Input) applyTo(p *domain.Patient) {
	p.FirstName = strings.TrimSpace(in.FirstName)
	p.LastName = strings.TrimSpace(in.LastName)
	p.Avatar = in.Avatar
	p.TrajectID = in.TrajectID
	p.DoctorID = in.DoctorID
}

// checkReferences verifies the traject and, when set, the doctor exist.
// The traject is checked first.
func (s *Service) checkReferences(ctx context.Context, p *domain.Patient) error {
	if err := access.Exists(ctx, s.trajects, domain.EntityTraject, p.TrajectID); err != nil {
		return err
	}
	if p.DoctorID != nil {
		if err := access.Exists(ctx, s.doctors, domain.EntityDoctor, *p.DoctorID); err != nil {
			return err
		}
	}
	return nil
}
