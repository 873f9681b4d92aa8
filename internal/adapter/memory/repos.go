package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Guardians is the in-memory ParentGuardian port.
type Guardians struct {
	*Store[domain.ParentGuardian, uuid.UUID]
}

// ListByUser returns the guardians owned by an account.
func (r *Guardians) ListByUser(ctx context.Context, userID string) ([]domain.ParentGuardian, error) {
	return r.Filter(ctx, func(g domain.ParentGuardian) bool { return g.UserID == userID })
}

// CountByUser returns how many guardians an account owns.
func (r *Guardians) CountByUser(ctx context.Context, userID string) (int, error) {
	list, err := r.ListByUser(ctx, userID)
	return len(list), err
}

// Patients is the in-memory Patient port.
type Patients struct {
	*Store[domain.Patient, uuid.UUID]
}

// ListByParentGuardian returns the patients of one guardian.
func (r *Patients) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Patient, error) {
	return r.Filter(ctx, func(p domain.Patient) bool { return p.ParentGuardianID == parentGuardianID })
}

// Notes is the in-memory Note port.
type Notes struct {
	*Store[domain.Note, uuid.UUID]
	guardians *Guardians
}

// ListByPatient returns the notes about a patient, newest first.
func (r *Notes) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Note, error) {
	return r.newestFirst(r.Filter(ctx, func(n domain.Note) bool { return n.PatientID == patientID }))
}

// ListByParentGuardian returns the notes of a guardian, newest first.
func (r *Notes) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Note, error) {
	return r.newestFirst(r.Filter(ctx, func(n domain.Note) bool { return n.ParentGuardianID == parentGuardianID }))
}

// ListByUser returns the notes of every guardian the account owns, newest first.
func (r *Notes) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	owned, err := r.guardians.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[uuid.UUID]struct{}, len(owned))
	for _, g := range owned {
		ids[g.ID] = struct{}{}
	}
	return r.newestFirst(r.Filter(ctx, func(n domain.Note) bool {
		_, ok := ids[n.ParentGuardianID]
		return ok
	}))
}

func (r *Notes) newestFirst(notes []domain.Note, err error) ([]domain.Note, error) {
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Date.After(notes[j].Date) })
	return notes, nil
}

// TrajectCareMoments is the in-memory TrajectCareMoment port.
type TrajectCareMoments struct {
	*Store[domain.TrajectCareMoment, domain.TrajectCareMomentKey]
}

// ListByTraject returns the steps of one traject ordered by step.
func (r *TrajectCareMoments) ListByTraject(ctx context.Context, trajectID uuid.UUID) ([]domain.TrajectCareMoment, error) {
	steps, err := r.Filter(ctx, func(t domain.TrajectCareMoment) bool { return t.TrajectID == trajectID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Step < steps[j].Step })
	return steps, nil
}

// Repositories bundles one in-memory store per entity.
type Repositories struct {
	Guardians          *Guardians
	Patients           *Patients
	Notes              *Notes
	Doctors            *Store[domain.Doctor, uuid.UUID]
	Trajects           *Store[domain.Traject, uuid.UUID]
	CareMoments        *Store[domain.CareMoment, uuid.UUID]
	TrajectCareMoments *TrajectCareMoments
}

// New creates empty stores for every entity.
func New() *Repositories {
	guardians := &Guardians{NewStore(domain.EntityParentGuardian, func(g *domain.ParentGuardian) uuid.UUID { return g.ID })}

	return &Repositories{
		Guardians: guardians,
		Patients:  &Patients{NewStore(domain.EntityPatient, func(p *domain.Patient) uuid.UUID { return p.ID })},
		Notes: &Notes{
			Store:     NewStore(domain.EntityNote, func(n *domain.Note) uuid.UUID { return n.ID }),
			guardians: guardians,
		},
		Doctors:     NewStore(domain.EntityDoctor, func(d *domain.Doctor) uuid.UUID { return d.ID }),
		Trajects:    NewStore(domain.EntityTraject, func(t *domain.Traject) uuid.UUID { return t.ID }),
		CareMoments: NewStore(domain.EntityCareMoment, func(c *domain.CareMoment) uuid.UUID { return c.ID }),
		TrajectCareMoments: &TrajectCareMoments{
			NewStore(domain.EntityTrajectCareMoment, func(t *domain.TrajectCareMoment) domain.TrajectCareMomentKey { return t.Key() }),
		},
	}
}
