// Package patient implements the Patient repository using PostgreSQL.
package patient

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Repo provides patient persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Table[domain.Patient, uuid.UUID]
}

// New creates a new patient repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		Table: postgres.MustNewTable(q, postgres.TableConfig[domain.Patient, uuid.UUID]{
			Name:    "patients",
			Entity:  "patient",
			Keys:    []string{"id"},
			Columns: []string{"first_name", "last_name", "avatar", "parent_guardian_id", "traject_id", "doctor_id"},
			OrderBy: []string{"last_name", "first_name"},
			KeyArgs: postgres.IDArgs,
			Values: func(p *domain.Patient) []any {
				return []any{p.ID, p.FirstName, p.LastName, p.Avatar, p.ParentGuardianID, p.TrajectID, p.DoctorID}
			},
		}),
	}
}

// ListByParentGuardian returns the patients of one guardian.
func (r *Repo) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Patient, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{r.Col("parent_guardian_id"): parentGuardianID}).
		OrderBy(r.Col("last_name"), r.Col("first_name")))
}
