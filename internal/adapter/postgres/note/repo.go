// Package note implements the Note repository using PostgreSQL.
package note

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Table[domain.Note, uuid.UUID]
}

// New creates a new note repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		Table: postgres.MustNewTable(q, postgres.TableConfig[domain.Note, uuid.UUID]{
			Name:    "notes",
			Entity:  "note",
			Keys:    []string{"id"},
			Columns: []string{"date", "text", "user_mood", "parent_guardian_id", "patient_id"},
			OrderBy: []string{"date DESC"},
			KeyArgs: postgres.IDArgs,
			Values: func(n *domain.Note) []any {
				return []any{n.ID, n.Date, n.Text, n.UserMood, n.ParentGuardianID, n.PatientID}
			},
		}),
	}
}

// ListByPatient returns the notes written about a patient, newest first.
func (r *Repo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Note, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{r.Col("patient_id"): patientID}).
		OrderBy(r.Col("date")+" DESC"))
}

// ListByParentGuardian returns the notes written by a guardian, newest first.
func (r *Repo) ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Note, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{r.Col("parent_guardian_id"): parentGuardianID}).
		OrderBy(r.Col("date")+" DESC"))
}

// ListByUser returns the notes of every guardian owned by an account, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	return r.Select(ctx, r.SelectBuilder().
		Join("parent_guardians ON parent_guardians.id = "+r.Col("parent_guardian_id")).
		Where(squirrel.Eq{"parent_guardians.user_id": userID}).
		OrderBy(r.Col("date")+" DESC"))
}
