// Package trajectcaremoment implements the TrajectCareMoment repository using
// PostgreSQL. Rows are keyed by (traject_id, care_moment_id).
package trajectcaremoment

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Repo provides traject step persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Table[domain.TrajectCareMoment, domain.TrajectCareMomentKey]
}

// New creates a new traject step repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		Table: postgres.MustNewTable(q, postgres.TableConfig[domain.TrajectCareMoment, domain.TrajectCareMomentKey]{
			Name:    "traject_care_moments",
			Entity:  "traject_care_moment",
			Keys:    []string{"traject_id", "care_moment_id"},
			Columns: []string{"name", "step", "is_completed"},
			OrderBy: []string{"traject_id", "step"},
			KeyArgs: func(k domain.TrajectCareMomentKey) []any {
				return []any{k.TrajectID, k.CareMomentID}
			},
			Values: func(t *domain.TrajectCareMoment) []any {
				return []any{t.TrajectID, t.CareMomentID, t.Name, t.Step, t.IsCompleted}
			},
		}),
	}
}

// ListByTraject returns the steps of one traject ordered by step.
func (r *Repo) ListByTraject(ctx context.Context, trajectID uuid.UUID) ([]domain.TrajectCareMoment, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{r.Col("traject_id"): trajectID}).
		OrderBy(r.Col("step")))
}
