// Package parentguardian implements the ParentGuardian repository using PostgreSQL.
package parentguardian

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Repo provides guardian persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Table[domain.ParentGuardian, uuid.UUID]
}

// New creates a new guardian repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		Table: postgres.MustNewTable(q, postgres.TableConfig[domain.ParentGuardian, uuid.UUID]{
			Name:    "parent_guardians",
			Entity:  "parent_guardian",
			Keys:    []string{"id"},
			Columns: []string{"user_id", "first_name", "last_name"},
			OrderBy: []string{"last_name", "first_name"},
			KeyArgs: postgres.IDArgs,
			Values: func(g *domain.ParentGuardian) []any {
				return []any{g.ID, g.UserID, g.FirstName, g.LastName}
			},
		}),
	}
}

// ListByUser returns the guardians owned by an account.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.ParentGuardian, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{r.Col("user_id"): userID}).
		OrderBy(r.Col("last_name"), r.Col("first_name")))
}

// CountByUser returns how many guardians an account owns.
func (r *Repo) CountByUser(ctx context.Context, userID string) (int, error) {
	return r.Count(ctx, squirrel.Eq{"user_id": userID})
}
