// Package traject implements the Traject repository using PostgreSQL.
package traject

import (
	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Repo provides traject persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Table[domain.Traject, uuid.UUID]
}

// New creates a new traject repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		Table: postgres.MustNewTable(q, postgres.TableConfig[domain.Traject, uuid.UUID]{
			Name:    "trajects",
			Entity:  "traject",
			Keys:    []string{"id"},
			Columns: []string{"name"},
			OrderBy: []string{"name"},
			KeyArgs: postgres.IDArgs,
			Values: func(t *domain.Traject) []any {
				return []any{t.ID, t.Name}
			},
		}),
	}
}
