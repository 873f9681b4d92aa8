// Package doctor implements the Doctor repository using PostgreSQL.
package doctor

import (
	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Repo provides doctor persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Table[domain.Doctor, uuid.UUID]
}

// New creates a new doctor repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		Table: postgres.MustNewTable(q, postgres.TableConfig[domain.Doctor, uuid.UUID]{
			Name:    "doctors",
			Entity:  "doctor",
			Keys:    []string{"id"},
			Columns: []string{"name", "specialization"},
			OrderBy: []string{"name"},
			KeyArgs: postgres.IDArgs,
			Values: func(d *domain.Doctor) []any {
				return []any{d.ID, d.Name, d.Specialization}
			},
		}),
	}
}
