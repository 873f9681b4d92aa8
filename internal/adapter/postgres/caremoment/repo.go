// Package caremoment implements the CareMoment repository using PostgreSQL.
package caremoment

import (
	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/adapter/postgres"
	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Repo provides care moment persistence backed by PostgreSQL.
type Repo struct {
	*postgres.Table[domain.CareMoment, uuid.UUID]
}

// New creates a new care moment repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		Table: postgres.MustNewTable(q, postgres.TableConfig[domain.CareMoment, uuid.UUID]{
			Name:    "care_moments",
			Entity:  "care_moment",
			Keys:    []string{"id"},
			Columns: []string{"name", "url", "picture", "time_duration_in_min"},
			OrderBy: []string{"name"},
			KeyArgs: postgres.IDArgs,
			Values: func(c *domain.CareMoment) []any {
				return []any{c.ID, c.Name, c.URL, c.Picture, c.TimeDurationInMin}
			},
		}),
	}
}
