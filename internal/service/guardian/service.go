// Package guardian implements the ParentGuardian use cases. Every operation
// is scoped to the authenticated account.
package guardian

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

type guardianRepo interface {
	access.Repository[domain.ParentGuardian, uuid.UUID]
	ListByUser(ctx context.Context, userID string) ([]domain.ParentGuardian, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// Service provides parent guardian operations.
type Service struct {
	guardians guardianRepo
	log       *slog.Logger
}

// NewService creates a new ParentGuardian service.
func NewService(log *slog.Logger, guardians guardianRepo) *Service {
	return &Service{
		guardians: guardians,
		log:       log.With("service", "guardian"),
	}
}

// Input is the client-editable part of a ParentGuardian.
type Input struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (in Input) applyTo(g *domain.ParentGuardian) {
	g.FirstName = strings.TrimSpace(in.FirstName)
	g.LastName = strings.TrimSpace(in.LastName)
}
