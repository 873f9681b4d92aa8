// Package catalog implements the shared reference data: doctors, trajects,
// care moments and the steps binding care moments into trajects. Any
// authenticated account may read and edit it.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/access"
)

// Entity is a catalog record.
type Entity interface {
	Validate() error
}

// Resource provides CRUD over one uuid-keyed catalog entity.
type Resource[T Entity] struct {
	repo   access.Repository[T, uuid.UUID]
	entity string
	setID  func(*T, uuid.UUID)
	log    *slog.Logger
}

// NewResource creates a Resource. setID assigns the key of a record.
func NewResource[T Entity](
	log *slog.Logger,
	entity string,
	repo access.Repository[T, uuid.UUID],
	setID func(*T, uuid.UUID),
) *Resource[T] {
	return &Resource[T]{
		repo:   repo,
		entity: entity,
		setID:  setID,
		log:    log.With("service", "catalog", "entity", entity),
	}
}

// NewDoctors creates the Doctor resource.
func NewDoctors(log *slog.Logger, repo access.Repository[domain.Doctor, uuid.UUID]) *Resource[domain.Doctor] {
	return NewResource(log, domain.EntityDoctor, repo, func(d *domain.Doctor, id uuid.UUID) { d.ID = id })
}

// NewTrajects creates the Traject resource.
func NewTrajects(log *slog.Logger, repo access.Repository[domain.Traject, uuid.UUID]) *Resource[domain.Traject] {
	return NewResource(log, domain.EntityTraject, repo, func(t *domain.Traject, id uuid.UUID) { t.ID = id })
}

// NewCareMoments creates the CareMoment resource.
func NewCareMoments(log *slog.Logger, repo access.Repository[domain.CareMoment, uuid.UUID]) *Resource[domain.CareMoment] {
	return NewResource(log, domain.EntityCareMoment, repo, func(c *domain.CareMoment, id uuid.UUID) { c.ID = id })
}

// List returns every record.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	if _, err := access.CurrentUser(ctx); err != nil {
		return nil, err
	}

	list, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.entity, err)
	}
	return list, nil
}

// Get returns one record.
func (r *Resource[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	if _, err := access.CurrentUser(ctx); err != nil {
		return nil, err
	}
	return access.MustExist(ctx, r.repo, r.entity, id)
}

// Create stores item under a new id.
func (r *Resource[T]) Create(ctx context.Context, item T) (*T, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	r.setID(&item, id)
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := r.repo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.entity, err)
	}

	r.log.InfoContext(ctx, "catalog record created",
		slog.String("user_id", userID),
		slog.String("id", id.String()),
	)
	return &item, nil
}

// Update replaces the record with the given id.
func (r *Resource[T]) Update(ctx context.Context, id uuid.UUID, item T) (*T, error) {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.Exists(ctx, r.repo, r.entity, id); err != nil {
		return nil, err
	}

	r.setID(&item, id)
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := r.repo.Update(ctx, &item); err != nil {
		return nil, fmt.Errorf("update %s: %w", r.entity, err)
	}

	r.log.InfoContext(ctx, "catalog record updated",
		slog.String("user_id", userID),
		slog.String("id", id.String()),
	)
	return &item, nil
}

// Delete removes the record with the given id. A record still referenced
// by other rows is reported as domain.ErrConflict by the repository.
func (r *Resource[T]) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := access.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := access.Exists(ctx, r.repo, r.entity, id); err != nil {
		return err
	}
	if err := r.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", r.entity, err)
	}

	r.log.InfoContext(ctx, "catalog record deleted",
		slog.String("user_id", userID),
		slog.String("id", id.String()),
	)
	return nil
}
