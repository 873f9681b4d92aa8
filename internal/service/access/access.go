// Package access holds the generic persistence port traits shared by the
// services and the steps of the ownership chain every request runs.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/pkg/ctxutil"
)

// Getter loads one record by key.
type Getter[T any, K comparable] interface {
	GetByID(ctx context.Context, id K) (*T, error)
}

// Reader is the read side of an entity port.
type Reader[T any, K comparable] interface {
	Getter[T, K]
	List(ctx context.Context) ([]T, error)
}

// Writer is the write side of an entity port. Update replaces the full
// record; Update and Delete of a missing record are not errors.
type Writer[T any, K comparable] interface {
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id K) error
}

// Repository is the full CRUD port of one entity.
type Repository[T any, K comparable] interface {
	Reader[T, K]
	Writer[T, K]
}

// CurrentUser returns the authenticated account id or domain.ErrUnauthorized.
func CurrentUser(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}

// MustExist loads id through r. A missing record becomes the
// "<entity> does not exist." error.
func MustExist[T any, K comparable](ctx context.Context, r Getter[T, K], entity string, id K) (*T, error) {
	item, err := r.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewDoesNotExist(entity)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", entity, err)
	}
	return item, nil
}

// Exists is MustExist without the record.
func Exists[T any, K comparable](ctx context.Context, r Getter[T, K], entity string, id K) error {
	_, err := MustExist(ctx, r, entity, id)
	return err
}

// OwnedGuardian loads a guardian and checks it belongs to userID.
// A missing guardian and a foreign one produce the same error.
func OwnedGuardian(
	ctx context.Context,
	r Getter[domain.ParentGuardian, uuid.UUID],
	userID string,
	id uuid.UUID,
) (*domain.ParentGuardian, error) {
	g, err := r.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotOwned(domain.EntityParentGuardian)
	}
	if err != nil {
		return nil, fmt.Errorf("get parent guardian: %w", err)
	}
	if !g.OwnedBy(userID) {
		return nil, domain.NewNotOwned(domain.EntityParentGuardian)
	}
	return g, nil
}

// GuardianPatient loads a patient and checks it is in the care of guardianID.
// A patient of another guardian is reported as missing.
func GuardianPatient(
	ctx context.Context,
	r Getter[domain.Patient, uuid.UUID],
	guardianID uuid.UUID,
	patientID uuid.UUID,
) (*domain.Patient, error) {
	p, err := MustExist(ctx, r, domain.EntityPatient, patientID)
	if err != nil {
		return nil, err
	}
	if p.ParentGuardianID != guardianID {
		return nil, domain.NewDoesNotExist(domain.EntityPatient)
	}
	return p, nil
}
