package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/guardian"
)

type guardianService interface {
	List(ctx context.Context) ([]domain.ParentGuardian, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ParentGuardian, error)
	Create(ctx context.Context, in guardian.Input) (*domain.ParentGuardian, error)
	Update(ctx context.Context, id uuid.UUID, in guardian.Input) (*domain.ParentGuardian, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GuardianHandler serves /parentGuardians.
type GuardianHandler struct {
	errorMapper
	svc guardianService
}

// NewGuardianHandler creates a GuardianHandler.
func NewGuardianHandler(svc guardianService, logger *slog.Logger) *GuardianHandler {
	return &GuardianHandler{
		errorMapper: errorMapper{log: logger.With("handler", "guardian")},
		svc:         svc,
	}
}

// List handles GET /parentGuardians.
func (h *GuardianHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /parentGuardians/{id}.
func (h *GuardianHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// Create handles POST /parentGuardians.
func (h *GuardianHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in guardian.Input
	if !decodeBody(w, r, &in) {
		return
	}
	g, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeCreated(w, "/parentGuardians/"+g.ID.String(), g)
}

// Update handles PUT /parentGuardians/{id}.
func (h *GuardianHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in guardian.Input
	if !decodeBody(w, r, &in) {
		return
	}
	g, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// Delete handles DELETE /parentGuardians/{id}.
func (h *GuardianHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeNoContent(w)
}
