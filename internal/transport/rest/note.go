package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/note"
)

type noteService interface {
	List(ctx context.Context) ([]domain.Note, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Note, error)
	ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Note, error)
	Create(ctx context.Context, in note.Input) (*domain.Note, error)
	Update(ctx context.Context, id uuid.UUID, in note.Input) (*domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NoteHandler serves /notes.
type NoteHandler struct {
	errorMapper
	svc noteService
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		errorMapper: errorMapper{log: logger.With("handler", "note")},
		svc:         svc,
	}
}

// List handles GET /notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// ListByPatient handles GET /notes/patient/{patientId}.
func (h *NoteHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patientId")
	if !ok {
		return
	}
	list, err := h.svc.ListByPatient(r.Context(), patientID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ListByParentGuardian handles GET /notes/parentGuardian/{parentGuardianId}.
func (h *NoteHandler) ListByParentGuardian(w http.ResponseWriter, r *http.Request) {
	guardianID, ok := pathID(w, r, "parentGuardianId")
	if !ok {
		return
	}
	list, err := h.svc.ListByParentGuardian(r.Context(), guardianID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in note.Input
	if !decodeBody(w, r, &in) {
		return
	}
	n, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeCreated(w, "/notes/"+n.ID.String(), n)
}

// Update handles PUT /notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in note.Input
	if !decodeBody(w, r, &in) {
		return
	}
	n, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
