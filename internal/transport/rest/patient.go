package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/patient"
)

type patientService interface {
	ListByParentGuardian(ctx context.Context, parentGuardianID uuid.UUID) ([]domain.Patient, error)
	Get(ctx context.Context, parentGuardianID, patientID uuid.UUID) (*domain.Patient, error)
	Create(ctx context.Context, parentGuardianID uuid.UUID, in patient.Input) (*domain.Patient, error)
	Update(ctx context.Context, parentGuardianID, patientID uuid.UUID, in patient.Input) (*domain.Patient, error)
	Delete(ctx context.Context, parentGuardianID, patientID uuid.UUID) error
}

// PatientHandler serves /parentGuardians/{parentGuardianId}/patients.
type PatientHandler struct {
	errorMapper
	svc patientService
}

// NewPatientHandler creates a PatientHandler.
func NewPatientHandler(svc patientService, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{
		errorMapper: errorMapper{log: logger.With("handler", "patient")},
		svc:         svc,
	}
}

func patientLocation(p *domain.Patient) string {
	return "/parentGuardians/" + p.ParentGuardianID.String() + "/patients/" + p.ID.String()
}

// List handles GET /parentGuardians/{parentGuardianId}/patients.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
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

// Get handles GET /parentGuardians/{parentGuardianId}/patients/{patientId}.
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	guardianID, ok := pathID(w, r, "parentGuardianId")
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId")
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), guardianID, patientID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /parentGuardians/{parentGuardianId}/patients.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	guardianID, ok := pathID(w, r, "parentGuardianId")
	if !ok {
		return
	}
	var in patient.Input
	if !decodeBody(w, r, &in) {
		return
	}
	p, err := h.svc.Create(r.Context(), guardianID, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeCreated(w, patientLocation(p), p)
}

// Update handles PUT /parentGuardians/{parentGuardianId}/patients/{patientId}.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	guardianID, ok := pathID(w, r, "parentGuardianId")
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId")
	if !ok {
		return
	}
	var in patient.Input
	if !decodeBody(w, r, &in) {
		return
	}
	p, err := h.svc.Update(r.Context(), guardianID, patientID, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /parentGuardians/{parentGuardianId}/patients/{patientId}.
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	guardianID, ok := pathID(w, r, "parentGuardianId")
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), guardianID, patientID); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeNoContent(w)
}
