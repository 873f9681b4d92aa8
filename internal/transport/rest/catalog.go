package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/service/catalog"
)

type catalogService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, item T) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogHandler serves CRUD routes of one catalog entity under basePath.
type CatalogHandler[T any] struct {
	errorMapper
	svc      catalogService[T]
	basePath string
	idOf     func(*T) uuid.UUID
}

// NewCatalogHandler creates a CatalogHandler. idOf reads the key of a record.
func NewCatalogHandler[T any](
	svc catalogService[T],
	basePath string,
	idOf func(*T) uuid.UUID,
	logger *slog.Logger,
) *CatalogHandler[T] {
	return &CatalogHandler[T]{
		errorMapper: errorMapper{log: logger.With("handler", basePath)},
		svc:         svc,
		basePath:    basePath,
		idOf:        idOf,
	}
}

// NewDoctorHandler serves /doctors.
func NewDoctorHandler(svc catalogService[domain.Doctor], logger *slog.Logger) *CatalogHandler[domain.Doctor] {
	return NewCatalogHandler(svc, "/doctors", func(d *domain.Doctor) uuid.UUID { return d.ID }, logger)
}

// NewTrajectHandler serves /trajects.
func NewTrajectHandler(svc catalogService[domain.Traject], logger *slog.Logger) *CatalogHandler[domain.Traject] {
	return NewCatalogHandler(svc, "/trajects", func(t *domain.Traject) uuid.UUID { return t.ID }, logger)
}

// NewCareMomentHandler serves /careMoments.
func NewCareMomentHandler(svc catalogService[domain.CareMoment], logger *slog.Logger) *CatalogHandler[domain.CareMoment] {
	return NewCatalogHandler(svc, "/careMoments", func(c *domain.CareMoment) uuid.UUID { return c.ID }, logger)
}

func (h *CatalogHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CatalogHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var in T
	if !decodeBody(w, r, &in) {
		return
	}
	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeCreated(w, h.basePath+"/"+h.idOf(item).String(), item)
}

func (h *CatalogHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in T
	if !decodeBody(w, r, &in) {
		return
	}
	item, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
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

type stepService interface {
	List(ctx context.Context) ([]domain.TrajectCareMoment, error)
	ListByTraject(ctx context.Context, trajectID uuid.UUID) ([]domain.TrajectCareMoment, error)
	Get(ctx context.Context, key domain.TrajectCareMomentKey) (*domain.TrajectCareMoment, error)
	Create(ctx context.Context, key domain.TrajectCareMomentKey, in catalog.StepInput) (*domain.TrajectCareMoment, error)
	Update(ctx context.Context, key domain.TrajectCareMomentKey, in catalog.StepInput) (*domain.TrajectCareMoment, error)
	Delete(ctx context.Context, key domain.TrajectCareMomentKey) error
}

// StepHandler serves /trajectCareMoments and /trajects/{trajectId}/careMoments.
type StepHandler struct {
	errorMapper
	svc stepService
}

// NewStepHandler creates a StepHandler.
func NewStepHandler(svc stepService, logger *slog.Logger) *StepHandler {
	return &StepHandler{
		errorMapper: errorMapper{log: logger.With("handler", "trajectCareMoment")},
		svc:         svc,
	}
}

type createStepRequest struct {
	TrajectID    uuid.UUID `json:"trajectId"`
	CareMomentID uuid.UUID `json:"careMomentId"`
	catalog.StepInput
}

func stepLocation(s *domain.TrajectCareMoment) string {
	return "/trajectCareMoments/" + s.TrajectID.String() + "/" + s.CareMomentID.String()
}

func (h *StepHandler) pathKey(w http.ResponseWriter, r *http.Request) (domain.TrajectCareMomentKey, bool) {
	trajectID, ok := pathID(w, r, "trajectId")
	if !ok {
		return domain.TrajectCareMomentKey{}, false
	}
	careMomentID, ok := pathID(w, r, "careMomentId")
	if !ok {
		return domain.TrajectCareMomentKey{}, false
	}
	return domain.TrajectCareMomentKey{TrajectID: trajectID, CareMomentID: careMomentID}, true
}

// List handles GET /trajectCareMoments.
func (h *StepHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ListByTraject handles GET /trajects/{trajectId}/careMoments.
func (h *StepHandler) ListByTraject(w http.ResponseWriter, r *http.Request) {
	trajectID, ok := pathID(w, r, "trajectId")
	if !ok {
		return
	}
	list, err := h.svc.ListByTraject(r.Context(), trajectID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /trajectCareMoments/{trajectId}/{careMomentId}.
func (h *StepHandler) Get(w http.ResponseWriter, r *http.Request) {
	key, ok := h.pathKey(w, r)
	if !ok {
		return
	}
	step, err := h.svc.Get(r.Context(), key)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

// Create handles POST /trajectCareMoments.
func (h *StepHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStepRequest
	if !decodeBody(w, r, &req) {
		return
	}
	key := domain.TrajectCareMomentKey{TrajectID: req.TrajectID, CareMomentID: req.CareMomentID}
	step, err := h.svc.Create(r.Context(), key, req.StepInput)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeCreated(w, stepLocation(step), step)
}

// Update handles PUT /trajectCareMoments/{trajectId}/{careMomentId}.
func (h *StepHandler) Update(w http.ResponseWriter, r *http.Request) {
	key, ok := h.pathKey(w, r)
	if !ok {
		return
	}
	var in catalog.StepInput
	if !decodeBody(w, r, &in) {
		return
	}
	step, err := h.svc.Update(r.Context(), key, in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

// Delete handles DELETE /trajectCareMoments/{trajectId}/{careMomentId}.
func (h *StepHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key, ok := h.pathKey(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), key); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeNoContent(w)
}
