package rest

import (
	"net/http"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
	"github.com/glucosegurus/glucosegurus-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health      *HealthHandler
	Guardians   *GuardianHandler
	Patients    *PatientHandler
	Notes       *NoteHandler
	Doctors     *CatalogHandler[domain.Doctor]
	Trajects    *CatalogHandler[domain.Traject]
	CareMoments *CatalogHandler[domain.CareMoment]
	Steps       *StepHandler
}

type crudHandler interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// routes registers account-only handlers behind middleware.RequireUser.
type routes struct {
	mux     *http.ServeMux
	private middleware.Middleware
}

func (rt routes) handle(pattern string, h http.HandlerFunc) {
	rt.mux.Handle(pattern, rt.private(h))
}

// crud maps the collection and item routes of base onto h.
// The item route uses the {id} wildcard.
func (rt routes) crud(base string, h crudHandler) {
	rt.handle("GET "+base, h.List)
	rt.handle("POST "+base, h.Create)
	rt.handle("GET "+base+"/{id}", h.Get)
	rt.handle("PUT "+base+"/{id}", h.Update)
	rt.handle("DELETE "+base+"/{id}", h.Delete)
}

// NewRouter registers every route on a new ServeMux. Only the banner and
// health routes are served without an account.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Health.Root)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	rt := routes{mux: mux, private: middleware.RequireUser()}

	rt.crud("/doctors", h.Doctors)
	rt.crud("/trajects", h.Trajects)
	rt.crud("/careMoments", h.CareMoments)
	rt.crud("/parentGuardians", h.Guardians)
	rt.crud("/notes", h.Notes)

	rt.handle("GET /trajects/{trajectId}/careMoments", h.Steps.ListByTraject)
	rt.handle("GET /trajectCareMoments", h.Steps.List)
	rt.handle("POST /trajectCareMoments", h.Steps.Create)
	rt.handle("GET /trajectCareMoments/{trajectId}/{careMomentId}", h.Steps.Get)
	rt.handle("PUT /trajectCareMoments/{trajectId}/{careMomentId}", h.Steps.Update)
	rt.handle("DELETE /trajectCareMoments/{trajectId}/{careMomentId}", h.Steps.Delete)

	const patients = "/parentGuardians/{parentGuardianId}/patients"
	rt.handle("GET "+patients, h.Patients.List)
	rt.handle("POST "+patients, h.Patients.Create)
	rt.handle("GET "+patients+"/{patientId}", h.Patients.Get)
	rt.handle("PUT "+patients+"/{patientId}", h.Patients.Update)
	rt.handle("DELETE "+patients+"/{patientId}", h.Patients.Delete)

	rt.handle("GET /notes/patient/{patientId}", h.Notes.ListByPatient)
	rt.handle("GET /notes/parentGuardian/{parentGuardianId}", h.Notes.ListByParentGuardian)

	return mux
}
