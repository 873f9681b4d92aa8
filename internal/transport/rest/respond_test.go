package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"not owned", domain.NewNotOwned(domain.EntityParentGuardian), http.StatusNotFound, "ParentGuardian does not belong to the current user."},
		{"does not exist", fmt.Errorf("wrapped: %w", domain.NewDoesNotExist(domain.EntityPatient)), http.StatusNotFound, "Patient does not exist."},
		{"bare not found", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"rule violation", domain.NewRuleViolation(domain.MsgGuardianLimitReached), http.StatusBadRequest, "Maximum number of parent guardians reached."},
		{"validation", domain.NewValidationError("text", "required"), http.StatusBadRequest, "validation: text: required"},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict, "already exists"},
		{"conflict", domain.ErrConflict, http.StatusConflict, "still referenced by other records"},
		{"unknown", errors.New("pool closed"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			errorMapper{log: slog.Default()}.handleError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			var body map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tt.wantMsg {
				t.Errorf("error: got %v, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestHandleError_ValidationFields(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "firstName", Message: "required"},
		{Field: "lastName", Message: "required"},
	})
	errorMapper{log: slog.Default()}.handleError(rec, httptest.NewRequest(http.MethodPost, "/x", nil), err)

	var body validationErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Fields) != 2 || body.Fields[1].Field != "lastName" {
		t.Errorf("fields: %+v", body.Fields)
	}
}
