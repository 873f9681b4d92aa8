//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

func createGuardian(t *testing.T, ts *testServer, token string) domain.ParentGuardian {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/parentGuardians", token, map[string]any{
		"firstName": "John", "lastName": "Doe",
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))

	var g domain.ParentGuardian
	resp.decode(t, &g)
	return g
}

func createTraject(t *testing.T, ts *testServer, token, name string) domain.Traject {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/trajects", token, map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))

	var tr domain.Traject
	resp.decode(t, &tr)
	return tr
}

func createDoctor(t *testing.T, ts *testServer, token string) domain.Doctor {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/doctors", token, map[string]any{
		"name": "Dr. Peeters", "specialization": "Pediatric endocrinology",
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))

	var d domain.Doctor
	resp.decode(t, &d)
	return d
}

func patientsPath(guardianID uuid.UUID) string {
	return "/parentGuardians/" + guardianID.String() + "/patients"
}

func createPatient(t *testing.T, ts *testServer, token string, guardianID, trajectID uuid.UUID) domain.Patient {
	t.Helper()
	resp := ts.do(t, http.MethodPost, patientsPath(guardianID), token, map[string]any{
		"firstName": "Tim", "lastName": "Doe", "avatar": 2, "trajectId": trajectID,
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))

	var p domain.Patient
	resp.decode(t, &p)
	return p
}

func createNote(t *testing.T, ts *testServer, token string, guardianID, patientID uuid.UUID, text string) domain.Note {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/notes", token, map[string]any{
		"text": text, "userMood": 3, "parentGuardianId": guardianID, "patientId": patientID,
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))

	var n domain.Note
	resp.decode(t, &n)
	return n
}
