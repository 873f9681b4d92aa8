package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueUserID returns an account id no other test uses.
func UniqueUserID() string {
	return "test-user-" + uniqueSuffix()
}

// SeedParentGuardian inserts a guardian owned by userID.
func SeedParentGuardian(t *testing.T, pool *pgxpool.Pool, userID string) domain.ParentGuardian {
	t.Helper()

	g := domain.ParentGuardian{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: "Guardian",
		LastName:  uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO parent_guardians (id, user_id, first_name, last_name) VALUES ($1, $2, $3, $4)`,
		g.ID, g.UserID, g.FirstName, g.LastName,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedParentGuardian: %v", err)
	}
	return g
}

// SeedTraject inserts a traject with a unique name.
func SeedTraject(t *testing.T, pool *pgxpool.Pool) domain.Traject {
	t.Helper()

	tr := domain.Traject{ID: uuid.New(), Name: "Traject " + uniqueSuffix()}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO trajects (id, name) VALUES ($1, $2)`, tr.ID, tr.Name)
	if err != nil {
		t.Fatalf("testhelper: SeedTraject: %v", err)
	}
	return tr
}

// SeedDoctor inserts a doctor with a unique name.
func SeedDoctor(t *testing.T, pool *pgxpool.Pool) domain.Doctor {
	t.Helper()

	d := domain.Doctor{ID: uuid.New(), Name: "Dr. " + uniqueSuffix(), Specialization: "Pediatric endocrinology"}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO doctors (id, name, specialization) VALUES ($1, $2, $3)`, d.ID, d.Name, d.Specialization)
	if err != nil {
		t.Fatalf("testhelper: SeedDoctor: %v", err)
	}
	return d
}

// SeedCareMoment inserts a care moment with a unique name.
func SeedCareMoment(t *testing.T, pool *pgxpool.Pool) domain.CareMoment {
	t.Helper()

	c := domain.CareMoment{ID: uuid.New(), Name: "Moment " + uniqueSuffix(), TimeDurationInMin: 10}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO care_moments (id, name, time_duration_in_min) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.TimeDurationInMin)
	if err != nil {
		t.Fatalf("testhelper: SeedCareMoment: %v", err)
	}
	return c
}

// SeedPatient inserts a patient of the guardian following the traject.
func SeedPatient(t *testing.T, pool *pgxpool.Pool, guardianID, trajectID uuid.UUID) domain.Patient {
	t.Helper()

	p := domain.Patient{
		ID:               uuid.New(),
		FirstName:        "Patient",
		LastName:         uniqueSuffix(),
		Avatar:           1,
		ParentGuardianID: guardianID,
		TrajectID:        trajectID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO patients (id, first_name, last_name, avatar, parent_guardian_id, traject_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.FirstName, p.LastName, p.Avatar, p.ParentGuardianID, p.TrajectID)
	if err != nil {
		t.Fatalf("testhelper: SeedPatient: %v", err)
	}
	return p
}

// SeedNote inserts a note dated at the given time.
func SeedNote(t *testing.T, pool *pgxpool.Pool, guardianID, patientID uuid.UUID, at time.Time) domain.Note {
	t.Helper()

	n := domain.Note{
		ID:               uuid.New(),
		Date:             at.UTC().Truncate(time.Microsecond),
		Text:             "note " + uniqueSuffix(),
		UserMood:         3,
		ParentGuardianID: guardianID,
		PatientID:        patientID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, date, text, user_mood, parent_guardian_id, patient_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.Date, n.Text, n.UserMood, n.ParentGuardianID, n.PatientID)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}
	return n
}
