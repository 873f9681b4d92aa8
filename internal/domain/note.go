package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood bounds for Note.UserMood.
const (
	MinUserMood = 1
	MaxUserMood = 5
)

// Note is a dated journal entry a guardian writes about a patient.
type Note struct {
	ID               uuid.UUID `db:"id"                 json:"id"`
	Date             time.Time `db:"date"               json:"date"`
	Text             string    `db:"text"               json:"text"`
	UserMood         int       `db:"user_mood"          json:"userMood"`
	ParentGuardianID uuid.UUID `db:"parent_guardian_id" json:"parentGuardianId"`
	PatientID        uuid.UUID `db:"patient_id"         json:"patientId"`
}

func (n Note) Validate() error {
	var errs fieldErrors
	errs.required("text", n.Text)
	if n.UserMood < MinUserMood || n.UserMood > MaxUserMood {
		errs.add("userMood", "must be between 1 and 5")
	}
	errs.requiredID("parentGuardianId", n.ParentGuardianID)
	errs.requiredID("patientId", n.PatientID)
	return errs.err()
}
