package domain

import "github.com/google/uuid"

// ParentGuardian is the caregiver profile owned by one authenticated account.
type ParentGuardian struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	UserID    string    `db:"user_id"    json:"userId"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name"  json:"lastName"`
}

// Validate checks required fields. UserID is assigned by the server.
func (g ParentGuardian) Validate() error {
	var errs fieldErrors
	errs.required("firstName", g.FirstName)
	errs.required("lastName", g.LastName)
	if len(g.UserID) > MaxUserIDLength {
		errs.add("userId", "too long")
	}
	return errs.err()
}

// OwnedBy reports whether the guardian belongs to the given account.
func (g ParentGuardian) OwnedBy(userID string) bool {
	return g.UserID == userID
}

// Patient is a child under care of a ParentGuardian.
type Patient struct {
	ID               uuid.UUID  `db:"id"                 json:"id"`
	FirstName        string     `db:"first_name"         json:"firstName"`
	LastName         string     `db:"last_name"          json:"lastName"`
	Avatar           int        `db:"avatar"             json:"avatar"`
	ParentGuardianID uuid.UUID  `db:"parent_guardian_id" json:"parentGuardianId"`
	TrajectID        uuid.UUID  `db:"traject_id"         json:"trajectId"`
	DoctorID         *uuid.UUID `db:"doctor_id"          json:"doctorId,omitempty"`
}

// Validate checks required fields and references.
func (p Patient) Validate() error {
	var errs fieldErrors
	errs.required("firstName", p.FirstName)
	errs.required("lastName", p.LastName)
	errs.requiredID("parentGuardianId", p.ParentGuardianID)
	errs.requiredID("trajectId", p.TrajectID)
	if p.DoctorID != nil && *p.DoctorID == uuid.Nil {
		errs.add("doctorId", "must be a valid id when set")
	}
	return errs.err()
}
