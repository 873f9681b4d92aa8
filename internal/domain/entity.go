package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Entity names as shown to clients in error messages.
const (
	EntityParentGuardian    = "ParentGuardian"
	EntityPatient           = "Patient"
	EntityDoctor            = "Doctor"
	EntityTraject           = "Traject"
	EntityCareMoment        = "CareMoment"
	EntityTrajectCareMoment = "TrajectCareMoment"
	EntityNote              = "Note"
)

// MaxParentGuardiansPerUser caps how many guardian profiles one account may own.
const MaxParentGuardiansPerUser = 1

// MsgGuardianLimitReached is returned when an account already owns
// MaxParentGuardiansPerUser guardians.
const MsgGuardianLimitReached = "Maximum number of parent guardians reached."

// MaxUserIDLength is the storage limit of an account id.
const MaxUserIDLength = 450

// fieldErrors accumulates validation failures for one record.
type fieldErrors []FieldError

func (f *fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.add(field, "required")
	}
}

func (f *fieldErrors) requiredID(field string, id uuid.UUID) {
	if id == uuid.Nil {
		f.add(field, "required")
	}
}

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationErrors(f)
}
