package domain

import "github.com/google/uuid"

// Doctor is a care provider a Patient may be assigned to.
type Doctor struct {
	ID             uuid.UUID `db:"id"             json:"id"`
	Name           string    `db:"name"           json:"name"`
	Specialization string    `db:"specialization" json:"specialization"`
}

func (d Doctor) Validate() error {
	var errs fieldErrors
	errs.required("name", d.Name)
	errs.required("specialization", d.Specialization)
	return errs.err()
}

// Traject is a named care pathway made of ordered CareMoments.
type Traject struct {
	ID   uuid.UUID `db:"id"   json:"id"`
	Name string    `db:"name" json:"name"`
}

func (t Traject) Validate() error {
	var errs fieldErrors
	errs.required("name", t.Name)
	return errs.err()
}

// CareMoment is a reusable unit of care content.
type CareMoment struct {
	ID                uuid.UUID `db:"id"                   json:"id"`
	Name              string    `db:"name"                 json:"name"`
	URL               *string   `db:"url"                  json:"url,omitempty"`
	Picture           []byte    `db:"picture"              json:"picture,omitempty"`
	TimeDurationInMin int       `db:"time_duration_in_min" json:"timeDurationInMin"`
}

func (c CareMoment) Validate() error {
	var errs fieldErrors
	errs.required("name", c.Name)
	if c.TimeDurationInMin < 0 {
		errs.add("timeDurationInMin", "must not be negative")
	}
	return errs.err()
}

// TrajectCareMomentKey identifies one step of a Traject.
type TrajectCareMomentKey struct {
	TrajectID    uuid.UUID
	CareMomentID uuid.UUID
}

// TrajectCareMoment places a CareMoment at a step of a Traject.
type TrajectCareMoment struct {
	TrajectID    uuid.UUID `db:"traject_id"     json:"trajectId"`
	CareMomentID uuid.UUID `db:"care_moment_id" json:"careMomentId"`
	Name         *string   `db:"name"           json:"name,omitempty"`
	Step         int       `db:"step"           json:"step"`
	IsCompleted  bool      `db:"is_completed"   json:"isCompleted"`
}

// Key returns the composite identity of the step.
func (t TrajectCareMoment) Key() TrajectCareMomentKey {
	return TrajectCareMomentKey{TrajectID: t.TrajectID, CareMomentID: t.CareMomentID}
}

func (t TrajectCareMoment) Validate() error {
	var errs fieldErrors
	errs.requiredID("trajectId", t.TrajectID)
	errs.requiredID("careMomentId", t.CareMomentID)
	if t.Step < 0 {
		errs.add("step", "must not be negative")
	}
	return errs.err()
}
