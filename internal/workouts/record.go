package workouts

import (
	"errors"
	"time"
)

var (
	ErrRecordNotFound = errors.New("workout not found")
	ErrMissingField   = errors.New("required field missing")
)

// Record is a single logged exercise performance.
// Records are never updated, only created and deleted.
type Record struct {
	ID        int64     `json:"id,omitempty"`
	Date      time.Time `json:"date"`
	Workout   string    `json:"workout"`
	Exercise  string    `json:"exercise"`
	Weight    float64   `json:"weight"`
	Reps      *int      `json:"reps"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// NewRecord is the create payload. Weight is a pointer so a missing
// weight can be told apart from a zero one.
type NewRecord struct {
	Date     *time.Time `json:"date,omitempty"`
	Workout  string     `json:"workout"`
	Exercise string     `json:"exercise"`
	Weight   *float64   `json:"weight"`
	Reps     *int       `json:"reps,omitempty"`
}

// Validate checks the store level required fields.
func (n NewRecord) Validate() error {
	switch {
	case n.Workout == "":
		return fieldErr("workout")
	case n.Exercise == "":
		return fieldErr("exercise")
	case n.Weight == nil:
		return fieldErr("weight")
	}
	return nil
}

// toRecord fills in the defaults the store applies on insert.
func (n NewRecord) toRecord(now time.Time) Record {
	r := Record{
		Date:      now,
		Workout:   n.Workout,
		Exercise:  n.Exercise,
		Reps:      n.Reps,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if n.Date != nil && !n.Date.IsZero() {
		r.Date = *n.Date
	}
	if n.Weight != nil {
		r.Weight = *n.Weight
	}
	return r
}

func fieldErr(field string) error {
	return &missingFieldError{field: field}
}

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return "validation: " + e.field + " is required"
}

func (e *missingFieldError) Unwrap() error {
	return ErrMissingField
}
