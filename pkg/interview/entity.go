package interview

import (
	"context"
	"time"

	"github.com/artem13815/talent/pkg/errs"
)

type Type string

const (
	TypePhone     Type = "phone"
	TypeVideo     Type = "video"
	TypeInPerson  Type = "in-person"
	TypeTechnical Type = "technical"
)

func (t Type) Valid() bool {
	switch t {
	case TypePhone, TypeVideo, TypeInPerson, TypeTechnical:
		return true
	}
	return false
}

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Interview is a scheduled conversation with a candidate. CandidateID and
// JobID are weak references.
type Interview struct {
	ID            string    `json:"id"`
	CandidateID   string    `json:"candidateId"`
	JobID         string    `json:"jobId"`
	Type          Type      `json:"type"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Duration      int       `json:"duration"`
	Interviewer   string    `json:"interviewer"`
	Status        Status    `json:"status"`
	Feedback      string    `json:"feedback,omitempty"`
	Rating        *int      `json:"rating,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Input carries the fields accepted on create. ScheduledDate is RFC3339 or
// a zone-less local form.
type Input struct {
	CandidateID   string `json:"candidateId"`
	JobID         string `json:"jobId"`
	Type          Type   `json:"type"`
	ScheduledDate string `json:"scheduledDate"`
	Duration      int    `json:"duration"`
	Interviewer   string `json:"interviewer"`
	Notes         string `json:"notes"`
}

type Patch struct {
	CandidateID   *string `json:"candidateId"`
	JobID         *string `json:"jobId"`
	Type          *Type   `json:"type"`
	ScheduledDate *string `json:"scheduledDate"`
	Duration      *int    `json:"duration"`
	Interviewer   *string `json:"interviewer"`
	Status        *Status `json:"status"`
	Feedback      *string `json:"feedback"`
	Rating        *int    `json:"rating"`
	Notes         *string `json:"notes"`
}

// Filter narrows List; Date matches interviews on the same calendar day.
type Filter struct {
	CandidateID string
	Status      Status
	Date        time.Time
}

type Repository interface {
	List(ctx context.Context) ([]Interview, error)
	Get(ctx context.Context, id string) (Interview, error)
	Insert(ctx context.Context, id string, iv Interview) error
	Mutate(ctx context.Context, id string, fn func(*Interview) error) (Interview, error)
}

var (
	ErrNotFound      = errs.NotFound("Interview not found")
	ErrMissingFields = errs.Validation("Missing required fields")
	ErrInvalidDate   = errs.Validation("Invalid scheduledDate")
	ErrInvalidType   = errs.Validation("Invalid interview type")
	ErrInvalidStatus = errs.Validation("Invalid interview status")
	ErrInvalidLength = errs.Validation("duration must be positive")
	ErrInvalidRating = errs.Validation("rating must be between 1 and 5")
)

// DefaultDuration is used when a create request omits duration.
const DefaultDuration = 60
