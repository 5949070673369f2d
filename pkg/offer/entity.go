package offer

import (
	"context"
	"time"

	"github.com/artem13815/talent/pkg/errs"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusExpired  Status = "expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusExpired:
		return true
	}
	return false
}

// Terminal statuses have no outgoing transitions.
func (s Status) Terminal() bool { return s != StatusPending }

// Offer is a compensation proposal. Dates are calendar dates (YYYY-MM-DD).
type Offer struct {
	ID           string    `json:"id"`
	CandidateID  string    `json:"candidateId"`
	JobID        string    `json:"jobId"`
	Salary       float64   `json:"salary"`
	Currency     string    `json:"currency"`
	Benefits     []string  `json:"benefits"`
	StartDate    string    `json:"startDate"`
	Status       Status    `json:"status"`
	CreatedDate  string    `json:"createdDate"`
	ExpiryDate   string    `json:"expiryDate"`
	Notes        string    `json:"notes,omitempty"`
	AcceptedDate string    `json:"acceptedDate,omitempty"`
	DeclinedDate string    `json:"declinedDate,omitempty"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Transition moves a pending offer to target, stamping the decision date the
// first time. Any move out of a terminal status fails with ErrNotPending.
func (o *Offer) Transition(target Status, today string) error {
	if target == o.Status && target == StatusPending {
		return nil
	}
	if o.Status.Terminal() {
		return ErrNotPending
	}
	switch target {
	case StatusAccepted:
		if o.AcceptedDate == "" {
			o.AcceptedDate = today
		}
	case StatusDeclined:
		if o.DeclinedDate == "" {
			o.DeclinedDate = today
		}
	case StatusExpired:
	default:
		return ErrInvalidStatus
	}
	o.Status = target
	return nil
}

type Input struct {
	CandidateID string   `json:"candidateId"`
	JobID       string   `json:"jobId"`
	Salary      float64  `json:"salary"`
	Currency    string   `json:"currency"`
	Benefits    []string `json:"benefits"`
	StartDate   string   `json:"startDate"`
	ExpiryDate  string   `json:"expiryDate"`
	Notes       string   `json:"notes"`
	CreatedBy   string   `json:"-"`
}

// Patch is a partial update. A Status change runs through Transition.
type Patch struct {
	CandidateID *string  `json:"candidateId"`
	JobID       *string  `json:"jobId"`
	Salary      *float64 `json:"salary"`
	Currency    *string  `json:"currency"`
	Benefits    []string `json:"benefits"`
	StartDate   *string  `json:"startDate"`
	ExpiryDate  *string  `json:"expiryDate"`
	Notes       *string  `json:"notes"`
	Status      *Status  `json:"status"`
}

type Filter struct {
	CandidateID string
	Status      Status
	JobID       string
}

// Stats counts offers by status.
type Stats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Accepted       int `json:"accepted"`
	Declined       int `json:"declined"`
	Expired        int `json:"expired"`
	AcceptanceRate int `json:"acceptanceRate"`
}

type Repository interface {
	List(ctx context.Context) ([]Offer, error)
	Get(ctx context.Context, id string) (Offer, error)
	Insert(ctx context.Context, id string, o Offer) error
	Mutate(ctx context.Context, id string, fn func(*Offer) error) (Offer, error)
}

var (
	ErrNotFound       = errs.NotFound("Offer not found")
	ErrMissingFields  = errs.Validation("Missing required fields")
	ErrNotPending     = errs.InvalidTransition("Offer is not pending")
	ErrInvalidStatus  = errs.Validation("Invalid offer status")
	ErrInvalidSalary  = errs.Validation("salary must be positive")
	ErrInvalidDate    = errs.Validation("Invalid date")
	ErrExpiryTooEarly = errs.Validation("expiryDate must not be before createdDate")
)
