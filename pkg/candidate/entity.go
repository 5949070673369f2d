package candidate

import (
	"context"
	"time"

	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/pipeline"
)

// Source is the channel a candidate applied through.
type Source string

const (
	SourceDirect   Source = "direct"
	SourceLinkedIn Source = "linkedin"
	SourceReferral Source = "referral"
	SourceJobBoard Source = "job-board"
)

func (s Source) Valid() bool {
	switch s {
	case SourceDirect, SourceLinkedIn, SourceReferral, SourceJobBoard:
		return true
	}
	return false
}

// Candidate is a person moving through the hiring pipeline.
type Candidate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Position    string          `json:"position"`
	Experience  int             `json:"experience"`
	Skills      []string        `json:"skills"`
	Stage       pipeline.Stage  `json:"stage"`
	AIScore     int             `json:"aiScore"`
	AppliedDate string          `json:"appliedDate"`
	ResumeURL   string          `json:"resumeUrl,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Status      pipeline.Status `json:"status"`
	Source      Source          `json:"source"`
	JobID       string          `json:"jobId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Input carries the fields accepted on create.
type Input struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Position   string   `json:"position"`
	Experience int      `json:"experience"`
	Skills     []string `json:"skills"`
	ResumeURL  string   `json:"resumeUrl"`
	Notes      string   `json:"notes"`
	Source     Source   `json:"source"`
	JobID      string   `json:"jobId"`
}

// Patch is a partial update; nil fields are left untouched and a non-nil
// Skills slice replaces the stored one.
type Patch struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Position   *string          `json:"position"`
	Experience *int             `json:"experience"`
	Skills     []string         `json:"skills"`
	Stage      *pipeline.Stage  `json:"stage"`
	AIScore    *int             `json:"aiScore"`
	ResumeURL  *string          `json:"resumeUrl"`
	Notes      *string          `json:"notes"`
	Status     *pipeline.Status `json:"status"`
	Source     *Source          `json:"source"`
	JobID      *string          `json:"jobId"`
}

// Filter narrows List. Empty fields match everything; set fields combine with AND.
type Filter struct {
	Stage  pipeline.Stage
	JobID  string
	Search string
	Source Source
	Status pipeline.Status
}

// Repository is the storage port for candidates.
type Repository interface {
	List(ctx context.Context) ([]Candidate, error)
	Get(ctx context.Context, id string) (Candidate, error)
	Insert(ctx context.Context, id string, c Candidate) error
	Mutate(ctx context.Context, id string, fn func(*Candidate) error) (Candidate, error)
}

var (
	ErrNotFound       = errs.NotFound("Candidate not found")
	ErrMissingFields  = errs.Validation("Missing required fields")
	ErrStageRequired  = errs.Validation("Stage is required")
	ErrInvalidStage   = errs.Validation("Invalid stage")
	ErrInvalidStatus  = errs.Validation("Invalid status")
	ErrInvalidEmail   = errs.Validation("Invalid email")
	ErrInvalidSource  = errs.Validation("Invalid source")
	ErrInvalidScore   = errs.Validation("aiScore must be between 1 and 5")
	ErrNegativeYears  = errs.Validation("experience must not be negative")
	ErrResumeRequired = errs.Validation("Resume URL is required")
)
