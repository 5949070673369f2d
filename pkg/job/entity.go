package job

import (
	"context"
	"time"

	"github.com/artem13815/talent/pkg/errs"
)

type Type string

const (
	TypeFullTime Type = "full-time"
	TypePartTime Type = "part-time"
	TypeContract Type = "contract"
)

func (t Type) Valid() bool {
	return t == TypeFullTime || t == TypePartTime || t == TypeContract
}

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusPaused || s == StatusClosed
}

type Level string

const (
	LevelEntry  Level = "entry"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

func (l Level) Valid() bool {
	return l == LevelEntry || l == LevelMid || l == LevelSenior
}

// Salary is a pay band; Min never exceeds Max.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Job is an open (or formerly open) position.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Department      string    `json:"department"`
	Location        string    `json:"location"`
	Type            Type      `json:"type"`
	Status          Status    `json:"status"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Skills          []string  `json:"skills"`
	ExperienceLevel Level     `json:"experienceLevel"`
	Salary          Salary    `json:"salary"`
	CreatedDate     string    `json:"createdDate"`
	Applicants      int       `json:"applicants"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Input struct {
	Title           string   `json:"title"`
	Department      string   `json:"department"`
	Location        string   `json:"location"`
	Type            Type     `json:"type"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Skills          []string `json:"skills"`
	ExperienceLevel Level    `json:"experienceLevel"`
	Salary          Salary   `json:"salary"`
	CreatedBy       string   `json:"-"`
}

// Patch is a partial update. A non-nil Salary replaces the whole band.
type Patch struct {
	Title           *string  `json:"title"`
	Department      *string  `json:"department"`
	Location        *string  `json:"location"`
	Type            *Type    `json:"type"`
	Status          *Status  `json:"status"`
	Description     *string  `json:"description"`
	Requirements    []string `json:"requirements"`
	Skills          []string `json:"skills"`
	ExperienceLevel *Level   `json:"experienceLevel"`
	Salary          *Salary  `json:"salary"`
	Applicants      *int     `json:"applicants"`
}

// Filter narrows List. Department matches case-insensitively.
type Filter struct {
	Department string
	Status     Status
}

type Repository interface {
	List(ctx context.Context) ([]Job, error)
	Get(ctx context.Context, id string) (Job, error)
	Insert(ctx context.Context, id string, j Job) error
	Mutate(ctx context.Context, id string, fn func(*Job) error) (Job, error)
}

var (
	ErrNotFound          = errs.NotFound("Job not found")
	ErrMissingFields     = errs.Validation("Missing required fields")
	ErrInvalidType       = errs.Validation("Invalid job type")
	ErrInvalidStatus     = errs.Validation("Invalid job status")
	ErrInvalidLevel      = errs.Validation("Invalid experience level")
	ErrInvalidSalary     = errs.Validation("Salary min must not exceed max")
	ErrInvalidApplicants = errs.Validation("applicants must not be negative")
)
