package onboarding

import (
	"context"
	"time"

	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/pipeline"
)

type Status string

const (
	StatusPreBoarding Status = "pre-boarding"
	StatusOnboarding  Status = "onboarding"
	StatusCompleted   Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPreBoarding || s == StatusOnboarding || s == StatusCompleted
}

type Category string

const (
	CategoryDocumentation Category = "documentation"
	CategorySetup         Category = "setup"
	CategoryTraining      Category = "training"
	CategoryMeeting       Category = "meeting"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDocumentation, CategorySetup, CategoryTraining, CategoryMeeting:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	return s == TaskPending || s == TaskInProgress || s == TaskCompleted
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate,omitempty"`
	Points      int        `json:"points"`
}

// NewHire owns its task list. Progress and TotalPoints are derived from the
// tasks and recomputed by Recalculate.
type NewHire struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Department  string    `json:"department"`
	StartDate   string    `json:"startDate"`
	Buddy       string    `json:"buddy,omitempty"`
	Manager     string    `json:"manager,omitempty"`
	Status      Status    `json:"status"`
	Progress    int       `json:"progress"`
	TotalPoints int       `json:"totalPoints"`
	Tasks       []Task    `json:"tasks"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Recalculate refreshes progress and points. The status is left alone.
func (h *NewHire) Recalculate() {
	done, points := 0, 0
	for _, t := range h.Tasks {
		if t.Status == TaskCompleted {
			done++
			points += t.Points
		}
	}
	h.Progress = pipeline.Progress(done, len(h.Tasks))
	h.TotalPoints = points
}

// AdvanceStatus moves the status along with progress: a finished checklist
// completes onboarding, any progress leaves pre-boarding, and reopening a task
// on a completed hire moves it back to onboarding. A hire without tasks keeps
// its status.
func (h *NewHire) AdvanceStatus() {
	if len(h.Tasks) == 0 {
		return
	}
	switch {
	case h.Progress == 100:
		h.Status = StatusCompleted
	case h.Status == StatusCompleted:
		h.Status = StatusOnboarding
	case h.Status == StatusPreBoarding && h.Progress > 0:
		h.Status = StatusOnboarding
	}
}

func (h *NewHire) task(id string) *Task {
	for i := range h.Tasks {
		if h.Tasks[i].ID == id {
			return &h.Tasks[i]
		}
	}
	return nil
}

// TaskTemplate describes a task added to every new checklist.
type TaskTemplate struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Points      int      `json:"points" yaml:"points"`
}

// DefaultTasks is the checklist every new hire starts with.
var DefaultTasks = []TaskTemplate{
	{Title: "Complete IT Setup", Description: "Set up your laptop and development environment", Category: CategorySetup, Points: 50},
	{Title: "Review Company Handbook", Description: "Read through company policies and procedures", Category: CategoryDocumentation, Points: 30},
	{Title: "First Team Meeting", Description: "Meet with your immediate team members", Category: CategoryMeeting, Points: 40},
}

type Input struct {
	CandidateID string `json:"candidateId"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	StartDate   string `json:"startDate"`
	Buddy       string `json:"buddy"`
	Manager     string `json:"manager"`
}

type Patch struct {
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	StartDate  *string `json:"startDate"`
	Buddy      *string `json:"buddy"`
	Manager    *string `json:"manager"`
	Status     *Status `json:"status"`
}

type TaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	DueDate     string   `json:"dueDate"`
	Points      int      `json:"points"`
}

// Filter narrows List. Department matches case-insensitively.
type Filter struct {
	Status     Status
	Department string
}

type Stats struct {
	Total           int `json:"total"`
	PreBoarding     int `json:"preBoarding"`
	Onboarding      int `json:"onboarding"`
	Completed       int `json:"completed"`
	AverageProgress int `json:"averageProgress"`
	TotalPoints     int `json:"totalPoints"`
}

type Repository interface {
	List(ctx context.Context) ([]NewHire, error)
	Get(ctx context.Context, id string) (NewHire, error)
	Insert(ctx context.Context, id string, h NewHire) error
	Mutate(ctx context.Context, id string, fn func(*NewHire) error) (NewHire, error)
}

var (
	ErrNotFound          = errs.NotFound("New hire not found")
	ErrTaskNotFound      = errs.NotFound("Task not found")
	ErrMissingFields     = errs.Validation("Missing required fields")
	ErrStatusRequired    = errs.Validation("Status is required")
	ErrInvalidStatus     = errs.Validation("Invalid onboarding status")
	ErrInvalidTaskStatus = errs.Validation("Invalid task status")
	ErrInvalidCategory   = errs.Validation("Invalid task category")
	ErrInvalidPoints     = errs.Validation("points must not be negative")
	ErrInvalidDate       = errs.Validation("Invalid date")
	ErrTaskTitleRequired = errs.Validation("Task title is required")
)
