package pipeline

import (
	"math"

	"github.com/artem13815/talent/pkg/errs"
)

// Stage is the position of a candidate in the hiring funnel.
type Stage string

const (
	StageScreening    Stage = "screening"
	StageInterviewing Stage = "interviewing"
	StageOffer        Stage = "offer"
	StageHired        Stage = "hired"
	StageRejected     Stage = "rejected"
)

// Stages lists every stage in funnel order.
var Stages = []Stage{StageScreening, StageInterviewing, StageOffer, StageHired, StageRejected}

func (s Stage) Valid() bool {
	for _, v := range Stages {
		if v == s {
			return true
		}
	}
	return false
}

// Rank is the funnel depth of s. Rejected has no depth.
func (s Stage) Rank() int {
	switch s {
	case StageScreening:
		return 0
	case StageInterviewing:
		return 1
	case StageOffer:
		return 2
	case StageHired:
		return 3
	default:
		return -1
	}
}

// Status is the lifecycle state of a candidate record.
type Status string

const (
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
	StatusHired    Status = "hired"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusRejected || s == StatusHired
}

var ErrStatusConflict = errs.Validation("Status conflicts with stage")

// Policy controls how stage and status relate.
type Policy struct {
	// SyncStatus couples status to stage. When false the two are independent.
	SyncStatus bool
}

// Reconcile returns the stage/status pair to store after a change.
// stageSet and statusSet tell which fields the caller touched.
func (p Policy) Reconcile(stage Stage, status Status, stageSet, statusSet bool) (Stage, Status, error) {
	if !p.SyncStatus {
		return stage, status, nil
	}
	if statusSet && !stageSet {
		switch status {
		case StatusHired:
			return StageHired, status, nil
		case StatusRejected:
			return StageRejected, status, nil
		}
	}
	want := StatusFor(stage)
	if statusSet && stageSet && status != want {
		return stage, status, ErrStatusConflict
	}
	return stage, want, nil
}

// StatusFor is the status implied by stage in coupled mode.
func StatusFor(stage Stage) Status {
	switch stage {
	case StageHired:
		return StatusHired
	case StageRejected:
		return StatusRejected
	default:
		return StatusActive
	}
}

// Percent is round(100*part/whole), 0 when whole is 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// Progress is the share of completed items.
func Progress(done, total int) int { return Percent(done, total) }
