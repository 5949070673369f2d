// Package analytics aggregates the hiring stores into dashboard metrics.
// Every figure is derived from stored records at request time.
package analytics

import (
	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/onboarding"
)

// Snapshot is one consistent read of every store.
type Snapshot struct {
	Jobs       []job.Job
	Candidates []candidate.Candidate
	Interviews []interview.Interview
	Offers     []offer.Offer
	NewHires   []onboarding.NewHire
}

type Dashboard struct {
	OpenPositions            int            `json:"openPositions"`
	ActiveCandidates         int            `json:"activeCandidates"`
	InterviewsScheduled      int            `json:"interviewsScheduled"`
	OffersExtended           int            `json:"offersExtended"`
	NewHires                 int            `json:"newHires"`
	TimeToHire               int            `json:"timeToHire"`
	CandidateSourceBreakdown map[string]int `json:"candidateSourceBreakdown"`
	PipelineMetrics          map[string]int `json:"pipelineMetrics"`
}

// DepartmentTime is the average number of days from application to hire.
type DepartmentTime struct {
	Department  string `json:"department"`
	AverageDays int    `json:"averageDays"`
	Hires       int    `json:"hires"`
}

type SourceShare struct {
	Source     string `json:"source"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"value"`
}

type DepartmentPerformance struct {
	Department    string `json:"department"`
	OpenJobs      int    `json:"openJobs"`
	TotalJobs     int    `json:"totalJobs"`
	Candidates    int    `json:"candidates"`
	Hires         int    `json:"hires"`
	AverageSalary int    `json:"averageSalary"`
}

type FunnelStep struct {
	Stage      string `json:"stage"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
	Metric      string `json:"metric"`
}

// Unassigned groups hires whose job is unknown.
const Unassigned = "Unassigned"
