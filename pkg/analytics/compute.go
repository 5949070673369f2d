package analytics

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/pipeline"
)

var sources = []candidate.Source{
	candidate.SourceLinkedIn, candidate.SourceDirect, candidate.SourceReferral, candidate.SourceJobBoard,
}

var sourceNames = map[candidate.Source]string{
	candidate.SourceLinkedIn: "LinkedIn",
	candidate.SourceDirect:   "Direct Apply",
	candidate.SourceReferral: "Referrals",
	candidate.SourceJobBoard: "Job Boards",
}

func (s Snapshot) Dashboard() Dashboard {
	d := Dashboard{
		NewHires:                 len(s.NewHires),
		TimeToHire:               averageDays(s.hires(0, time.Time{})),
		CandidateSourceBreakdown: make(map[string]int, len(sources)),
		PipelineMetrics:          make(map[string]int, len(pipeline.Stages)),
	}
	for _, j := range s.Jobs {
		if j.Status == job.StatusActive {
			d.OpenPositions++
		}
	}
	for _, src := range sources {
		d.CandidateSourceBreakdown[string(src)] = 0
	}
	for _, st := range pipeline.Stages {
		d.PipelineMetrics[string(st)] = 0
	}
	for _, c := range s.Candidates {
		if c.Status == pipeline.StatusActive {
			d.ActiveCandidates++
		}
		d.CandidateSourceBreakdown[string(c.Source)]++
		d.PipelineMetrics[string(c.Stage)]++
	}
	for _, iv := range s.Interviews {
		if iv.Status == interview.StatusScheduled {
			d.InterviewsScheduled++
		}
	}
	for _, o := range s.Offers {
		if o.Status == offer.StatusPending {
			d.OffersExtended++
		}
	}
	return d
}

type hire struct {
	department string
	days       int
	at         time.Time
}

// hires lists hired candidates. The hire date is the acceptance date of the
// candidate's accepted offer, or the last update of the record. A positive
// window keeps only hires within that many days before now.
func (s Snapshot) hires(window int, now time.Time) []hire {
	jobs := make(map[string]job.Job, len(s.Jobs))
	for _, j := range s.Jobs {
		jobs[j.ID] = j
	}
	accepted := make(map[string]time.Time)
	for _, o := range s.Offers {
		if o.Status != offer.StatusAccepted {
			continue
		}
		if at, err := clock.ParseDate(o.AcceptedDate); err == nil {
			accepted[o.CandidateID] = at
		}
	}

	var out []hire
	for _, c := range s.Candidates {
		if c.Stage != pipeline.StageHired && c.Status != pipeline.StatusHired {
			continue
		}
		applied, err := clock.ParseDate(c.AppliedDate)
		if err != nil {
			continue
		}
		at, ok := accepted[c.ID]
		if !ok {
			at = c.UpdatedAt
		}
		if window > 0 && at.Before(now.AddDate(0, 0, -window)) {
			continue
		}
		dept := Unassigned
		if j, ok := jobs[c.JobID]; ok && j.Department != "" {
			dept = j.Department
		}
		out = append(out, hire{department: dept, days: max(0, int(at.Sub(applied).Hours()/24)), at: at})
	}
	return out
}

func averageDays(hs []hire) int {
	if len(hs) == 0 {
		return 0
	}
	sum := 0
	for _, h := range hs {
		sum += h.days
	}
	return int(math.Round(float64(sum) / float64(len(hs))))
}

// TimeToHire groups hires by department, sorted by department name.
func (s Snapshot) TimeToHire(window int, now time.Time) []DepartmentTime {
	byDept := make(map[string][]hire)
	for _, h := range s.hires(window, now) {
		byDept[h.department] = append(byDept[h.department], h)
	}
	out := make([]DepartmentTime, 0, len(byDept))
	for dept, hs := range byDept {
		out = append(out, DepartmentTime{Department: dept, AverageDays: averageDays(hs), Hires: len(hs)})
	}
	slices.SortFunc(out, func(a, b DepartmentTime) int { return cmp.Compare(a.Department, b.Department) })
	return out
}

// CandidateSources orders sources by count, largest first.
func (s Snapshot) CandidateSources() []SourceShare {
	counts := make(map[candidate.Source]int, len(sources))
	for _, c := range s.Candidates {
		counts[c.Source]++
	}
	out := make([]SourceShare, 0, len(sources))
	for _, src := range sources {
		out = append(out, SourceShare{
			Source:     string(src),
			Name:       sourceNames[src],
			Count:      counts[src],
			Percentage: pipeline.Percent(counts[src], len(s.Candidates)),
		})
	}
	slices.SortStableFunc(out, func(a, b SourceShare) int { return cmp.Compare(b.Count, a.Count) })
	return out
}

func (s Snapshot) DepartmentPerformance() []DepartmentPerformance {
	type acc struct {
		DepartmentPerformance
		salarySum int
	}
	byDept := make(map[string]*acc)
	deptOf := make(map[string]string, len(s.Jobs))
	get := func(dept string) *acc {
		a, ok := byDept[dept]
		if !ok {
			a = &acc{DepartmentPerformance: DepartmentPerformance{Department: dept}}
			byDept[dept] = a
		}
		return a
	}
	for _, j := range s.Jobs {
		deptOf[j.ID] = j.Department
		a := get(j.Department)
		a.TotalJobs++
		if j.Status == job.StatusActive {
			a.OpenJobs++
		}
		a.salarySum += (j.Salary.Min + j.Salary.Max) / 2
	}
	for _, c := range s.Candidates {
		dept, ok := deptOf[c.JobID]
		if !ok {
			continue
		}
		a := get(dept)
		a.Candidates++
		if c.Stage == pipeline.StageHired {
			a.Hires++
		}
	}
	out := make([]DepartmentPerformance, 0, len(byDept))
	for _, a := range byDept {
		if a.TotalJobs > 0 {
			a.AverageSalary = int(math.Round(float64(a.salarySum) / float64(a.TotalJobs)))
		}
		out = append(out, a.DepartmentPerformance)
	}
	slices.SortFunc(out, func(a, b DepartmentPerformance) int { return cmp.Compare(a.Department, b.Department) })
	return out
}

// ConversionFunnel counts candidates that reached each stage. Rejected
// candidates only count as applications since the stage they left is not kept.
func (s Snapshot) ConversionFunnel() []FunnelStep {
	steps := []struct {
		label string
		stage pipeline.Stage
	}{
		{"Screening", pipeline.StageScreening},
		{"Interviews", pipeline.StageInterviewing},
		{"Offers", pipeline.StageOffer},
		{"Hired", pipeline.StageHired},
	}
	total := len(s.Candidates)
	out := []FunnelStep{{Stage: "Applications", Count: total, Percentage: pipeline.Percent(total, total)}}
	for _, st := range steps {
		n := 0
		for _, c := range s.Candidates {
			if c.Stage.Rank() >= st.stage.Rank() {
				n++
			}
		}
		out = append(out, FunnelStep{Stage: st.label, Count: n, Percentage: pipeline.Percent(n, total)})
	}
	return out
}

// Insights derives rule-based observations from the snapshot.
func (s Snapshot) Insights() []Insight {
	out := make([]Insight, 0, 3)

	decided, accepted := 0, 0
	for _, o := range s.Offers {
		switch o.Status {
		case offer.StatusAccepted:
			accepted++
			decided++
		case offer.StatusDeclined, offer.StatusExpired:
			decided++
		}
	}
	if decided > 0 {
		rate := pipeline.Percent(accepted, decided)
		in := Insight{
			Type:        "offers",
			Title:       "Offer Acceptance",
			Description: fmt.Sprintf("%d of %d decided offers were accepted.", accepted, decided),
			Impact:      ImpactPositive,
			Metric:      fmt.Sprintf("%d%%", rate),
		}
		if rate < 50 {
			in.Impact = ImpactNegative
			in.Description += " Review compensation against the market before extending new offers."
		}
		out = append(out, in)
	}

	if shares := s.CandidateSources(); len(s.Candidates) > 0 {
		top := shares[0]
		out = append(out, Insight{
			Type:        "optimization",
			Title:       "Source Optimization",
			Description: fmt.Sprintf("%s brings %d%% of all candidates; consider investing more in this channel.", top.Name, top.Percentage),
			Impact:      ImpactPositive,
			Metric:      fmt.Sprintf("%d%%", top.Percentage),
		})
	}

	completed, closed := 0, 0
	for _, iv := range s.Interviews {
		switch iv.Status {
		case interview.StatusCompleted:
			completed++
			closed++
		case interview.StatusCancelled:
			closed++
		}
	}
	if closed > 0 {
		rate := pipeline.Percent(completed, closed)
		in := Insight{
			Type:        "trend",
			Title:       "Interview Completion",
			Description: fmt.Sprintf("%d%% of finished interviews were completed rather than cancelled.", rate),
			Impact:      ImpactPositive,
			Metric:      fmt.Sprintf("%d%%", rate),
		}
		if rate < 70 {
			in.Impact = ImpactNegative
			in.Description += " Consider optimizing the scheduling process."
		}
		out = append(out, in)
	}

	if len(out) == 0 {
		out = append(out, Insight{
			Type:        "info",
			Title:       "Not Enough Data",
			Description: "Insights appear once candidates, offers and interviews are recorded.",
			Impact:      ImpactNeutral,
			Metric:      "0",
		})
	}
	return out
}
