package ai

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/template"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/artem13815/talent/pkg/compensation"
)

//go:embed fallback.yaml
var defaultFallback []byte

// Fallback produces deterministic canned payloads.
type Fallback struct {
	questions      map[string][]Question
	offerLetter    *template.Template
	jobDescription *template.Template
	comp           *compensation.Table
}

type fallbackFile struct {
	Questions      map[string][]Question `yaml:"questions"`
	OfferLetter    string                `yaml:"offer_letter"`
	JobDescription string                `yaml:"job_description"`
}

// LoadFallback parses the fallback file at path, or the embedded one when
// path is empty. Market analysis falls back to the compensation table.
func LoadFallback(path string, comp *compensation.Table) (*Fallback, error) {
	data := defaultFallback
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read fallback file: %w", err)
		}
	}
	return ParseFallback(data, comp)
}

func ParseFallback(data []byte, comp *compensation.Table) (*Fallback, error) {
	var f fallbackFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fallback file: %w", err)
	}
	if len(f.Questions[DefaultInterviewType]) == 0 {
		return nil, fmt.Errorf("parse fallback file: no %s questions", DefaultInterviewType)
	}
	funcs := template.FuncMap{"money": money}
	offer, err := template.New("offer_letter").Funcs(funcs).Parse(f.OfferLetter)
	if err != nil {
		return nil, fmt.Errorf("parse offer letter template: %w", err)
	}
	jd, err := template.New("job_description").Funcs(funcs).Parse(f.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("parse job description template: %w", err)
	}
	if comp == nil {
		comp = compensation.Default()
	}
	return &Fallback{questions: f.Questions, offerLetter: offer, jobDescription: jd, comp: comp}, nil
}

// InterviewQuestions returns up to n questions of the requested type,
// technical when the type has no canned questions.
func (f *Fallback) InterviewQuestions(req QuestionsRequest) []Question {
	bank, ok := f.questions[req.InterviewType]
	if !ok {
		bank = f.questions[DefaultInterviewType]
	}
	n := req.NumQuestions
	if n <= 0 || n > len(bank) {
		n = len(bank)
	}
	out := make([]Question, n)
	copy(out, bank[:n])
	return out
}

func (f *Fallback) OfferLetter(req OfferLetterRequest, now time.Time) (OfferLetter, error) {
	p := req.PositionDetails
	data := map[string]any{
		"Candidate":       or(req.CandidateInfo.Name, "Candidate"),
		"Title":           or(p.Title, "Software Engineer"),
		"Department":      or(p.Department, "Engineering"),
		"StartDate":       or(p.StartDate, "to be agreed"),
		"Location":        or(p.Location, "San Francisco, CA"),
		"ReportsTo":       or(p.ReportsTo, "Engineering Manager"),
		"Company":         or(req.CompanyInfo.Name, DefaultCompanyName),
		"BaseSalary":      req.Compensation.BaseSalary,
		"EquityShares":    req.Compensation.EquityShares,
		"SigningBonus":    req.Compensation.SigningBonus,
		"BonusPercentage": req.Compensation.BonusPercentage,
		"Template":        or(req.Template, DefaultTemplate),
	}
	var b strings.Builder
	if err := f.offerLetter.Execute(&b, data); err != nil {
		return OfferLetter{}, fmt.Errorf("render offer letter: %w", err)
	}
	return OfferLetter{
		Content:     b.String(),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Status:      "generated",
		Format:      "full_letter",
		Fallback:    true,
	}, nil
}

func (f *Fallback) MarketAnalysis(req MarketAnalysisRequest) MarketAnalysis {
	return MarketAnalysis{MarketAnalysis: f.comp.Estimate(req.JobTitle, req.Location), Fallback: true}
}

func (f *Fallback) JobDescription(req JobDescriptionRequest, now time.Time) (JobDescription, error) {
	data := map[string]string{
		"Title":            req.JobTitle,
		"Responsibilities": req.Responsibilities,
		"Education":        req.EducationRequirements,
		"Experience":       req.YearsExperience,
		"Skills":           req.RequiredSkills,
		"NiceToHave":       req.NiceToHave,
	}
	var b strings.Builder
	if err := f.jobDescription.Execute(&b, data); err != nil {
		return JobDescription{}, fmt.Errorf("render job description: %w", err)
	}
	return JobDescription{
		Description: strings.TrimSpace(b.String()),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Status:      "generated",
		JobTitle:    req.JobTitle,
		Fallback:    true,
	}, nil
}

// money formats whole dollars with thousands separators.
func money(v int) string {
	s := strconv.Itoa(v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
