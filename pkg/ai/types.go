package ai

import (
	"github.com/artem13815/talent/pkg/compensation"
	"github.com/artem13815/talent/pkg/errs"
)

// Field names follow the external AI service's snake_case contract.

type CandidateProfile struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
	Email      string   `json:"email,omitempty"`
}

type QuestionsRequest struct {
	// CandidateID, when set, replaces CandidateProfile with the stored candidate.
	CandidateID      string           `json:"candidateId,omitempty"`
	CandidateProfile CandidateProfile `json:"candidate_profile"`
	InterviewType    string           `json:"interview_type"`
	DifficultyLevel  string           `json:"difficulty_level"`
	NumQuestions     int              `json:"num_questions"`
}

type Question struct {
	Category           string   `json:"category" yaml:"category"`
	Question           string   `json:"question" yaml:"question"`
	Difficulty         string   `json:"difficulty" yaml:"difficulty"`
	FollowUp           string   `json:"follow_up" yaml:"follow_up"`
	EvaluationCriteria []string `json:"evaluation_criteria" yaml:"evaluation_criteria"`
}

type QuestionSet struct {
	Questions []Question `json:"questions"`
	Fallback  bool       `json:"fallback,omitempty"`
}

type PositionDetails struct {
	Title      string `json:"title"`
	Department string `json:"department"`
	StartDate  string `json:"start_date"`
	Location   string `json:"location"`
	ReportsTo  string `json:"reports_to"`
}

type Compensation struct {
	BaseSalary      int `json:"base_salary"`
	EquityShares    int `json:"equity_shares"`
	SigningBonus    int `json:"signing_bonus"`
	BonusPercentage int `json:"bonus_percentage"`
}

type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type OfferLetterRequest struct {
	CandidateInfo   CandidateProfile `json:"candidate_info"`
	PositionDetails PositionDetails  `json:"position_details"`
	Compensation    Compensation     `json:"compensation"`
	CompanyInfo     CompanyInfo      `json:"company_info"`
	Template        string           `json:"template,omitempty"`
}

type OfferLetter struct {
	Content     string `json:"content"`
	GeneratedAt string `json:"generated_at"`
	Status      string `json:"status"`
	Format      string `json:"format"`
	Fallback    bool   `json:"fallback,omitempty"`
}

type MarketAnalysisRequest struct {
	JobTitle        string `json:"job_title"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experience_level"`
	CompanySize     string `json:"company_size"`
}

type MarketAnalysis struct {
	compensation.MarketAnalysis
	Fallback bool `json:"fallback,omitempty"`
}

type JobDescriptionRequest struct {
	JobTitle              string `json:"job_title"`
	RequiredSkills        string `json:"required_skills"`
	NiceToHave            string `json:"nice_to_have"`
	YearsExperience       string `json:"years_experience"`
	Responsibilities      string `json:"responsibilities"`
	EducationRequirements string `json:"education_requirements"`
	IndustryProjects      string `json:"industry_projects"`
}

type JobDescription struct {
	Description string `json:"description"`
	GeneratedAt string `json:"generated_at"`
	Status      string `json:"status"`
	JobTitle    string `json:"job_title"`
	Fallback    bool   `json:"fallback,omitempty"`
}

const (
	DefaultInterviewType = "technical"
	DefaultDifficulty    = "mid-level"
	DefaultNumQuestions  = 5
	MaxNumQuestions      = 20
	DefaultCompanyName   = "TechCorp Inc."
	DefaultTemplate      = "standard"
)

var (
	ErrInvalidInterviewType = errs.Validation("Invalid interview_type")
	ErrInvalidDifficulty    = errs.Validation("Invalid difficulty_level")
	ErrInvalidNumQuestions  = errs.Validation("num_questions must be between 1 and 20")
	ErrInvalidTemplate      = errs.Validation("Invalid offer template")
	ErrJobTitleRequired     = errs.Validation("job_title is required")
	ErrCandidateRequired    = errs.Validation("Candidate name is required")
	ErrPositionRequired     = errs.Validation("Position title is required")
)
