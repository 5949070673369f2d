// Package llmgen produces AI content by prompting a chat model.
package llmgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artem13815/talent/pkg/ai"
	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/llm"
)

var ErrUnparsable = errors.New("model reply is not valid JSON")

type Generator struct {
	model llm.ChatModel
	now   clock.Clock
}

var _ ai.Generator = (*Generator)(nil)

func New(model llm.ChatModel, now clock.Clock) *Generator {
	if now == nil {
		now = clock.System
	}
	return &Generator{model: model, now: now}
}

const systemJSON = "You are an experienced technical recruiter. Reply with JSON only, no prose and no code fences."

func (g *Generator) InterviewQuestions(ctx context.Context, req ai.QuestionsRequest) ([]ai.Question, error) {
	p := req.CandidateProfile
	user := fmt.Sprintf(`Generate %d %s interview questions for a %s level candidate.

Candidate profile:
- Position: %s
- Skills: %s
- Experience: %d years

Question types:
- technical: coding, architecture, problem solving
- behavioral: STAR method questions about past experiences
- system_design: architecture and scalability
- cultural_fit: values, teamwork and company culture

Return a JSON array of objects with fields category, question, difficulty (Easy/Medium/Hard),
follow_up and evaluation_criteria (string array). Make the questions specific to the skills and experience.`,
		req.NumQuestions, req.InterviewType, req.DifficultyLevel,
		or(p.Position, "Software Engineer"), strings.Join(p.Skills, ", "), p.Experience)

	var out []ai.Question
	if err := g.ask(ctx, systemJSON, user, '[', ']', &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Generator) OfferLetter(ctx context.Context, req ai.OfferLetterRequest) (ai.OfferLetter, error) {
	p, c := req.PositionDetails, req.Compensation
	user := fmt.Sprintf(`Write a professional job offer letter.

Candidate: %s
Position: %s
Department: %s
Start date: %s
Location: %s
Reporting to: %s
Base salary: $%d
Stock options: %d shares
Signing bonus: $%d
Annual bonus: %d%%
Company: %s
Template style: %s

Include standard benefits (health insurance, 401k, PTO, learning budget), at-will employment terms and
the offer expiration. Keep the tone professional yet welcoming. Return the letter as plain text.`,
		req.CandidateInfo.Name, p.Title, or(p.Department, "Engineering"), p.StartDate,
		or(p.Location, "San Francisco, CA"), or(p.ReportsTo, "Engineering Manager"),
		c.BaseSalary, c.EquityShares, c.SigningBonus, c.BonusPercentage,
		req.CompanyInfo.Name, req.Template)

	text, err := g.model.Ask(ctx, "You are an HR specialist writing offer letters.", user)
	if err != nil {
		return ai.OfferLetter{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ai.OfferLetter{}, errors.New("empty offer letter")
	}
	return ai.OfferLetter{
		Content:     text,
		GeneratedAt: g.now().UTC().Format(time.RFC3339),
		Status:      "generated",
		Format:      "full_letter",
	}, nil
}

func (g *Generator) MarketAnalysis(ctx context.Context, req ai.MarketAnalysisRequest) (ai.MarketAnalysis, error) {
	user := fmt.Sprintf(`Analyze the compensation market for this role.

Job title: %s
Location: %s
Experience level: %s
Company size: %s

Return a JSON object with fields market_average, competitive_range, top_tier, total_comp and
equity_range (each {"min": number, "max": number}), trends, recommendations and benefits_insights
(string arrays).`, req.JobTitle, req.Location, req.ExperienceLevel, req.CompanySize)

	var out ai.MarketAnalysis
	if err := g.ask(ctx, systemJSON, user, '{', '}', &out); err != nil {
		return ai.MarketAnalysis{}, err
	}
	if out.MarketAverage.Max == 0 {
		return ai.MarketAnalysis{}, ErrUnparsable
	}
	return out, nil
}

func (g *Generator) JobDescription(ctx context.Context, req ai.JobDescriptionRequest) (ai.JobDescription, error) {
	user := fmt.Sprintf(`Write a job posting.

Job title: %s
Required skills: %s
Nice to have: %s
Years of experience: %s
Key responsibilities: %s
Education: %s
Industry projects: %s

Cover position overview, 5-7 key responsibilities, required and preferred qualifications,
what we offer and company culture. Return clean markdown ready for a job board.`,
		req.JobTitle,
		or(req.RequiredSkills, "General skills for this role"),
		or(req.NiceToHave, "Additional beneficial skills"),
		or(req.YearsExperience, "3-5 years"),
		or(req.Responsibilities, "Standard responsibilities for this role"),
		or(req.EducationRequirements, "Bachelor's degree or equivalent experience"),
		or(req.IndustryProjects, "Relevant project experience"))

	text, err := g.model.Ask(ctx, "You are a recruiter writing engaging job postings.", user)
	if err != nil {
		return ai.JobDescription{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ai.JobDescription{}, errors.New("empty job description")
	}
	return ai.JobDescription{
		Description: text,
		GeneratedAt: g.now().UTC().Format(time.RFC3339),
		Status:      "generated",
		JobTitle:    req.JobTitle,
	}, nil
}

// ask decodes the reply as JSON, retrying on the outermost open..close span
// when the model wraps it in prose or fences.
func (g *Generator) ask(ctx context.Context, system, user string, open, close byte, out any) error {
	raw, err := g.model.Ask(ctx, system, user)
	if err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(raw), out); err == nil {
		return nil
	}
	i := strings.IndexByte(raw, open)
	j := strings.LastIndexByte(raw, close)
	if i < 0 || j <= i {
		return ErrUnparsable
	}
	if err := json.Unmarshal([]byte(raw[i:j+1]), out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return nil
}

func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
