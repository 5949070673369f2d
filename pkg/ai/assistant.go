// Package ai drafts interview questions, offer letters, market analyses and
// job descriptions. A Generator produces live content; when it fails the
// Assistant serves canned content marked with fallback=true instead.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artem13815/talent/pkg/cache"
	"github.com/artem13815/talent/pkg/clock"
)

// Generator produces live AI content.
type Generator interface {
	InterviewQuestions(ctx context.Context, req QuestionsRequest) ([]Question, error)
	OfferLetter(ctx context.Context, req OfferLetterRequest) (OfferLetter, error)
	MarketAnalysis(ctx context.Context, req MarketAnalysisRequest) (MarketAnalysis, error)
	JobDescription(ctx context.Context, req JobDescriptionRequest) (JobDescription, error)
}

// CandidateLookup resolves a stored candidate into a profile.
type CandidateLookup func(ctx context.Context, id string) (CandidateProfile, error)

type Option func(*Assistant)

// WithCache caches live results for ttl. A non-positive ttl disables caching.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(a *Assistant) {
		if ttl > 0 {
			a.cache, a.ttl = c, ttl
		}
	}
}

func WithTimeout(d time.Duration) Option { return func(a *Assistant) { a.timeout = d } }

func WithLogger(l zerolog.Logger) Option { return func(a *Assistant) { a.log = l } }

func WithClock(c clock.Clock) Option { return func(a *Assistant) { a.now = c } }

func WithCandidateLookup(fn CandidateLookup) Option { return func(a *Assistant) { a.lookup = fn } }

type Assistant struct {
	gen      Generator
	fallback *Fallback
	cache    cache.Cache
	ttl      time.Duration
	timeout  time.Duration
	log      zerolog.Logger
	now      clock.Clock
	lookup   CandidateLookup
}

// NewAssistant wires a generator with its fallback. A nil generator serves
// canned content only.
func NewAssistant(gen Generator, fallback *Fallback, opts ...Option) *Assistant {
	a := &Assistant{
		gen:      gen,
		fallback: fallback,
		timeout:  10 * time.Second,
		log:      zerolog.Nop(),
		now:      clock.System,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Assistant) QuestionCatalog() QuestionCatalog { return Questions() }

func (a *Assistant) TemplateCatalog() TemplateCatalog { return Templates() }

func (a *Assistant) InterviewQuestions(ctx context.Context, req QuestionsRequest) (QuestionSet, error) {
	if req.InterviewType == "" {
		req.InterviewType = DefaultInterviewType
	}
	if !known(questionCatalog.Categories, req.InterviewType) {
		return QuestionSet{}, ErrInvalidInterviewType
	}
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = DefaultDifficulty
	}
	if !known(questionCatalog.DifficultyLevels, req.DifficultyLevel) {
		return QuestionSet{}, ErrInvalidDifficulty
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = DefaultNumQuestions
	}
	if req.NumQuestions < 0 || req.NumQuestions > MaxNumQuestions {
		return QuestionSet{}, ErrInvalidNumQuestions
	}
	if req.CandidateID != "" && a.lookup != nil {
		profile, err := a.lookup(ctx, req.CandidateID)
		if err == nil {
			req.CandidateProfile = profile
		} else {
			a.log.Warn().Err(err).Str("candidate_id", req.CandidateID).Msg("candidate lookup failed, using request profile")
		}
	}

	qs, live := run(ctx, a, "questions", req,
		func(ctx context.Context) ([]Question, error) {
			qs, err := a.gen.InterviewQuestions(ctx, req)
			if err == nil && len(qs) == 0 {
				err = errors.New("generator returned no questions")
			}
			return qs, err
		},
		func() ([]Question, error) { return a.fallback.InterviewQuestions(req), nil })
	if len(qs) > req.NumQuestions {
		qs = qs[:req.NumQuestions]
	}
	return QuestionSet{Questions: qs, Fallback: !live}, nil
}

func (a *Assistant) OfferLetter(ctx context.Context, req OfferLetterRequest) (OfferLetter, error) {
	if strings.TrimSpace(req.CandidateInfo.Name) == "" {
		return OfferLetter{}, ErrCandidateRequired
	}
	if strings.TrimSpace(req.PositionDetails.Title) == "" {
		return OfferLetter{}, ErrPositionRequired
	}
	if req.Template == "" {
		req.Template = DefaultTemplate
	}
	if templateName(req.Template) == "" {
		return OfferLetter{}, ErrInvalidTemplate
	}
	if req.CompanyInfo.Name == "" {
		req.CompanyInfo.Name = DefaultCompanyName
	}
	letter, live := run(ctx, a, "offer_letter", req,
		func(ctx context.Context) (OfferLetter, error) { return a.gen.OfferLetter(ctx, req) },
		func() (OfferLetter, error) { return a.fallback.OfferLetter(req, a.now()) })
	letter.Fallback = !live
	return letter, nil
}

func (a *Assistant) MarketAnalysis(ctx context.Context, req MarketAnalysisRequest) (MarketAnalysis, error) {
	if strings.TrimSpace(req.JobTitle) == "" {
		return MarketAnalysis{}, ErrJobTitleRequired
	}
	ma, live := run(ctx, a, "market_analysis", req,
		func(ctx context.Context) (MarketAnalysis, error) { return a.gen.MarketAnalysis(ctx, req) },
		func() (MarketAnalysis, error) { return a.fallback.MarketAnalysis(req), nil })
	ma.Fallback = !live
	return ma, nil
}

func (a *Assistant) JobDescription(ctx context.Context, req JobDescriptionRequest) (JobDescription, error) {
	if strings.TrimSpace(req.JobTitle) == "" {
		return JobDescription{}, ErrJobTitleRequired
	}
	jd, live := run(ctx, a, "job_description", req,
		func(ctx context.Context) (JobDescription, error) { return a.gen.JobDescription(ctx, req) },
		func() (JobDescription, error) { return a.fallback.JobDescription(req, a.now()) })
	jd.Fallback = !live
	return jd, nil
}

// run resolves one request: cache, then the generator under the timeout,
// then the fallback. It reports whether the result is live content.
func run[T any](ctx context.Context, a *Assistant, op string, req any,
	live func(context.Context) (T, error), canned func() (T, error)) (T, bool) {
	log := a.log.With().Str("op", op).Logger()

	key := ""
	if a.cache != nil {
		if k, err := cache.Key("ai:"+op, req); err == nil {
			key = k
			if raw, err := a.cache.Get(ctx, key); err == nil {
				var v T
				if err := json.Unmarshal(raw, &v); err == nil {
					return v, true
				}
			} else if !errors.Is(err, cache.ErrMiss) {
				log.Warn().Err(err).Msg("ai cache read failed")
			}
		}
	}

	if a.gen != nil {
		callCtx, cancel := context.WithTimeout(ctx, a.timeout)
		v, err := live(callCtx)
		cancel()
		if err == nil {
			if key != "" {
				if raw, err := json.Marshal(v); err == nil {
					if err := a.cache.Set(ctx, key, raw, a.ttl); err != nil {
						log.Warn().Err(err).Msg("ai cache write failed")
					}
				}
			}
			return v, true
		}
		log.Warn().Err(err).Msg("ai generator failed, serving fallback")
	}

	v, err := canned()
	if err != nil {
		log.Error().Err(err).Msg("ai fallback failed")
	}
	return v, false
}
