// @title         Talent Acquisition API
// @version       1.0
// @description   Recruiting backend: jobs, candidates, interviews, offers, onboarding, analytics and AI helpers.
// @BasePath      /api
// @schemes       http
// @host          localhost:3001
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token. "Bearer <JWT>" or a bare "<JWT>" are accepted.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	_ "github.com/artem13815/talent/docs"

	// internal imports
	"github.com/artem13815/talent/api/http"
	"github.com/artem13815/talent/api/http/handlers"
	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/ai"
	"github.com/artem13815/talent/pkg/analytics"
	"github.com/artem13815/talent/pkg/auth"
	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/compensation"
	"github.com/artem13815/talent/pkg/config"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/health"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/logging"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/onboarding"
	"github.com/artem13815/talent/pkg/pipeline"
	"github.com/artem13815/talent/pkg/security/jwt"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	log := logging.Setup(cfg.LogLevel, cfg.Development())
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	st, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.SeedDemoData {
		if err := seedStores(ctx, cfg, st); err != nil {
			return err
		}
	}

	pub, closePub, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	defer closePub()
	emitter := events.NewEmitter(pub, logging.Component("events"))

	inf, err := newInfra(cfg)
	if err != nil {
		return err
	}
	defer inf.Close()

	// Domain services
	jobs := job.NewService(st.jobs, emitter, clock.System)
	candidates := candidate.NewService(st.candidates, emitter,
		candidate.WithPolicy(pipeline.Policy{SyncStatus: cfg.PipelineSyncStatus}))
	interviews := interview.NewService(st.interviews, emitter, clock.System)
	offers := offer.NewService(st.offers, emitter, offer.WithValidityDays(cfg.OfferDefaultValidityDays))
	hires := onboarding.NewService(st.hires, emitter, onboarding.WithAutoStatus(cfg.OnboardingAutoStatus))
	stats := analytics.NewService(analytics.Readers{
		Jobs:       jobs,
		Candidates: candidates,
		Interviews: interviews,
		Offers:     offers,
		NewHires:   hires,
	}, clock.System)

	assistant, err := newAssistant(cfg, inf, candidates)
	if err != nil {
		return err
	}

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(st.users, jwtGen, 0)

	readiness := health.NewService(append(st.checkers, inf.checkers...)...)

	app := fiber.New(fiber.Config{
		AppName:               "talent",
		DisableStartupMessage: true,
		BodyLimit:             6 << 20,
		ErrorHandler:          presenter.ErrorHandler(cfg.Development(), logging.Component("http")),
	})
	http.Use(app, http.MiddlewareConfig{
		AllowOrigins:    cfg.FrontendURL,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		Dev:             cfg.Development(),
		Log:             logging.Component("http"),
	})
	http.Register(app, http.Handlers{
		Auth:       handlers.NewAuthHandler(authUC),
		Health:     handlers.NewHealthHandler(readiness, cfg.Version, cfg.Env),
		Jobs:       handlers.NewJobHandler(jobs, assistant),
		Candidates: handlers.NewCandidateHandler(candidates),
		Interviews: handlers.NewInterviewHandler(interviews, assistant),
		Offers:     handlers.NewOfferHandler(offers, assistant),
		Onboarding: handlers.NewOnboardingHandler(hires),
		Analytics:  handlers.NewAnalyticsHandler(stats),
	}, jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, cfg.AuthRequired))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Str("ai", cfg.AIProvider).Msg("HTTP server listening")
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	g.Go(func() error {
		return offer.NewSweeper(offers, cfg.OfferExpiryInterval, logging.Component("offer-sweeper")).Run(ctx)
	})
	if inf.memCache != nil {
		g.Go(func() error { return inf.memCache.Run(ctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// candidateLookup resolves stored candidates for AI question generation.
func candidateLookup(uc candidate.UseCase) ai.CandidateLookup {
	return func(ctx context.Context, id string) (ai.CandidateProfile, error) {
		c, err := uc.Get(ctx, id)
		if err != nil {
			return ai.CandidateProfile{}, err
		}
		return ai.CandidateProfile{
			Name:       c.Name,
			Position:   c.Position,
			Skills:     c.Skills,
			Experience: c.Experience,
			Email:      c.Email,
		}, nil
	}
}

func newAssistant(cfg config.Config, inf *infra, candidates candidate.UseCase) (*ai.Assistant, error) {
	comp, err := compensation.Load(cfg.CompensationTable)
	if err != nil {
		return nil, err
	}
	fallback, err := ai.LoadFallback(cfg.AIFallbackFile, comp)
	if err != nil {
		return nil, err
	}
	gen, err := newGenerator(cfg, inf)
	if err != nil {
		return nil, err
	}
	return ai.NewAssistant(gen, fallback,
		ai.WithCache(inf.cache, cfg.AICacheTTL),
		ai.WithTimeout(cfg.AITimeout),
		ai.WithLogger(logging.Component("ai")),
		ai.WithCandidateLookup(candidateLookup(candidates)),
	), nil
}
