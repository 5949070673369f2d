package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/artem13815/talent/pkg/ai"
	"github.com/artem13815/talent/pkg/ai/llmgen"
	"github.com/artem13815/talent/pkg/ai/remote"
	"github.com/artem13815/talent/pkg/auth"
	"github.com/artem13815/talent/pkg/cache"
	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/config"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/health"
	healthcheck "github.com/artem13815/talent/pkg/health/checkers"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	llmopenai "github.com/artem13815/talent/pkg/llm/openai"
	"github.com/artem13815/talent/pkg/llm/openrouter"
	"github.com/artem13815/talent/pkg/logging"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/onboarding"
	"github.com/artem13815/talent/pkg/repository/memory"
	pgrepo "github.com/artem13815/talent/pkg/repository/postgres"
	"github.com/artem13815/talent/pkg/seed"
	"github.com/artem13815/talent/pkg/storage/postgres"
)

type storage struct {
	jobs       job.Repository
	candidates candidate.Repository
	interviews interview.Repository
	offers     offer.Repository
	hires      onboarding.Repository
	users      auth.UserRepository
	checkers   []health.Checker
	pool       *pgxpool.Pool
}

func (s *storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func openStorage(ctx context.Context, cfg config.Config) (*storage, error) {
	if cfg.Storage != config.StoragePostgres {
		return &storage{
			jobs:       memory.NewCollection[job.Job](),
			candidates: memory.NewCollection[candidate.Candidate](),
			interviews: memory.NewCollection[interview.Interview](),
			offers:     memory.NewCollection[offer.Offer](),
			hires:      memory.NewCollection[onboarding.NewHire](),
			users:      auth.NewCollectionRepository(memory.NewCollection[auth.User]()),
		}, nil
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	return &storage{
		jobs:       pgrepo.NewCollection[job.Job](pool, "jobs"),
		candidates: pgrepo.NewCollection[candidate.Candidate](pool, "candidates"),
		interviews: pgrepo.NewCollection[interview.Interview](pool, "interviews"),
		offers:     pgrepo.NewCollection[offer.Offer](pool, "offers"),
		hires:      pgrepo.NewCollection[onboarding.NewHire](pool, "new_hires"),
		users:      pgrepo.NewUserRepository(pool),
		checkers:   []health.Checker{healthcheck.NewPostgresChecker(pool)},
		pool:       pool,
	}, nil
}

func seedStores(ctx context.Context, cfg config.Config, st *storage) error {
	now := clock.System()
	ds, err := seed.Demo(now)
	if cfg.SeedFile != "" {
		ds, err = seed.Load(cfg.SeedFile, now)
	}
	if err != nil {
		return err
	}
	return seed.Apply(ctx, seed.Stores{
		Jobs:       st.jobs,
		Candidates: st.candidates,
		Interviews: st.interviews,
		Offers:     st.offers,
		NewHires:   st.hires,
	}, ds, logging.Component("seed"))
}

// newPublisher returns Kafka when brokers are configured, otherwise events
// are only logged.
func newPublisher(cfg config.Config) (events.Publisher, func(), error) {
	log := logging.Component("events")
	if len(cfg.KafkaBrokers) == 0 {
		return events.NewLog(log), func() {}, nil
	}
	ap, err := events.NewAsyncProducer(cfg.KafkaBrokers)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	kp := events.NewKafkaPublisher(ap, cfg.KafkaTopic, "talent", log)
	return kp, func() {
		if err := kp.Close(); err != nil {
			log.Warn().Err(err).Msg("close kafka producer")
		}
	}, nil
}

// infra holds the AI cache and the probes of external services.
type infra struct {
	cache    cache.Cache
	memCache *cache.Memory
	redis    *redis.Client
	checkers []health.Checker
}

func newInfra(cfg config.Config) (*infra, error) {
	if cfg.RedisURL == "" {
		mem := cache.NewMemory(uint64(max(cfg.AICacheSize, 0)))
		return &infra{cache: mem, memCache: mem}, nil
	}
	client, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return &infra{
		cache:    cache.NewRedis(client, "talent:ai:"),
		redis:    client,
		checkers: []health.Checker{healthcheck.NewRedisChecker(client)},
	}, nil
}

func (i *infra) Close() {
	if i.redis != nil {
		_ = i.redis.Close()
	}
}

func newGenerator(cfg config.Config, inf *infra) (ai.Generator, error) {
	switch cfg.AIProvider {
	case config.AIProviderService:
		client := remote.New(cfg.AIServiceURL, cfg.AITimeout)
		inf.checkers = append(inf.checkers, healthcheck.NewPingChecker("ai-service", client))
		return client, nil
	case config.AIProviderOpenRouter:
		model := openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
			cfg.AITimeout,
		)
		return llmgen.New(model, clock.System), nil
	case config.AIProviderOpenAI:
		return llmgen.New(llmopenai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), clock.System), nil
	}
	return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
}
