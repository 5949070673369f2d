package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/talent/api/http/handlers"
	"github.com/artem13815/talent/api/http/presenter"
)

// Handlers groups every resource handler the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Jobs       *handlers.JobHandler
	Candidates *handlers.CandidateHandler
	Interviews *handlers.InterviewHandler
	Offers     *handlers.OfferHandler
	Onboarding *handlers.OnboardingHandler
	Analytics  *handlers.AnalyticsHandler
}

// Register wires all HTTP routes onto given Fiber app. authMW guards /api;
// static segments are registered before :id routes.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", h.Health.Health)
	app.Get("/ready", h.Health.Ready)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	a := api.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	if authMW != nil {
		api.Use(authMW)
	}

	jobs := api.Group("/jobs")
	jobs.Get("/", h.Jobs.List)
	jobs.Get("/status/active", h.Jobs.Active)
	jobs.Post("/ai/description", h.Jobs.AIDescription)
	jobs.Get("/:id", h.Jobs.Get)
	jobs.Post("/", h.Jobs.Create)
	jobs.Put("/:id", h.Jobs.Update)
	jobs.Delete("/:id", h.Jobs.Delete)

	cands := api.Group("/candidates")
	cands.Get("/", h.Candidates.List)
	cands.Get("/stage/:stage", h.Candidates.ByStage)
	cands.Post("/resume", h.Candidates.UploadResume)
	cands.Get("/:id", h.Candidates.Get)
	cands.Post("/", h.Candidates.Create)
	cands.Put("/:id/stage", h.Candidates.UpdateStage)
	cands.Put("/:id", h.Candidates.Update)

	ivs := api.Group("/interviews")
	ivs.Get("/", h.Interviews.List)
	ivs.Get("/status/upcoming", h.Interviews.Upcoming)
	ivs.Get("/ai/categories", h.Interviews.AICategories)
	ivs.Post("/ai/questions", h.Interviews.AIQuestions)
	ivs.Get("/:id", h.Interviews.Get)
	ivs.Post("/", h.Interviews.Create)
	ivs.Put("/:id", h.Interviews.Update)
	ivs.Delete("/:id", h.Interviews.Delete)

	offers := api.Group("/offers")
	offers.Get("/", h.Offers.List)
	offers.Get("/stats", h.Offers.Stats)
	offers.Get("/ai/templates", h.Offers.AITemplates)
	offers.Post("/ai/letter", h.Offers.AILetter)
	offers.Post("/ai/market-analysis", h.Offers.AIMarketAnalysis)
	offers.Post("/expire", h.Offers.Expire)
	offers.Get("/:id", h.Offers.Get)
	offers.Post("/", h.Offers.Create)
	offers.Put("/:id", h.Offers.Update)
	offers.Post("/:id/accept", h.Offers.Accept)
	offers.Post("/:id/decline", h.Offers.Decline)

	ob := api.Group("/onboarding")
	ob.Get("/stats", h.Onboarding.Stats)
	ob.Get("/new-hires", h.Onboarding.List)
	ob.Get("/new-hires/:id", h.Onboarding.Get)
	ob.Post("/new-hires", h.Onboarding.Create)
	ob.Put("/new-hires/:id", h.Onboarding.Update)
	ob.Post("/new-hires/:id/tasks", h.Onboarding.AddTask)
	ob.Put("/tasks/:taskId", h.Onboarding.UpdateTask)

	an := api.Group("/analytics")
	an.Get("/dashboard", h.Analytics.Dashboard)
	an.Get("/time-to-hire", h.Analytics.TimeToHire)
	an.Get("/candidate-sources", h.Analytics.CandidateSources)
	an.Get("/department-performance", h.Analytics.DepartmentPerformance)
	an.Get("/conversion-funnel", h.Analytics.ConversionFunnel)
	an.Get("/ai-insights", h.Analytics.Insights)
	an.Post("/export", h.Analytics.Export)

	app.Use(presenter.NotFound)
}
