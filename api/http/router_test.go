package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/talent/api/http/handlers"
	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/ai"
	"github.com/artem13815/talent/pkg/analytics"
	"github.com/artem13815/talent/pkg/auth"
	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/compensation"
	"github.com/artem13815/talent/pkg/events"
	"github.com/artem13815/talent/pkg/health"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/onboarding"
	"github.com/artem13815/talent/pkg/repository/memory"
	"github.com/artem13815/talent/pkg/security/jwt"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T, authRequired bool) *fiber.App {
	t.Helper()
	emitter := events.NewEmitter(events.Nop{}, zerolog.Nop())

	jobs := job.NewService(memory.NewCollection[job.Job](), emitter, nil)
	candidates := candidate.NewService(memory.NewCollection[candidate.Candidate](), emitter)
	interviews := interview.NewService(memory.NewCollection[interview.Interview](), emitter, nil)
	offers := offer.NewService(memory.NewCollection[offer.Offer](), emitter)
	hires := onboarding.NewService(memory.NewCollection[onboarding.NewHire](), emitter)
	stats := analytics.NewService(analytics.Readers{
		Jobs:       jobs,
		Candidates: candidates,
		Interviews: interviews,
		Offers:     offers,
		NewHires:   hires,
	}, nil)

	fallback, err := ai.LoadFallback("", compensation.Default())
	require.NoError(t, err)
	assistant := ai.NewAssistant(nil, fallback)

	users := auth.NewCollectionRepository(memory.NewCollection[auth.User]())
	authUC := auth.NewAuthService(users, jwt.NewGenerator(testSecret, "talent-test", time.Hour), bcrypt.MinCost)

	app := fiber.New(fiber.Config{ErrorHandler: presenter.ErrorHandler(false, zerolog.Nop())})
	Use(app, MiddlewareConfig{AllowOrigins: []string{"http://localhost:5173"}, Log: zerolog.Nop()})
	Register(app, Handlers{
		Auth:       handlers.NewAuthHandler(authUC),
		Health:     handlers.NewHealthHandler(health.NewService(), "test", "test"),
		Jobs:       handlers.NewJobHandler(jobs, assistant),
		Candidates: handlers.NewCandidateHandler(candidates),
		Interviews: handlers.NewInterviewHandler(interviews, assistant),
		Offers:     handlers.NewOfferHandler(offers, assistant),
		Onboarding: handlers.NewOnboardingHandler(hires),
		Analytics:  handlers.NewAnalyticsHandler(stats),
	}, jwt.NewAuthMiddleware(testSecret, "talent-test", authRequired))
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func newJob() map[string]any {
	return map[string]any{
		"title":      "Backend Engineer",
		"department": "Engineering",
		"location":   "Remote",
		"salary":     map[string]any{"min": 100000, "max": 140000},
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := do(t, app, fiber.MethodGet, "/health", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", decode[map[string]any](t, raw)["status"])

	status, _ = do(t, app, fiber.MethodGet, "/ready", nil, "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, false)
	status, raw := do(t, app, fiber.MethodGet, "/api/nothing-here", nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Route not found", decode[presenter.ErrorResponse](t, raw).Error)
}

func TestJobLifecycle(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := do(t, app, fiber.MethodPost, "/api/jobs", newJob(), "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	created := decode[job.Job](t, raw)
	assert.Equal(t, job.StatusActive, created.Status)
	assert.Zero(t, created.Applicants)

	status, raw = do(t, app, fiber.MethodGet, "/api/jobs/status/active", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]job.Job](t, raw), 1)

	status, _ = do(t, app, fiber.MethodDelete, "/api/jobs/"+created.ID, nil, "")
	require.Equal(t, fiber.StatusNoContent, status)

	status, raw = do(t, app, fiber.MethodGet, "/api/jobs/"+created.ID, nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, job.StatusClosed, decode[job.Job](t, raw).Status)

	status, raw = do(t, app, fiber.MethodGet, "/api/jobs/missing", nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Job not found", decode[presenter.ErrorResponse](t, raw).Error)
}

func TestInvalidJSON(t *testing.T) {
	app := newTestApp(t, false)
	status, raw := do(t, app, fiber.MethodPost, "/api/jobs", "{", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid JSON payload", decode[presenter.ErrorResponse](t, raw).Error)
}

func TestOfferDecisionIsFinal(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := do(t, app, fiber.MethodPost, "/api/offers", map[string]any{
		"candidateId": "c-1",
		"salary":      120000,
		"startDate":   "2030-02-01",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	o := decode[offer.Offer](t, raw)
	assert.Equal(t, offer.StatusPending, o.Status)

	status, raw = do(t, app, fiber.MethodPost, "/api/offers/"+o.ID+"/decline", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, offer.StatusDeclined, decode[offer.Offer](t, raw).Status)

	status, raw = do(t, app, fiber.MethodPost, "/api/offers/"+o.ID+"/decline", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Offer is not pending", decode[presenter.ErrorResponse](t, raw).Error)

	status, raw = do(t, app, fiber.MethodGet, "/api/offers/stats", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, decode[map[string]any](t, raw)["declined"])
}

func TestAuthRequiredForWrites(t *testing.T) {
	app := newTestApp(t, true)

	status, raw := do(t, app, fiber.MethodPost, "/api/jobs", newJob(), "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Authentication required", decode[presenter.ErrorResponse](t, raw).Error)

	status, _ = do(t, app, fiber.MethodGet, "/api/jobs", nil, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, raw = do(t, app, fiber.MethodPost, "/api/auth/register", map[string]any{
		"email": "recruiter@example.com", "name": "Rita", "password": "s3cret-pass",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	status, raw = do(t, app, fiber.MethodPost, "/api/auth/login", map[string]any{
		"email": "Recruiter@Example.com", "password": "s3cret-pass",
	}, "")
	require.Equal(t, fiber.StatusOK, status, string(raw))
	token, _ := decode[map[string]any](t, raw)["token"].(string)
	require.NotEmpty(t, token)

	status, raw = do(t, app, fiber.MethodPost, "/api/jobs", newJob(), token)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	assert.Equal(t, "recruiter@example.com", decode[job.Job](t, raw).CreatedBy)

	status, _ = do(t, app, fiber.MethodPost, "/api/jobs", newJob(), "garbage")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAIQuestionsFallback(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := do(t, app, fiber.MethodPost, "/api/interviews/ai/questions", map[string]any{
		"candidate_profile": map[string]any{"name": "Ann", "position": "Backend Engineer", "skills": []string{"Go"}},
		"interview_type":    "technical",
		"num_questions":     3,
	}, "")
	require.Equal(t, fiber.StatusOK, status, string(raw))
	set := decode[ai.QuestionSet](t, raw)
	assert.True(t, set.Fallback)
	assert.NotEmpty(t, set.Questions)
	assert.LessOrEqual(t, len(set.Questions), 3)

	status, _ = do(t, app, fiber.MethodPost, "/api/interviews/ai/questions", map[string]any{"num_questions": 50}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAnalyticsExport(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(fiber.MethodPost, "/api/analytics/export", bytes.NewBufferString(`{"type":"dashboard"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, analytics.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

	status, _ := do(t, app, fiber.MethodPost, "/api/analytics/export", map[string]any{"type": "everything"}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestResumeUploadDetectsSkills(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := do(t, app, fiber.MethodPost, "/api/candidates", map[string]any{
		"name": "Ann Lee", "email": "ann@example.com", "position": "Backend Engineer",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	cand := decode[candidate.Candidate](t, raw)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("candidateId", cand.ID))
	fw, err := mw.CreateFormFile("resume", "ann.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Golang services on Kubernetes, PostgreSQL and Redis"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/candidates/resume", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	out := decode[struct {
		URL       string              `json:"url"`
		Skills    []string            `json:"skills"`
		Candidate candidate.Candidate `json:"candidate"`
	}](t, raw)
	assert.Contains(t, out.URL, ".txt")
	assert.Equal(t, []string{"Go", "PostgreSQL", "Redis", "Kubernetes"}, out.Skills)
	assert.Equal(t, out.URL, out.Candidate.ResumeURL)

	status, raw = do(t, app, fiber.MethodPost, "/api/candidates/resume", map[string]any{"candidateId": "missing"}, "")
	assert.Equal(t, fiber.StatusNotFound, status, string(raw))
}

func TestCandidateValidationAndLookup(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := do(t, app, fiber.MethodPost, "/api/candidates", map[string]any{
		"name": "Ann Lee", "position": "Backend Engineer",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", decode[presenter.ErrorResponse](t, raw).Error)

	status, raw = do(t, app, fiber.MethodGet, "/api/candidates/nonexistent-id", nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Candidate not found", decode[presenter.ErrorResponse](t, raw).Error)

	status, raw = do(t, app, fiber.MethodPost, "/api/candidates", map[string]any{
		"name": "Ann Lee", "email": "ann@example.com", "position": "Backend Engineer",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	cand := decode[candidate.Candidate](t, raw)

	status, raw = do(t, app, fiber.MethodPut, "/api/candidates/"+cand.ID+"/stage", map[string]any{}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Stage is required", decode[presenter.ErrorResponse](t, raw).Error)

	status, raw = do(t, app, fiber.MethodGet, "/api/candidates?search=ann", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]candidate.Candidate](t, raw), 1)

	// email is not part of the search
	status, raw = do(t, app, fiber.MethodGet, "/api/candidates?search=ann@example.com", nil, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, decode[[]candidate.Candidate](t, raw))
}

func TestTaskUpdateKeepsHireStatus(t *testing.T) {
	app := newTestApp(t, false)

	status, raw := do(t, app, fiber.MethodPost, "/api/onboarding/new-hires", map[string]any{
		"candidateId": "c-1", "name": "Ann Lee", "position": "Backend Engineer",
		"department": "Engineering", "startDate": "2030-02-01",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	hire := decode[onboarding.NewHire](t, raw)
	require.NotEmpty(t, hire.Tasks)

	status, raw = do(t, app, fiber.MethodPut, "/api/onboarding/new-hires/"+hire.ID, map[string]any{"status": "completed"}, "")
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, onboarding.StatusCompleted, decode[onboarding.NewHire](t, raw).Status)

	status, raw = do(t, app, fiber.MethodPut, "/api/onboarding/tasks/"+hire.Tasks[0].ID, map[string]any{"status": "in-progress"}, "")
	require.Equal(t, fiber.StatusOK, status, string(raw))

	status, raw = do(t, app, fiber.MethodGet, "/api/onboarding/new-hires/"+hire.ID, nil, "")
	require.Equal(t, fiber.StatusOK, status)
	got := decode[onboarding.NewHire](t, raw)
	assert.Equal(t, onboarding.StatusCompleted, got.Status)
	assert.Zero(t, got.Progress)
}
