package presenter

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/talent/pkg/errs"
)

func newApp(dev bool, fail error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(dev, zerolog.Nop())})
	app.Get("/fail", func(c *fiber.Ctx) error { return fail })
	app.Use(NotFound)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorHandlerKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", errs.Validation("Missing required fields"), 400, "Missing required fields"},
		{"not found", errs.NotFound("Offer not found"), 404, "Offer not found"},
		{"transition", errs.InvalidTransition("Offer is not pending"), 400, "Offer is not pending"},
		{"conflict", errs.Conflict("User already exists"), 409, "User already exists"},
		{"unauthorized", errs.Unauthorized("Invalid credentials"), 401, "Invalid credentials"},
		{"foreign", errors.New("disk full"), 500, "Internal server error"},
		{"fiber", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Request Entity Too Large"), 413, "Request Entity Too Large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, newApp(false, tt.err), "/fail")
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, body.Error)
			assert.Empty(t, body.Details)
		})
	}
}

func TestErrorHandlerDetailsOnlyInDevelopment(t *testing.T) {
	cause := errs.Internal(errors.New("connection reset"))

	_, body := get(t, newApp(true, cause), "/fail")
	assert.Equal(t, "Internal server error", body.Error)
	assert.Contains(t, body.Details, "connection reset")

	_, body = get(t, newApp(false, cause), "/fail")
	assert.Empty(t, body.Details)
}

func TestRouteNotFound(t *testing.T) {
	status, body := get(t, newApp(false, nil), "/api/nowhere")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Route not found", body.Error)
}
