package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artem13815/talent/pkg/errs"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

// ErrRouteNotFound is returned for unmatched paths.
var ErrRouteNotFound = errs.NotFound("Route not found")

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = errs.Validation("Invalid JSON payload")

// ErrorHandler translates handler errors into {"error": ...} responses.
// Internal causes are logged and, in development only, echoed as details.
func ErrorHandler(dev bool, log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			if fe.Code == http.StatusNotFound {
				msg = ErrRouteNotFound.Message
			}
			return Error(c, fe.Code, msg)
		}

		kind := errs.KindOf(err)
		status := errs.HTTPStatus(kind)
		resp := ErrorResponse{Error: "Internal server error"}
		var de *errs.Error
		if errors.As(err, &de) {
			resp.Error = de.Message
		}
		if kind == errs.KindInternal {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("request failed")
			if dev {
				resp.Details = err.Error()
			}
		}
		return JSON(c, status, resp)
	}
}

// NotFound is the catch-all route.
func NotFound(c *fiber.Ctx) error { return ErrRouteNotFound }
