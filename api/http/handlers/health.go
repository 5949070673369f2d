package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	version string
	env     string
	now     func() time.Time
}

func NewHealthHandler(svc health.ReadinessUseCase, version, env string) *HealthHandler {
	return &HealthHandler{svc: svc, version: version, env: env, now: time.Now}
}

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} healthResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, healthResponse{
		Status:      "OK",
		Timestamp:   h.now().UTC(),
		Version:     h.version,
		Environment: h.env,
	})
}

// Ready: readiness check across configured dependencies.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} health.Report
// @Failure 503 {object} health.Report
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	rep, err := h.svc.Ready(ctx)
	if err != nil {
		return presenter.JSON(c, fiber.StatusServiceUnavailable, rep)
	}
	return presenter.JSON(c, fiber.StatusOK, rep)
}
