package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/onboarding"
)

type OnboardingHandler struct {
	uc onboarding.UseCase
}

func NewOnboardingHandler(uc onboarding.UseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// @Summary List new hires
// @Tags    onboarding
// @Produce json
// @Param   status     query string false "pre-boarding, onboarding or completed"
// @Param   department query string false "Department (case-insensitive)"
// @Success 200 {array} onboarding.NewHire
// @Router  /onboarding/new-hires [get]
func (h *OnboardingHandler) List(c *fiber.Ctx) error {
	hires, err := h.uc.List(c.Context(), onboarding.Filter{
		Status:     onboarding.Status(c.Query("status")),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, hires))
}

// @Summary Get new hire
// @Tags    onboarding
// @Produce json
// @Param   id path string true "New hire ID"
// @Success 200 {object} onboarding.NewHire
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /onboarding/new-hires/{id} [get]
func (h *OnboardingHandler) Get(c *fiber.Ctx) error {
	hire, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, hire)
}

// @Summary Start onboarding
// @Description Creates the new hire in pre-boarding with the default checklist.
// @Tags    onboarding
// @Accept  json
// @Produce json
// @Param   input body onboarding.Input true "New hire"
// @Security BearerAuth
// @Success 201 {object} onboarding.NewHire
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /onboarding/new-hires [post]
func (h *OnboardingHandler) Create(c *fiber.Ctx) error {
	var in onboarding.Input
	if err := parseBody(c, &in); err != nil {
		return err
	}
	hire, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, hire)
}

// @Summary Update new hire
// @Tags    onboarding
// @Accept  json
// @Produce json
// @Param   id    path string           true "New hire ID"
// @Param   input body onboarding.Patch true "Fields to change"
// @Security BearerAuth
// @Success 200 {object} onboarding.NewHire
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /onboarding/new-hires/{id} [put]
func (h *OnboardingHandler) Update(c *fiber.Ctx) error {
	var p onboarding.Patch
	if err := parseBody(c, &p); err != nil {
		return err
	}
	hire, err := h.uc.Update(c.Context(), c.Params("id"), p)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, hire)
}

// @Summary Add onboarding task
// @Tags    onboarding
// @Accept  json
// @Produce json
// @Param   id    path string               true "New hire ID"
// @Param   input body onboarding.TaskInput true "Task"
// @Security BearerAuth
// @Success 201 {object} onboarding.NewHire
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /onboarding/new-hires/{id}/tasks [post]
func (h *OnboardingHandler) AddTask(c *fiber.Ctx) error {
	var in onboarding.TaskInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	hire, err := h.uc.AddTask(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, hire)
}

type taskStatusRequest struct {
	Status onboarding.TaskStatus `json:"status"`
}

// @Summary Update task status
// @Description Recomputes the owner's progress and points.
// @Tags    onboarding
// @Accept  json
// @Produce json
// @Param   taskId path string            true "Task ID"
// @Param   input  body taskStatusRequest true "New status"
// @Security BearerAuth
// @Success 200 {object} onboarding.Task
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /onboarding/tasks/{taskId} [put]
func (h *OnboardingHandler) UpdateTask(c *fiber.Ctx) error {
	var req taskStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	task, err := h.uc.UpdateTaskStatus(c.Context(), c.Params("taskId"), req.Status)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, task)
}

// @Summary Onboarding statistics
// @Tags    onboarding
// @Produce json
// @Success 200 {object} onboarding.Stats
// @Router  /onboarding/stats [get]
func (h *OnboardingHandler) Stats(c *fiber.Ctx) error {
	st, err := h.uc.Stats(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, st)
}
