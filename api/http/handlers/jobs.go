package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/ai"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/security/jwt"
)

type JobHandler struct {
	uc job.UseCase
	ai *ai.Assistant
}

func NewJobHandler(uc job.UseCase, assistant *ai.Assistant) *JobHandler {
	return &JobHandler{uc: uc, ai: assistant}
}

// List returns job postings.
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Param   department query string false "Department (case-insensitive)"
// @Param   status     query string false "active, paused or closed"
// @Param   limit      query int    false "Page size (1..200)"
// @Param   offset     query int    false "Page offset"
// @Success 200 {array} job.Job
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context(), job.Filter{
		Department: c.Query("department"),
		Status:     job.Status(c.Query("status")),
	})
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, jobs))
}

// Active returns postings with status active.
// @Summary List active jobs
// @Tags    jobs
// @Produce json
// @Success 200 {array} job.Job
// @Router  /jobs/status/active [get]
func (h *JobHandler) Active(c *fiber.Ctx) error {
	jobs, err := h.uc.Active(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, jobs))
}

// @Summary Get job
// @Tags    jobs
// @Produce json
// @Param   id path string true "Job ID"
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	j, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// @Summary Create job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body job.Input true "Job posting"
// @Security BearerAuth
// @Success 201 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in job.Input
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.CreatedBy = jwt.Actor(c)
	j, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, j)
}

// @Summary Update job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id    path string    true "Job ID"
// @Param   input body job.Patch true "Fields to change"
// @Security BearerAuth
// @Success 200 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var p job.Patch
	if err := parseBody(c, &p); err != nil {
		return err
	}
	j, err := h.uc.Update(c.Context(), c.Params("id"), p)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// Delete closes the posting; the record is kept.
// @Summary Close job
// @Tags    jobs
// @Param   id path string true "Job ID"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Close(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Generate job description
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body ai.JobDescriptionRequest true "Job details"
// @Success 200 {object} ai.JobDescription
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/ai/description [post]
func (h *JobHandler) AIDescription(c *fiber.Ctx) error {
	var req ai.JobDescriptionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	jd, err := h.ai.JobDescription(c.Context(), req)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, jd)
}
