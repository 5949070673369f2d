package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/ai"
	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/interview"
)

type InterviewHandler struct {
	uc interview.UseCase
	ai *ai.Assistant
}

func NewInterviewHandler(uc interview.UseCase, assistant *ai.Assistant) *InterviewHandler {
	return &InterviewHandler{uc: uc, ai: assistant}
}

// @Summary List interviews
// @Tags    interviews
// @Produce json
// @Param   candidateId query string false "Candidate ID"
// @Param   status      query string false "scheduled, completed, cancelled or rescheduled"
// @Param   date        query string false "Calendar day (YYYY-MM-DD)"
// @Param   limit       query int    false "Page size (1..200)"
// @Param   offset      query int    false "Page offset"
// @Success 200 {array} interview.Interview
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /interviews [get]
func (h *InterviewHandler) List(c *fiber.Ctx) error {
	f := interview.Filter{
		CandidateID: c.Query("candidateId"),
		Status:      interview.Status(c.Query("status")),
	}
	if d := strings.TrimSpace(c.Query("date")); d != "" {
		day, err := clock.ParseDate(d)
		if err != nil {
			return interview.ErrInvalidDate
		}
		f.Date = day
	}
	list, err := h.uc.List(c.Context(), f)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, list))
}

// @Summary Upcoming interviews
// @Description Scheduled interviews after now, soonest first.
// @Tags    interviews
// @Produce json
// @Success 200 {array} interview.Interview
// @Router  /interviews/status/upcoming [get]
func (h *InterviewHandler) Upcoming(c *fiber.Ctx) error {
	list, err := h.uc.Upcoming(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, list))
}

// @Summary Get interview
// @Tags    interviews
// @Produce json
// @Param   id path string true "Interview ID"
// @Success 200 {object} interview.Interview
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /interviews/{id} [get]
func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	iv, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, iv)
}

// @Summary Schedule interview
// @Tags    interviews
// @Accept  json
// @Produce json
// @Param   input body interview.Input true "Interview"
// @Security BearerAuth
// @Success 201 {object} interview.Interview
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /interviews [post]
func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var in interview.Input
	if err := parseBody(c, &in); err != nil {
		return err
	}
	iv, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, iv)
}

// @Summary Update interview
// @Tags    interviews
// @Accept  json
// @Produce json
// @Param   id    path string          true "Interview ID"
// @Param   input body interview.Patch true "Fields to change"
// @Security BearerAuth
// @Success 200 {object} interview.Interview
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /interviews/{id} [put]
func (h *InterviewHandler) Update(c *fiber.Ctx) error {
	var p interview.Patch
	if err := parseBody(c, &p); err != nil {
		return err
	}
	iv, err := h.uc.Update(c.Context(), c.Params("id"), p)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, iv)
}

// Delete cancels the interview; the record is kept.
// @Summary Cancel interview
// @Tags    interviews
// @Produce json
// @Param   id path string true "Interview ID"
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /interviews/{id} [delete]
func (h *InterviewHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Cancel(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, presenter.MessageResponse{Message: "Interview cancelled successfully"})
}

// @Summary Generate interview questions
// @Description Falls back to a canned question bank when the AI provider fails. An unknown candidateId uses the profile in the body.
// @Tags    interviews
// @Accept  json
// @Produce json
// @Param   input body ai.QuestionsRequest true "Candidate profile or candidateId"
// @Success 200 {object} ai.QuestionSet
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /interviews/ai/questions [post]
func (h *InterviewHandler) AIQuestions(c *fiber.Ctx) error {
	var req ai.QuestionsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	qs, err := h.ai.InterviewQuestions(c.Context(), req)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, qs)
}

// @Summary Question categories and difficulty levels
// @Tags    interviews
// @Produce json
// @Success 200 {object} ai.QuestionCatalog
// @Router  /interviews/ai/categories [get]
func (h *InterviewHandler) AICategories(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.ai.QuestionCatalog())
}
