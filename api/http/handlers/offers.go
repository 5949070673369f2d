package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/ai"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/security/jwt"
)

type OfferHandler struct {
	uc offer.UseCase
	ai *ai.Assistant
}

func NewOfferHandler(uc offer.UseCase, assistant *ai.Assistant) *OfferHandler {
	return &OfferHandler{uc: uc, ai: assistant}
}

// @Summary List offers
// @Tags    offers
// @Produce json
// @Param   candidateId query string false "Candidate ID"
// @Param   status      query string false "pending, accepted, declined or expired"
// @Param   jobId       query string false "Job ID"
// @Param   limit       query int    false "Page size (1..200)"
// @Param   offset      query int    false "Page offset"
// @Success 200 {array} offer.Offer
// @Router  /offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), offer.Filter{
		CandidateID: c.Query("candidateId"),
		Status:      offer.Status(c.Query("status")),
		JobID:       c.Query("jobId"),
	})
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, list))
}

// @Summary Offer statistics
// @Tags    offers
// @Produce json
// @Success 200 {object} offer.Stats
// @Router  /offers/stats [get]
func (h *OfferHandler) Stats(c *fiber.Ctx) error {
	st, err := h.uc.Stats(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, st)
}

// @Summary Get offer
// @Tags    offers
// @Produce json
// @Param   id path string true "Offer ID"
// @Success 200 {object} offer.Offer
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id} [get]
func (h *OfferHandler) Get(c *fiber.Ctx) error {
	o, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, o)
}

// @Summary Create offer
// @Tags    offers
// @Accept  json
// @Produce json
// @Param   input body offer.Input true "Offer"
// @Security BearerAuth
// @Success 201 {object} offer.Offer
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in offer.Input
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.CreatedBy = jwt.Actor(c)
	o, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, o)
}

// @Summary Update offer
// @Description A status change follows the pending → accepted/declined/expired rules.
// @Tags    offers
// @Accept  json
// @Produce json
// @Param   id    path string      true "Offer ID"
// @Param   input body offer.Patch true "Fields to change"
// @Security BearerAuth
// @Success 200 {object} offer.Offer
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	var p offer.Patch
	if err := parseBody(c, &p); err != nil {
		return err
	}
	o, err := h.uc.Update(c.Context(), c.Params("id"), p)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, o)
}

// @Summary Accept offer
// @Tags    offers
// @Produce json
// @Param   id path string true "Offer ID"
// @Security BearerAuth
// @Success 200 {object} offer.Offer
// @Failure 400 {object} presenter.ErrorResponse "Offer is not pending"
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/accept [post]
func (h *OfferHandler) Accept(c *fiber.Ctx) error {
	o, err := h.uc.Accept(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, o)
}

// @Summary Decline offer
// @Tags    offers
// @Produce json
// @Param   id path string true "Offer ID"
// @Security BearerAuth
// @Success 200 {object} offer.Offer
// @Failure 400 {object} presenter.ErrorResponse "Offer is not pending"
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/decline [post]
func (h *OfferHandler) Decline(c *fiber.Ctx) error {
	o, err := h.uc.Decline(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, o)
}

type expireResponse struct {
	Expired int           `json:"expired"`
	Offers  []offer.Offer `json:"offers"`
}

// @Summary Expire overdue offers
// @Description Moves pending offers past their expiry date to expired.
// @Tags    offers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} expireResponse
// @Router  /offers/expire [post]
func (h *OfferHandler) Expire(c *fiber.Ctx) error {
	expired, err := h.uc.ExpireOverdue(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, expireResponse{Expired: len(expired), Offers: expired})
}

// @Summary Generate offer letter
// @Tags    offers
// @Accept  json
// @Produce json
// @Param   input body ai.OfferLetterRequest true "Letter inputs"
// @Success 200 {object} ai.OfferLetter
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /offers/ai/letter [post]
func (h *OfferHandler) AILetter(c *fiber.Ctx) error {
	var req ai.OfferLetterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	letter, err := h.ai.OfferLetter(c.Context(), req)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, letter)
}

// @Summary Salary market analysis
// @Tags    offers
// @Accept  json
// @Produce json
// @Param   input body ai.MarketAnalysisRequest true "Role and location"
// @Success 200 {object} ai.MarketAnalysis
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /offers/ai/market-analysis [post]
func (h *OfferHandler) AIMarketAnalysis(c *fiber.Ctx) error {
	var req ai.MarketAnalysisRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ma, err := h.ai.MarketAnalysis(c.Context(), req)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, ma)
}

// @Summary Offer letter templates
// @Tags    offers
// @Produce json
// @Success 200 {object} ai.TemplateCatalog
// @Router  /offers/ai/templates [get]
func (h *OfferHandler) AITemplates(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.ai.TemplateCatalog())
}
