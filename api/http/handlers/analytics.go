package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/analytics"
)

type AnalyticsHandler struct {
	uc analytics.UseCase
}

func NewAnalyticsHandler(uc analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// @Summary Dashboard metrics
// @Tags    analytics
// @Produce json
// @Success 200 {object} analytics.Dashboard
// @Router  /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// @Summary Time to hire by department
// @Tags    analytics
// @Produce json
// @Param   timeRange query string false "Only hires within this many days (e.g. 30 or 30d)"
// @Success 200 {array} analytics.DepartmentTime
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /analytics/time-to-hire [get]
func (h *AnalyticsHandler) TimeToHire(c *fiber.Ctx) error {
	days := 0
	if tr := strings.TrimSuffix(strings.TrimSpace(c.Query("timeRange")), "d"); tr != "" {
		n, err := strconv.Atoi(tr)
		if err != nil || n < 0 {
			return analytics.ErrInvalidTimeRange
		}
		days = n
	}
	data, err := h.uc.TimeToHire(c.Context(), days)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, data)
}

// @Summary Candidate sources
// @Tags    analytics
// @Produce json
// @Success 200 {array} analytics.SourceShare
// @Router  /analytics/candidate-sources [get]
func (h *AnalyticsHandler) CandidateSources(c *fiber.Ctx) error {
	data, err := h.uc.CandidateSources(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, data)
}

// @Summary Department performance
// @Tags    analytics
// @Produce json
// @Success 200 {array} analytics.DepartmentPerformance
// @Router  /analytics/department-performance [get]
func (h *AnalyticsHandler) DepartmentPerformance(c *fiber.Ctx) error {
	data, err := h.uc.DepartmentPerformance(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, data)
}

// @Summary Conversion funnel
// @Tags    analytics
// @Produce json
// @Success 200 {array} analytics.FunnelStep
// @Router  /analytics/conversion-funnel [get]
func (h *AnalyticsHandler) ConversionFunnel(c *fiber.Ctx) error {
	data, err := h.uc.ConversionFunnel(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, data)
}

// @Summary Hiring insights
// @Tags    analytics
// @Produce json
// @Success 200 {array} analytics.Insight
// @Router  /analytics/ai-insights [get]
func (h *AnalyticsHandler) Insights(c *fiber.Ctx) error {
	data, err := h.uc.Insights(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, data)
}

// @Summary Export analytics
// @Description Returns an XLSX workbook with one sheet per dataset.
// @Tags    analytics
// @Accept  json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   input body analytics.ExportRequest false "Dataset and time range"
// @Success 200 {file} binary
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /analytics/export [post]
func (h *AnalyticsHandler) Export(c *fiber.Ctx) error {
	var req analytics.ExportRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}
	exp, err := h.uc.Export(c.Context(), req)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, analytics.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exp.Filename+`"`)
	return c.Status(http.StatusOK).Send(exp.Data)
}
