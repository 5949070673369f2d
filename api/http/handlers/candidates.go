package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/errs"
	"github.com/artem13815/talent/pkg/pipeline"
	"github.com/artem13815/talent/pkg/resume"
)

type CandidateHandler struct {
	uc  candidate.UseCase
	now func() time.Time
}

func NewCandidateHandler(uc candidate.UseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc, now: time.Now}
}

// @Summary List candidates
// @Description Filters combine with AND. search matches name, position and skills.
// @Tags    candidates
// @Produce json
// @Param   stage  query string false "Pipeline stage"
// @Param   jobId  query string false "Job ID"
// @Param   search query string false "Free text"
// @Param   source query string false "linkedin, direct, referral or job-board"
// @Param   status query string false "active, rejected or hired"
// @Param   limit  query int    false "Page size (1..200)"
// @Param   offset query int    false "Page offset"
// @Success 200 {array} candidate.Candidate
// @Router  /candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), candidate.Filter{
		Stage:  pipeline.Stage(c.Query("stage")),
		JobID:  c.Query("jobId"),
		Search: c.Query("search"),
		Source: candidate.Source(c.Query("source")),
		Status: pipeline.Status(c.Query("status")),
	})
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, list))
}

// @Summary List candidates in a stage
// @Tags    candidates
// @Produce json
// @Param   stage path string true "Pipeline stage"
// @Success 200 {array} candidate.Candidate
// @Router  /candidates/stage/{stage} [get]
func (h *CandidateHandler) ByStage(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), candidate.Filter{Stage: pipeline.Stage(c.Params("stage"))})
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, page(c, list))
}

// @Summary Get candidate
// @Tags    candidates
// @Produce json
// @Param   id path string true "Candidate ID"
// @Success 200 {object} candidate.Candidate
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	cand, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

// @Summary Create candidate
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   input body candidate.Input true "Candidate"
// @Security BearerAuth
// @Success 201 {object} candidate.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in candidate.Input
	if err := parseBody(c, &in); err != nil {
		return err
	}
	cand, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, cand)
}

// @Summary Update candidate
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   id    path string          true "Candidate ID"
// @Param   input body candidate.Patch true "Fields to change"
// @Security BearerAuth
// @Success 200 {object} candidate.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var p candidate.Patch
	if err := parseBody(c, &p); err != nil {
		return err
	}
	cand, err := h.uc.Update(c.Context(), c.Params("id"), p)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

type stageRequest struct {
	Stage pipeline.Stage `json:"stage"`
}

// @Summary Move candidate to a stage
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   id    path string       true "Candidate ID"
// @Param   input body stageRequest true "Target stage"
// @Security BearerAuth
// @Success 200 {object} candidate.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/stage [put]
func (h *CandidateHandler) UpdateStage(c *fiber.Ctx) error {
	var req stageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	cand, err := h.uc.UpdateStage(c.Context(), c.Params("id"), req.Stage)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

type resumeRequest struct {
	CandidateID string `json:"candidateId" form:"candidateId"`
}

type resumeResponse struct {
	URL       string               `json:"url"`
	Skills    []string             `json:"skills,omitempty"`
	Candidate *candidate.Candidate `json:"candidate,omitempty"`
}

// UploadResume returns a placeholder URL; no file is stored. A multipart
// "resume" file (pdf, docx or txt) is read for known skills. With a
// candidateId the URL is attached to that candidate.
// @Summary Upload resume (placeholder)
// @Tags    candidates
// @Accept  json
// @Accept  multipart/form-data
// @Produce json
// @Param   resume      formData file   false "Resume file (pdf, docx, txt)"
// @Param   candidateId formData string false "Candidate to attach to"
// @Security BearerAuth
// @Success 200 {object} resumeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/resume [post]
func (h *CandidateHandler) UploadResume(c *fiber.Ctx) error {
	var req resumeRequest
	ext := ".pdf"
	var skills []string
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req.CandidateID = c.FormValue("candidateId")
		if fh, err := c.FormFile("resume"); err == nil {
			if ext, err = resume.Ext(fh.Filename); err != nil {
				return err
			}
			data, err := readUpload(fh)
			if err != nil {
				return err
			}
			text, err := resume.ExtractText(fh.Filename, data)
			if err != nil {
				return err
			}
			skills = resume.DetectSkills(text, nil)
		}
	} else if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}

	resp := resumeResponse{
		URL:    fmt.Sprintf("https://example.com/resumes/%d%s", h.now().UnixMilli(), ext),
		Skills: skills,
	}
	if req.CandidateID != "" {
		cand, err := h.uc.AttachResume(c.Context(), req.CandidateID, resp.URL)
		if err != nil {
			return err
		}
		resp.Candidate = &cand
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > resume.MaxSize {
		return nil, resume.ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(resume.ErrUnreadable, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, resume.MaxSize+1))
	if err != nil {
		return nil, errs.Wrap(resume.ErrUnreadable, err)
	}
	return data, nil
}
