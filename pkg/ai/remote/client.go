// Package remote calls the external AI service over HTTP.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/talent/pkg/ai"
)

// ErrUpstreamFallback reports that the service answered with its own canned
// content; callers treat it like any other failure.
var ErrUpstreamFallback = errors.New("ai service returned fallback content")

type Client struct {
	baseURL string
	httpDo  *http.Client
}

var _ ai.Generator = (*Client)(nil)

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) InterviewQuestions(ctx context.Context, req ai.QuestionsRequest) ([]ai.Question, error) {
	var out []ai.Question
	err := c.post(ctx, "/api/ai/interview-questions", req, &out)
	return out, err
}

func (c *Client) OfferLetter(ctx context.Context, req ai.OfferLetterRequest) (ai.OfferLetter, error) {
	var out ai.OfferLetter
	err := c.post(ctx, "/api/ai/offer-letter", req, &out)
	return out, err
}

func (c *Client) MarketAnalysis(ctx context.Context, req ai.MarketAnalysisRequest) (ai.MarketAnalysis, error) {
	var out ai.MarketAnalysis
	err := c.post(ctx, "/api/ai/market-analysis", req, &out)
	return out, err
}

func (c *Client) JobDescription(ctx context.Context, req ai.JobDescriptionRequest) (ai.JobDescription, error) {
	var out ai.JobDescription
	if err := c.post(ctx, "/api/ai/job-description", req, &out); err != nil {
		return ai.JobDescription{}, err
	}
	if out.Fallback {
		return ai.JobDescription{}, ErrUpstreamFallback
	}
	return out, nil
}

// Ping checks that the service answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ai/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ai service health http %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ai service %s http %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
