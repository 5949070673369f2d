// Package openrouter points the OpenAI-compatible client at OpenRouter.
package openrouter

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v3/option"

	"github.com/artem13815/talent/pkg/llm"
	llmopenai "github.com/artem13815/talent/pkg/llm/openai"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"
)

var ErrNoAPIKey = errors.New("openrouter api key is empty")

// Client sends chat completions through OpenRouter. The app title and
// referer identify the caller on openrouter.ai rankings.
type Client struct {
	chat   *llmopenai.Client
	hasKey bool
}

var _ llm.ChatModel = (*Client)(nil)

// New builds a client. Empty baseURL and model use the defaults; a
// non-positive timeout leaves the SDK default.
func New(apiKey, baseURL, model, appTitle, referer string, timeout time.Duration, opts ...option.RequestOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	var extra []option.RequestOption
	if timeout > 0 {
		extra = append(extra, option.WithRequestTimeout(timeout))
	}
	if appTitle != "" {
		extra = append(extra, option.WithHeader("X-Title", appTitle))
	}
	if referer != "" {
		extra = append(extra, option.WithHeader("HTTP-Referer", referer))
	}
	extra = append(extra, opts...)
	return &Client{
		chat:   llmopenai.New(apiKey, baseURL, model, extra...),
		hasKey: apiKey != "",
	}
}

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.hasKey {
		return "", ErrNoAPIKey
	}
	return c.chat.Ask(ctx, systemPrompt, userPrompt)
}
