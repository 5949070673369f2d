// Package openai adapts the official OpenAI SDK to llm.ChatModel.
package openai

import (
	"context"
	"errors"

	sdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/artem13815/talent/pkg/llm"
)

const DefaultModel = "gpt-4o-mini"

type Client struct {
	client sdk.Client
	model  string
}

var _ llm.ChatModel = (*Client)(nil)

// New builds a client. An empty baseURL keeps the SDK default endpoint.
func New(apiKey, baseURL, model string, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModel
	}
	options := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}
	options = append(options, opts...)
	return &Client{client: sdk.NewClient(options...), model: model}
}

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := make([]sdk.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, sdk.SystemMessage(systemPrompt))
	}
	messages = append(messages, sdk.UserMessage(userPrompt))

	completion, err := c.client.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: sdk.Float(0.4),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return completion.Choices[0].Message.Content, nil
}
