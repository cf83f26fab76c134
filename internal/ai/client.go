// Package ai implements the outreach generation, lead scoring and reply
// analysis pipeline on top of the OpenAI chat completion API.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"faris/internal/config"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrNotConfigured is returned when no API key is configured
	ErrNotConfigured = errors.New("OPENAI_API_KEY not configured")
	// ErrUpstream marks failures of the completion backend itself
	ErrUpstream = errors.New("completion backend error")
)

// Client is the text-generation backend handle. It is built once by the
// composition root and injected into the handlers that need it.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a completion client. It fails fast when no API key is
// configured so misconfiguration surfaces at startup, not mid-request.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, ErrNotConfigured
	}

	return &Client{
		api:     openai.NewClient(cfg.OpenAIKey),
		model:   cfg.AIModel,
		timeout: time.Duration(cfg.OpenAITimeout) * time.Second,
	}, nil
}

// Completion is the raw result of a single completion call
type Completion struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

// Complete issues one chat completion. systemPrompt may be empty, in which
// case only the user message is sent. The call is bounded by the configured
// timeout and retried once on transient failure; any final failure is
// wrapped in ErrUpstream so callers can report it distinctly.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (*Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil && isTransient(err) && ctx.Err() == nil {
		resp, err = c.api.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrUpstream)
	}

	return &Completion{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// Model returns the chat model name in use
func (c *Client) Model() string {
	return c.model
}

// isTransient reports whether the error is worth a single retry. Rate
// limiting and server-side errors are retried; auth and request errors
// are not.
func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	// Transport-level failure (connection reset, DNS, etc.)
	return true
}
