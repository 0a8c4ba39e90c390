package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	// DefaultModel is the chat model used when Config.Model is empty.
	DefaultModel = "gpt-4"

	// TaskInstruction is the fixed user message sent after the system prompt.
	TaskInstruction = "Execute the assigned task."
)

// Completer turns a system prompt into completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ServiceError reports any failure of the completion service: transport,
// authentication, rate limiting, timeouts or a malformed response.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return e.Err.Error() }

func (e *ServiceError) Unwrap() error { return e.Err }

// Config configures the OpenAI-backed Client.
type Config struct {
	APIKey  string
	BaseURL string // optional, for proxies or compatible gateways
	Model   string
	Timeout time.Duration // per request; zero disables
}

type chatCompletions interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client is a Completer backed by the OpenAI chat completions API. It makes
// exactly one request per call; SDK retries are disabled.
type Client struct {
	completions chatCompletions
	model       string
	timeout     time.Duration
}

var _ Completer = (*Client)(nil)

// NewClient constructs a Client. An empty API key is accepted; the service
// rejects it on the first call.
func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := openai.NewClient(opts...)
	return newClient(&client.Chat.Completions, cfg)
}

func newClient(completions chatCompletions, cfg Config) *Client {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		completions: completions,
		model:       model,
		timeout:     cfg.Timeout,
	}
}

// Model returns the chat model name sent with every request.
func (c *Client) Model() string { return c.model }

// Complete sends prompt as the system message followed by TaskInstruction and
// returns the first choice's content. Every failure is a *ServiceError.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	completion, err := c.completions.New(ctx, c.buildParams(prompt))
	if err != nil {
		return "", &ServiceError{Err: err}
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", &ServiceError{Err: errors.New("completion returned no choices")}
	}
	return completion.Choices[0].Message.Content, nil
}

func (c *Client) buildParams(prompt string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt),
			openai.UserMessage(TaskInstruction),
		},
	}
}

// Flatten converts a completion outcome into the fail-soft string form used
// by agents: the content on success, "Error: <detail>" otherwise.
func Flatten(content string, err error) string {
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	return content
}
