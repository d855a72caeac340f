package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"news_pipeline/internal/gateway"
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client is a gateway.Generator backed by the Anthropic Messages API. It has
// no embedding support.
type Client struct {
	client anthropic.Client
	model  string
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("claude api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

func (c *Client) Name() string {
	return "claude"
}

func (c *Client) Chat(ctx context.Context, req gateway.ChatRequest) (gateway.Completion, error) {
	msgs := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Text)
		if m.Role == gateway.RoleModel {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}
	return c.send(ctx, req.System, msgs, req.MaxTokens, req.Temperature)
}

func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (gateway.Completion, error) {
	msgs := []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))}
	return c.send(ctx, "", msgs, maxTokens, temperature)
}

func (c *Client) send(ctx context.Context, system string, msgs []anthropic.MessageParam, maxTokens int, temperature float64) (gateway.Completion, error) {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Messages:    msgs,
		Temperature: anthropic.Float(temperature),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return gateway.Completion{}, fmt.Errorf("claude messages: %w: %v", gateway.ErrQuota, err)
		}
		return gateway.Completion{}, fmt.Errorf("claude messages: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return gateway.Completion{
		Text:   strings.TrimSpace(text.String()),
		Model:  string(resp.Model),
		Tokens: int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
	}, nil
}
