package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"news_pipeline/internal/gateway"
)

type Config struct {
	APIKey         string
	Model          string
	EmbedModel     string
	EmbedDimension int32
	BaseURL        string
}

// Client is a gateway.Generator and gateway.Embedder backed by the Gemini API.
type Client struct {
	client *genai.Client
	cfg    Config
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, cfg: cfg}, nil
}

func (c *Client) Name() string {
	return "gemini"
}

func (c *Client) Chat(ctx context.Context, req gateway.ChatRequest) (gateway.Completion, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := genai.RoleUser
		if m.Role == gateway.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, genai.Role(role)))
	}

	config := c.generationConfig(req.MaxTokens, req.Temperature)
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	return c.generate(ctx, contents, config)
}

func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (gateway.Completion, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return c.generate(ctx, contents, c.generationConfig(maxTokens, temperature))
}

func (c *Client) generationConfig(maxTokens int, temperature float64) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	}
	if maxTokens > 0 {
		config.MaxOutputTokens = int32(maxTokens)
	}
	return config
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (gateway.Completion, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, config)
	if err != nil {
		return gateway.Completion{}, classify("generate content", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return gateway.Completion{}, gateway.ErrEmptyResponse
	}

	out := gateway.Completion{
		Text:  strings.TrimSpace(resp.Text()),
		Model: c.cfg.Model,
	}
	if resp.UsageMetadata != nil {
		out.Tokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return out, nil
}

func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	dim := c.cfg.EmbedDimension
	result, err := c.client.Models.EmbedContent(ctx, c.cfg.EmbedModel,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		&genai.EmbedContentConfig{OutputDimensionality: &dim},
	)
	if err != nil {
		return nil, classify("embed content", err)
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, gateway.ErrEmptyResponse
	}

	values := result.Embeddings[0].Values
	vec := make([]float64, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return vec, nil
}

func classify(op string, err error) error {
	if gateway.IsQuotaError(err) {
		return fmt.Errorf("%s: %w: %v", op, gateway.ErrQuota, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
