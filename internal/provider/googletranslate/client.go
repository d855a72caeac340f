package googletranslate

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"news_pipeline/internal/gateway"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client is a gateway.Translator over the Cloud Translation v2 REST API.
type Client struct {
	client  *resty.Client
	apiKey  string
	baseURL string
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
		Detections [][]struct {
			Language   string  `json:"language"`
			Confidence float64 `json:"confidence"`
		} `json:"detections"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:  resty.New().SetTimeout(timeout),
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
	}
}

func (c *Client) Name() string {
	return "google"
}

func (c *Client) Translate(ctx context.Context, text, target, source string) (string, error) {
	form := map[string]string{
		"q":      text,
		"target": target,
		"format": "text",
	}
	if source != "" && source != target {
		form["source"] = source
	}

	var resp translateResponse
	if err := c.post(ctx, c.baseURL, form, &resp); err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(resp.Data.Translations) == 0 {
		return "", gateway.ErrEmptyResponse
	}
	return html.UnescapeString(resp.Data.Translations[0].TranslatedText), nil
}

func (c *Client) DetectLanguage(ctx context.Context, text string) (string, error) {
	var resp translateResponse
	if err := c.post(ctx, c.baseURL+"/detect", map[string]string{"q": text}, &resp); err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}
	if len(resp.Data.Detections) == 0 || len(resp.Data.Detections[0]) == 0 {
		return "", gateway.ErrEmptyResponse
	}
	return resp.Data.Detections[0][0].Language, nil
}

func (c *Client) post(ctx context.Context, url string, form map[string]string, out *translateResponse) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetFormData(form).
		SetResult(out).
		SetError(out).
		Post(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", gateway.ErrQuota, resp.StatusCode())
	case resp.StatusCode() == http.StatusForbidden && out.Error != nil && gateway.IsQuotaError(errors.New(out.Error.Message)):
		return fmt.Errorf("%w: %s", gateway.ErrQuota, out.Error.Message)
	case resp.StatusCode() != http.StatusOK:
		if out.Error != nil {
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), out.Error.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	return nil
}
