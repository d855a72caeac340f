package unsplash

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"news_pipeline/internal/domain"
)

var ErrRateLimited = errors.New("image source rate limited")

type Config struct {
	AccessKey string
	BaseURL   string
	Timeout   time.Duration
}

type Source struct {
	client    *resty.Client
	accessKey string
	baseURL   string
}

type searchResponse struct {
	Results []struct {
		AltDescription *string `json:"alt_description"`
		Description    *string `json:"description"`
		URLs           struct {
			Regular string `json:"regular"`
			Full    string `json:"full"`
		} `json:"urls"`
	} `json:"results"`
}

func New(cfg Config) *Source {
	return &Source{
		client:    resty.New().SetTimeout(cfg.Timeout),
		accessKey: cfg.AccessKey,
		baseURL:   cfg.BaseURL,
	}
}

func (s *Source) Configured() bool {
	return s.accessKey != ""
}

// SearchImages returns up to count landscape photos for keyword.
func (s *Source) SearchImages(ctx context.Context, keyword string, count int) ([]domain.Image, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("image source not configured")
	}

	var result searchResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+s.accessKey).
		SetHeader("Accept-Version", "v1").
		SetQueryParams(map[string]string{
			"query":       keyword,
			"per_page":    strconv.Itoa(count),
			"orientation": "landscape",
			"order_by":    "latest",
		}).
		SetResult(&result).
		Get(s.baseURL + "/search/photos")
	if err != nil {
		return nil, fmt.Errorf("search photos: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusForbidden:
		// Unsplash answers 403 "Rate Limit Exceeded" once the hourly quota is spent.
		if resp.Header().Get("X-Ratelimit-Remaining") == "0" {
			return nil, ErrRateLimited
		}
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}

	images := make([]domain.Image, 0, len(result.Results))
	for i, r := range result.Results {
		url := r.URLs.Regular
		if url == "" {
			url = r.URLs.Full
		}
		if url == "" {
			continue
		}
		alt := fmt.Sprintf("%s %d", keyword, i+1)
		switch {
		case r.AltDescription != nil && *r.AltDescription != "":
			alt = *r.AltDescription
		case r.Description != nil && *r.Description != "":
			alt = *r.Description
		}
		images = append(images, domain.Image{URL: url, Alt: alt})
	}
	return images, nil
}
