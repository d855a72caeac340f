package trends

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const SourceID = "google_trends"

// ErrRateLimited is returned when the trend service keeps answering 429.
var ErrRateLimited = errors.New("trend source rate limited")

type Config struct {
	APIKey         string
	BaseURL        string
	Geo            string
	PerTopic       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source looks up related trending queries for a topic.
type Source struct {
	client         *resty.Client
	apiKey         string
	baseURL        string
	geo            string
	perTopic       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	jitter         func() time.Duration
	logger         zerolog.Logger
}

func New(cfg Config, logger zerolog.Logger) *Source {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Source{
		client:         resty.New().SetTimeout(cfg.Timeout),
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		geo:            cfg.Geo,
		perTopic:       cfg.PerTopic,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		jitter:         func() time.Duration { return time.Duration(rand.Int64N(int64(time.Second))) },
		logger:         logger.With().Str("source", SourceID).Logger(),
	}
}

func (s *Source) Configured() bool {
	return s.apiKey != ""
}

// TopKeywords returns up to PerTopic top related queries for topic.
func (s *Source) TopKeywords(ctx context.Context, topic string) ([]string, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("trend source not configured")
	}

	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, topic)
		if err == nil {
			break
		}

		if attempt == s.maxAttempts {
			return nil, fmt.Errorf("topic %q after %d attempts: %w", topic, s.maxAttempts, err)
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn().
			Str("topic", topic).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Err(err).
			Msg("trend request failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	keywords := make([]string, 0, s.perTopic)
	for _, q := range resp.RelatedQueries.Top {
		kw := strings.TrimSpace(q.Query)
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
		if len(keywords) == s.perTopic {
			break
		}
	}
	return keywords, nil
}

func (s *Source) doRequest(ctx context.Context, topic string) (*APIResponse, error) {
	var apiResp APIResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"engine":    "google_trends",
			"q":         topic,
			"geo":       s.geo,
			"date":      "now 7-d",
			"data_type": "RELATED_QUERIES",
			"api_key":   s.apiKey,
		}).
		SetResult(&apiResp).
		Get(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}

	if apiResp.Error != "" {
		return nil, fmt.Errorf("trend api error: %s", apiResp.Error)
	}
	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if s.maxBackoff > 0 && backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff + s.jitter()
}
