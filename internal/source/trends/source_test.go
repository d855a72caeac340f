package trends

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(url string, attempts int) *Source {
	s := New(Config{
		APIKey:         "key",
		BaseURL:        url,
		Geo:            "VN",
		PerTopic:       2,
		Timeout:        time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, zerolog.Nop())
	s.jitter = func() time.Duration { return 0 }
	return s
}

func TestTopKeywords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google_trends", r.URL.Query().Get("engine"))
		assert.Equal(t, "Crypto", r.URL.Query().Get("q"))
		assert.Equal(t, "RELATED_QUERIES", r.URL.Query().Get("data_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"related_queries":{"top":[{"query":"bitcoin"},{"query":" "},{"query":"ethereum"},{"query":"solana"}]}}`))
	}))
	defer srv.Close()

	kws, err := newTestSource(srv.URL, 1).TopKeywords(context.Background(), "Crypto")
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin", "ethereum"}, kws)
}

func TestTopKeywords_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"related_queries":{"top":[{"query":"du lịch hè"}]}}`))
	}))
	defer srv.Close()

	kws, err := newTestSource(srv.URL, 4).TopKeywords(context.Background(), "Du lịch")
	require.NoError(t, err)
	assert.Equal(t, []string{"du lịch hè"}, kws)
	assert.Equal(t, int32(3), calls.Load())
}

func TestTopKeywords_RateLimitedIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL, 2).TopKeywords(context.Background(), "x")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestTopKeywords_GenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL, 1).TopKeywords(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestTopKeywords_NotConfigured(t *testing.T) {
	s := New(Config{}, zerolog.Nop())
	_, err := s.TopKeywords(context.Background(), "x")
	assert.Error(t, err)
}

func TestCalculateBackoff(t *testing.T) {
	s := newTestSource("", 4)
	s.initialBackoff = time.Second
	s.maxBackoff = 3 * time.Second

	assert.Equal(t, time.Second, s.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, s.calculateBackoff(2))
	assert.Equal(t, 3*time.Second, s.calculateBackoff(3))
}
