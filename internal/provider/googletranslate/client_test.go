package googletranslate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_pipeline/internal/gateway"
)

func TestClient_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "en", r.PostForm.Get("target"))
		assert.Equal(t, "vi", r.PostForm.Get("source"))
		assert.Equal(t, "Xin chào", r.PostForm.Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Hello &amp; welcome"}]}}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "secret", BaseURL: srv.URL})
	out, err := c.Translate(context.Background(), "Xin chào", "en", "vi")
	require.NoError(t, err)
	assert.Equal(t, "Hello & welcome", out)
}

func TestClient_DetectLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detect", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"detections":[[{"language":"vi","confidence":0.98}]]}}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", BaseURL: srv.URL})
	lang, err := c.DetectLanguage(context.Background(), "Xin chào")
	require.NoError(t, err)
	assert.Equal(t, "vi", lang)
}

func TestClient_RateLimitIsQuotaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Too many requests"}}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Translate(context.Background(), "x", "en", "")
	assert.ErrorIs(t, err, gateway.ErrQuota)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Translate(context.Background(), "x", "en", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, gateway.ErrQuota)
}
