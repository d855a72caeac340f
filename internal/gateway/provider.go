package gateway

import (
	"context"
	"errors"
	"strings"

	"news_pipeline/internal/domain"
)

var (
	ErrRateLimited   = errors.New("ai request ceiling reached for this minute")
	ErrCoolingDown   = errors.New("ai provider temporarily unavailable")
	ErrQuota         = errors.New("ai provider quota exceeded")
	ErrUnsupported   = errors.New("operation not supported by provider")
	ErrEmptyResponse = errors.New("empty provider response")
	ErrNoTranslation = errors.New("translation unavailable")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	Role Role
	Text string
}

type ChatRequest struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

type Completion struct {
	Text   string
	Model  string
	Tokens int
}

// Generator is a generative text provider.
type Generator interface {
	Name() string
	Chat(ctx context.Context, req ChatRequest) (Completion, error)
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (Completion, error)
}

// Embedder is implemented by generators that can also produce embedding vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Translator is a dedicated machine translation provider.
type Translator interface {
	Name() string
	Translate(ctx context.Context, text, target, source string) (string, error)
	DetectLanguage(ctx context.Context, text string) (string, error)
}

type AgentLogStore interface {
	Insert(ctx context.Context, entry *domain.AgentLog) error
}

// IsQuotaError reports whether err means the provider refused the call for
// quota or rate reasons. Providers wrap ErrQuota when they can tell; the string
// checks cover SDK errors that only carry the upstream message.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrQuota) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "resource_exhausted", "quota", "rate limit", "rate_limit"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
