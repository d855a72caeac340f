package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"news_pipeline/internal/domain"
)

type Source string

const (
	SourceStructured  Source = "structured"
	SourceSimplified  Source = "simplified"
	SourceFallback    Source = "fallback"
	SourceUnavailable Source = "unavailable"
)

// Request describes one text generation. Prompt is always required: it is the
// single-shot form used when the structured call fails.
type Request struct {
	ArticleID   string
	Agent       string
	Action      string
	System      string
	History     []Message
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type Result struct {
	Text   string
	Source Source
	Model  string
	Tokens int
	Err    error
}

// OK reports whether Text came from the provider rather than the apology text.
func (r Result) OK() bool {
	return r.Source == SourceStructured || r.Source == SourceSimplified
}

type Config struct {
	FallbackText    string
	CallTimeout     time.Duration
	DefaultLanguage string
}

type Providers struct {
	Generator  Generator
	Embedder   Embedder
	Translator Translator
}

type Gateway struct {
	gen        Generator
	embedder   Embedder
	translator Translator
	state      *State
	logs       AgentLogStore
	cfg        Config
	logger     zerolog.Logger
}

func New(p Providers, state *State, logs AgentLogStore, cfg Config, logger zerolog.Logger) *Gateway {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = time.Minute
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "vi"
	}
	return &Gateway{
		gen:        p.Generator,
		embedder:   p.Embedder,
		translator: p.Translator,
		state:      state,
		logs:       logs,
		cfg:        cfg,
		logger:     logger.With().Str("component", "gateway").Logger(),
	}
}

func (g *Gateway) State() *State {
	return g.state
}

func (g *Gateway) HasTranslator() bool {
	return g.translator != nil
}

// Generate walks the fallback ladder and never fails: the structured call,
// then the single-shot prompt, then the configured apology text.
func (g *Gateway) Generate(ctx context.Context, req Request) Result {
	if g.gen == nil {
		return g.fallback(SourceUnavailable, ErrUnsupported)
	}

	res, err := g.attempt(ctx, req, "chat", func(ctx context.Context) (Completion, error) {
		msgs := append(append([]Message(nil), req.History...), Message{Role: RoleUser, Text: req.Prompt})
		return g.gen.Chat(ctx, ChatRequest{
			System:      req.System,
			Messages:    msgs,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		})
	})
	if err == nil {
		res.Source = SourceStructured
		return res
	}
	if stop(err) {
		return g.fallback(unavailableOrFallback(err), err)
	}

	res, err = g.attempt(ctx, req, "generate", func(ctx context.Context) (Completion, error) {
		return g.gen.Generate(ctx, req.Prompt, req.MaxTokens, req.Temperature)
	})
	if err == nil {
		res.Source = SourceSimplified
		return res
	}
	return g.fallback(unavailableOrFallback(err), err)
}

// attempt runs one provider call under the limiter and the per-call timeout and
// records it in the agent log.
func (g *Gateway) attempt(ctx context.Context, req Request, mode string, call func(context.Context) (Completion, error)) (Result, error) {
	if err := g.state.Acquire(); err != nil {
		g.logger.Warn().Err(err).Str("agent", req.Agent).Msg("ai call rejected locally")
		return Result{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	c, err := call(callCtx)
	if err == nil && strings.TrimSpace(c.Text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil && IsQuotaError(err) {
		g.state.Trip()
		err = fmt.Errorf("%w: %v", ErrQuota, err)
	}

	model := c.Model
	if model == "" {
		model = g.providerName()
	}
	g.record(ctx, req.ArticleID, req.Agent, actionName(req.Action, mode), model, time.Since(start), c.Tokens, c.Text, err)

	if err != nil {
		g.logger.Warn().Err(err).
			Str("agent", req.Agent).
			Str("mode", mode).
			Msg("ai call failed")
		return Result{}, err
	}
	return Result{Text: c.Text, Model: model, Tokens: c.Tokens}, nil
}

func (g *Gateway) providerName() string {
	if g.gen == nil {
		return ""
	}
	return g.gen.Name()
}

func (g *Gateway) fallback(src Source, err error) Result {
	return Result{Text: g.cfg.FallbackText, Source: src, Err: err}
}

// stop reports whether the ladder must not try another provider call.
func stop(err error) bool {
	return errors.Is(err, ErrQuota) || errors.Is(err, ErrCoolingDown) || errors.Is(err, ErrRateLimited) ||
		errors.Is(err, context.Canceled)
}

func unavailableOrFallback(err error) Source {
	if errors.Is(err, ErrQuota) || errors.Is(err, ErrCoolingDown) || errors.Is(err, ErrRateLimited) {
		return SourceUnavailable
	}
	return SourceFallback
}

func actionName(action, mode string) string {
	if action == "" {
		return mode
	}
	return action + ":" + mode
}

// Embed returns an embedding vector for text.
func (g *Gateway) Embed(ctx context.Context, articleID, text string) ([]float64, error) {
	if g.embedder == nil {
		return nil, ErrUnsupported
	}
	if err := g.state.Acquire(); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	vec, err := g.embedder.Embed(callCtx, text)
	if err == nil && len(vec) == 0 {
		err = ErrEmptyResponse
	}
	if err != nil && IsQuotaError(err) {
		g.state.Trip()
		err = fmt.Errorf("%w: %v", ErrQuota, err)
	}
	g.record(ctx, articleID, "embedder", "embed", g.providerName(), time.Since(start), 0, fmt.Sprintf("%d dimensions", len(vec)), err)

	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	return vec, nil
}

func (g *Gateway) record(ctx context.Context, articleID, agent, action, model string, took time.Duration, tokens int, output string, callErr error) {
	if g.logs == nil {
		return
	}
	entry := &domain.AgentLog{
		AgentName:    agent,
		Action:       action,
		Model:        model,
		DurationMS:   took.Milliseconds(),
		TokensUsed:   tokens,
		Success:      callErr == nil,
		OutputDigest: digest(output, 200),
		CreatedAt:    time.Now().UTC(),
	}
	if articleID != "" {
		entry.ArticleID = &articleID
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorMessage = &msg
	}

	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := g.logs.Insert(logCtx, entry); err != nil {
		g.logger.Error().Err(err).Str("agent", agent).Msg("failed to write agent log")
	}
}

func digest(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
