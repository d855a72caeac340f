package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type TranslateRequest struct {
	ArticleID string
	Text      string
	Target    string
	Source    string
	// Kind names what is being translated ("title", "content") for the prompt.
	Kind string
}

type Translation struct {
	Text     string
	Provider string
}

// Translate uses the dedicated translator when one is configured and falls
// back to prompting the generator otherwise or when it fails for a non-quota
// reason. It returns ErrNoTranslation instead of apology text.
func (g *Gateway) Translate(ctx context.Context, req TranslateRequest) (Translation, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Translation{}, nil
	}

	if g.translator != nil {
		text, err := g.dedicatedTranslate(ctx, req)
		if err == nil {
			return Translation{Text: text, Provider: g.translator.Name()}, nil
		}
		if errors.Is(err, ErrQuota) || errors.Is(err, context.Canceled) {
			return Translation{}, fmt.Errorf("%w: %v", ErrNoTranslation, err)
		}
		g.logger.Warn().Err(err).
			Str("article_id", req.ArticleID).
			Str("target", req.Target).
			Msg("dedicated translation failed, using generator")
	}

	res := g.Generate(ctx, Request{
		ArticleID:   req.ArticleID,
		Agent:       "translator",
		Action:      "translate_" + req.Kind,
		Prompt:      translationPrompt(req),
		MaxTokens:   2000,
		Temperature: 0.3,
	})
	if !res.OK() {
		return Translation{}, fmt.Errorf("%w: %v", ErrNoTranslation, res.Err)
	}
	return Translation{Text: strings.TrimSpace(res.Text), Provider: g.providerName()}, nil
}

func (g *Gateway) dedicatedTranslate(ctx context.Context, req TranslateRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	text, err := g.translator.Translate(callCtx, req.Text, req.Target, req.Source)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil && IsQuotaError(err) {
		err = fmt.Errorf("%w: %v", ErrQuota, err)
	}
	g.record(ctx, req.ArticleID, "translator", "translate_"+req.Kind, g.translator.Name(), time.Since(start), 0, text, err)
	return text, err
}

// DetectLanguage returns the language code of text, or the configured default
// when detection is unavailable or fails.
func (g *Gateway) DetectLanguage(ctx context.Context, text string) string {
	if g.translator == nil || strings.TrimSpace(text) == "" {
		return g.cfg.DefaultLanguage
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	lang, err := g.translator.DetectLanguage(callCtx, text)
	if err != nil || strings.TrimSpace(lang) == "" || lang == "und" {
		if err != nil {
			g.logger.Warn().Err(err).Msg("language detection failed, using default")
		}
		return g.cfg.DefaultLanguage
	}
	return strings.ToLower(strings.TrimSpace(lang))
}

func (g *Gateway) DefaultLanguage() string {
	return g.cfg.DefaultLanguage
}

func translationPrompt(req TranslateRequest) string {
	kind := req.Kind
	if kind == "" {
		kind = "text"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following news article %s to %s.", kind, req.Target)
	if req.Source != "" {
		fmt.Fprintf(&b, " The source language is %s.", req.Source)
	}
	b.WriteString(" Return only the translation, keeping paragraph breaks and Markdown formatting.\n\n")
	b.WriteString(req.Text)
	return b.String()
}
