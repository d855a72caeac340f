package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
	"news_pipeline/internal/markup"
	"news_pipeline/internal/queue"
)

const (
	enrichmentAgent = "enrichment"
	maxPromptRunes  = 6000
	maxHashtags     = 10
	maxKeyPoints    = 5
)

var moderationLabels = []string{"violence", "hate_speech", "adult", "self_harm", "misinformation", "harassment"}

// EnrichmentService fills the AI fields of an article. It never changes the
// article status.
type EnrichmentService struct {
	articles ArticleStore
	ai       AI
	logger   zerolog.Logger
}

func NewEnrichmentService(articles ArticleStore, ai AI, logger zerolog.Logger) *EnrichmentService {
	return &EnrichmentService{
		articles: articles,
		ai:       ai,
		logger:   logger.With().Str("component", "enrichment").Logger(),
	}
}

// Enrich runs the task operations in canonical order and stores what the
// provider produced. Re-running a task overwrites the same fields.
func (s *EnrichmentService) Enrich(ctx context.Context, task domain.EnrichmentTask) error {
	start := time.Now()

	id, err := domain.NormalizeID(task.ArticleID)
	if err != nil {
		return fmt.Errorf("%w: %v", queue.ErrMalformed, err)
	}
	log := s.logger.With().Str("article_id", id).Logger()

	article, err := s.articles.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		log.Warn().Msg("article not found, dropping enrichment task")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load article: %w", err)
	}

	text := truncateRunes(markup.PlainText(article.Content), maxPromptRunes)
	ops := domain.CanonicalOperations(task.Operations)

	var e domain.Enrichment
	for _, op := range ops {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.run(ctx, op, article, text, &e, log)
	}

	if e.IsEmpty() {
		log.Warn().Int("operations", len(ops)).Msg("enrichment produced nothing")
		return nil
	}

	if err := s.articles.UpdateEnrichment(ctx, id, e); err != nil {
		return fmt.Errorf("store enrichment: %w", err)
	}

	log.Info().
		Int("operations", len(ops)).
		Dur("duration", time.Since(start)).
		Msg("article enriched")
	return nil
}

func (s *EnrichmentService) run(ctx context.Context, op domain.Operation, a *domain.Article, text string, e *domain.Enrichment, log zerolog.Logger) {
	if op == domain.OpEmbed {
		vec, err := s.ai.Embed(ctx, a.ID, a.Title+"\n\n"+text)
		switch {
		case errors.Is(err, gateway.ErrUnsupported):
			log.Debug().Msg("provider has no embeddings")
		case err != nil:
			log.Warn().Err(err).Msg("embedding failed")
		case len(vec) > 0:
			e.Embedding = vec
		}
		return
	}

	req := gateway.Request{
		ArticleID:   a.ID,
		Agent:       enrichmentAgent,
		Action:      string(op),
		Temperature: 0.3,
		MaxTokens:   500,
	}
	switch op {
	case domain.OpSummarize:
		req.Prompt = summaryPrompt(a.Title, text)
	case domain.OpCategorize:
		req.Prompt = categoryPrompt(a.Title, text, e.Summary)
		req.MaxTokens = 20
		req.Temperature = 0
	case domain.OpHashtags:
		req.Prompt = hashtagPrompt(a.Title, text)
	case domain.OpKeyPoints:
		req.Prompt = keyPointsPrompt(a.Title, text)
	case domain.OpModerate:
		req.Prompt = moderationPrompt(a.Title, text)
		req.MaxTokens = 50
		req.Temperature = 0
	default:
		return
	}

	res := s.ai.Generate(ctx, req)
	if !res.OK() {
		log.Warn().Err(res.Err).Str("operation", string(op)).Msg("enrichment step skipped")
		return
	}

	switch op {
	case domain.OpSummarize:
		if summary := strings.TrimSpace(res.Text); summary != "" {
			e.Summary = &summary
		}
	case domain.OpCategorize:
		c := parseCategoryAnswer(res.Text)
		e.SuggestedCat = &c
	case domain.OpHashtags:
		e.Hashtags = parseHashtags(res.Text)
	case domain.OpKeyPoints:
		e.KeyPoints = parseList(res.Text, maxKeyPoints)
	case domain.OpModerate:
		e.ContentWarnings = parseModeration(res.Text)
	}
}

func summaryPrompt(title, text string) string {
	return fmt.Sprintf("Summarize the following news article in 2-3 sentences, in the article's language.\n\nTitle: %s\n\n%s", title, text)
}

func categoryPrompt(title, text string, summary *string) string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	body := text
	if summary != nil {
		body = *summary
	}
	return fmt.Sprintf("Classify this news article into exactly one of: %s. Reply with the category name only.\n\nTitle: %s\n\n%s",
		strings.Join(names, ", "), title, body)
}

func hashtagPrompt(title, text string) string {
	return fmt.Sprintf("Suggest 5 short hashtags for this news article. Reply with the hashtags separated by spaces.\n\nTitle: %s\n\n%s", title, text)
}

func keyPointsPrompt(title, text string) string {
	return fmt.Sprintf("List the %d key points of this news article, one per line.\n\nTitle: %s\n\n%s", maxKeyPoints, title, text)
}

func moderationPrompt(title, text string) string {
	return fmt.Sprintf("Review this news article for sensitive content. Reply NONE, or a comma-separated list of labels from: %s.\n\nTitle: %s\n\n%s",
		strings.Join(moderationLabels, ", "), title, text)
}

// parseCategoryAnswer finds the first known category named in the answer.
// Anything unrecognized lands in local.
func parseCategoryAnswer(answer string) domain.Category {
	a := strings.ToLower(answer)
	best, bestPos := domain.CategoryLocal, -1
	for _, c := range domain.Categories {
		if pos := strings.Index(a, string(c)); pos >= 0 && (bestPos < 0 || pos < bestPos) {
			best, bestPos = c, pos
		}
	}
	return best
}

var hashtagToken = regexp.MustCompile(`#?[\p{L}\p{N}_]+`)

func parseHashtags(answer string) []string {
	out := make([]string, 0, maxHashtags)
	seen := map[string]bool{}
	for _, tok := range hashtagToken.FindAllString(answer, -1) {
		tag := "#" + strings.TrimPrefix(strings.ToLower(tok), "#")
		if len(tag) < 2 || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == maxHashtags {
			break
		}
	}
	return out
}

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

func parseList(answer string, limit int) []string {
	out := make([]string, 0, limit)
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}

// parseModeration returns an empty, non-nil slice for a clean article so the
// result is still stored.
func parseModeration(answer string) []string {
	a := strings.ToLower(answer)
	out := []string{}
	for _, label := range moderationLabels {
		if strings.Contains(a, label) || strings.Contains(a, strings.ReplaceAll(label, "_", " ")) {
			out = append(out, label)
		}
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
