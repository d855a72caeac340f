package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
	"news_pipeline/internal/markup"
	"news_pipeline/internal/queue"
)

// ProviderOriginal tags a translation whose source already is the target language.
const ProviderOriginal = "original"

// TranslationService produces and caches one translation per (article, language).
type TranslationService struct {
	articles     ArticleStore
	translations TranslationStore
	ai           AI
	group        singleflight.Group
	logger       zerolog.Logger
}

func NewTranslationService(articles ArticleStore, translations TranslationStore, ai AI, logger zerolog.Logger) *TranslationService {
	return &TranslationService{
		articles:     articles,
		translations: translations,
		ai:           ai,
		logger:       logger.With().Str("component", "translation").Logger(),
	}
}

// Translate returns the stored translation or produces, stores and returns a
// new one. Concurrent calls for the same key in this process share one run.
func (s *TranslationService) Translate(ctx context.Context, rawID, language string) (*domain.Translation, error) {
	id, err := domain.NormalizeID(rawID)
	if err != nil {
		return nil, err
	}
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return nil, errors.New("target language is required")
	}

	v, err, shared := s.group.Do(id+"/"+language, func() (any, error) {
		return s.translate(ctx, id, language)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug().Str("article_id", id).Str("language", language).Msg("translation shared with concurrent caller")
	}
	return v.(*domain.Translation), nil
}

func (s *TranslationService) translate(ctx context.Context, id, language string) (*domain.Translation, error) {
	existing, err := s.translations.Get(ctx, id, language)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check translation: %w", err)
	}

	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	source := s.ai.DetectLanguage(ctx, article.Title)
	t := &domain.Translation{ArticleID: id, Language: language}

	if source == language {
		t.Title, t.Content, t.Excerpt, t.Provider = article.Title, article.Content, article.Excerpt, ProviderOriginal
	} else {
		if err := s.fill(ctx, t, article, source); err != nil {
			return nil, err
		}
	}

	if err := s.translations.Upsert(ctx, t); err != nil {
		return nil, fmt.Errorf("store translation: %w", err)
	}

	s.logger.Info().
		Str("article_id", id).
		Str("language", language).
		Str("source", source).
		Str("provider", t.Provider).
		Msg("article translated")
	return t, nil
}

func (s *TranslationService) fill(ctx context.Context, t *domain.Translation, a *domain.Article, source string) error {
	req := gateway.TranslateRequest{ArticleID: a.ID, Target: t.Language, Source: source}

	req.Text, req.Kind = a.Title, "title"
	title, err := s.ai.Translate(ctx, req)
	if err != nil {
		return fmt.Errorf("translate title: %w", err)
	}

	req.Text, req.Kind = a.Content, "content"
	content, err := s.ai.Translate(ctx, req)
	if err != nil {
		return fmt.Errorf("translate content: %w", err)
	}

	t.Title = strings.TrimSpace(title.Text)
	t.Content = markup.Normalize(content.Text)
	t.Provider = content.Provider

	if a.Excerpt != nil && strings.TrimSpace(*a.Excerpt) != "" {
		req.Text, req.Kind = *a.Excerpt, "excerpt"
		excerpt, err := s.ai.Translate(ctx, req)
		if err != nil {
			s.logger.Warn().Err(err).Str("article_id", a.ID).Msg("excerpt translation failed")
		} else {
			text := strings.TrimSpace(excerpt.Text)
			t.Excerpt = &text
		}
	}
	return nil
}

// HandleTask is the translation queue consumer. Missing articles and failed
// provider calls are acked; the translation can be produced on demand later.
func (s *TranslationService) HandleTask(ctx context.Context, task domain.TranslationTask) error {
	_, err := s.Translate(ctx, task.ArticleID, task.Language)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidID):
		return fmt.Errorf("%w: %v", queue.ErrMalformed, err)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, gateway.ErrNoTranslation):
		s.logger.Warn().Err(err).Str("article_id", task.ArticleID).Msg("translation task dropped")
		return nil
	default:
		return err
	}
}

type articleTranslator interface {
	Translate(ctx context.Context, rawID, language string) (*domain.Translation, error)
}

type translationJob struct {
	articleID string
	language  string
}

// BackgroundTranslator runs translations on a fixed pool of workers. Submit
// never blocks: when the buffer is full the job is dropped.
type BackgroundTranslator struct {
	translator articleTranslator
	jobs       chan translationJob
	workers    int
	timeout    time.Duration
	logger     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewBackgroundTranslator(translator articleTranslator, workers, queueSize int, timeout time.Duration, logger zerolog.Logger) *BackgroundTranslator {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &BackgroundTranslator{
		translator: translator,
		jobs:       make(chan translationJob, queueSize),
		workers:    workers,
		timeout:    timeout,
		logger:     logger.With().Str("component", "background_translator").Logger(),
	}
}

// Start launches the workers. They stop when ctx is cancelled or after Stop
// once the buffer is drained.
func (b *BackgroundTranslator) Start(ctx context.Context) {
	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go b.work(ctx)
	}
}

func (b *BackgroundTranslator) work(ctx context.Context) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-b.jobs:
			if !ok {
				return
			}
			b.run(ctx, job)
		}
	}
}

func (b *BackgroundTranslator) run(ctx context.Context, job translationJob) {
	defer func() {
		if p := recover(); p != nil {
			b.logger.Error().Interface("panic", p).Str("article_id", job.articleID).Msg("translation job panicked")
		}
	}()

	jobCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	if _, err := b.translator.Translate(jobCtx, job.articleID, job.language); err != nil {
		b.logger.Warn().Err(err).
			Str("article_id", job.articleID).
			Str("language", job.language).
			Msg("background translation failed")
	}
}

func (b *BackgroundTranslator) Submit(articleID, language string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return false
	}

	select {
	case b.jobs <- translationJob{articleID: articleID, language: language}:
		return true
	default:
		b.logger.Warn().Str("article_id", articleID).Str("language", language).Msg("translation pool full, job dropped")
		return false
	}
}

// Stop refuses new jobs and waits for the workers to finish the buffered ones.
func (b *BackgroundTranslator) Stop() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.jobs)
	}
	b.mu.Unlock()
	b.wg.Wait()
}
