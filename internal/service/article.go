package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
)

type ArticleConfig struct {
	DefaultLanguage   string
	TranslationTarget string
	Operations        []domain.Operation
}

// ArticleService creates articles and kicks off their enrichment and
// translation. Follow-up failures are logged and never returned.
type ArticleService struct {
	articles   ArticleStore
	tags       TagStore
	txManager  TransactionManager
	publisher  Publisher
	enricher   Enricher
	translator TranslationScheduler
	cfg        ArticleConfig
	logger     zerolog.Logger
	now        func() time.Time
}

func NewArticleService(
	articles ArticleStore,
	tags TagStore,
	txManager TransactionManager,
	publisher Publisher,
	enricher Enricher,
	translator TranslationScheduler,
	cfg ArticleConfig,
	logger zerolog.Logger,
) *ArticleService {
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "vi"
	}
	return &ArticleService{
		articles:   articles,
		tags:       tags,
		txManager:  txManager,
		publisher:  publisher,
		enricher:   enricher,
		translator: translator,
		cfg:        cfg,
		logger:     logger.With().Str("component", "articles").Logger(),
		now:        time.Now,
	}
}

// Create stores a new draft. An empty ID gets a surrogate key.
func (s *ArticleService) Create(ctx context.Context, a *domain.Article) error {
	if a.ID == "" {
		a.ID = domain.NewSurrogateID()
	} else {
		id, err := domain.NormalizeID(a.ID)
		if err != nil {
			return err
		}
		a.ID = id
	}

	a.Status = domain.StatusDraft
	a.PublishedAt = nil
	if a.Language == "" {
		a.Language = s.cfg.DefaultLanguage
	}
	if a.Category == "" {
		a.Category = domain.CategoryLocal
	}
	if a.Slug == "" {
		a.Slug = gateway.Slugify(a.Title)
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.articles.Create(txCtx, a); err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		if len(a.Tags) > 0 {
			if err := s.tags.ReplaceForArticle(txCtx, a.ID, a.Tags); err != nil {
				return fmt.Errorf("store tags: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("article_id", a.ID).Str("title", a.Title).Msg("article created")

	s.AfterCreate(ctx, a)
	return nil
}

// AfterCreate queues enrichment and the default translation of a new article.
func (s *ArticleService) AfterCreate(ctx context.Context, a *domain.Article) {
	s.queueEnrichment(ctx, a)
	s.queueTranslation(ctx, a)
}

func (s *ArticleService) queueEnrichment(ctx context.Context, a *domain.Article) {
	if len(s.cfg.Operations) == 0 {
		return
	}
	task := domain.EnrichmentTask{
		ArticleID:  a.ID,
		Operations: s.cfg.Operations,
		Timestamp:  s.now().UTC(),
	}

	if s.publisher.Enabled() {
		if err := s.publisher.Publish(ctx, domain.QueueArticleProcessing, "enrich", task); err != nil {
			s.logger.Warn().Err(err).Str("article_id", a.ID).Msg("enrichment task not queued")
		}
		return
	}

	if s.enricher == nil {
		return
	}
	if err := s.enricher.Enrich(ctx, task); err != nil {
		s.logger.Warn().Err(err).Str("article_id", a.ID).Msg("inline enrichment failed")
	}
}

func (s *ArticleService) queueTranslation(ctx context.Context, a *domain.Article) {
	target := strings.ToLower(s.cfg.TranslationTarget)
	if target == "" || target == strings.ToLower(a.Language) {
		return
	}

	if s.publisher.Enabled() {
		err := s.publisher.Publish(ctx, domain.QueueTranslation, "translate", domain.TranslationTask{
			ArticleID: a.ID,
			Language:  target,
			Timestamp: s.now().UTC(),
		})
		if err == nil {
			return
		}
		s.logger.Warn().Err(err).Str("article_id", a.ID).Msg("translation task not queued, using background pool")
	}

	if s.translator != nil {
		s.translator.Submit(a.ID, target)
	}
}

// EnqueueFeedFetch asks a worker to ingest the feed at url.
func (s *ArticleService) EnqueueFeedFetch(ctx context.Context, url string) error {
	task := domain.FeedFetchTask{FeedURL: url, Timestamp: s.now().UTC()}
	if err := s.publisher.Publish(ctx, domain.QueueNewsFetching, "fetch", task); err != nil {
		return fmt.Errorf("queue feed fetch: %w", err)
	}
	return nil
}
