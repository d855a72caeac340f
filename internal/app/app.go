// Package app wires the stores, providers and services shared by the
// worker and generator binaries.
package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"news_pipeline/internal/config"
	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
	"news_pipeline/internal/provider/claude"
	"news_pipeline/internal/provider/gemini"
	"news_pipeline/internal/provider/googletranslate"
	"news_pipeline/internal/queue"
	"news_pipeline/internal/service"
	"news_pipeline/internal/storage/postgres"
)

type App struct {
	DB        *sqlx.DB
	Queue     *queue.RabbitMQ
	Gateway   *gateway.Gateway
	TxManager *postgres.TransactionManager

	Articles     *postgres.ArticleStore
	Tags         *postgres.TagStore
	Translations *postgres.TranslationStore
	Engagement   *postgres.EngagementStore
	FeedState    *postgres.FeedStateStore

	Enrichment  *service.EnrichmentService
	Translation *service.TranslationService
	Background  *service.BackgroundTranslator
	ArticleSvc  *service.ArticleService
	Lifecycle   *service.LifecycleService
}

// New connects to Postgres and the broker and builds the services. The
// background translation pool is created but not started.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info().Msg("connected to database")

	mq, err := queue.NewRabbitMQ(queue.Config{
		URL:      cfg.RabbitMQ.URL,
		Exchange: cfg.RabbitMQ.Exchange,
		Prefetch: cfg.RabbitMQ.Prefetch,
		Classes:  domain.QueueClasses,
	}, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	a := &App{
		DB:           db,
		Queue:        mq,
		TxManager:    postgres.NewTransactionManager(db),
		Articles:     postgres.NewArticleStore(db),
		Tags:         postgres.NewTagStore(db),
		Translations: postgres.NewTranslationStore(db),
		Engagement:   postgres.NewEngagementStore(db),
		FeedState:    postgres.NewFeedStateStore(db),
	}

	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	if providers.Generator == nil {
		logger.Warn().Str("provider", cfg.AI.Provider).Msg("no ai api key configured, generation returns fallback text")
	}

	state := gateway.NewState(cfg.AI.RequestsPerMinute, cfg.AI.Cooldown, nil)
	a.Gateway = gateway.New(providers, state, postgres.NewAgentLogStore(db), gateway.Config{
		FallbackText:    cfg.AI.FallbackText,
		CallTimeout:     cfg.AI.CallTimeout,
		DefaultLanguage: cfg.AI.DefaultLanguage,
	}, logger)

	a.Enrichment = service.NewEnrichmentService(a.Articles, a.Gateway, logger)
	a.Translation = service.NewTranslationService(a.Articles, a.Translations, a.Gateway, logger)
	a.Background = service.NewBackgroundTranslator(a.Translation,
		cfg.Translation.Workers, cfg.Translation.QueueSize, cfg.Translation.Timeout, logger)
	a.ArticleSvc = service.NewArticleService(a.Articles, a.Tags, a.TxManager, mq, a.Enrichment, a.Background,
		service.ArticleConfig{
			DefaultLanguage:   cfg.AI.DefaultLanguage,
			TranslationTarget: cfg.Translation.Target,
			Operations:        cfg.Enrichment.Operations,
		}, logger)
	a.Lifecycle = service.NewLifecycleService(a.Articles, a.Engagement, a.TxManager, cfg.Publishing.DefaultHour, logger)

	return a, nil
}

func buildProviders(ctx context.Context, cfg *config.Config) (gateway.Providers, error) {
	var p gateway.Providers

	switch cfg.AI.Provider {
	case "claude":
		if cfg.Claude.APIKey != "" {
			c, err := claude.New(claude.Config{APIKey: cfg.Claude.APIKey, Model: cfg.Claude.Model})
			if err != nil {
				return p, err
			}
			p.Generator = c
		}
	case "gemini":
		if cfg.Gemini.APIKey != "" {
			g, err := gemini.New(ctx, gemini.Config{
				APIKey:         cfg.Gemini.APIKey,
				Model:          cfg.Gemini.Model,
				EmbedModel:     cfg.Gemini.EmbedModel,
				EmbedDimension: cfg.Gemini.EmbedDimension,
			})
			if err != nil {
				return p, err
			}
			p.Generator, p.Embedder = g, g
		}
	default:
		return p, fmt.Errorf("unknown ai provider %q", cfg.AI.Provider)
	}

	if cfg.Translate.APIKey != "" {
		p.Translator = googletranslate.New(googletranslate.Config{
			APIKey:  cfg.Translate.APIKey,
			BaseURL: cfg.Translate.BaseURL,
			Timeout: cfg.Translate.Timeout,
		})
	}
	return p, nil
}

func (a *App) Close() {
	if a.Queue != nil {
		a.Queue.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
