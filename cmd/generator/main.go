package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"news_pipeline/internal/app"
	"news_pipeline/internal/cache"
	"news_pipeline/internal/config"
	"news_pipeline/internal/domain"
	"news_pipeline/internal/keywords"
	"news_pipeline/internal/logger"
	"news_pipeline/internal/scheduler"
	"news_pipeline/internal/service"
	"news_pipeline/internal/source/rss"
	"news_pipeline/internal/source/trends"
	"news_pipeline/internal/source/unsplash"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := logger.New(logger.Config{Level: "info"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	log = logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise")
	}
	defer a.Close()

	kwQueue, closeQueue, err := keywordQueue(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create keyword queue")
	}
	defer closeQueue()

	trendSource := trends.New(trends.Config{
		APIKey:         cfg.Trends.APIKey,
		BaseURL:        cfg.Trends.BaseURL,
		Geo:            cfg.Trends.Geo,
		PerTopic:       cfg.Trends.PerTopic,
		Timeout:        cfg.Trends.Timeout,
		MaxAttempts:    cfg.Trends.Retry.MaxAttempts,
		InitialBackoff: cfg.Trends.Retry.InitialBackoff,
		MaxBackoff:     cfg.Trends.Retry.MaxBackoff,
	}, log)
	images := unsplash.New(unsplash.Config{
		AccessKey: cfg.Images.AccessKey,
		BaseURL:   cfg.Images.BaseURL,
		Timeout:   cfg.Images.Timeout,
	})

	generator := service.NewGeneratorService(trendSource, images, kwQueue, a.Gateway,
		a.Articles, a.Tags, a.TxManager, a.ArticleSvc,
		service.GeneratorConfig{
			Topics:          cfg.Trends.Topics,
			MinKeywords:     cfg.Trends.MinKeywords,
			MaxKeywords:     cfg.Trends.MaxKeywords,
			Fallback:        cfg.Trends.Fallback,
			ImageCount:      cfg.Images.Count,
			DefaultLanguage: cfg.AI.DefaultLanguage,
		}, log)

	a.Background.Start(ctx)
	defer a.Background.Stop()

	jobs := []scheduler.Job{
		{
			Name:           "discover_keywords",
			Interval:       cfg.Scheduler.DiscoveryInterval,
			Timeout:        cfg.Scheduler.JobTimeout,
			RunImmediately: true,
			Run: func(ctx context.Context) error {
				_, err := generator.Discover(ctx)
				return err
			},
		},
		{
			Name:     "generate_article",
			Interval: cfg.Scheduler.GenerationInterval,
			Timeout:  cfg.Scheduler.JobTimeout,
			Run: func(ctx context.Context) error {
				_, err := generator.GenerateNext(ctx)
				return err
			},
		},
		{
			Name:     "publish_sweep",
			Interval: cfg.Scheduler.SweepInterval,
			Timeout:  cfg.Scheduler.JobTimeout,
			Run: func(ctx context.Context) error {
				_, err := a.Lifecycle.PromoteDue(ctx)
				return err
			},
		},
	}
	if len(cfg.Feeds.URLs) > 0 {
		jobs = append(jobs, feedJob(cfg, a, log))
	}

	log.Info().
		Str("ai_provider", cfg.AI.Provider).
		Bool("trends_configured", trendSource.Configured()).
		Bool("images_configured", images.Configured()).
		Bool("broker_enabled", a.Queue.Enabled()).
		Dur("generation_interval", cfg.Scheduler.GenerationInterval).
		Msg("starting generator")

	sched := scheduler.NewScheduler(log, jobs...)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("scheduler error")
		os.Exit(1)
	}
}

func keywordQueue(cfg *config.Config, log zerolog.Logger) (service.KeywordQueue, func(), error) {
	if cfg.Redis.URL == "" {
		log.Info().Int("max_seen", cfg.Keywords.MaxSeen).Msg("using in-memory keyword queue")
		return keywords.NewMemoryQueue(cfg.Keywords.MaxSeen), func() {}, nil
	}

	q, err := cache.NewRedisQueue(cache.Config{
		URL:     cfg.Redis.URL,
		Prefix:  cfg.Redis.Prefix,
		MaxSeen: cfg.Keywords.MaxSeen,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info().Int("max_seen", cfg.Keywords.MaxSeen).Msg("using redis keyword queue")
	return q, func() { _ = q.Close() }, nil
}

// feedJob queues every configured feed for the workers, or ingests in process
// when the broker is disabled.
func feedJob(cfg *config.Config, a *app.App, log zerolog.Logger) scheduler.Job {
	ingest := service.NewIngestService(
		rss.New(rss.Config{Timeout: cfg.Feeds.Timeout, MaxEntries: cfg.Feeds.MaxEntries}),
		a.Articles, a.ArticleSvc, a.FeedState, cfg.Feeds.MaxEntries, log)

	return scheduler.Job{
		Name:     "fetch_feeds",
		Interval: cfg.Feeds.Interval,
		Timeout:  cfg.Scheduler.JobTimeout,
		Run: func(ctx context.Context) error {
			var errs []error
			for _, url := range cfg.Feeds.URLs {
				if a.Queue.Enabled() {
					errs = append(errs, a.ArticleSvc.EnqueueFeedFetch(ctx, url))
					continue
				}
				_, err := ingest.Fetch(ctx, domain.FeedFetchTask{FeedURL: url, Timestamp: time.Now().UTC()})
				errs = append(errs, err)
			}
			return errors.Join(errs...)
		},
	}
}
