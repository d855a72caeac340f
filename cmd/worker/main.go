package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"news_pipeline/internal/app"
	"news_pipeline/internal/config"
	"news_pipeline/internal/domain"
	"news_pipeline/internal/logger"
	"news_pipeline/internal/queue"
	"news_pipeline/internal/service"
	"news_pipeline/internal/source/rss"
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

	if !a.Queue.Enabled() {
		log.Error().Msg("worker needs rabbitmq, set rabbitmq.url")
		os.Exit(1)
	}

	feeds := rss.New(rss.Config{Timeout: cfg.Feeds.Timeout, MaxEntries: cfg.Feeds.MaxEntries})
	ingest := service.NewIngestService(feeds, a.Articles, a.ArticleSvc, a.FeedState, cfg.Feeds.MaxEntries, log)

	a.Background.Start(ctx)
	defer a.Background.Stop()

	log.Info().
		Str("ai_provider", cfg.AI.Provider).
		Bool("dedicated_translator", a.Gateway.HasTranslator()).
		Str("translation_target", cfg.Translation.Target).
		Msg("starting worker")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Queue.Consume(gctx, domain.QueueArticleProcessing, queue.Handle(a.Enrichment.Enrich))
	})
	g.Go(func() error {
		return a.Queue.Consume(gctx, domain.QueueNewsFetching, queue.Handle(ingest.HandleTask))
	})
	g.Go(func() error {
		return a.Queue.Consume(gctx, domain.QueueTranslation, queue.Handle(a.Translation.HandleTask))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("worker stopped")
		a.Background.Stop()
		a.Close()
		os.Exit(1)
	}
	log.Info().Msg("worker stopped")
}
