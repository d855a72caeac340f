package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/markup"
)

const excerptRunes = 300

// IngestService turns feed entries into draft articles.
type IngestService struct {
	feeds      FeedSource
	articles   ArticleStore
	creator    ArticleCreator
	feedState  FeedStateStore
	maxEntries int
	logger     zerolog.Logger
	now        func() time.Time
}

func NewIngestService(
	feeds FeedSource,
	articles ArticleStore,
	creator ArticleCreator,
	feedState FeedStateStore,
	maxEntries int,
	logger zerolog.Logger,
) *IngestService {
	if maxEntries <= 0 {
		maxEntries = 10
	}
	return &IngestService{
		feeds:      feeds,
		articles:   articles,
		creator:    creator,
		feedState:  feedState,
		maxEntries: maxEntries,
		logger:     logger.With().Str("component", "ingest").Logger(),
		now:        time.Now,
	}
}

// Fetch creates a draft for every new entry among the first entries of the
// feed. Entries whose link is already stored are skipped, so a redelivered
// task does not duplicate articles.
func (s *IngestService) Fetch(ctx context.Context, task domain.FeedFetchTask) (*domain.IngestStats, error) {
	start := time.Now()
	log := s.logger.With().Str("feed_url", task.FeedURL).Logger()

	entries, err := s.feeds.Fetch(ctx, task.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}

	stats := &domain.IngestStats{FeedURL: task.FeedURL, Fetched: len(entries)}
	var lastLink *string

	for _, e := range entries {
		if e.Link == "" || strings.TrimSpace(e.Title) == "" {
			stats.Skipped++
			continue
		}

		exists, err := s.articles.ExistsBySourceURL(ctx, e.Link)
		if err != nil {
			stats.Errors++
			log.Warn().Err(err).Str("link", e.Link).Msg("duplicate check failed")
			continue
		}
		if exists {
			stats.Skipped++
			continue
		}

		if err := s.creator.Create(ctx, entryToArticle(e)); err != nil {
			stats.Errors++
			log.Warn().Err(err).Str("link", e.Link).Msg("create article from feed entry failed")
			continue
		}
		stats.Created++
		if lastLink == nil {
			link := e.Link
			lastLink = &link
		}
	}

	s.updateFeedState(ctx, task.FeedURL, lastLink, stats.Created)

	stats.Duration = time.Since(start)
	log.Info().
		Int("fetched", stats.Fetched).
		Int("created", stats.Created).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Dur("duration", stats.Duration).
		Msg("feed ingested")

	return stats, nil
}

// HandleTask is the news_fetching queue consumer.
func (s *IngestService) HandleTask(ctx context.Context, task domain.FeedFetchTask) error {
	_, err := s.Fetch(ctx, task)
	return err
}

func (s *IngestService) updateFeedState(ctx context.Context, feedURL string, lastLink *string, created int) {
	state, err := s.feedState.Get(ctx, feedURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("feed_url", feedURL).Msg("load feed state failed")
		return
	}
	state.FeedURL = feedURL
	state.LastFetchedAt = s.now().UTC()
	state.TotalCreated += int64(created)
	if lastLink != nil {
		state.LastEntryURL = lastLink
	}
	if err := s.feedState.Update(ctx, state); err != nil {
		s.logger.Warn().Err(err).Str("feed_url", feedURL).Msg("save feed state failed")
	}
}

func entryToArticle(e domain.FeedEntry) *domain.Article {
	body := e.Content
	if strings.TrimSpace(body) == "" {
		body = e.Description
	}

	a := &domain.Article{
		Title:    strings.TrimSpace(e.Title),
		Content:  markup.Normalize(body),
		Category: domain.CategoryLocal,
		Tags:     e.Categories,
	}

	link := e.Link
	a.SourceURL = &link

	if excerpt := strings.TrimSpace(e.Description); excerpt != "" {
		if utf8.RuneCountInString(excerpt) > excerptRunes {
			excerpt = string([]rune(excerpt)[:excerptRunes])
		}
		a.Excerpt = &excerpt
	}

	for _, c := range e.Categories {
		if cat, ok := LookupCategory(c); ok {
			a.Category = cat
			break
		}
	}
	return a
}
