package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"news_pipeline/internal/domain"
)

type PublishRequest struct {
	// ManualTime wins over every other source when set.
	ManualTime      *time.Time
	UseAIScheduling bool
}

type PublishResult struct {
	Status      domain.Status
	PublishTime time.Time
	PublishedAt *time.Time
}

// LifecycleService moves articles between statuses. Publishing is the only
// guarded transition.
type LifecycleService struct {
	articles    ArticleStore
	engagement  EngagementStore
	txManager   TransactionManager
	defaultHour int
	logger      zerolog.Logger
	now         func() time.Time
}

func NewLifecycleService(
	articles ArticleStore,
	engagement EngagementStore,
	txManager TransactionManager,
	defaultHour int,
	logger zerolog.Logger,
) *LifecycleService {
	return &LifecycleService{
		articles:    articles,
		engagement:  engagement,
		txManager:   txManager,
		defaultHour: defaultHour,
		logger:      logger.With().Str("component", "lifecycle").Logger(),
		now:         time.Now,
	}
}

// Publish resolves a publish time for an approved article. A time at or
// before now publishes immediately; a later one is stored for the sweep.
func (s *LifecycleService) Publish(ctx context.Context, rawID string, req PublishRequest) (*PublishResult, error) {
	id, err := domain.NormalizeID(rawID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var result *PublishResult

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		article, err := s.articles.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if article.Status != domain.StatusApproved {
			return fmt.Errorf("publish article %s in status %s: %w", id, article.Status, domain.ErrNotApproved)
		}

		at := s.resolvePublishTime(txCtx, article, req, now)
		if !at.After(now) {
			if err := s.articles.MarkPublished(txCtx, id, now); err != nil {
				return fmt.Errorf("mark published: %w", err)
			}
			result = &PublishResult{Status: domain.StatusPublished, PublishTime: at, PublishedAt: &now}
			return nil
		}

		if err := s.articles.SchedulePublish(txCtx, id, at); err != nil {
			return fmt.Errorf("schedule publish: %w", err)
		}
		result = &PublishResult{Status: domain.StatusApproved, PublishTime: at}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("article_id", id).
		Str("status", string(result.Status)).
		Time("publish_time", result.PublishTime).
		Msg("article publish resolved")

	return result, nil
}

func (s *LifecycleService) resolvePublishTime(ctx context.Context, a *domain.Article, req PublishRequest, now time.Time) time.Time {
	switch {
	case req.ManualTime != nil:
		return req.ManualTime.UTC()
	case req.UseAIScheduling:
		return s.SuggestPublishSlot(ctx, a.Category, now)
	default:
		return now
	}
}

// SuggestPublishSlot returns the next occurrence, strictly after now, of the
// UTC hour in which articles of category get the most views. Without view
// history the configured default hour is used.
func (s *LifecycleService) SuggestPublishSlot(ctx context.Context, category domain.Category, now time.Time) time.Time {
	hour := s.defaultHour

	hist, err := s.engagement.ViewsByHour(ctx, category)
	if err != nil {
		s.logger.Warn().Err(err).Str("category", string(category)).Msg("engagement lookup failed, using default hour")
	} else if best, ok := topHour(hist); ok {
		hour = best
	}

	now = now.UTC()
	slot := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	if !slot.After(now) {
		slot = slot.AddDate(0, 0, 1)
	}
	return slot
}

// topHour picks the busiest hour; ties go to the earlier hour.
func topHour(hist map[int]int64) (int, bool) {
	best, bestViews := -1, int64(0)
	for h := 0; h < 24; h++ {
		if v := hist[h]; v > bestViews {
			best, bestViews = h, v
		}
	}
	return best, best >= 0
}

// Transition sets any recognized status. Moving to published goes through
// Publish so the approval guard and published_at always apply.
func (s *LifecycleService) Transition(ctx context.Context, rawID, rawStatus string) error {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return err
	}
	if status == domain.StatusPublished {
		_, err := s.Publish(ctx, rawID, PublishRequest{})
		return err
	}

	id, err := domain.NormalizeID(rawID)
	if err != nil {
		return err
	}
	if err := s.articles.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("transition %s to %s: %w", id, status, err)
	}

	s.logger.Info().Str("article_id", id).Str("status", string(status)).Msg("article status changed")
	return nil
}

// PromoteDue publishes approved articles whose publish time has come.
func (s *LifecycleService) PromoteDue(ctx context.Context) (int, error) {
	ids, err := s.articles.PromoteDue(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}
	if len(ids) > 0 {
		s.logger.Info().Strs("article_ids", ids).Msg("scheduled articles published")
	}
	return len(ids), nil
}
