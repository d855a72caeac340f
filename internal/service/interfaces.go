package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
)

type ArticleStore interface {
	Get(ctx context.Context, id string) (*domain.Article, error)
	GetForUpdate(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
	NextSequentialID(ctx context.Context) (string, error)
	ExistsBySourceURL(ctx context.Context, url string) (bool, error)
	UpdateEnrichment(ctx context.Context, id string, e domain.Enrichment) error
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	SchedulePublish(ctx context.Context, id string, at time.Time) error
	MarkPublished(ctx context.Context, id string, at time.Time) error
	PromoteDue(ctx context.Context, now time.Time) ([]string, error)
}

type TagStore interface {
	ReplaceForArticle(ctx context.Context, articleID string, tags []string) error
}

type TranslationStore interface {
	Get(ctx context.Context, articleID, language string) (*domain.Translation, error)
	Upsert(ctx context.Context, t *domain.Translation) error
}

type EngagementStore interface {
	ViewsByHour(ctx context.Context, category domain.Category) (map[int]int64, error)
}

type FeedStateStore interface {
	Get(ctx context.Context, feedURL string) (*domain.FeedState, error)
	Update(ctx context.Context, state *domain.FeedState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher is the task queue as seen by producers.
type Publisher interface {
	Enabled() bool
	Publish(ctx context.Context, class domain.QueueClass, verb string, payload any) error
}

// AI is the provider gateway.
type AI interface {
	Generate(ctx context.Context, req gateway.Request) gateway.Result
	Embed(ctx context.Context, articleID, text string) ([]float64, error)
	Translate(ctx context.Context, req gateway.TranslateRequest) (gateway.Translation, error)
	DetectLanguage(ctx context.Context, text string) string
	DefaultLanguage() string
}

type KeywordQueue interface {
	Offer(ctx context.Context, keyword string) (bool, error)
	Poll(ctx context.Context) (string, bool, error)
	Len(ctx context.Context) (int, error)
}

type TrendSource interface {
	Configured() bool
	TopKeywords(ctx context.Context, topic string) ([]string, error)
}

type ImageSource interface {
	Configured() bool
	SearchImages(ctx context.Context, keyword string, count int) ([]domain.Image, error)
}

type FeedSource interface {
	Fetch(ctx context.Context, url string) ([]domain.FeedEntry, error)
}

// Enricher runs enrichment inline when the broker is disabled.
type Enricher interface {
	Enrich(ctx context.Context, task domain.EnrichmentTask) error
}

// TranslationScheduler hands a translation to the background pool.
type TranslationScheduler interface {
	Submit(articleID, language string) bool
}

type ArticleCreator interface {
	Create(ctx context.Context, article *domain.Article) error
}

// FollowUp schedules the best-effort work that follows article creation.
type FollowUp interface {
	AfterCreate(ctx context.Context, article *domain.Article)
}
