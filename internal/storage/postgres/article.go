package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_pipeline/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const articleColumns = `id, title, slug, content, excerpt, category, status, language,
	author_id, source_url, thumbnail, publish_time, published_at,
	view_count, like_count, comment_count,
	ai_summary, ai_hashtags, ai_category, ai_key_points, content_warnings, embedding,
	created_at, updated_at`

// articleRow carries the array columns that domain.Article keeps as plain slices.
type articleRow struct {
	domain.Article
	Hashtags  pq.StringArray  `db:"ai_hashtags"`
	KeyPoints pq.StringArray  `db:"ai_key_points"`
	Warnings  pq.StringArray  `db:"content_warnings"`
	Embedding pq.Float64Array `db:"embedding"`
}

func (r *articleRow) toDomain() *domain.Article {
	a := r.Article
	if r.Hashtags != nil {
		a.Hashtags = []string(r.Hashtags)
	}
	if r.KeyPoints != nil {
		a.KeyPoints = []string(r.KeyPoints)
	}
	if r.Warnings != nil {
		a.ContentWarnings = []string(r.Warnings)
	}
	if r.Embedding != nil {
		a.Embedding = []float64(r.Embedding)
	}
	return &a
}

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.get(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

// GetForUpdate locks the row until the surrounding transaction ends.
func (s *ArticleStore) GetForUpdate(ctx context.Context, id string) (*domain.Article, error) {
	return s.get(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1 FOR UPDATE`, id)
}

func (s *ArticleStore) get(ctx context.Context, query, id string) (*domain.Article, error) {
	var row articleRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	return row.toDomain(), nil
}

func (s *ArticleStore) Create(ctx context.Context, a *domain.Article) error {
	query, args, err := psql.Insert("articles").
		Columns(
			"id", "title", "slug", "content", "excerpt", "category", "status", "language",
			"author_id", "source_url", "thumbnail", "publish_time", "published_at",
			"ai_summary", "ai_hashtags", "ai_category", "ai_key_points", "content_warnings", "embedding",
		).
		Values(
			a.ID, a.Title, a.Slug, a.Content, a.Excerpt, a.Category, a.Status, a.Language,
			a.AuthorID, a.SourceURL, a.Thumbnail, a.PublishTime, a.PublishedAt,
			a.Summary, nullableStrings(a.Hashtags), a.SuggestedCat, nullableStrings(a.KeyPoints),
			nullableStrings(a.ContentWarnings), nullableFloats(a.Embedding),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article %s: %w", a.ID, err)
	}
	return nil
}

// NextSequentialID allocates the next integer article id from a database
// sequence, so concurrent generators never hand out the same id.
func (s *ArticleStore) NextSequentialID(ctx context.Context) (string, error) {
	var n int64
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n, `SELECT nextval('article_number_seq')`); err != nil {
		return "", fmt.Errorf("allocate article id: %w", err)
	}
	return strconv.FormatInt(n, 10), nil
}

func (s *ArticleStore) ExistsBySourceURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE source_url = $1)`, url)
	if err != nil {
		return false, fmt.Errorf("check source url: %w", err)
	}
	return exists, nil
}

// UpdateEnrichment writes the non-nil fields of e and leaves the rest untouched.
func (s *ArticleStore) UpdateEnrichment(ctx context.Context, id string, e domain.Enrichment) error {
	if e.IsEmpty() {
		return nil
	}

	b := psql.Update("articles").Set("updated_at", sq.Expr("NOW()")).Where(sq.Eq{"id": id})
	if e.Summary != nil {
		b = b.Set("ai_summary", *e.Summary)
	}
	if e.SuggestedCat != nil {
		b = b.Set("ai_category", *e.SuggestedCat).Set("category", *e.SuggestedCat)
	}
	if e.Hashtags != nil {
		b = b.Set("ai_hashtags", pq.StringArray(e.Hashtags))
	}
	if e.KeyPoints != nil {
		b = b.Set("ai_key_points", pq.StringArray(e.KeyPoints))
	}
	if e.ContentWarnings != nil {
		b = b.Set("content_warnings", pq.StringArray(e.ContentWarnings))
	}
	if e.Embedding != nil {
		b = b.Set("embedding", pq.Float64Array(e.Embedding))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build enrichment update: %w", err)
	}
	return s.execOne(ctx, id, query, args...)
}

func (s *ArticleStore) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return s.execOne(ctx, id,
		`UPDATE articles SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
}

// SchedulePublish records a future publish time; the article stays approved
// until PromoteDue picks it up.
func (s *ArticleStore) SchedulePublish(ctx context.Context, id string, at time.Time) error {
	return s.execOne(ctx, id,
		`UPDATE articles SET publish_time = $2, updated_at = NOW() WHERE id = $1`, id, at)
}

func (s *ArticleStore) MarkPublished(ctx context.Context, id string, at time.Time) error {
	return s.execOne(ctx, id, `
		UPDATE articles
		SET status = 'published', published_at = $2, publish_time = $2, updated_at = NOW()
		WHERE id = $1`, id, at)
}

// PromoteDue publishes every approved article whose publish time has passed.
func (s *ArticleStore) PromoteDue(ctx context.Context, now time.Time) ([]string, error) {
	query, args, err := psql.Update("articles").
		Set("status", domain.StatusPublished).
		Set("published_at", now).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": domain.StatusApproved}).
		Where(sq.LtOrEq{"publish_time": now}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build promote query: %w", err)
	}

	var ids []string
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("promote due articles: %w", err)
	}
	return ids, nil
}

func (s *ArticleStore) execOne(ctx context.Context, id, query string, args ...interface{}) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update article %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update article %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func nullableStrings(v []string) interface{} {
	if v == nil {
		return nil
	}
	return pq.StringArray(v)
}

func nullableFloats(v []float64) interface{} {
	if v == nil {
		return nil
	}
	return pq.Float64Array(v)
}
