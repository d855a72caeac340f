package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_pipeline/internal/domain"
)

type TranslationStore struct {
	db *sqlx.DB
}

func NewTranslationStore(db *sqlx.DB) *TranslationStore {
	return &TranslationStore{db: db}
}

func (s *TranslationStore) Get(ctx context.Context, articleID, language string) (*domain.Translation, error) {
	var t domain.Translation
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &t, `
		SELECT article_id, language, title, content, excerpt, provider, created_at, updated_at
		FROM article_translations
		WHERE article_id = $1 AND language = $2`, articleID, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("translation %s/%s: %w", articleID, language, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get translation %s/%s: %w", articleID, language, err)
	}
	return &t, nil
}

// Upsert stores t keyed on (article_id, language); a concurrent writer for the
// same key overwrites instead of failing.
func (s *TranslationStore) Upsert(ctx context.Context, t *domain.Translation) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO article_translations (article_id, language, title, content, excerpt, provider)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (article_id, language) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			excerpt = EXCLUDED.excerpt,
			provider = EXCLUDED.provider,
			updated_at = NOW()
		RETURNING created_at, updated_at`,
		t.ArticleID, t.Language, t.Title, t.Content, t.Excerpt, t.Provider,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert translation %s/%s: %w", t.ArticleID, t.Language, err)
	}
	return nil
}
