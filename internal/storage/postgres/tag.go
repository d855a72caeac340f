package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// ReplaceForArticle makes tags the exact tag set of the article. Blank and
// repeated tags are dropped.
func (s *TagStore) ReplaceForArticle(ctx context.Context, articleID string, tags []string) error {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx, `DELETE FROM article_tags WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("clear tags of %s: %w", articleID, err)
	}

	insert := psql.Insert("article_tags").Columns("article_id", "tag").Suffix("ON CONFLICT DO NOTHING")
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		insert = insert.Values(articleID, t)
	}
	if len(seen) == 0 {
		return nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build tag insert: %w", err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("link tags to %s: %w", articleID, err)
	}
	return nil
}

func (s *TagStore) GetByArticleID(ctx context.Context, articleID string) ([]string, error) {
	var tags []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags,
		`SELECT tag FROM article_tags WHERE article_id = $1 ORDER BY tag`, articleID)
	if err != nil {
		return nil, fmt.Errorf("get tags of %s: %w", articleID, err)
	}
	return tags, nil
}
