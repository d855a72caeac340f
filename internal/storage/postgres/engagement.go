package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_pipeline/internal/domain"
)

type EngagementStore struct {
	db *sqlx.DB
}

func NewEngagementStore(db *sqlx.DB) *EngagementStore {
	return &EngagementStore{db: db}
}

// ViewsByHour counts views of articles in category per UTC hour of day.
// Hours without views are absent from the result.
func (s *EngagementStore) ViewsByHour(ctx context.Context, category domain.Category) (map[int]int64, error) {
	var rows []struct {
		Hour  int   `db:"hour"`
		Views int64 `db:"views"`
	}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, `
		SELECT EXTRACT(HOUR FROM v.viewed_at AT TIME ZONE 'UTC')::int AS hour, COUNT(*) AS views
		FROM article_views v
		JOIN articles a ON a.id = v.article_id
		WHERE a.category = $1
		GROUP BY hour`, category)
	if err != nil {
		return nil, fmt.Errorf("views by hour: %w", err)
	}

	out := make(map[int]int64, len(rows))
	for _, r := range rows {
		out[r.Hour] = r.Views
	}
	return out, nil
}
