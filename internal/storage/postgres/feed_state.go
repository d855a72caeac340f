package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_pipeline/internal/domain"
)

// FeedStateStore remembers per-feed ingestion progress.
type FeedStateStore struct {
	db *sqlx.DB
}

func NewFeedStateStore(db *sqlx.DB) *FeedStateStore {
	return &FeedStateStore{db: db}
}

// Get returns an empty state for a feed that was never fetched.
func (s *FeedStateStore) Get(ctx context.Context, feedURL string) (*domain.FeedState, error) {
	var state domain.FeedState
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, `
		SELECT feed_url, last_fetched_at, last_entry_url, total_created
		FROM feed_state
		WHERE feed_url = $1`, feedURL)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.FeedState{FeedURL: feedURL}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get feed state: %w", err)
	}
	return &state, nil
}

func (s *FeedStateStore) Update(ctx context.Context, state *domain.FeedState) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO feed_state (feed_url, last_fetched_at, last_entry_url, total_created)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (feed_url) DO UPDATE SET
			last_fetched_at = EXCLUDED.last_fetched_at,
			last_entry_url = COALESCE(EXCLUDED.last_entry_url, feed_state.last_entry_url),
			total_created = EXCLUDED.total_created`,
		state.FeedURL,
		state.LastFetchedAt,
		state.LastEntryURL,
		state.TotalCreated,
	)
	if err != nil {
		return fmt.Errorf("update feed state: %w", err)
	}
	return nil
}
