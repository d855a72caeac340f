package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_pipeline/internal/domain"
)

type AgentLogStore struct {
	db *sqlx.DB
}

func NewAgentLogStore(db *sqlx.DB) *AgentLogStore {
	return &AgentLogStore{db: db}
}

func (s *AgentLogStore) Insert(ctx context.Context, e *domain.AgentLog) error {
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO agent_logs (
			article_id, agent_name, action, model_used, duration_ms,
			tokens_used, success, output_summary, error_message
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		e.ArticleID, e.AgentName, e.Action, e.Model, e.DurationMS,
		e.TokensUsed, e.Success, e.OutputDigest, e.ErrorMessage,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert agent log: %w", err)
	}
	return nil
}

// ListByArticle returns the invocations recorded for one article, oldest first.
func (s *AgentLogStore) ListByArticle(ctx context.Context, articleID string) ([]domain.AgentLog, error) {
	var logs []domain.AgentLog
	err := s.db.SelectContext(ctx, &logs, `
		SELECT article_id, agent_name, action, model_used, duration_ms, tokens_used,
			success, output_summary, error_message, created_at
		FROM agent_logs
		WHERE article_id = $1
		ORDER BY id`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list agent logs: %w", err)
	}
	return logs, nil
}
