// Package repository persists assessment results in Postgres.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankitpatil/disha/internal/domain"
)

// ResultRepository stores and queries assessment results.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a repository backed by the given pool.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Save inserts a completed assessment result.
func (r *ResultRepository) Save(ctx context.Context, result *domain.AssessmentResult) error {
	const op = "repository.results.save"

	_, err := r.pool.Exec(ctx,
		`INSERT INTO assessment_results (id, user_id, quiz_id, bucket, answers, result, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.ID, result.UserID, result.QuizID, result.Bucket,
		result.Answers, result.Result, result.CompletedAt,
	)
	if err != nil {
		return domain.Internal(err, op, "failed to save assessment result")
	}
	return nil
}

// ListByUser returns a user's results, most recent first.
func (r *ResultRepository) ListByUser(ctx context.Context, userID string) ([]domain.AssessmentResult, error) {
	const op = "repository.results.list"

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, quiz_id, bucket, answers, result, completed_at
		 FROM assessment_results
		 WHERE user_id = $1
		 ORDER BY completed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to query assessment results")
	}
	defer rows.Close()

	var results []domain.AssessmentResult
	for rows.Next() {
		var res domain.AssessmentResult
		if err := rows.Scan(&res.ID, &res.UserID, &res.QuizID, &res.Bucket,
			&res.Answers, &res.Result, &res.CompletedAt); err != nil {
			return nil, domain.Internal(err, op, "failed to scan assessment result")
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read assessment results")
	}
	return results, nil
}

// GetByID returns one result owned by the given user.
func (r *ResultRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.AssessmentResult, error) {
	const op = "repository.results.get"

	var res domain.AssessmentResult
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, quiz_id, bucket, answers, result, completed_at
		 FROM assessment_results
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&res.ID, &res.UserID, &res.QuizID, &res.Bucket,
		&res.Answers, &res.Result, &res.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(op, "assessment result", id.String())
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load assessment result")
	}
	return &res, nil
}
