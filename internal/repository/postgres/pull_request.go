package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
)

type pullRequestRow struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	AuthorID  string       `db:"author_id"`
	Status    string       `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	MergedAt  sql.NullTime `db:"merged_at"`
}

func (r pullRequestRow) toDomain(reviewers []string) *domains.PullRequest {
	pr := &domains.PullRequest{
		ID:        r.ID,
		Name:      r.Name,
		AuthorID:  r.AuthorID,
		Status:    domains.Status(r.Status),
		Reviewers: reviewers,
		CreatedAt: r.CreatedAt,
	}
	if r.MergedAt.Valid {
		mergedAt := r.MergedAt.Time
		pr.MergedAt = &mergedAt
	}
	return pr
}

func (s *Storage) CreatePullRequest(ctx context.Context, pr *domains.PullRequest) error {
	const op = "repository.postgres.CreatePullRequest"

	conn := s.conn(ctx)

	query := `
		INSERT INTO pull_requests (id, name, author_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := conn.ExecContext(ctx, query, pr.ID, pr.Name, pr.AuthorID, string(pr.Status), pr.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrPRExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	for slot, reviewerID := range pr.Reviewers {
		_, err := conn.ExecContext(ctx,
			`INSERT INTO pr_reviewers (pull_request_id, slot, user_id) VALUES ($1, $2, $3)`,
			pr.ID, slot, reviewerID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) PullRequestExists(ctx context.Context, prID string) (bool, error) {
	const op = "repository.postgres.PullRequestExists"

	var exists bool
	if err := s.conn(ctx).GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM pull_requests WHERE id = $1)`, prID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) GetPullRequest(ctx context.Context, prID string) (*domains.PullRequest, error) {
	return s.getPullRequest(ctx, prID, false)
}

// GetPullRequestForUpdate locks the PR row until the surrounding transaction ends.
func (s *Storage) GetPullRequestForUpdate(ctx context.Context, prID string) (*domains.PullRequest, error) {
	return s.getPullRequest(ctx, prID, true)
}

func (s *Storage) getPullRequest(ctx context.Context, prID string, forUpdate bool) (*domains.PullRequest, error) {
	const op = "repository.postgres.GetPullRequest"

	query := `
		SELECT id, name, author_id, status, created_at, merged_at
		FROM pull_requests
		WHERE id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	conn := s.conn(ctx)

	var row pullRequestRow
	if err := conn.GetContext(ctx, &row, query, prID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrPRNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviewers := make([]string, 0, 2)
	err := conn.SelectContext(ctx, &reviewers,
		`SELECT user_id FROM pr_reviewers WHERE pull_request_id = $1 ORDER BY slot`, prID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row.toDomain(reviewers), nil
}

// MergePullRequest keeps the first merged_at when called again.
func (s *Storage) MergePullRequest(ctx context.Context, prID string, mergedAt time.Time) error {
	const op = "repository.postgres.MergePullRequest"

	query := `
		UPDATE pull_requests
		SET status = 'MERGED',
		    merged_at = COALESCE(merged_at, $2)
		WHERE id = $1
	`
	res, err := s.conn(ctx).ExecContext(ctx, query, prID, mergedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return repository.ErrPRNotFound
	}

	return nil
}

func (s *Storage) ReplaceReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error {
	const op = "repository.postgres.ReplaceReviewer"

	query := `
		UPDATE pr_reviewers
		SET user_id = $3
		WHERE pull_request_id = $1 AND user_id = $2
	`
	res, err := s.conn(ctx).ExecContext(ctx, query, prID, oldReviewerID, newReviewerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return repository.ErrReviewerNotAssigned
	}

	return nil
}
