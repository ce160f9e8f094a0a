package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
)

func (s *Storage) GetUser(ctx context.Context, userID string) (*domains.User, error) {
	const op = "repository.postgres.GetUser"

	var row userRow
	err := s.conn(ctx).GetContext(ctx, &row, `SELECT id, name, team_name, is_active FROM users WHERE id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row.toDomain(), nil
}

func (s *Storage) SetUserActive(ctx context.Context, userID string, isActive bool) (*domains.User, error) {
	const op = "repository.postgres.SetUserActive"

	query := `
		UPDATE users
		SET is_active = $1
		WHERE id = $2
		RETURNING id, name, team_name, is_active
	`

	var row userRow
	if err := s.conn(ctx).GetContext(ctx, &row, query, isActive, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row.toDomain(), nil
}

func (s *Storage) ListPullRequestsByReviewer(ctx context.Context, userID string) ([]*domains.PullRequest, error) {
	const op = "repository.postgres.ListPullRequestsByReviewer"

	query := `
		SELECT pr.id, pr.name, pr.author_id, pr.status, pr.created_at, pr.merged_at
		FROM pull_requests pr
		JOIN pr_reviewers r ON r.pull_request_id = pr.id
		WHERE r.user_id = $1
		ORDER BY pr.created_at, pr.id
	`

	var rows []pullRequestRow
	if err := s.conn(ctx).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	prs := make([]*domains.PullRequest, 0, len(rows))
	for _, r := range rows {
		prs = append(prs, r.toDomain(nil))
	}

	return prs, nil
}
