package postgres

import (
	"context"
	"fmt"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
)

const (
	assignmentStatsQuery = `
		SELECT u.id AS user_id, u.name AS username, COUNT(r.user_id) AS assignment_count
		FROM users u
		LEFT JOIN pr_reviewers r ON r.user_id = u.id
		GROUP BY u.id, u.name
	`
	orderDesc = ` ORDER BY assignment_count DESC, u.name ASC, u.id ASC`
	orderAsc  = ` ORDER BY assignment_count ASC, u.name ASC, u.id ASC`
)

type userStatsRow struct {
	UserID          string `db:"user_id"`
	Username        string `db:"username"`
	AssignmentCount int    `db:"assignment_count"`
}

type pullRequestStatsRow struct {
	Total  int `db:"total"`
	Open   int `db:"open_count"`
	Merged int `db:"merged_count"`
}

func (s *Storage) PullRequestStats(ctx context.Context) (domains.PullRequestStats, error) {
	const op = "repository.postgres.PullRequestStats"

	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'OPEN') AS open_count,
		       COUNT(*) FILTER (WHERE status = 'MERGED') AS merged_count
		FROM pull_requests
	`

	var row pullRequestStatsRow
	if err := s.conn(ctx).GetContext(ctx, &row, query); err != nil {
		return domains.PullRequestStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return domains.PullRequestStats{Total: row.Total, Open: row.Open, Merged: row.Merged}, nil
}

func (s *Storage) AssignmentStats(ctx context.Context, order domains.SortOrder) ([]domains.UserStats, error) {
	const op = "repository.postgres.AssignmentStats"

	query := assignmentStatsQuery + orderDesc
	if order == domains.SortAsc {
		query = assignmentStatsQuery + orderAsc
	}

	var rows []userStatsRow
	if err := s.conn(ctx).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := make([]domains.UserStats, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, domains.UserStats{
			UserID:          r.UserID,
			Username:        r.Username,
			AssignmentCount: r.AssignmentCount,
		})
	}

	return stats, nil
}
