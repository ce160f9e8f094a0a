package statistics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Repository
type Repository interface {
	PullRequestStats(ctx context.Context) (domains.PullRequestStats, error)
	AssignmentStats(ctx context.Context, order domains.SortOrder) ([]domains.UserStats, error)
}

type Service struct {
	log  *slog.Logger
	trm  usecase.TxManager
	repo Repository
}

// New expects trm to give both reads of GetStatistics one consistent view.
func New(log *slog.Logger, trm usecase.TxManager, repo Repository) *Service {
	return &Service{log: log, trm: trm, repo: repo}
}

// GetStatistics returns PR counts by status and per-user assignment counts
// ordered by count, then username.
func (s *Service) GetStatistics(ctx context.Context, order domains.SortOrder) (*domains.Statistics, error) {
	const op = "usecase.statistics.GetStatistics"

	var stats domains.Statistics
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		prs, err := s.repo.PullRequestStats(ctx)
		if err != nil {
			return fmt.Errorf("%s: pull request stats: %w", op, err)
		}

		users, err := s.repo.AssignmentStats(ctx, order)
		if err != nil {
			return fmt.Errorf("%s: assignment stats: %w", op, err)
		}

		stats = domains.Statistics{PullRequests: prs, Users: users}
		return nil
	})
	if err != nil {
		s.log.Error("failed to get statistics", slog.String("op", op), sl.Err(err))
		return nil, err
	}

	return &stats, nil
}
