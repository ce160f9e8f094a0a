package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Repository
type Repository interface {
	GetUser(ctx context.Context, userID string) (*domains.User, error)
	SetUserActive(ctx context.Context, userID string, isActive bool) (*domains.User, error)
	ListPullRequestsByReviewer(ctx context.Context, userID string) ([]*domains.PullRequest, error)
}

type Service struct {
	log  *slog.Logger
	repo Repository
}

func New(log *slog.Logger, repo Repository) *Service {
	return &Service{repo: repo, log: log}
}

// SetIsActive only affects future assignments. Existing PRs keep their reviewers.
func (s *Service) SetIsActive(ctx context.Context, userID string, isActive bool) (*domains.User, error) {
	const op = "usecase.user.SetIsActive"

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", usecase.ErrValidation)
	}

	user, err := s.repo.SetUserActive(ctx, userID, isActive)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.Warn("user not found", slog.String("user_id", userID))
			return nil, usecase.ErrUserNotFound
		}

		s.log.Error("failed to set user is_active", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user is_active successfully updated", slog.String("user_id", userID), slog.Bool("is_active", isActive))
	return user, nil
}

func (s *Service) GetUsersReview(ctx context.Context, userID string) ([]*domains.PullRequest, error) {
	const op = "usecase.user.GetUsersReview"

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.Warn("user not found", slog.String("user_id", userID))
			return nil, usecase.ErrUserNotFound
		}

		s.log.Error("failed to get user", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := s.repo.ListPullRequestsByReviewer(ctx, userID)
	if err != nil {
		s.log.Error("failed to get user reviews", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("user reviews successfully retrieved", slog.String("user_id", userID), slog.Int("reviews_count", len(reviews)))
	return reviews, nil
}
