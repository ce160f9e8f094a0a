package pull_request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Deymos01/pr-reviewer-service/internal/assignment"
	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Repository
type Repository interface {
	CreatePullRequest(ctx context.Context, pr *domains.PullRequest) error
	PullRequestExists(ctx context.Context, prID string) (bool, error)
	GetPullRequestForUpdate(ctx context.Context, prID string) (*domains.PullRequest, error)
	MergePullRequest(ctx context.Context, prID string, mergedAt time.Time) error
	ReplaceReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=DirectoryRepository
type DirectoryRepository interface {
	TeamOfUser(ctx context.Context, userID string) (*domains.Team, error)
}

type Service struct {
	log       *slog.Logger
	trm       usecase.TxManager
	repo      Repository
	directory DirectoryRepository
	engine    *assignment.Engine
	now       func() time.Time
}

func New(
	log *slog.Logger,
	trm usecase.TxManager,
	repo Repository,
	directory DirectoryRepository,
	engine *assignment.Engine,
) *Service {
	return &Service{
		log:       log,
		trm:       trm,
		repo:      repo,
		directory: directory,
		engine:    engine,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// CreatePullRequest stores an OPEN pull request with up to two reviewers from the author's team.
func (s *Service) CreatePullRequest(ctx context.Context, prID, prName, authorID string) (*domains.PullRequest, error) {
	const op = "usecase.pull_request.CreatePullRequest"

	log := s.log.With(slog.String("op", op), slog.String("pr_id", prID))

	switch {
	case prID == "":
		return nil, fmt.Errorf("%w: pull_request_id is required", usecase.ErrValidation)
	case authorID == "":
		return nil, fmt.Errorf("%w: author_id is required", usecase.ErrValidation)
	case len(prName) < domains.MinPullRequestNameBytes:
		return nil, fmt.Errorf("%w: pull_request_name must be at least %d bytes", usecase.ErrValidation, domains.MinPullRequestNameBytes)
	}

	var created *domains.PullRequest
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		team, err := s.directory.TeamOfUser(ctx, authorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return usecase.ErrUserNotFound
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		exists, err := s.repo.PullRequestExists(ctx, prID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if exists {
			return usecase.ErrPRAlreadyExists
		}

		pr := &domains.PullRequest{
			ID:        prID,
			Name:      prName,
			AuthorID:  authorID,
			Status:    domains.StatusOpen,
			Reviewers: s.engine.Reviewers(team.Members, authorID),
			CreatedAt: s.now(),
		}

		if err := s.repo.CreatePullRequest(ctx, pr); err != nil {
			if errors.Is(err, repository.ErrPRExists) {
				return usecase.ErrPRAlreadyExists
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		created = pr
		return nil
	})
	if err != nil {
		logFailure(log, "failed to create pull request", err)
		return nil, err
	}

	log.Info("pull request created and reviewers assigned", slog.Any("reviewers", created.Reviewers))
	return created, nil
}

// MergePullRequest is idempotent: merging a merged PR returns it unchanged.
func (s *Service) MergePullRequest(ctx context.Context, prID string) (*domains.PullRequest, error) {
	const op = "usecase.pull_request.MergePullRequest"

	log := s.log.With(slog.String("op", op), slog.String("pr_id", prID))

	if prID == "" {
		return nil, fmt.Errorf("%w: pull_request_id is required", usecase.ErrValidation)
	}

	var merged *domains.PullRequest
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		pr, err := s.repo.GetPullRequestForUpdate(ctx, prID)
		if err != nil {
			if errors.Is(err, repository.ErrPRNotFound) {
				return usecase.ErrPullRequestNotFound
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if pr.IsMerged() {
			merged = pr
			return nil
		}

		pr.Merge(s.now())
		if err := s.repo.MergePullRequest(ctx, pr.ID, *pr.MergedAt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		merged = pr
		return nil
	})
	if err != nil {
		logFailure(log, "failed to merge pull request", err)
		return nil, err
	}

	log.Info("pull request merged")
	return merged, nil
}

// ReassignReviewer replaces oldReviewerID with an active member of the author's team,
// keeping the reviewer slot. It returns the updated PR and the new reviewer id.
func (s *Service) ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*domains.PullRequest, string, error) {
	const op = "usecase.pull_request.ReassignReviewer"

	log := s.log.With(slog.String("op", op), slog.String("pr_id", prID), slog.String("old_reviewer_id", oldReviewerID))

	if prID == "" || oldReviewerID == "" {
		return nil, "", fmt.Errorf("%w: pull_request_id and old_reviewer_id are required", usecase.ErrValidation)
	}

	var (
		updated    *domains.PullRequest
		replacedBy string
	)
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		pr, err := s.repo.GetPullRequestForUpdate(ctx, prID)
		if err != nil {
			if errors.Is(err, repository.ErrPRNotFound) {
				return usecase.ErrPullRequestNotFound
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if pr.IsMerged() {
			return usecase.ErrPRAlreadyMerged
		}
		if !pr.HasReviewer(oldReviewerID) {
			return usecase.ErrUserNotAssigned
		}

		team, err := s.directory.TeamOfUser(ctx, pr.AuthorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return usecase.ErrUserNotFound
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		newReviewerID, err := s.engine.Replacement(team.Members, pr)
		if err != nil {
			if errors.Is(err, assignment.ErrNoCandidate) {
				return usecase.ErrNoAvailableReviewer
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.repo.ReplaceReviewer(ctx, pr.ID, oldReviewerID, newReviewerID); err != nil {
			if errors.Is(err, repository.ErrReviewerNotAssigned) {
				return usecase.ErrUserNotAssigned
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		pr.ReplaceReviewer(oldReviewerID, newReviewerID)

		updated, replacedBy = pr, newReviewerID
		return nil
	})
	if err != nil {
		logFailure(log, "failed to reassign reviewer", err)
		return nil, "", err
	}

	log.Info("reviewer reassigned", slog.String("replaced_by", replacedBy))
	return updated, replacedBy, nil
}

// logFailure keeps expected business outcomes out of the error log.
func logFailure(log *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrPullRequestNotFound),
		errors.Is(err, usecase.ErrPRAlreadyExists),
		errors.Is(err, usecase.ErrPRAlreadyMerged),
		errors.Is(err, usecase.ErrUserNotAssigned),
		errors.Is(err, usecase.ErrNoAvailableReviewer):
		log.Warn(msg, sl.Err(err))
	default:
		log.Error(msg, sl.Err(err))
	}
}
