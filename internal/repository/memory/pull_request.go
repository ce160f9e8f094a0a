package memory

import (
	"context"
	"time"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
)

func (s *Storage) CreatePullRequest(ctx context.Context, pr *domains.PullRequest) error {
	defer s.lock(ctx)()

	if _, ok := s.prs[pr.ID]; ok {
		return repository.ErrPRExists
	}
	s.prs[pr.ID] = pr.Clone()
	s.prOrder = append(s.prOrder, pr.ID)

	return nil
}

func (s *Storage) PullRequestExists(ctx context.Context, prID string) (bool, error) {
	defer s.rlock(ctx)()

	_, ok := s.prs[prID]
	return ok, nil
}

func (s *Storage) GetPullRequest(ctx context.Context, prID string) (*domains.PullRequest, error) {
	defer s.rlock(ctx)()

	pr, ok := s.prs[prID]
	if !ok {
		return nil, repository.ErrPRNotFound
	}

	return pr.Clone(), nil
}

// GetPullRequestForUpdate relies on Do for row locking, the whole store is locked there.
func (s *Storage) GetPullRequestForUpdate(ctx context.Context, prID string) (*domains.PullRequest, error) {
	return s.GetPullRequest(ctx, prID)
}

func (s *Storage) MergePullRequest(ctx context.Context, prID string, mergedAt time.Time) error {
	defer s.lock(ctx)()

	pr, ok := s.prs[prID]
	if !ok {
		return repository.ErrPRNotFound
	}
	pr.Merge(mergedAt)

	return nil
}

func (s *Storage) ReplaceReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error {
	defer s.lock(ctx)()

	pr, ok := s.prs[prID]
	if !ok {
		return repository.ErrPRNotFound
	}
	if !pr.ReplaceReviewer(oldReviewerID, newReviewerID) {
		return repository.ErrReviewerNotAssigned
	}

	return nil
}
