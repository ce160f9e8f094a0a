package memory

import (
	"context"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
)

func (s *Storage) GetUser(ctx context.Context, userID string) (*domains.User, error) {
	defer s.rlock(ctx)()

	u, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (s *Storage) SetUserActive(ctx context.Context, userID string, isActive bool) (*domains.User, error) {
	defer s.lock(ctx)()

	u, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.IsActive = isActive
	s.users[userID] = u

	return &u, nil
}

// ListPullRequestsByReviewer returns PRs of any status listing userID, in creation order.
func (s *Storage) ListPullRequestsByReviewer(ctx context.Context, userID string) ([]*domains.PullRequest, error) {
	defer s.rlock(ctx)()

	prs := make([]*domains.PullRequest, 0)
	for _, id := range s.prOrder {
		if pr := s.prs[id]; pr.HasReviewer(userID) {
			prs = append(prs, pr.Clone())
		}
	}

	return prs, nil
}
