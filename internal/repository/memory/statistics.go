package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
)

func (s *Storage) PullRequestStats(ctx context.Context) (domains.PullRequestStats, error) {
	defer s.rlock(ctx)()

	var stats domains.PullRequestStats
	for _, pr := range s.prs {
		stats.Total++
		if pr.IsMerged() {
			stats.Merged++
		} else {
			stats.Open++
		}
	}

	return stats, nil
}

func (s *Storage) AssignmentStats(ctx context.Context, order domains.SortOrder) ([]domains.UserStats, error) {
	defer s.rlock(ctx)()

	counts := make(map[string]int, len(s.users))
	for _, pr := range s.prs {
		for _, id := range pr.Reviewers {
			counts[id]++
		}
	}

	stats := make([]domains.UserStats, 0, len(s.users))
	for _, u := range s.users {
		stats = append(stats, domains.UserStats{
			UserID:          u.ID,
			Username:        u.Name,
			AssignmentCount: counts[u.ID],
		})
	}

	slices.SortFunc(stats, func(a, b domains.UserStats) int {
		c := cmp.Compare(a.AssignmentCount, b.AssignmentCount)
		if order != domains.SortAsc {
			c = -c
		}
		return cmp.Or(c, cmp.Compare(a.Username, b.Username), cmp.Compare(a.UserID, b.UserID))
	})

	return stats, nil
}
