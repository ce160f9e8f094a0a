package domains

import (
	"slices"
	"time"
)

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusMerged Status = "MERGED"
)

const MinPullRequestNameBytes = 5

type PullRequest struct {
	ID        string
	Name      string
	AuthorID  string
	Status    Status
	Reviewers []string
	CreatedAt time.Time
	MergedAt  *time.Time
}

func (pr *PullRequest) IsMerged() bool {
	return pr.Status == StatusMerged
}

func (pr *PullRequest) HasReviewer(userID string) bool {
	return slices.Contains(pr.Reviewers, userID)
}

// Merge moves the pull request to MERGED. Repeated calls keep the first MergedAt.
func (pr *PullRequest) Merge(at time.Time) {
	if pr.IsMerged() && pr.MergedAt != nil {
		return
	}
	pr.Status = StatusMerged
	pr.MergedAt = &at
}

// ReplaceReviewer swaps oldID for newID in the same slot.
func (pr *PullRequest) ReplaceReviewer(oldID, newID string) bool {
	i := slices.Index(pr.Reviewers, oldID)
	if i < 0 {
		return false
	}
	pr.Reviewers[i] = newID
	return true
}

func (pr *PullRequest) Clone() *PullRequest {
	c := *pr
	c.Reviewers = slices.Clone(pr.Reviewers)
	if pr.MergedAt != nil {
		mergedAt := *pr.MergedAt
		c.MergedAt = &mergedAt
	}
	return &c
}
