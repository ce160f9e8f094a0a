package assignment

import (
	"errors"
	"slices"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
)

const MaxReviewers = 2

var ErrNoCandidate = errors.New("no active replacement candidate in team")

type Engine struct {
	picker Picker
}

func New(picker Picker) *Engine {
	if picker == nil {
		picker = NewRandomPicker(nil)
	}
	return &Engine{picker: picker}
}

// Reviewers selects up to MaxReviewers active members other than the author.
func (e *Engine) Reviewers(members []*domains.User, authorID string) []string {
	pool := activePool(members, func(id string) bool { return id == authorID })
	return e.pick(pool, min(MaxReviewers, len(pool)))
}

// Replacement selects one active member who is neither the author nor a current reviewer of pr.
func (e *Engine) Replacement(members []*domains.User, pr *domains.PullRequest) (string, error) {
	pool := activePool(members, func(id string) bool {
		return id == pr.AuthorID || slices.Contains(pr.Reviewers, id)
	})
	if len(pool) == 0 {
		return "", ErrNoCandidate
	}

	return e.pick(pool, 1)[0], nil
}

// pick asks the picker for k ids and repairs its answer so that exactly k distinct pool members come back.
func (e *Engine) pick(pool []string, k int) []string {
	if k == 0 {
		return []string{}
	}

	chosen := make([]string, 0, k)
	for _, id := range e.picker.Pick(slices.Clone(pool), k) {
		if len(chosen) == k {
			break
		}
		if slices.Contains(pool, id) && !slices.Contains(chosen, id) {
			chosen = append(chosen, id)
		}
	}
	for _, id := range pool {
		if len(chosen) == k {
			break
		}
		if !slices.Contains(chosen, id) {
			chosen = append(chosen, id)
		}
	}

	return chosen
}

func activePool(members []*domains.User, excluded func(id string) bool) []string {
	pool := make([]string, 0, len(members))
	for _, m := range members {
		if m == nil || !m.IsActive || excluded(m.ID) || slices.Contains(pool, m.ID) {
			continue
		}
		pool = append(pool, m.ID)
	}
	return pool
}
