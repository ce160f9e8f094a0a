package memory

import (
	"context"
	"sync"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
)

type txKey struct{}

// Storage keeps the directory and pull requests in process memory.
// Do holds the write lock for the whole transaction. Every write method
// is all-or-nothing, so nothing has to be rolled back.
type Storage struct {
	mu      sync.RWMutex
	teams   map[string][]string
	users   map[string]domains.User
	prs     map[string]*domains.PullRequest
	prOrder []string
}

func New() *Storage {
	return &Storage{
		teams: make(map[string][]string),
		users: make(map[string]domains.User),
		prs:   make(map[string]*domains.PullRequest),
	}
}

// Do runs fn under the store's write lock. Nested calls reuse the outer lock.
func (s *Storage) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Storage)
	return owner == s
}

func (s *Storage) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Storage) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
