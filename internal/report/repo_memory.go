package report

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	subs []Submission
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a submission.
func (r *MemoryRepo) Create(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, sub)
	return nil
}

// ListRecent returns the newest submissions first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Submission, 0, limit)
	for i := len(r.subs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.subs[i])
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
