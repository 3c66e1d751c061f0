package report

import "context"

// Repo defines persistence operations for report submissions.
type Repo interface {
	Create(ctx context.Context, sub Submission) error
	ListRecent(ctx context.Context, limit int) ([]Submission, error)
}
