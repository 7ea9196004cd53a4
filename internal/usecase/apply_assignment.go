package usecase

import (
	"context"

	"github.com/remip/gitlab-roulette/internal/domain"
)

// ApplyAssignment is the use case for writing a computed assignment
// back to the issue tracker.
type ApplyAssignment struct {
	tracker domain.IssueTracker
}

// NewApplyAssignment creates a new ApplyAssignment use case.
func NewApplyAssignment(tracker domain.IssueTracker) *ApplyAssignment {
	return &ApplyAssignment{tracker: tracker}
}

// Execute applies the assignment in the order it was previewed, one
// write call per pair. The first failure stops execution immediately:
// no rollback, no retry. Pairs applied before the failure remain
// applied on the external service and are reported in the returned
// AssignError.
func (uc *ApplyAssignment) Execute(ctx context.Context, projectID int, assignment domain.Assignment) error {
	for i, pair := range assignment {
		err := uc.tracker.AssignIssue(ctx, projectID, pair.Issue.IID, pair.Member.ID)
		if err != nil {
			return &domain.AssignError{
				Issue:   pair.Issue,
				Applied: assignment[:i],
				Err:     err,
			}
		}
	}
	return nil
}
