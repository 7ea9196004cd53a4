package domain

import "context"

// IssueTracker is the remote project-management service. Each call may
// fail with a transport or decode error; failures are fatal for the run.
type IssueTracker interface {
	// Projects lists the projects the token is a member of.
	Projects(ctx context.Context) ([]Project, error)

	// Issues lists the issues of a project.
	Issues(ctx context.Context, projectID int) ([]Issue, error)

	// Members lists the members of a project.
	Members(ctx context.Context, projectID int) ([]Member, error)

	// AssignIssue sets the assignee of one issue. This is the only
	// side-effecting write the tool performs.
	AssignIssue(ctx context.Context, projectID, issueIID, memberID int) error
}

// Prompter collects interactive input. A cancelled prompt returns
// ErrAborted, which aborts the whole run.
type Prompter interface {
	// SelectOne presents options and returns the index of the pick.
	SelectOne(label string, options []string) (int, error)

	// SelectMany presents options and returns the indexes of all picks,
	// in ascending option order.
	SelectMany(label string, options []string) ([]int, error)

	// InputNumber reads a number, re-prompting until validate accepts it.
	InputNumber(label string, validate func(int) error) (int, error)

	// Confirm asks a yes/no question; enter picks the default.
	Confirm(label string, defaultYes bool) (bool, error)
}

// Rand is the random source used by the balancer. It is threaded
// explicitly so tests can seed it; *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
