package domain

import (
	"errors"
	"fmt"
)

// ErrConfig classifies configuration failures; they are reported before
// any network call and exit with a distinct status.
var ErrConfig = errors.New("configuration error")

// Domain errors.
var (
	ErrMissingURL   = fmt.Errorf("%w: add a url to the config file or use the --url argument", ErrConfig)
	ErrMissingToken = fmt.Errorf("%w: add a token to the config file or use the --token argument", ErrConfig)
	ErrInvalidURL   = fmt.Errorf("%w: invalid url", ErrConfig)
	ErrNoProjects   = errors.New("no projects accessible with this token")
	ErrNoMembers    = errors.New("no members selected")
	ErrAborted      = errors.New("aborted")
	ErrTransport    = errors.New("request failed")
	ErrDecode       = errors.New("unexpected response body")
)

// AssignError reports a failed write call mid-execution. Assignments
// applied before the failure remain applied on the external service.
type AssignError struct {
	Err     error
	Issue   Issue
	Applied Assignment
}

// Error implements the error interface.
func (e *AssignError) Error() string {
	return fmt.Sprintf("failed to assign issue %s (%d issue(s) already assigned): %v",
		e.Issue.Label(), len(e.Applied), e.Err)
}

// Unwrap returns the underlying cause.
func (e *AssignError) Unwrap() error {
	return e.Err
}
