// Package gitlab provides a minimal client for the GitLab v4 REST API.
package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/remip/gitlab-roulette/internal/domain"
)

// Ensure Client implements domain.IssueTracker.
var _ domain.IssueTracker = (*Client)(nil)

// Client talks to one GitLab instance. All requests authenticate with
// the private token; no retries, no pagination.
type Client struct {
	httpc   *http.Client
	baseURL string // Instance origin, e.g. https://gitlab.example.com
	token   string
}

// New creates a Client for the given instance origin and token.
func New(baseURL, token string) *Client {
	return &Client{
		httpc:   &http.Client{},
		baseURL: baseURL,
		token:   token,
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client.
// This is useful for testing.
func NewWithHTTPClient(baseURL, token string, httpc *http.Client) *Client {
	return &Client{
		httpc:   httpc,
		baseURL: baseURL,
		token:   token,
	}
}

// Projects lists the projects the token is a member of.
func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := c.getJSON(ctx, "/api/v4/projects?membership=true&simple=true", &projects)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Issues lists the issues of a project.
func (c *Client) Issues(ctx context.Context, projectID int) ([]domain.Issue, error) {
	var issues []domain.Issue
	err := c.getJSON(ctx, fmt.Sprintf("/api/v4/projects/%d/issues", projectID), &issues)
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// Members lists the members of a project.
func (c *Client) Members(ctx context.Context, projectID int) ([]domain.Member, error) {
	var members []domain.Member
	err := c.getJSON(ctx, fmt.Sprintf("/api/v4/projects/%d/members", projectID), &members)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// AssignIssue sets the assignee of one issue, replacing any current
// assignees.
func (c *Client) AssignIssue(ctx context.Context, projectID, issueIID, memberID int) error {
	path := fmt.Sprintf("/api/v4/projects/%d/issues/%d?assignee_ids=%d",
		projectID, issueIID, memberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}

// getJSON performs an authenticated GET and decodes the JSON response
// into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return nil
}
