// Package domain contains core business entities and interfaces.
package domain

import "fmt"

// Project represents a GitLab project the token has access to.
// Fields are ordered to minimize memory padding.
type Project struct {
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
	ID                int    `json:"id"`
}

// Label returns the display label used in project selection prompts.
func (p Project) Label() string {
	return p.PathWithNamespace
}

// Issue represents a GitLab issue. Immutable once fetched; Assignees is
// informational only and never mutated locally.
type Issue struct {
	Milestone   *Milestone `json:"milestone"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	Type        string     `json:"type"`
	Assignees   []Member   `json:"assignees"`
	ID          int        `json:"id"`
	IID         int        `json:"iid"`
	ProjectID   int        `json:"project_id"`
}

// Label returns the display label used in issue prompts and previews.
func (i Issue) Label() string {
	return fmt.Sprintf("#%d: %s", i.IID, i.Title)
}

// Milestone represents a GitLab milestone.
type Milestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	ID          int    `json:"id"`
	ProjectID   int    `json:"project_id"`
}

// Equal reports whether two milestones are the same milestone.
// Equality is by id only; two milestones can share title and
// description but still be distinct.
func (m Milestone) Equal(other Milestone) bool {
	return m.ID == other.ID
}

// Label returns the display label used in milestone prompts.
func (m Milestone) Label() string {
	return fmt.Sprintf("%%%d: %s", m.ID, m.Title)
}

// Member represents a project member eligible for assignment.
type Member struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	ID       int    `json:"id"`
}

// Label returns the display label used in member prompts and previews.
func (m Member) Label() string {
	return fmt.Sprintf("%s (%s)", m.Name, m.Username)
}

// Labels maps a slice of labelable values to their display labels.
func Labels[T interface{ Label() string }](items []T) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label()
	}
	return labels
}
