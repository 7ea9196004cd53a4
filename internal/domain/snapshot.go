package domain

// Snapshot is the in-memory entity store for one run: the resolved
// project plus its fetched issues and members. It is populated once and
// read-only afterwards; selections and assignments are derived views.
type Snapshot struct {
	Project Project
	Issues  []Issue
	Members []Member
}

// NewSnapshot creates a snapshot for the given project.
func NewSnapshot(project Project, issues []Issue, members []Member) *Snapshot {
	return &Snapshot{
		Project: project,
		Issues:  issues,
		Members: members,
	}
}

// Milestones returns the distinct milestones referenced by any issue,
// deduplicated by id in first-seen order. Issues without a milestone
// contribute nothing.
func (s *Snapshot) Milestones() []Milestone {
	var milestones []Milestone
	seen := make(map[int]bool)
	for _, issue := range s.Issues {
		if issue.Milestone == nil || seen[issue.Milestone.ID] {
			continue
		}
		seen[issue.Milestone.ID] = true
		milestones = append(milestones, *issue.Milestone)
	}
	return milestones
}

// HasIssueID reports whether an issue with the given global id exists.
func (s *Snapshot) HasIssueID(id int) bool {
	for _, issue := range s.Issues {
		if issue.ID == id {
			return true
		}
	}
	return false
}
