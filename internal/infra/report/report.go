// Package report writes an applied assignment to a YAML file.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/remip/gitlab-roulette/internal/domain"
	"gopkg.in/yaml.v3"
)

// Report is the YAML document written by --report.
type Report struct {
	Project     string  `yaml:"project"`
	GeneratedAt string  `yaml:"generated_at"`
	Assignments []Entry `yaml:"assignments"`
}

// Entry is one issue-to-member line of the report.
type Entry struct {
	Issue    string `yaml:"issue"`
	IssueIID int    `yaml:"issue_iid"`
	Member   string `yaml:"member"`
	Username string `yaml:"username"`
}

// Write renders the assignment as YAML and writes it to path.
func Write(path string, project domain.Project, assignment domain.Assignment, now time.Time) error {
	r := Report{
		Project:     project.PathWithNamespace,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Assignments: make([]Entry, len(assignment)),
	}
	for i, pair := range assignment {
		r.Assignments[i] = Entry{
			Issue:    pair.Issue.Title,
			IssueIID: pair.Issue.IID,
			Member:   pair.Member.Name,
			Username: pair.Member.Username,
		}
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
