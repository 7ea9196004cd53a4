// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"github.com/remip/gitlab-roulette/internal/domain"
)

// SelectIssues is the use case for reducing the fetched issue set to the
// issues to distribute, using one of the three selection strategies.
type SelectIssues struct {
	prompter domain.Prompter
}

// NewSelectIssues creates a new SelectIssues use case.
func NewSelectIssues(prompter domain.Prompter) *SelectIssues {
	return &SelectIssues{prompter: prompter}
}

// Execute prompts for a strategy and its parameters and returns the
// selected issues in fetch order. An empty selection is legal.
func (uc *SelectIssues) Execute(snap *domain.Snapshot) ([]domain.Issue, error) {
	strategies := domain.AllStrategies()
	idx, err := uc.prompter.SelectOne(
		"Select the way you want to select the issues:",
		domain.Labels(strategies),
	)
	if err != nil {
		return nil, err
	}

	switch strategies[idx] {
	case domain.StrategyMilestone:
		return uc.byMilestone(snap)
	case domain.StrategyRange:
		return uc.byRange(snap)
	case domain.StrategyManual:
		return uc.manual(snap)
	}
	return nil, fmt.Errorf("unknown strategy %q", strategies[idx])
}

func (uc *SelectIssues) byMilestone(snap *domain.Snapshot) ([]domain.Issue, error) {
	milestones := snap.Milestones()
	picks, err := uc.prompter.SelectMany(
		"Select all the milestones that you want to use:",
		domain.Labels(milestones),
	)
	if err != nil {
		return nil, err
	}

	picked := make([]domain.Milestone, len(picks))
	for i, p := range picks {
		picked[i] = milestones[p]
	}
	return filterByMilestones(snap.Issues, picked), nil
}

func (uc *SelectIssues) byRange(snap *domain.Snapshot) ([]domain.Issue, error) {
	validate := func(id int) error {
		if !snap.HasIssueID(id) {
			return fmt.Errorf("issue cannot be found")
		}
		return nil
	}

	start, err := uc.prompter.InputNumber("Enter the ID of the first issue:", validate)
	if err != nil {
		return nil, err
	}
	end, err := uc.prompter.InputNumber("Enter the ID of the last issue:", validate)
	if err != nil {
		return nil, err
	}
	return filterByRange(snap.Issues, start, end), nil
}

func (uc *SelectIssues) manual(snap *domain.Snapshot) ([]domain.Issue, error) {
	picks, err := uc.prompter.SelectMany(
		"Select all the issues that you want to use:",
		domain.Labels(snap.Issues),
	)
	if err != nil {
		return nil, err
	}

	selected := make([]domain.Issue, len(picks))
	for i, p := range picks {
		selected[i] = snap.Issues[p]
	}
	return selected, nil
}

// filterByMilestones returns the issues whose milestone is one of the
// picked milestones, in input order. Issues without a milestone are
// never included.
func filterByMilestones(issues []domain.Issue, picked []domain.Milestone) []domain.Issue {
	var selected []domain.Issue
	for _, issue := range issues {
		if issue.Milestone == nil {
			continue
		}
		for _, m := range picked {
			if issue.Milestone.Equal(m) {
				selected = append(selected, issue)
				break
			}
		}
	}
	return selected
}

// filterByRange returns the issues whose global id lies in
// [start, end], in input order. A reversed range selects nothing; that
// is a defined outcome, not an error.
func filterByRange(issues []domain.Issue, start, end int) []domain.Issue {
	var selected []domain.Issue
	for _, issue := range issues {
		if issue.ID >= start && issue.ID <= end {
			selected = append(selected, issue)
		}
	}
	return selected
}
