package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/remip/gitlab-roulette/internal/domain"
)

// RunRouletteInput contains the parameters for a roulette run.
type RunRouletteInput struct {
	ProjectURL string // Web URL used to auto-match the project
	DryRun     bool   // Preview the assignment without applying it
}

// RunRouletteOutput contains the result of a roulette run.
type RunRouletteOutput struct {
	Assignment domain.Assignment
	Project    domain.Project
	Applied    bool
}

// RunRoulette is the use case orchestrating the whole flow:
// fetch, select, balance, confirm, execute. Strictly sequential.
type RunRoulette struct {
	tracker  domain.IssueTracker
	prompter domain.Prompter
	rng      domain.Rand
	logger   *slog.Logger
	out      io.Writer
}

// NewRunRoulette creates a new RunRoulette use case.
func NewRunRoulette(tracker domain.IssueTracker, prompter domain.Prompter, rng domain.Rand, logger *slog.Logger, out io.Writer) *RunRoulette {
	return &RunRoulette{
		tracker:  tracker,
		prompter: prompter,
		rng:      rng,
		logger:   logger,
		out:      out,
	}
}

// Execute runs the roulette once. A declined confirmation ends the run
// cleanly with Applied = false.
func (uc *RunRoulette) Execute(ctx context.Context, in RunRouletteInput) (*RunRouletteOutput, error) {
	project, err := uc.resolveProject(ctx, in.ProjectURL)
	if err != nil {
		return nil, err
	}

	issues, err := uc.tracker.Issues(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}
	members, err := uc.tracker.Members(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch members: %w", err)
	}
	snap := domain.NewSnapshot(project, issues, members)
	uc.logger.Info("project loaded", "project", project.PathWithNamespace,
		"issues", len(issues), "members", len(members))

	selected, err := NewSelectIssues(uc.prompter).Execute(snap)
	if err != nil {
		return nil, err
	}

	picks, err := uc.prompter.SelectMany(
		"Select all the members you want to assign the issues to:",
		domain.Labels(snap.Members),
	)
	if err != nil {
		return nil, err
	}
	chosen := make([]domain.Member, len(picks))
	for i, p := range picks {
		chosen[i] = snap.Members[p]
	}

	ok, err := uc.prompter.Confirm("Do you want to continue ?", true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &RunRouletteOutput{Project: project}, nil
	}

	assignment, err := Balance(selected, chosen, uc.rng)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(uc.out)
	for _, pair := range assignment {
		fmt.Fprintln(uc.out, pair.Issue.Label())
		fmt.Fprintf(uc.out, "\t%s\n", pair.Member.Label())
	}

	if in.DryRun {
		return &RunRouletteOutput{Project: project, Assignment: assignment}, nil
	}

	ok, err = uc.prompter.Confirm("Do you want to confirm this assignment ?", false)
	if err != nil {
		return nil, err
	}
	if !ok {
		fmt.Fprintln(uc.out, "Exiting")
		return &RunRouletteOutput{Project: project, Assignment: assignment}, nil
	}

	if err := NewApplyAssignment(uc.tracker).Execute(ctx, project.ID, assignment); err != nil {
		return nil, err
	}

	fmt.Fprintln(uc.out, "issues assigned!")
	return &RunRouletteOutput{Project: project, Assignment: assignment, Applied: true}, nil
}

// resolveProject matches the configured url against the fetched
// projects; without a match the user picks one.
func (uc *RunRoulette) resolveProject(ctx context.Context, projectURL string) (domain.Project, error) {
	projects, err := uc.tracker.Projects(ctx)
	if err != nil {
		return domain.Project{}, fmt.Errorf("fetch projects: %w", err)
	}
	if len(projects) == 0 {
		return domain.Project{}, domain.ErrNoProjects
	}

	for _, p := range projects {
		if p.WebURL == projectURL {
			fmt.Fprintf(uc.out, "Found project: %s\n", p.Name)
			return p, nil
		}
	}

	idx, err := uc.prompter.SelectOne("Select a project: ", domain.Labels(projects))
	if err != nil {
		return domain.Project{}, err
	}
	return projects[idx], nil
}
