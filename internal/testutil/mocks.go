// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"

	"github.com/remip/gitlab-roulette/internal/domain"
)

// MockIssueTracker is a test double for domain.IssueTracker.
// Fields are ordered to minimize memory padding.
type MockIssueTracker struct {
	ProjectsErr  error
	IssuesErr    error
	MembersErr   error
	AssignErr    error
	ProjectList  []domain.Project
	IssueList    []domain.Issue
	MemberList   []domain.Member
	AssignCalls  []AssignCall
	AssignFailAt int // 1-based call number that fails with AssignErr (0 = never)
}

// AssignCall records one AssignIssue invocation.
type AssignCall struct {
	ProjectID int
	IssueIID  int
	MemberID  int
}

// Projects returns the configured project list.
func (m *MockIssueTracker) Projects(_ context.Context) ([]domain.Project, error) {
	if m.ProjectsErr != nil {
		return nil, m.ProjectsErr
	}
	return m.ProjectList, nil
}

// Issues returns the configured issue list.
func (m *MockIssueTracker) Issues(_ context.Context, _ int) ([]domain.Issue, error) {
	if m.IssuesErr != nil {
		return nil, m.IssuesErr
	}
	return m.IssueList, nil
}

// Members returns the configured member list.
func (m *MockIssueTracker) Members(_ context.Context, _ int) ([]domain.Member, error) {
	if m.MembersErr != nil {
		return nil, m.MembersErr
	}
	return m.MemberList, nil
}

// AssignIssue records the call and fails on the configured call number.
func (m *MockIssueTracker) AssignIssue(_ context.Context, projectID, issueIID, memberID int) error {
	if m.AssignFailAt > 0 && len(m.AssignCalls)+1 == m.AssignFailAt {
		return m.AssignErr
	}
	m.AssignCalls = append(m.AssignCalls, AssignCall{
		ProjectID: projectID,
		IssueIID:  issueIID,
		MemberID:  memberID,
	})
	return nil
}

// MockPrompter is a test double for domain.Prompter. Each prompt kind
// consumes scripted answers in order.
type MockPrompter struct {
	SelectOneAnswers  []int
	SelectManyAnswers [][]int
	NumberAnswers     []int
	ConfirmAnswers    []bool
	Err               error

	SelectOneLabels  []string
	SelectManyLabels []string
}

// SelectOne returns the next scripted single-select answer.
func (m *MockPrompter) SelectOne(label string, _ []string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.SelectOneLabels = append(m.SelectOneLabels, label)
	answer := m.SelectOneAnswers[0]
	m.SelectOneAnswers = m.SelectOneAnswers[1:]
	return answer, nil
}

// SelectMany returns the next scripted multi-select answer.
func (m *MockPrompter) SelectMany(label string, _ []string) ([]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.SelectManyLabels = append(m.SelectManyLabels, label)
	answer := m.SelectManyAnswers[0]
	m.SelectManyAnswers = m.SelectManyAnswers[1:]
	return answer, nil
}

// InputNumber returns the next scripted number after validating it.
func (m *MockPrompter) InputNumber(_ string, validate func(int) error) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	answer := m.NumberAnswers[0]
	m.NumberAnswers = m.NumberAnswers[1:]
	if err := validate(answer); err != nil {
		return 0, err
	}
	return answer, nil
}

// Confirm returns the next scripted confirmation answer.
func (m *MockPrompter) Confirm(_ string, _ bool) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	answer := m.ConfirmAnswers[0]
	m.ConfirmAnswers = m.ConfirmAnswers[1:]
	return answer, nil
}
