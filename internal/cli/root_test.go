package cli

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/remip/gitlab-roulette/internal/app"
	"github.com/remip/gitlab-roulette/internal/domain"
	"github.com/remip/gitlab-roulette/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(tracker *testutil.MockIssueTracker, prompter *testutil.MockPrompter) *app.Container {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewWithDeps(&domain.Config{}, tracker, prompter, rand.New(rand.NewSource(1)), logger)
}

func testTracker() *testutil.MockIssueTracker {
	return &testutil.MockIssueTracker{
		ProjectList: []domain.Project{
			{ID: 9, Name: "proj", PathWithNamespace: "group/proj", WebURL: "https://gitlab.example.com/group/proj"},
		},
		IssueList: []domain.Issue{
			{ID: 101, IID: 1, ProjectID: 9, Title: "one"},
			{ID: 102, IID: 2, ProjectID: 9, Title: "two"},
		},
		MemberList: []domain.Member{
			{ID: 1, Username: "alice", Name: "Alice"},
			{ID: 2, Username: "bob", Name: "Bob"},
		},
	}
}

func missingConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), domain.ConfigFileName)
}

func TestRootCommand_FullRun(t *testing.T) {
	tracker := testTracker()
	prompter := &testutil.MockPrompter{
		SelectOneAnswers:  []int{2}, // Manual strategy
		SelectManyAnswers: [][]int{{0, 1}, {0, 1}},
		ConfirmAnswers:    []bool{true, true},
	}
	container := newTestContainer(tracker, prompter)

	cmd := NewRootCommand(container, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--url", "https://gitlab.example.com/group/proj",
		"--token", "secret",
		"--config-file", missingConfigPath(t),
	})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Len(t, tracker.AssignCalls, 2)
	assert.Contains(t, buf.String(), "issues assigned!")
}

func TestRootCommand_DryRun(t *testing.T) {
	tracker := testTracker()
	prompter := &testutil.MockPrompter{
		SelectOneAnswers:  []int{2},
		SelectManyAnswers: [][]int{{0, 1}, {0}},
		ConfirmAnswers:    []bool{true},
	}
	container := newTestContainer(tracker, prompter)

	cmd := NewRootCommand(container, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--url", "https://gitlab.example.com/group/proj",
		"--token", "secret",
		"--config-file", missingConfigPath(t),
		"--dry-run",
	})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Empty(t, tracker.AssignCalls, "dry run never writes")
	assert.Contains(t, buf.String(), "#1: one")
}

func TestRootCommand_WritesReport(t *testing.T) {
	tracker := testTracker()
	prompter := &testutil.MockPrompter{
		SelectOneAnswers:  []int{2},
		SelectManyAnswers: [][]int{{0, 1}, {0, 1}},
		ConfirmAnswers:    []bool{true, true},
	}
	container := newTestContainer(tracker, prompter)
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	cmd := NewRootCommand(container, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--url", "https://gitlab.example.com/group/proj",
		"--token", "secret",
		"--config-file", missingConfigPath(t),
		"--report", reportPath,
	})

	err := cmd.Execute()
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "group/proj")
	assert.Contains(t, buf.String(), "Report written to")
}

func TestRootCommand_ConfigFromFile(t *testing.T) {
	tracker := testTracker()
	prompter := &testutil.MockPrompter{
		SelectOneAnswers:  []int{2},
		SelectManyAnswers: [][]int{{0}, {0}},
		ConfirmAnswers:    []bool{true, true},
	}
	container := newTestContainer(tracker, prompter)

	configPath := filepath.Join(t.TempDir(), domain.ConfigFileName)
	content := "url = \"https://gitlab.example.com/group/proj\"\ntoken = \"secret\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cmd := NewRootCommand(container, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config-file", configPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Found project: proj", "url read from the config file")
}

func TestRootCommand_MissingURL(t *testing.T) {
	cmd := NewRootCommand(nil, "test")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--token", "secret", "--config-file", missingConfigPath(t)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingURL)
	assert.ErrorIs(t, err, domain.ErrConfig, "config failures carry the distinct config class")
}

func TestRootCommand_MissingToken(t *testing.T) {
	cmd := NewRootCommand(nil, "test")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{
		"--url", "https://gitlab.example.com/group/proj",
		"--config-file", missingConfigPath(t),
	})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestRootCommand_InvalidURL(t *testing.T) {
	cmd := NewRootCommand(nil, "test")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{
		"--url", "not a url",
		"--token", "secret",
		"--config-file", missingConfigPath(t),
	})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}
