package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Milestones_DedupFirstSeen(t *testing.T) {
	sprint1 := &Milestone{ID: 1, Title: "Sprint 1"}
	sprint2 := &Milestone{ID: 2, Title: "Sprint 2"}
	snap := NewSnapshot(Project{ID: 1}, []Issue{
		{ID: 10, Milestone: sprint2},
		{ID: 11, Milestone: nil},
		{ID: 12, Milestone: sprint1},
		{ID: 13, Milestone: &Milestone{ID: 2, Title: "Sprint 2 renamed"}},
	}, nil)

	milestones := snap.Milestones()
	assert.Len(t, milestones, 2)
	assert.Equal(t, 2, milestones[0].ID, "first-seen order preserved")
	assert.Equal(t, 1, milestones[1].ID)
}

func TestSnapshot_Milestones_NoneReferenced(t *testing.T) {
	snap := NewSnapshot(Project{ID: 1}, []Issue{{ID: 10}, {ID: 11}}, nil)
	assert.Empty(t, snap.Milestones())
}

func TestSnapshot_HasIssueID(t *testing.T) {
	snap := NewSnapshot(Project{ID: 1}, []Issue{{ID: 10}, {ID: 42}}, nil)

	assert.True(t, snap.HasIssueID(42))
	assert.False(t, snap.HasIssueID(43))
}
