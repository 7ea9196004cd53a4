package domain

// Pair is one issue-to-member assignment.
type Pair struct {
	Issue  Issue
	Member Member
}

// Assignment is a balanced mapping from selected issues to members,
// ordered as presented to the user. Computed fresh per run, never
// persisted locally; applying it is a side-effecting call to the
// external service.
type Assignment []Pair

// Counts returns the number of issues assigned to each member id.
func (a Assignment) Counts() map[int]int {
	counts := make(map[int]int)
	for _, p := range a {
		counts[p.Member.ID]++
	}
	return counts
}
