package usecase

import (
	"github.com/remip/gitlab-roulette/internal/domain"
)

// Balance computes a balanced, randomized assignment of members to the
// selected issues. With n issues and m members each member receives
// either n/m or n/m+1 issues, and exactly n%m members receive the
// extra one.
func Balance(issues []domain.Issue, members []domain.Member, rng domain.Rand) (domain.Assignment, error) {
	if len(members) == 0 {
		return nil, domain.ErrNoMembers
	}
	if len(issues) == 0 {
		return domain.Assignment{}, nil
	}

	n := len(issues)
	m := len(members)
	perMember := n / m
	rest := n % m

	// Base allocation: every member index repeated n/m times.
	slots := make([]int, 0, n)
	for i := range m {
		for range perMember {
			slots = append(slots, i)
		}
	}

	// The rest members receiving an extra issue are drawn uniformly
	// without replacement, so the per-member spread stays at most 1.
	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(m, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	slots = append(slots, perm[:rest]...)

	// Shuffle the whole slot vector so which issue lands on which
	// member is random, then pair slots with issues in order.
	rng.Shuffle(n, func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})

	assignment := make(domain.Assignment, n)
	for i, issue := range issues {
		assignment[i] = domain.Pair{Issue: issue, Member: members[slots[i]]}
	}
	return assignment, nil
}
