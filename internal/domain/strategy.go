package domain

// Strategy determines how the subset of issues to distribute is chosen.
type Strategy string

const (
	StrategyMilestone Strategy = "milestone" // All issues in one or more picked milestones
	StrategyRange     Strategy = "range"     // Issues whose id falls in an inclusive range
	StrategyManual    Strategy = "manual"    // Hand-picked issues
)

// AllStrategies returns the strategies in prompt order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyMilestone, StrategyRange, StrategyManual}
}

// Label returns the display label used in the strategy prompt.
func (s Strategy) Label() string {
	switch s {
	case StrategyMilestone:
		return "Milestone"
	case StrategyRange:
		return "Range"
	case StrategyManual:
		return "Manual"
	}
	return string(s)
}
