package model

// Strategy sentinels (spec §7). A strategy/scheduler is a []int indexed
// by state, holding either a valid choice index at that state or one of
// these two sentinels.
const (
	// StrategyUnknown marks a state with no policy decided yet.
	StrategyUnknown = -1

	// StrategyArbitrary marks a state where any choice is optimal; lifting
	// may replace it with 0 when the state has a surviving choice.
	StrategyArbitrary = -2
)

// IsSentinel reports whether choice is one of the reserved negative
// strategy markers rather than a real choice index.
func IsSentinel(choice int) bool {
	return choice == StrategyUnknown || choice == StrategyArbitrary
}
