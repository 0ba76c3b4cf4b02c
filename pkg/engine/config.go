package engine

// Config carries the hand-tuned constants of the engine. The defaults
// mirror the values the scoring heuristics were calibrated with; they
// are exposed as configuration so operators can override them without
// changing query semantics.
type Config struct {
	// RiskHighLoad and RiskMediumLoad are the utilization thresholds
	// for classifying a single point of failure as HIGH or MEDIUM risk.
	RiskHighLoad   float64
	RiskMediumLoad float64

	// TeamRoleCap limits how many distinct roles the greedy team
	// selection fills.
	TeamRoleCap int

	// DefaultAllocation is assumed for what-if simulations when the
	// question does not state one.
	DefaultAllocation float64

	// PerformanceFloor is the performance score above which a person
	// counts as a top performer in reasoning queries.
	PerformanceFloor float64

	// ResultLimit bounds people-listing result sets; PairLimit bounds
	// reasoning pair result sets.
	ResultLimit int
	PairLimit   int
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		RiskHighLoad:      0.90,
		RiskMediumLoad:    0.50,
		TeamRoleCap:       5,
		DefaultAllocation: 1.0,
		PerformanceFloor:  7.5,
		ResultLimit:       20,
		PairLimit:         30,
	}
}
