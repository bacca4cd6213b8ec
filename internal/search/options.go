package search

// Options carries the runtime budgets and seeds a driver passes when
// constructing a search. Zero values are replaced by defaults where a zero
// makes no sense.
type Options struct {
	// Iterative deepening
	InitialDepth    int
	MaxAllowedDepth int

	// IDA* threshold restarts
	MaxIterations int

	// Minimax depth limit
	MaxDepth int

	// MCTS
	Iterations   int
	Exploration  float64
	RolloutDepth int
	Seed         int64
}

// DefaultOptions returns the budgets used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		InitialDepth:    0,
		MaxAllowedDepth: 32,
		MaxIterations:   64,
		MaxDepth:        9,
		Iterations:      200,
		Exploration:     DefaultExploration,
		RolloutDepth:    DefaultRolloutDepth,
		Seed:            1,
	}
}
