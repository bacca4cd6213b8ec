// Package config provides YAML-based problem and budget configuration
// loading for the search visualizer.
package config

// PuzzleConfig contains the 8-puzzle board setup.
type PuzzleConfig struct {
	Start []int `yaml:"start"`
	Goal  []int `yaml:"goal"`
}

// BudgetConfig contains the per-algorithm search budgets.
type BudgetConfig struct {
	Deepening DeepeningBudget `yaml:"deepening"`
	IDAStar   IDAStarBudget   `yaml:"idastar"`
	Minimax   MinimaxBudget   `yaml:"minimax"`
	MCTS      MCTSBudget      `yaml:"mcts"`
	Seed      int64           `yaml:"seed"`
}

// DeepeningBudget bounds iterative deepening.
type DeepeningBudget struct {
	InitialDepth    int `yaml:"initial_depth"`
	MaxAllowedDepth int `yaml:"max_allowed_depth"`
}

// IDAStarBudget bounds the IDA* threshold restarts.
type IDAStarBudget struct {
	MaxIterations int `yaml:"max_iterations"`
}

// MinimaxBudget bounds the minimax recursion depth.
type MinimaxBudget struct {
	MaxDepth int `yaml:"max_depth"`
}

// MCTSBudget bounds Monte Carlo tree search.
type MCTSBudget struct {
	Iterations   int     `yaml:"iterations"`
	Exploration  float64 `yaml:"exploration"`
	RolloutDepth int     `yaml:"rollout_depth"`
}
