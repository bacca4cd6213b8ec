package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

//go:embed defaults/budgets.yaml
var defaultBudgetsYAML []byte

// DefaultPuzzleConfig returns the classic five-move instance.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Start: []int{1, 2, 3, 4, 8, 0, 7, 6, 5},
		Goal:  []int{1, 2, 3, 4, 5, 6, 7, 8, 0},
	}
}

// DefaultBudgetConfig returns the standard budgets.
func DefaultBudgetConfig() BudgetConfig {
	return BudgetConfig{
		Deepening: DeepeningBudget{
			InitialDepth:    0,
			MaxAllowedDepth: 32,
		},
		IDAStar: IDAStarBudget{
			MaxIterations: 64,
		},
		Minimax: MinimaxBudget{
			MaxDepth: 9,
		},
		MCTS: MCTSBudget{
			Iterations:   200,
			Exploration:  math.Sqrt2,
			RolloutDepth: 50,
		},
		Seed: 1,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config section.
func GetDefaultYAML(section string) []byte {
	switch section {
	case "puzzle":
		return defaultPuzzleYAML
	case "budgets":
		return defaultBudgetsYAML
	default:
		return nil
	}
}
