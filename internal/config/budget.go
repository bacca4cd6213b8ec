package config

import (
	"math"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
)

// BudgetPreset represents a named budget scale.
type BudgetPreset string

const (
	BudgetQuick    BudgetPreset = "quick"
	BudgetStandard BudgetPreset = "standard"
	BudgetThorough BudgetPreset = "thorough"
	BudgetFixed    BudgetPreset = "fixed"
)

// ParseBudgetPreset maps a CLI string to a preset; unknown strings mean
// standard.
func ParseBudgetPreset(s string) BudgetPreset {
	switch BudgetPreset(s) {
	case BudgetQuick, BudgetStandard, BudgetThorough, BudgetFixed:
		return BudgetPreset(s)
	default:
		return BudgetStandard
	}
}

// ScaleForPreset returns the budget multiplier for a preset.
func ScaleForPreset(preset BudgetPreset) float64 {
	switch preset {
	case BudgetQuick:
		return 0.5
	case BudgetThorough:
		return 2.0
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset uses config values as-is.
func IsFixedPreset(preset BudgetPreset) bool {
	return preset == BudgetFixed
}

// ApplyBudgetPreset scales the iteration-style budgets; "fixed" leaves the
// config untouched.
func ApplyBudgetPreset(cfg *BudgetConfig, preset BudgetPreset) {
	if IsFixedPreset(preset) {
		return
	}
	scale := ScaleForPreset(preset)
	cfg.Deepening.MaxAllowedDepth = scaleInt(cfg.Deepening.MaxAllowedDepth, scale)
	cfg.IDAStar.MaxIterations = scaleInt(cfg.IDAStar.MaxIterations, scale)
	cfg.Minimax.MaxDepth = scaleInt(cfg.Minimax.MaxDepth, scale)
	cfg.MCTS.Iterations = scaleInt(cfg.MCTS.Iterations, scale)
}

// scaleInt scales a budget, never below 1.
func scaleInt(v int, scale float64) int {
	scaled := int(math.Ceil(float64(v) * scale))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// Options converts budgets into the runtime options handed to searchers.
func (b BudgetConfig) Options() search.Options {
	return search.Options{
		InitialDepth:    b.Deepening.InitialDepth,
		MaxAllowedDepth: b.Deepening.MaxAllowedDepth,
		MaxIterations:   b.IDAStar.MaxIterations,
		MaxDepth:        b.Minimax.MaxDepth,
		Iterations:      b.MCTS.Iterations,
		Exploration:     b.MCTS.Exploration,
		RolloutDepth:    b.MCTS.RolloutDepth,
		Seed:            b.Seed,
	}
}
