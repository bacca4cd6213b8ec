// Package puzzle implements the sliding-tile 8-puzzle search domain.
package puzzle

import (
	"fmt"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/config"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Problem adapts the 8-puzzle to the search contract. Actions move the
// blank; every move costs 1; the heuristic is Manhattan distance.
type Problem struct {
	start Board
	goal  Board
}

// New creates a puzzle over the configured boards, falling back to the
// built-in five-move instance when the config is absent or invalid.
func New() *Problem {
	cfg, err := config.LoadPuzzle(configPath)
	if err != nil {
		cfg = config.DefaultPuzzleConfig()
	}

	p, err := NewFromBoards(toBoard(cfg.Start), toBoard(cfg.Goal))
	if err != nil {
		d := config.DefaultPuzzleConfig()
		p, _ = NewFromBoards(toBoard(d.Start), toBoard(d.Goal))
	}
	return p
}

// NewFromBoards creates a puzzle over explicit boards. Both must be
// permutations of 0..8 and mutually reachable.
func NewFromBoards(start, goal Board) (*Problem, error) {
	if !Valid(start) {
		return nil, fmt.Errorf("puzzle: start is not a permutation of 0..8: %v", start)
	}
	if !Valid(goal) {
		return nil, fmt.Errorf("puzzle: goal is not a permutation of 0..8: %v", goal)
	}
	if !Solvable(start, goal) {
		return nil, fmt.Errorf("puzzle: goal unreachable from start (inversion parity differs)")
	}
	return &Problem{start: start, goal: goal}, nil
}

// toBoard copies a config slice into a Board; short or long slices produce
// an invalid board that NewFromBoards rejects.
func toBoard(vs []int) Board {
	var b Board
	if len(vs) != Cells {
		b[0] = -1
		return b
	}
	copy(b[:], vs)
	return b
}

func init() {
	registry.Register("puzzle", func() registry.Problem {
		return New()
	})
}

// ID returns the problem identifier.
func (p *Problem) ID() string { return "puzzle" }

// Title returns the display name.
func (p *Problem) Title() string { return "8-Puzzle" }

// Kind reports that this is a single-agent path search.
func (p *Problem) Kind() registry.Kind { return registry.KindPath }

// Algorithms lists the supported algorithms.
func (p *Problem) Algorithms() []registry.AlgorithmInfo {
	return registry.PathAlgorithms()
}

// NewSearcher builds a searcher for one of the supported algorithms.
func (p *Problem) NewSearcher(algorithm string, opts search.Options) (registry.Searcher, error) {
	return registry.NewPathSearcher[Board, Move](p, algorithm, opts)
}

// Initial returns the start board.
func (p *Problem) Initial() Board { return p.start }

// Goal returns the goal board.
func (p *Problem) Goal() Board { return p.goal }

// Actions returns the legal blank moves in fixed order.
func (p *Problem) Actions(b Board) []Move { return Moves(b) }

// Result applies a blank move.
func (p *Problem) Result(b Board, m Move) Board {
	nb, _ := Apply(b, m)
	return nb
}

// IsGoal reports whether b matches the goal board.
func (p *Problem) IsGoal(b Board) bool { return b == p.goal }

// Cost is 1 for every move.
func (p *Problem) Cost(Board, Move, Board) float64 { return 1 }

// Heuristic returns the Manhattan distance to the goal.
func (p *Problem) Heuristic(b Board) float64 { return Manhattan(b, p.goal) }

// Board renders b for the board panel.
func (p *Problem) Board(b Board) []string { return Render(b) }

// CheckHeuristic samples reachable boards and reports edges breaking local
// consistency. Manhattan distance is consistent, so the result should stay
// empty.
func (p *Problem) CheckHeuristic(maxStates int) []search.Violation {
	return search.CheckConsistency[Board, Move](p, maxStates)
}
